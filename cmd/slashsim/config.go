package main

import (
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// DefaultSessionsPerEra - default number of sessions in an era
	DefaultSessionsPerEra = uint64(3)

	// DefaultBlockTime - default time between two simulated blocks
	DefaultBlockTime = 5 * time.Second

	// DefaultOutput - default result encoding
	DefaultOutput = "yaml"
)

const (
	flagSessionsPerEra = "sim.sessions-per-era"
	flagBlockTime      = "sim.block-time"
	flagOutput         = "sim.output"
)

// SimConfig is the config of a simulation run
type SimConfig struct {
	SessionsPerEra uint64        `mapstructure:"sessions-per-era"`
	BlockTime      time.Duration `mapstructure:"block-time"`
	Output         string        `mapstructure:"output"`
}

// DefaultSimConfig returns the default settings for SimConfig
func DefaultSimConfig() SimConfig {
	return SimConfig{
		SessionsPerEra: DefaultSessionsPerEra,
		BlockTime:      DefaultBlockTime,
		Output:         DefaultOutput,
	}
}

// GetConfig load config values from the scenario file and flags
func GetConfig(v *viper.Viper) SimConfig {
	config := SimConfig{
		SessionsPerEra: cast.ToUint64(v.Get(flagSessionsPerEra)),
		BlockTime:      cast.ToDuration(v.Get(flagBlockTime)),
		Output:         cast.ToString(v.Get(flagOutput)),
	}

	if config.SessionsPerEra == 0 {
		config.SessionsPerEra = DefaultSessionsPerEra
	}
	if config.BlockTime <= 0 {
		config.BlockTime = DefaultBlockTime
	}
	if config.Output == "" {
		config.Output = DefaultOutput
	}

	return config
}

// AddConfigFlags registers the simulation flags on cmd.
func AddConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(flagSessionsPerEra, DefaultSessionsPerEra, "Set the number of sessions in an era")
	cmd.Flags().Duration(flagBlockTime, DefaultBlockTime, "Set the time between two simulated blocks")
	cmd.Flags().String(flagOutput, DefaultOutput, "Set the result encoding (yaml|json)")
}

// DefaultConfigTemplate default scenario template for slashsim
const DefaultConfigTemplate = `
###############################################################################
###                         Simulation                                      ###
###############################################################################

[sim]
# The number of sessions in an era.
sessions-per-era = {{ .Sim.SessionsPerEra }}
# The time between two simulated blocks.
block-time = "{{ .Sim.BlockTime }}"
# The result encoding, yaml or json.
output = "{{ .Sim.Output }}"

###############################################################################
###                         Misconduct Params                               ###
###############################################################################

[params]
# When slashes are applied, rolling or end_of_era.
slash_mode = "{{ .Params.SlashMode }}"
# How session estimates combine, replace or max.
accumulation = "{{ .Params.Accumulation }}"
# Whether the severity is reset when an era ends.
reset_on_era_end = {{ .Params.ResetOnEraEnd }}
# The balance conversion, u64 or u128.
currency_to_vote = "{{ .Params.CurrencyToVote }}"

###############################################################################
###                         Ledger                                          ###
###############################################################################

[[validators]]
name = "11"
free = "1000"
own = "1000"

[[validators.nominators]]
name = "101"
free = "500"
value = "250"

[[validators]]
name = "21"
free = "1000"
own = "1000"

[[validators]]
name = "31"
free = "1000"
own = "1000"

[[validators]]
name = "41"
free = "1000"
own = "1000"

###############################################################################
###                         Reports                                         ###
###############################################################################

[[reports]]
session = 1
policy = "unresponsive"
misbehaved = ["11", "21", "31", "41"]
total_validators = 30
`
