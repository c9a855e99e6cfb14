package main

import (
	"fmt"
	"strings"

	"github.com/cometbft/cometbft/crypto"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	misconducttypes "github.com/initia-labs/misconduct/x/misconduct/types"
)

// Scenario is the ledger setup and the sequence of misconduct reports to
// replay.
type Scenario struct {
	Params     misconducttypes.Params `mapstructure:"params"`
	Validators []ValidatorSpec        `mapstructure:"validators"`
	Reports    []ReportSpec           `mapstructure:"reports"`
}

// ValidatorSpec describes a validator account and the stake backing it.
// Amounts are decimal strings.
type ValidatorSpec struct {
	Name       string          `mapstructure:"name"`
	Free       string          `mapstructure:"free"`
	Own        string          `mapstructure:"own"`
	Nominators []NominatorSpec `mapstructure:"nominators"`
}

// NominatorSpec describes a nomination. Free is only applied the first time
// a nominator appears.
type NominatorSpec struct {
	Name  string `mapstructure:"name"`
	Free  string `mapstructure:"free"`
	Value string `mapstructure:"value"`
}

// ReportSpec is a single misconduct report. A zero TotalValidators means
// every validator of the scenario. Misbehaved may also be given as a comma
// separated string.
type ReportSpec struct {
	Session         uint64   `mapstructure:"session"`
	Policy          string   `mapstructure:"policy"`
	Misbehaved      []string `mapstructure:"misbehaved"`
	TotalValidators uint64   `mapstructure:"total_validators"`
}

// LoadScenario decodes the scenario from v, defaulting the params.
func LoadScenario(v *viper.Viper) (Scenario, error) {
	scenario := Scenario{Params: misconducttypes.DefaultParams()}
	if err := v.UnmarshalKey("params", &scenario.Params); err != nil {
		return Scenario{}, err
	}
	if err := v.UnmarshalKey("validators", &scenario.Validators); err != nil {
		return Scenario{}, err
	}
	if err := v.UnmarshalKey("reports", &scenario.Reports, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToUint64HookFunc(),
		),
	)); err != nil {
		return Scenario{}, err
	}

	for _, report := range scenario.Reports {
		for i, name := range report.Misbehaved {
			report.Misbehaved[i] = strings.TrimSpace(name)
		}
	}

	return scenario, scenario.Validate()
}

// Validate checks the scenario is consistent before anything is replayed.
func (s Scenario) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}

	validators := make(map[string]struct{}, len(s.Validators))
	for _, val := range s.Validators {
		if val.Name == "" {
			return fmt.Errorf("validator without name")
		}
		if _, ok := validators[val.Name]; ok {
			return fmt.Errorf("duplicated validator %s", val.Name)
		}
		validators[val.Name] = struct{}{}

		if _, err := parseAmount(val.Own, "0"); err != nil {
			return fmt.Errorf("validator %s: %w", val.Name, err)
		}
		if _, err := parseAmount(val.Free, val.Own); err != nil {
			return fmt.Errorf("validator %s: %w", val.Name, err)
		}
		for _, nominator := range val.Nominators {
			if nominator.Name == "" {
				return fmt.Errorf("validator %s: nominator without name", val.Name)
			}
			if _, err := parseAmount(nominator.Value, "0"); err != nil {
				return fmt.Errorf("nominator %s: %w", nominator.Name, err)
			}
			if _, err := parseAmount(nominator.Free, nominator.Value); err != nil {
				return fmt.Errorf("nominator %s: %w", nominator.Name, err)
			}
		}
	}

	var lastSession uint64
	for i, report := range s.Reports {
		if i > 0 && report.Session < lastSession {
			return fmt.Errorf("report %d: session %d goes back from %d", i, report.Session, lastSession)
		}
		lastSession = report.Session

		for _, name := range report.Misbehaved {
			if _, ok := validators[name]; !ok {
				return fmt.Errorf("report %d: unknown validator %s", i, name)
			}
		}
	}

	return nil
}

// parseAmount parses s, falling back to def when s is empty.
func parseAmount(s, def string) (math.Int, error) {
	if s == "" {
		s = def
	}

	amount, ok := math.NewIntFromString(s)
	if !ok || amount.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}

	return amount, nil
}

// addressBook maps scenario names to deterministic addresses and back.
type addressBook struct {
	names map[string]string
}

func newAddressBook() *addressBook {
	return &addressBook{names: make(map[string]string)}
}

func (b *addressBook) account(name string) sdk.AccAddress {
	addr := sdk.AccAddress(crypto.AddressHash([]byte(name)))
	b.names[addr.String()] = name
	return addr
}

func (b *addressBook) validator(name string) sdk.ValAddress {
	valAddr := sdk.ValAddress(crypto.AddressHash([]byte(name)))
	b.names[valAddr.String()] = name
	return valAddr
}

func (b *addressBook) validators(names []string) []sdk.ValAddress {
	valAddrs := make([]sdk.ValAddress, len(names))
	for i, name := range names {
		valAddrs[i] = b.validator(name)
	}
	return valAddrs
}

// name returns the scenario name of a bech32 address, or the address itself.
func (b *addressBook) name(bech32 string) string {
	if name, ok := b.names[bech32]; ok {
		return name
	}
	return bech32
}
