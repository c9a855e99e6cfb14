package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	sdk "github.com/cosmos/cosmos-sdk/types"

	misconductapp "github.com/initia-labs/misconduct/app"
	misconducttypes "github.com/initia-labs/misconduct/x/misconduct/types"
)

// SlashResult is a single applied slash.
type SlashResult struct {
	Validator string `json:"validator" yaml:"validator"`
	Amount    string `json:"amount" yaml:"amount"`
	Policy    string `json:"policy" yaml:"policy"`
	Severity  string `json:"severity" yaml:"severity"`
}

// ReportResult is the outcome of one replayed report.
type ReportResult struct {
	Height   int64         `json:"height" yaml:"height"`
	Session  uint64        `json:"session" yaml:"session"`
	Policy   string        `json:"policy" yaml:"policy"`
	Severity string        `json:"severity" yaml:"severity"`
	Level    uint8         `json:"level" yaml:"level"`
	Slashes  []SlashResult `json:"slashes,omitempty" yaml:"slashes,omitempty"`
}

// EraResult is the outcome of an era end.
type EraResult struct {
	Height  int64            `json:"height" yaml:"height"`
	Era     uint64           `json:"era" yaml:"era"`
	Levels  map[string]uint8 `json:"levels" yaml:"levels"`
	Slashes []SlashResult    `json:"slashes,omitempty" yaml:"slashes,omitempty"`
}

// BalanceResult is the final state of an account.
type BalanceResult struct {
	Account   string `json:"account" yaml:"account"`
	Free      string `json:"free" yaml:"free"`
	Slashable string `json:"slashable,omitempty" yaml:"slashable,omitempty"`
}

// Result is everything a simulation produced.
type Result struct {
	Reports      []ReportResult  `json:"reports" yaml:"reports"`
	Eras         []EraResult     `json:"eras" yaml:"eras"`
	Balances     []BalanceResult `json:"balances" yaml:"balances"`
	TotalSlashed string          `json:"total_slashed" yaml:"total_slashed"`
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Replay the reports of a scenario file (toml, yaml or json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetConfigFile(args[0])
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := v.ReadInConfig(); err != nil {
				return err
			}

			logger, err := newLogger(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			scenario, err := LoadScenario(v)
			if err != nil {
				return err
			}

			config := GetConfig(v)
			result, err := Simulate(logger, config, scenario)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), config.Output, result)
		},
	}

	AddConfigFlags(cmd)
	return cmd
}

// Simulate replays scenario on a fresh in-memory chain. Each report is a
// block of its own; an era ends whenever the era of the reported session
// changes, and once more after the last report.
func Simulate(logger log.Logger, config SimConfig, scenario Scenario) (*Result, error) {
	app, err := misconductapp.NewMisconductApp(logger, dbm.NewMemDB(), misconductapp.DefaultAuthority())
	if err != nil {
		return nil, err
	}

	genesisState := misconductapp.NewDefaultGenesisState()
	genesisState[misconducttypes.ModuleName], err = json.Marshal(misconducttypes.NewGenesisState(scenario.Params, nil))
	if err != nil {
		return nil, err
	}
	if err := app.InitChain(genesisState); err != nil {
		return nil, err
	}

	book := newAddressBook()
	if err := setupLedger(app.NewContext(), app, scenario, book); err != nil {
		return nil, err
	}
	app.Commit(config.BlockTime)

	result := &Result{}
	endEra := func(era uint64) error {
		ctx := app.NewContext()
		levels, err := app.MisconductKeeper.EndEra(ctx)
		if err != nil {
			return err
		}

		eraResult := EraResult{
			Height:  ctx.BlockHeight(),
			Era:     era,
			Levels:  make(map[string]uint8, len(levels)),
			Slashes: collectSlashes(ctx, book),
		}
		for name, level := range levels {
			eraResult.Levels[name] = uint8(level)
		}
		result.Eras = append(result.Eras, eraResult)

		app.Commit(config.BlockTime)
		return nil
	}

	var currentEra uint64
	for i, report := range scenario.Reports {
		era := report.Session / config.SessionsPerEra
		if i > 0 && era != currentEra {
			if err := endEra(currentEra); err != nil {
				return nil, err
			}
		}
		currentEra = era

		totalValidators := report.TotalValidators
		if totalValidators == 0 {
			totalValidators = uint64(len(scenario.Validators))
		}

		ctx := app.NewContext()
		level, err := app.MisconductKeeper.ReportMisconduct(
			ctx, report.Policy, book.validators(report.Misbehaved), totalValidators, report.Session,
		)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", i, err)
		}

		policy, err := app.MisconductKeeper.GetPolicy(ctx, report.Policy)
		if err != nil {
			return nil, err
		}

		result.Reports = append(result.Reports, ReportResult{
			Height:   ctx.BlockHeight(),
			Session:  report.Session,
			Policy:   report.Policy,
			Severity: policy.Severity().String(),
			Level:    uint8(level),
			Slashes:  collectSlashes(ctx, book),
		})

		app.Commit(config.BlockTime)
	}
	if len(scenario.Reports) > 0 {
		if err := endEra(currentEra); err != nil {
			return nil, err
		}
	}

	ctx := app.NewContext()
	if result.Balances, err = collectBalances(ctx, app, book); err != nil {
		return nil, err
	}

	totalSlashed, err := app.LedgerKeeper.GetTotalSlashed(ctx)
	if err != nil {
		return nil, err
	}
	result.TotalSlashed = totalSlashed.String()

	return result, nil
}

func setupLedger(ctx sdk.Context, app *misconductapp.MisconductApp, scenario Scenario, book *addressBook) error {
	funded := make(map[string]struct{})
	fund := func(name string, free, def string) (sdk.AccAddress, error) {
		addr := book.account(name)
		if _, ok := funded[name]; ok {
			return addr, nil
		}
		funded[name] = struct{}{}

		amount, err := parseAmount(free, def)
		if err != nil {
			return nil, err
		}
		return addr, app.LedgerKeeper.SetFreeBalance(ctx, addr, amount)
	}

	for _, val := range scenario.Validators {
		valAddr := book.validator(val.Name)
		if _, err := fund(val.Name, val.Free, val.Own); err != nil {
			return err
		}

		own, err := parseAmount(val.Own, "0")
		if err != nil {
			return err
		}
		if err := app.LedgerKeeper.Bond(ctx, valAddr, own); err != nil {
			return fmt.Errorf("validator %s: %w", val.Name, err)
		}

		for _, nominator := range val.Nominators {
			addr, err := fund(nominator.Name, nominator.Free, nominator.Value)
			if err != nil {
				return err
			}

			value, err := parseAmount(nominator.Value, "0")
			if err != nil {
				return err
			}
			if err := app.LedgerKeeper.Nominate(ctx, addr, valAddr, value); err != nil {
				return fmt.Errorf("nominator %s: %w", nominator.Name, err)
			}
		}
	}

	return nil
}

// collectSlashes reads the slashes applied while ctx was in use, in order.
func collectSlashes(ctx sdk.Context, book *addressBook) []SlashResult {
	var slashes []SlashResult
	for _, event := range ctx.EventManager().Events() {
		if event.Type != misconducttypes.EventTypeSlash {
			continue
		}

		var slash SlashResult
		for _, attr := range event.Attributes {
			switch attr.Key {
			case misconducttypes.AttributeKeyValidator:
				slash.Validator = book.name(attr.Value)
			case misconducttypes.AttributeKeyAmount:
				slash.Amount = attr.Value
			case misconducttypes.AttributeKeyPolicy:
				slash.Policy = attr.Value
			case misconducttypes.AttributeKeySeverity:
				slash.Severity = attr.Value
			}
		}
		slashes = append(slashes, slash)
	}

	return slashes
}

func collectBalances(ctx sdk.Context, app *misconductapp.MisconductApp, book *addressBook) ([]BalanceResult, error) {
	balances := make([]BalanceResult, 0, len(book.names))
	for bech32, name := range book.names {
		addr, err := sdk.AccAddressFromBech32(bech32)
		if err != nil {
			// validator operator addresses are reported through their account
			continue
		}

		free, err := app.LedgerKeeper.FreeBalance(ctx, addr)
		if err != nil {
			return nil, err
		}

		balance := BalanceResult{Account: name, Free: free.String()}

		slashable, err := app.LedgerKeeper.SlashableBalance(ctx, sdk.ValAddress(addr))
		if err != nil {
			return nil, err
		}
		if slashable.IsPositive() {
			balance.Slashable = slashable.String()
		}

		balances = append(balances, balance)
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Account < balances[j].Account
	})

	return balances, nil
}

func writeResult(w io.Writer, output string, result *Result) error {
	var (
		bz  []byte
		err error
	)

	switch output {
	case "json":
		bz, err = json.MarshalIndent(result, "", "  ")
		bz = append(bz, '\n')
	case "yaml":
		bz, err = yaml.Marshal(result)
	default:
		return fmt.Errorf("unknown output %q", output)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(bz)
	return err
}
