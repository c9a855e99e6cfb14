package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"

	misconducttypes "github.com/initia-labs/misconduct/x/misconduct/types"
)

func execute(t *testing.T, args ...string) string {
	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "disabled"))

	require.NoError(t, cmd.Execute(), errOut.String())
	return out.String()
}

func balanceOf(t *testing.T, result Result, name string) BalanceResult {
	for _, balance := range result.Balances {
		if balance.Account == name {
			return balance
		}
	}

	t.Fatalf("no balance for %s", name)
	return BalanceResult{}
}

func Test_RunDefaultScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	execute(t, "init", path)

	var result Result
	require.NoError(t, json.Unmarshal([]byte(execute(t, "run", path, "--sim.output", "json")), &result))

	require.Len(t, result.Reports, 1)
	report := result.Reports[0]
	require.Equal(t, "unresponsive", report.Policy)
	require.Equal(t, "3/200", report.Severity)
	require.Equal(t, uint8(3), report.Level)
	require.Len(t, report.Slashes, 4)
	require.Equal(t, SlashResult{Validator: "11", Amount: "18", Policy: "unresponsive", Severity: "3/200"}, report.Slashes[0])
	require.Equal(t, "15", report.Slashes[1].Amount)

	// rolling mode does not slash again at the era end
	require.Len(t, result.Eras, 1)
	require.Empty(t, result.Eras[0].Slashes)

	require.Equal(t, BalanceResult{Account: "11", Free: "982", Slashable: "1232"}, balanceOf(t, result, "11"))
	require.Equal(t, BalanceResult{Account: "21", Free: "985", Slashable: "985"}, balanceOf(t, result, "21"))
	require.Equal(t, BalanceResult{Account: "101", Free: "500"}, balanceOf(t, result, "101"))
	require.Equal(t, "63", result.TotalSlashed)
}

func Test_RunYAMLOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	execute(t, "init", path)

	out := execute(t, "run", path)
	require.Contains(t, out, "total_slashed: \"63\"")
	require.Contains(t, out, "free: \"982\"")
}

func Test_InitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	execute(t, "init", path)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", path})
	require.Error(t, cmd.Execute())

	execute(t, "init", path, "--force")
}

func Test_SimulateEndOfEra(t *testing.T) {
	params := misconducttypes.DefaultParams()
	params.SlashMode = misconducttypes.SlashModeEndOfEra

	scenario := Scenario{
		Params: params,
		Validators: []ValidatorSpec{
			{Name: "11", Own: "1000", Nominators: []NominatorSpec{{Name: "101", Free: "500", Value: "250"}}},
			{Name: "21", Own: "1000"},
			{Name: "31", Own: "1000"},
			{Name: "41", Own: "1000"},
		},
		Reports: []ReportSpec{
			{Session: 1, Policy: "unresponsive", Misbehaved: []string{"11", "21", "31", "41"}, TotalValidators: 30},
			{Session: 4, Policy: "unresponsive", Misbehaved: []string{"11"}, TotalValidators: 30},
		},
	}
	require.NoError(t, scenario.Validate())

	result, err := Simulate(log.NewNopLogger(), DefaultSimConfig(), scenario)
	require.NoError(t, err)

	// reports only accumulate
	require.Len(t, result.Reports, 2)
	require.Empty(t, result.Reports[0].Slashes)
	require.Equal(t, uint8(3), result.Reports[0].Level)

	require.Len(t, result.Eras, 2)
	require.Equal(t, uint64(0), result.Eras[0].Era)
	require.Equal(t, map[string]uint8{"unresponsive": 3}, result.Eras[0].Levels)
	require.Len(t, result.Eras[0].Slashes, 4)
	require.Equal(t, "18", result.Eras[0].Slashes[0].Amount)

	// the severity was reset, a single unresponsive validator is not slashed
	require.Equal(t, uint64(1), result.Eras[1].Era)
	require.Len(t, result.Eras[1].Slashes, 1)
	require.Equal(t, "0", result.Eras[1].Slashes[0].Amount)

	require.Equal(t, "982", balanceOf(t, result, "11").Free)
}

func Test_ScenarioValidate(t *testing.T) {
	valid := Scenario{
		Params:     misconducttypes.DefaultParams(),
		Validators: []ValidatorSpec{{Name: "11", Own: "1000"}},
		Reports:    []ReportSpec{{Session: 2, Policy: "unresponsive", Misbehaved: []string{"11"}}},
	}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(s *Scenario)
	}{
		{"duplicated validator", func(s *Scenario) { s.Validators = append(s.Validators, ValidatorSpec{Name: "11"}) }},
		{"negative own", func(s *Scenario) { s.Validators[0].Own = "-1" }},
		{"unknown misbehaved", func(s *Scenario) { s.Reports[0].Misbehaved = []string{"99"} }},
		{"session goes back", func(s *Scenario) { s.Reports = append(s.Reports, ReportSpec{Session: 1}) }},
		{"invalid params", func(s *Scenario) { s.Params.SlashMode = "never" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			s.Validators = append([]ValidatorSpec(nil), valid.Validators...)
			s.Reports = append([]ReportSpec(nil), valid.Reports...)
			tc.mutate(&s)
			require.Error(t, s.Validate())
		})
	}
}

func Test_LoadScenarioCommaSeparated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
params:
  slash_mode: end_of_era
validators:
  - name: "11"
    own: "1000"
  - name: "21"
    own: "1000"
reports:
  - session: "3"
    policy: equivocation
    misbehaved: "11, 21"
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	scenario, err := LoadScenario(v)
	require.NoError(t, err)
	require.Equal(t, misconducttypes.SlashModeEndOfEra, scenario.Params.SlashMode)
	require.Equal(t, misconducttypes.DefaultAccumulation, scenario.Params.Accumulation)
	require.Equal(t, []ReportSpec{{Session: 3, Policy: "equivocation", Misbehaved: []string{"11", "21"}}}, scenario.Reports)
}
