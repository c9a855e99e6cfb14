package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	misconducttypes "github.com/initia-labs/misconduct/x/misconduct/types"
)

const flagForce = "force"

var configTemplate *template.Template

func init() {
	var err error

	tmpl := template.New("scenarioTemplate")
	if configTemplate, err = tmpl.Parse(DefaultConfigTemplate); err != nil {
		panic(err)
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [scenario-file]",
		Short: "Write a default scenario file, or print it when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := renderScenario(DefaultSimConfig(), misconducttypes.DefaultParams())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write(bz)
				return err
			}

			force, err := cmd.Flags().GetBool(flagForce)
			if err != nil {
				return err
			}
			if _, err := os.Stat(args[0]); err == nil && !force {
				return fmt.Errorf("%s already exists, use --%s to overwrite", args[0], flagForce)
			}

			return os.WriteFile(args[0], bz, 0o644)
		},
	}

	cmd.Flags().Bool(flagForce, false, "Overwrite an existing scenario file")
	return cmd
}

func renderScenario(sim SimConfig, params misconducttypes.Params) ([]byte, error) {
	var buffer bytes.Buffer
	err := configTemplate.Execute(&buffer, struct {
		Sim    SimConfig
		Params misconducttypes.Params
	}{sim, params})

	return buffer.Bytes(), err
}
