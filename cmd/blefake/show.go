package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <fixture.yaml>",
	Short: "Print the topology described by a fixture",
	Long: `Loads a YAML fixture and prints the resulting topology.

Examples:
  # Tree view
  blefake show testdata/heart_rate.yaml

  # Ordered JSON snapshot
  blefake show testdata/heart_rate.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showJSON    bool
	showNoColor bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print a JSON snapshot instead of a tree")
	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "Disable colored output")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := outputConfig(cmd, showJSON, showNoColor)
	if err != nil {
		return err
	}

	_, m, err := loadTopology(args[0], logger)
	if err != nil {
		return err
	}
	return printTopology(cmd.OutOrStdout(), m, cfg)
}
