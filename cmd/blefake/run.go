package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srg/blefake/internal/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run <fixture.yaml>",
	Short: "Run the scenario steps of a fixture",
	Long: fmt.Sprintf(`Loads a YAML fixture, applies its steps in order and prints the final topology.

A step names an operation and its target by id. An empty adapter selects the
adapter with the lowest id. 'expect_error' makes a step pass only when it fails
with the given kind.

Operations:
  %s, %s, %s, %s, %s,
  %s, %s, %s, %s, %s, %s,
  %s, %s, %s,
  %s, %s, %s, %s

Error kinds:
  %s, %s, %s, %s, %s,
  %s, %s, %s, %s

Examples:
  blefake run testdata/heart_rate.yaml
  blefake run testdata/heart_rate.yaml --json --log-level debug`,
		scenario.OpPower, scenario.OpDiscoverable, scenario.OpPairable, scenario.OpStartDiscovery, scenario.OpStopDiscovery,
		scenario.OpPair, scenario.OpCancelPairing, scenario.OpConnect, scenario.OpDisconnect, scenario.OpConnectProfile, scenario.OpDisconnectProfile,
		scenario.OpTrust, scenario.OpBlock, scenario.OpSetModalias,
		scenario.OpWrite, scenario.OpWriteDescriptor, scenario.OpStartNotify, scenario.OpStopNotify,
		scenario.KindNotFound, scenario.KindConnectFailed, scenario.KindAlreadyConnected, scenario.KindNotConnectable, scenario.KindNotConnected,
		scenario.KindMalformedModalias, scenario.KindUnimplemented, scenario.KindLockFailure, scenario.KindDiscoveryUnavailable),
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var (
	runJSON    bool
	runNoColor bool
)

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the final topology as a JSON snapshot")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "Disable colored output")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := outputConfig(cmd, runJSON, runNoColor)
	if err != nil {
		return err
	}

	f, m, err := loadTopology(args[0], logger)
	if err != nil {
		return err
	}

	if err := scenario.NewRunner(m, logger).Run(cmd.Context(), f.Steps); err != nil {
		return err
	}
	logger.WithField("steps", len(f.Steps)).Info("Scenario completed")

	return printTopology(cmd.OutOrStdout(), m, cfg)
}
