//go:build test

package main

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/srg/blefake/internal/testutils"
	"github.com/stretchr/testify/suite"
)

// CommandTestSuite resets command flags between tests and runs commands
// against an in-memory buffer.
type CommandTestSuite struct {
	suite.Suite
}

func (s *CommandTestSuite) SetupTest() {
	showJSON, showNoColor = false, false
	runJSON, runNoColor = false, false
	s.Require().NoError(rootCmd.PersistentFlags().Set("log-level", ""))
	s.Require().NoError(rootCmd.PersistentFlags().Set("verbose", "false"))
}

// FixturePath resolves a fixture under the repository testdata directory
func (s *CommandTestSuite) FixturePath(name string) string {
	path, err := testutils.ProjectPath("testdata/" + name)
	s.Require().NoError(err)
	return path
}

// ExecuteCommand runs a cobra command with args, returns output and error.
func (s *CommandTestSuite) ExecuteCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
