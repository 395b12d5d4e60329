package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/topology"
	"github.com/srg/blefake/pkg/config"
	"github.com/srg/blefake/pkg/fake"
)

// loadTopology reads a fixture and builds its live topology
func loadTopology(path string, logger *logrus.Logger) (*topology.Fixture, *fake.Manager, error) {
	f, err := topology.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := topology.Build(f, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build topology from %s: %w", path, err)
	}
	logger.WithField("adapters", len(m.Adapters())).Debug("Topology loaded")
	return f, m, nil
}

// printTopology writes m in the configured output format
func printTopology(w io.Writer, m *fake.Manager, cfg *config.Config) error {
	if cfg.OutputFormat == config.FormatJSON {
		out, err := topology.SnapshotJSON(m, cfg.IndentJSON)
		if err != nil {
			return fmt.Errorf("failed to snapshot topology: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return topology.RenderTree(w, m, topology.TreeOptions{Color: cfg.Color})
}
