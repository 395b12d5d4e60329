package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srg/blefake/pkg/fake"
)

var modaliasCmd = &cobra.Command{
	Use:   "modalias <modalias>",
	Short: "Decode a modalias string",
	Long: `Decodes the vendor, product and device ids of a modalias string.

Example:
  blefake modalias bluetooth:v004Cp0320d0100`,
	Args: cobra.ExactArgs(1),
	RunE: runModalias,
}

func runModalias(cmd *cobra.Command, args []string) error {
	m, err := fake.ParseModalias(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:  %s\n", m.Source)
	fmt.Fprintf(out, "vendor:  0x%04X (%d)\n", m.VendorID, m.VendorID)
	fmt.Fprintf(out, "product: 0x%04X (%d)\n", m.ProductID, m.ProductID)
	fmt.Fprintf(out, "device:  0x%04X (%d)\n", m.DeviceID, m.DeviceID)
	return nil
}
