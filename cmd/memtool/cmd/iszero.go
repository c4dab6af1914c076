package cmd

import (
	"fmt"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/coregx/basemem"
)

var iszeroRegion regionFlags

var iszeroCmd = &cobra.Command{
	Use:   "iszero FILE",
	Short: "Report whether a region of an image is all zeros",
	Long: `Report whether every byte of the selected region is zero.

An empty region counts as zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := iszeroRegion.load(args[0])
		if err != nil {
			return err
		}
		state := "non-zero"
		if basemem.IsZeroBuffer(region) {
			state = "zero"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", args[0], state, units.HumanSize(float64(len(region))))
		return nil
	},
}

func init() {
	iszeroRegion.register(iszeroCmd)
}
