package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/basemem/internal/image"
	"github.com/coregx/basemem/simd"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the kernels selected for this CPU",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dispatch:   %s\n", simd.Dispatch())
		fmt.Fprintf(out, "host order: %s\n", image.HostOrder)
	},
}
