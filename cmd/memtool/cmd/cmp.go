package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/coregx/basemem"
)

var cmpRegion regionFlags

var cmpCmd = &cobra.Command{
	Use:   "cmp FILE1 FILE2",
	Short: "Compare the same region of two images",
	Long: `Compare the selected region of two images byte by byte and print the
difference of the first mismatching bytes (FILE1 minus FILE2, unsigned), or 0
when they are identical. Exits with status 1 if the regions differ.

When the images have different sizes and no --length is given, the common
prefix is compared.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cmpRegion.load(args[0])
		if err != nil {
			return err
		}
		b, err := cmpRegion.load(args[1])
		if err != nil {
			return err
		}
		if len(a) != len(b) {
			klog.Warningf("sizes differ (%d vs %d bytes), comparing common prefix", len(a), len(b))
			n := min(len(a), len(b))
			a, b = a[:n], b[:n]
		}
		if len(a) == 0 {
			return errors.New("nothing to compare: empty region")
		}

		diff := basemem.CompareMem(a, b)
		fmt.Fprintln(cmd.OutOrStdout(), diff)
		if diff != 0 {
			return ErrDiffer
		}
		return nil
	},
}

func init() {
	cmpRegion.register(cmpCmd)
}
