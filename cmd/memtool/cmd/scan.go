package cmd

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/coregx/basemem"
	"github.com/coregx/basemem/internal/conv"
	"github.com/coregx/basemem/internal/image"
)

var (
	scanRegion regionFlags
	scanWidth  int
	scanValue  string
	scanAll    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan FILE",
	Short: "Find a scalar value in an image, stepping by its width",
	Long: `Scan the selected region for --value, examining one element of --width
bits at a time from the start of the region. Element boundaries are relative
to --offset, so a 32-bit scan only matches at offsets that are multiples of 4
from there. Prints the byte offset of the first match within the image, or of
every match with --all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(scanValue, scanWidth)
		if err != nil {
			return err
		}
		order, err := image.ParseOrder(viper.GetString(configEndian))
		if err != nil {
			return err
		}
		region, err := scanRegion.load(args[0])
		if err != nil {
			return err
		}
		base, err := image.ParseSize(scanRegion.offset)
		if err != nil {
			return err
		}

		var hits []int
		switch scanWidth {
		case 8:
			hits, err = scanWords(region, order, conv.Uint64ToUint8(v), basemem.ScanMem8)
		case 16:
			hits, err = scanWords(region, order, conv.Uint64ToUint16(v), basemem.ScanMem16)
		case 32:
			hits, err = scanWords(region, order, conv.Uint64ToUint32(v), basemem.ScanMem32)
		default:
			hits, err = scanWords(region, order, v, basemem.ScanMem64)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(hits) == 0 {
			fmt.Fprintf(out, "%#x: not found\n", v)
			return nil
		}
		for _, off := range hits {
			fmt.Fprintf(out, "%#x: found at offset %#x\n", v, base+int64(off))
		}
		return nil
	},
}

// scanWords views region as elements of T and returns the byte offsets of
// matches: the first only, or all of them with --all.
func scanWords[T basemem.Word](region []byte, order binary.ByteOrder, value T, scan func([]T, T) int) ([]int, error) {
	words, shared := image.Decode[T](region, order)
	if len(words) == 0 {
		return nil, errors.Errorf("region of %d bytes holds no complete element", len(region))
	}
	klog.V(2).Infof("scanning %d elements (zero-copy view: %v)", len(words), shared)

	size := basemem.ByteLen(words[:1])
	var hits []int
	for next := 0; next < len(words); {
		i := scan(words[next:], value)
		if i == basemem.NotFound {
			break
		}
		hits = append(hits, (next+i)*size)
		if !scanAll {
			break
		}
		next += i + 1
	}
	return hits, nil
}

func init() {
	scanRegion.register(scanCmd)
	scanCmd.Flags().IntVar(&scanWidth, "width", 8, "element width in bits: 8, 16, 32 or 64")
	scanCmd.Flags().StringVar(&scanValue, "value", "", "value to search for, decimal or 0x-prefixed hex")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "report every match instead of the first")
	_ = scanCmd.MarkFlagRequired("value")
}
