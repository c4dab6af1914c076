package cmd

import (
	"encoding/binary"

	units "github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/coregx/basemem"
	"github.com/coregx/basemem/internal/conv"
	"github.com/coregx/basemem/internal/image"
)

// maxFillBytes caps the size of a generated image.
const maxFillBytes = 1 << 30

var (
	fillWidth int
	fillValue string
	fillCount string
)

var fillCmd = &cobra.Command{
	Use:   "fill OUTFILE",
	Short: "Write an image holding a repeated scalar",
	Long: `Write --count elements of --width bits, each set to --value, in the
byte order given by --endian. A zero 8-bit fill produces an erased image.
OUTFILE names ending in .lz4 are written compressed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(fillValue, fillWidth)
		if err != nil {
			return err
		}
		order, err := image.ParseOrder(viper.GetString(configEndian))
		if err != nil {
			return err
		}
		count, err := image.ParseSize(fillCount)
		if err != nil {
			return err
		}
		if count <= 0 {
			return errors.New("--count must be positive")
		}
		if count > maxFillBytes/int64(fillWidth/8) {
			return errors.Errorf("--count %d x %d-bit exceeds the %s fill limit",
				count, fillWidth, units.BytesSize(maxFillBytes))
		}

		var data []byte
		switch fillWidth {
		case 8:
			buf := make([]byte, count)
			if v == 0 {
				data = basemem.ZeroMem(buf)
			} else {
				data = basemem.SetMem(buf, conv.Uint64ToUint8(v))
			}
		case 16:
			data = fillWords(count, conv.Uint64ToUint16(v), order, basemem.SetMem16)
		case 32:
			data = fillWords(count, conv.Uint64ToUint32(v), order, basemem.SetMem32)
		default:
			data = fillWords(count, v, order, basemem.SetMem64)
		}

		klog.V(1).Infof("filling %s with %d x %d-bit %#x", args[0], count, fillWidth, v)
		return image.Save(args[0], data, image.IsCompressed(args[0]))
	},
}

func fillWords[T basemem.Word](count int64, value T, order binary.ByteOrder, fill func([]T, T) []T) []byte {
	return image.Encode(fill(make([]T, count), value), order)
}

func init() {
	fillCmd.Flags().IntVar(&fillWidth, "width", 8, "element width in bits: 8, 16, 32 or 64")
	fillCmd.Flags().StringVar(&fillValue, "value", "0", "fill value, decimal or 0x-prefixed hex")
	fillCmd.Flags().StringVar(&fillCount, "count", "", "number of elements (k/m suffixes allowed)")
	_ = fillCmd.MarkFlagRequired("count")
}
