package cmd

import (
	"github.com/spf13/cobra"

	"github.com/coregx/basemem/internal/image"
)

// regionFlags selects a byte range of an image.
type regionFlags struct {
	offset string
	length string
}

func (r *regionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.offset, "offset", "0", "start of the region (bytes, k/m/g suffixes allowed)")
	cmd.Flags().StringVar(&r.length, "length", "0", "length of the region, 0 means to the end of the image")
}

// load reads path and returns the selected region.
func (r *regionFlags) load(path string) ([]byte, error) {
	data, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	off, err := image.ParseSize(r.offset)
	if err != nil {
		return nil, err
	}
	n, err := image.ParseSize(r.length)
	if err != nil {
		return nil, err
	}
	return image.Region(data, off, n)
}
