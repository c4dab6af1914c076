package cmd

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/coregx/basemem/internal/conv"
)

// parseValue parses a scalar such as "0xCAFE" or "255" and checks it fits
// in width bits.
func parseValue(s string, width int) (uint64, error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return 0, errors.Errorf("width must be 8, 16, 32 or 64, got %d", width)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	if !conv.FitsWidth(v, width) {
		return 0, errors.Errorf("value %#x does not fit in %d bits", v, width)
	}
	return v, nil
}
