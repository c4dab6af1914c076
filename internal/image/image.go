// Package image loads firmware and memory images from disk and exposes byte
// regions and width views of them to the memory primitives.
//
// Files ending in .lz4 are decompressed transparently on load and written
// compressed on save.
package image

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// lz4Suffix marks files stored as lz4 frames.
const lz4Suffix = ".lz4"

// IsCompressed reports whether path names an lz4-compressed image.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), lz4Suffix)
}

// Load reads the whole image at path.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	var r io.Reader = f
	if IsCompressed(path) {
		r = lz4.NewReader(f)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", path)
	}
	klog.V(2).Infof("loaded %s: %s", path, units.HumanSize(float64(len(data))))
	return data, nil
}

// Save writes data to path, lz4-compressing it when compress is set.
func Save(path string, data []byte, compress bool) error {
	var buf bytes.Buffer
	if compress {
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return errors.Wrap(err, "compress image")
		}
		if err := zw.Close(); err != nil {
			return errors.Wrap(err, "finish lz4 frame")
		}
	} else {
		buf.Write(data)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write image %s", path)
	}
	klog.V(2).Infof("wrote %s: %s (%s on disk)", path,
		units.HumanSize(float64(len(data))), units.HumanSize(float64(buf.Len())))
	return nil
}

// Region returns data[offset:offset+length]. A zero length selects
// everything from offset to the end.
func Region(data []byte, offset, length int64) ([]byte, error) {
	size := int64(len(data))
	if offset < 0 || length < 0 {
		return nil, errors.Errorf("negative offset %d or length %d", offset, length)
	}
	if offset > size {
		return nil, errors.Errorf("offset %d past end of %d-byte image", offset, size)
	}
	if length == 0 {
		return data[offset:], nil
	}
	if length > size-offset {
		return nil, errors.Errorf("region %d+%d exceeds %d-byte image", offset, length, size)
	}
	return data[offset : offset+length], nil
}

// ParseSize parses a byte count such as "4096", "0x1000", "4k" or "1MiB".
// Plain integers may carry a 0x, 0o or 0b prefix; suffixes are binary
// multiples. An empty string is zero.
func ParseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", s)
	}
	return n, nil
}
