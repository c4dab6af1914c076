// Package signature finds well-known firmware structure signatures (firmware
// volume headers, SMBIOS and ACPI anchors, ...) in memory images.
//
// Catalogs are YAML documents:
//
//	signatures:
//	  - name: smbios
//	    text: "_SM_"
//	    align: 16
//	  - name: fit
//	    hex: "5f4649545f202020"
package signature

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Signature is one named byte pattern.
type Signature struct {
	Name string `yaml:"name"`
	// Text is the pattern as a literal string. Exactly one of Text and Hex
	// must be set.
	Text string `yaml:"text,omitempty"`
	// Hex is the pattern as hex digits.
	Hex string `yaml:"hex,omitempty"`
	// Align, when non-zero, only accepts hits at offsets that are multiples
	// of it.
	Align int `yaml:"align,omitempty"`
}

// Catalog is an ordered list of signatures.
type Catalog struct {
	Signatures []Signature `yaml:"signatures"`
}

// Pattern returns the raw bytes the signature matches.
func (s Signature) Pattern() ([]byte, error) {
	switch {
	case s.Text != "" && s.Hex != "":
		return nil, errors.Errorf("signature %q sets both text and hex", s.Name)
	case s.Text != "":
		return []byte(s.Text), nil
	case s.Hex != "":
		p, err := hex.DecodeString(s.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %q", s.Name)
		}
		return p, nil
	}
	return nil, errors.Errorf("signature %q has an empty pattern", s.Name)
}

// Builtin returns the signatures memtool knows without a catalog file.
func Builtin() *Catalog {
	return &Catalog{Signatures: []Signature{
		{Name: "uefi-firmware-volume", Text: "_FVH"},
		{Name: "pci-irq-routing", Text: "$PIR", Align: 16},
		{Name: "smbios2-entry", Text: "_SM_", Align: 16},
		{Name: "smbios3-entry", Text: "_SM3_", Align: 16},
		{Name: "mp-floating-pointer", Text: "_MP_", Align: 16},
		{Name: "acpi-rsdp", Text: "RSD PTR ", Align: 16},
		{Name: "intel-bios-id", Text: "$IBIOSI$"},
	}}
}

// Parse decodes a YAML catalog and validates every entry.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse signature catalog")
	}
	if len(c.Signatures) == 0 {
		return nil, errors.New("signature catalog is empty")
	}
	for i, s := range c.Signatures {
		if s.Name == "" {
			return nil, errors.Errorf("signature %d has no name", i)
		}
		if s.Align < 0 {
			return nil, errors.Errorf("signature %q has negative align", s.Name)
		}
		if _, err := s.Pattern(); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read signature catalog")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal signature catalog")
	}
	return out, nil
}
