package signature

import (
	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"

	"github.com/coregx/basemem"
)

// Hit is one signature occurrence.
type Hit struct {
	Name   string
	Offset int
}

// Matcher finds every catalog signature in a buffer in one pass.
type Matcher struct {
	auto     *ahocorasick.Automaton
	sigs     []Signature
	patterns [][]byte
}

// NewMatcher builds an Aho-Corasick automaton over the catalog patterns.
func NewMatcher(c *Catalog) (*Matcher, error) {
	if c == nil || len(c.Signatures) == 0 {
		return nil, errors.New("no signatures to match")
	}
	m := &Matcher{sigs: c.Signatures}
	builder := ahocorasick.NewBuilder()
	for _, s := range c.Signatures {
		p, err := s.Pattern()
		if err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, p)
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build signature automaton")
	}
	m.auto = auto
	return m, nil
}

// FindAll returns every signature hit in data ordered by offset, then by
// catalog order. Overlapping hits are all reported.
//
// The automaton only proposes candidate offsets; each signature is then
// confirmed at that offset with CompareMem, so patterns sharing a prefix are
// all found.
func (m *Matcher) FindAll(data []byte) []Hit {
	return m.FindAllAt(data, 0)
}

// FindAllAt is FindAll for data that starts base bytes into a larger image.
// Alignment is checked against the image offset and hit offsets are
// reported relative to the image.
func (m *Matcher) FindAllAt(data []byte, base int) []Hit {
	var hits []Hit
	for at := 0; at < len(data); {
		match := m.auto.Find(data, at)
		if match == nil {
			break
		}
		start := match.Start
		rest := data[start:]
		for i, p := range m.patterns {
			if len(p) > len(rest) {
				continue
			}
			if basemem.CompareMem(rest[:len(p)], p) != 0 {
				continue
			}
			off := base + start
			if a := m.sigs[i].Align; a > 0 && off%a != 0 {
				continue
			}
			hits = append(hits, Hit{Name: m.sigs[i].Name, Offset: off})
		}
		at = start + 1
	}
	return hits
}

// Contains reports whether any signature occurs in data, ignoring alignment.
func (m *Matcher) Contains(data []byte) bool {
	return m.auto.IsMatch(data)
}
