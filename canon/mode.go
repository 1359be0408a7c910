package canon

import (
	"errors"
	"fmt"
	"strings"
)

type Mode int

const (
	ModeFull Mode = iota
	ModeOrdered
	ModeExact
)

var ErrBadMode = errors.New("bad mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"f":       ModeFull,
		"full":    ModeFull,
		"o":       ModeOrdered,
		"ordered": ModeOrdered,
		"e":       ModeExact,
		"exact":   ModeExact,
	}[strings.ToLower(v)]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

// ModeOf is the lenient form of ParseMode; unrecognized values fall
// back to ModeFull.
func ModeOf(v string) Mode {
	m, err := ParseMode(v)
	if err != nil {
		return ModeFull
	}
	return m
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeFull:
		return []byte("full"), nil
	case ModeOrdered:
		return []byte("ordered"), nil
	case ModeExact:
		return []byte("exact"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
