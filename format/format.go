package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	JSONFormat
	XMLFormat
	YAMLFormat
	CSVFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TextFormat,
		"text":  TextFormat,
		"exact": TextFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"x":     XMLFormat,
		"xml":   XMLFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"c":     CSVFormat,
		"csv":   CSVFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case JSONFormat:
		return []byte("json"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CSVFormat:
		return []byte("csv"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsRows() bool { return f == CSVFormat }

// IsTree reports whether documents of this format parse into node trees.
func (f Format) IsTree() bool {
	switch f {
	case JSONFormat, XMLFormat, YAMLFormat:
		return true
	}
	return false
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".txt"
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	case YAMLFormat:
		return ".yaml"
	case CSVFormat:
		return ".csv"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, XMLFormat, YAMLFormat, CSVFormat, TextFormat}
}

// ForPath guesses the format from a file name's extension, defaulting
// to TextFormat when the extension is unknown.
func ForPath(p string) Format {
	for _, f := range AllFormats() {
		if strings.HasSuffix(p, f.Suffix()) {
			return f
		}
	}
	if strings.HasSuffix(p, ".yml") {
		return YAMLFormat
	}
	return TextFormat
}
