// Package vectors loads decode-vector files: named hex inputs with the
// decoder they target and whether decoding is expected to fail.
package vectors

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindPacket      Kind = "packet"
	KindNegotiation Kind = "negotiation"
	KindMIDI1       Kind = "midi1"
)

var (
	ErrUnknownKind = errors.New("vectors: unknown kind")
	ErrInvalidHex  = errors.New("vectors: invalid hex")
)

// Vector is one decode input.
type Vector struct {
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Hex         string `yaml:"hex"`
	ExpectError bool   `yaml:"expect_error"`
}

type File struct {
	Vectors []Vector `yaml:"vectors"`
}

func Load(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vectors load failed (%s): %w", path, err)
	}
	defer f.Close()
	out, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("vectors parse failed (%s): %w", path, err)
	}
	return out, nil
}

func Decode(r io.Reader) ([]Vector, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	for i, v := range file.Vectors {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("vector[%d] %q invalid: %w", i, v.Name, err)
		}
	}
	return file.Vectors, nil
}

func (v Vector) validate() error {
	switch v.Kind {
	case KindPacket, KindNegotiation, KindMIDI1:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, v.Kind)
	}
	if strings.TrimSpace(v.Hex) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidHex)
	}
	return nil
}

// Bytes parses Hex as a byte string. Whitespace and "0x" prefixes are
// ignored: "90 3c 64" and "0x903c64" are equal.
func (v Vector) Bytes() ([]byte, error) {
	return ParseBytes(v.Hex)
}

// Words parses Hex as whitespace separated 32-bit words, most significant
// digit first: "40903c00 c8000000".
func (v Vector) Words() ([]uint32, error) {
	return ParseWords(v.Hex)
}

func ParseBytes(raw string) ([]byte, error) {
	var sb strings.Builder
	for _, field := range strings.Fields(raw) {
		sb.WriteString(trimPrefix(field))
	}
	out, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return out, nil
}

func ParseWords(raw string) ([]uint32, error) {
	fields := strings.Fields(raw)
	out := make([]uint32, 0, len(fields))
	for _, field := range fields {
		digits := strings.ReplaceAll(trimPrefix(field), "_", "")
		if len(digits) == 0 || len(digits) > 8 {
			return nil, fmt.Errorf("%w: word %q", ErrInvalidHex, field)
		}
		w, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: word %q", ErrInvalidHex, field)
		}
		out = append(out, uint32(w))
	}
	return out, nil
}

func trimPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}
