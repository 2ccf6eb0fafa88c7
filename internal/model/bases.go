package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Bases holds the reverse conversion of a decimal value.
//
// Binary and Octal keep the legacy display encoding: the digit string re-read
// as a decimal integer (decimal 5 -> binary "101" -> 101). Hex is the single
// uppercase hexadecimal character; values above 15 are not representable.
// In JSON the hex digit is written as a one-character string.
type Bases struct {
	Value  int
	Binary int
	Octal  int
	Hex    rune
}

type basesJSON struct {
	Value  int    `json:"value"`
	Binary int    `json:"binary"`
	Octal  int    `json:"octal"`
	Hex    string `json:"hex"`
}

// MarshalJSON implements json.Marshaler
func (b Bases) MarshalJSON() ([]byte, error) {
	return json.Marshal(basesJSON{
		Value:  b.Value,
		Binary: b.Binary,
		Octal:  b.Octal,
		Hex:    b.HexDigits(),
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Bases) UnmarshalJSON(data []byte) error {
	var raw basesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var hex rune
	switch utf8.RuneCountInString(raw.Hex) {
	case 0:
	case 1:
		hex, _ = utf8.DecodeRuneInString(raw.Hex)
	default:
		return fmt.Errorf("hex must be a single character, got %q", raw.Hex)
	}

	*b = Bases{Value: raw.Value, Binary: raw.Binary, Octal: raw.Octal, Hex: hex}
	return nil
}

// BinaryDigits returns the binary digit string
func (b Bases) BinaryDigits() string {
	return strconv.Itoa(b.Binary)
}

// OctalDigits returns the octal digit string
func (b Bases) OctalDigits() string {
	return strconv.Itoa(b.Octal)
}

// HexDigits returns the hexadecimal digit as a string
func (b Bases) HexDigits() string {
	if b.Hex == 0 {
		return ""
	}
	return string(b.Hex)
}

// String returns a compact one-line form, e.g. "5 = 0b101 = 0o5 = 0x5"
func (b Bases) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.Value))
	sb.WriteString(" = 0b")
	sb.WriteString(b.BinaryDigits())
	sb.WriteString(" = 0o")
	sb.WriteString(b.OctalDigits())
	sb.WriteString(" = 0x")
	sb.WriteString(b.HexDigits())
	return sb.String()
}
