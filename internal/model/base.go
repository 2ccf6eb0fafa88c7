package model

// Base identifies a numbering system. Decimal is a sentinel: it is not used as
// a positional radix, it marks the decimal -> binary/octal/hexadecimal direction.
type Base int

const (
	Decimal     Base = 1
	Binary      Base = 2
	Octal       Base = 8
	Hexadecimal Base = 16
)

// Base display names
const (
	NameBinary      = "Binary"
	NameOctal       = "Octal"
	NameHexadecimal = "Hexadecimal"
	NameDecimal     = "Decimal"
)

// BaseName returns the display name for any integer base value.
// Unknown values map to "Decimal".
func BaseName(base int) string {
	switch Base(base) {
	case Binary:
		return NameBinary
	case Octal:
		return NameOctal
	case Hexadecimal:
		return NameHexadecimal
	default:
		return NameDecimal
	}
}

// Name returns the display name of the base
func (b Base) Name() string {
	return BaseName(int(b))
}

// String implements fmt.Stringer
func (b Base) String() string {
	return b.Name()
}

// Radix returns the base as a plain int
func (b Base) Radix() int {
	return int(b)
}

// IsPositional returns true for the bases a digit matrix can be written in
func (b Base) IsPositional() bool {
	return b == Binary || b == Octal || b == Hexadecimal
}

// PositionalBases returns the bases offered for matrix exercises, in menu order
func PositionalBases() []Base {
	return []Base{Binary, Octal, Hexadecimal}
}

// ParseBase accepts a base name ("binary", "oct", "hex", ...) or its radix ("2", "8", "16").
func ParseBase(s string) (Base, bool) {
	switch s {
	case "2", "b", "bin", "binary", "Binary":
		return Binary, true
	case "8", "o", "oct", "octal", "Octal":
		return Octal, true
	case "16", "h", "x", "hex", "hexadecimal", "Hexadecimal":
		return Hexadecimal, true
	case "1", "10", "d", "dec", "decimal", "Decimal":
		return Decimal, true
	}
	return 0, false
}
