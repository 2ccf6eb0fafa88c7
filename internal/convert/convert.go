package convert

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ytget/number-converter/internal/model"
)

// Domain of DecimalToBases. The hexadecimal result is a single character, so
// anything above 15 cannot be represented.
const (
	MinDecimal = 1
	MaxDecimal = 15
)

// Supported radix range for FormatDigits
const (
	MinRadix = 2
	MaxRadix = 16
)

const digitChars = "0123456789ABCDEF"

// ValidateBase checks that base can be used as a positional radix
func ValidateBase(base int) error {
	if base < MinRadix {
		return fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidBase, base, MinRadix)
	}
	return nil
}

// PositionalToDecimal converts every digit row to its decimal value.
// Digits are most significant first; rows may differ in length and an empty
// row is 0. Overflow is not checked.
func PositionalToDecimal(rows [][]int, base int) ([]int, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}

	results := make([]int, len(rows))
	for r, row := range rows {
		total := 0
		for c, digit := range row {
			if digit < 0 || digit >= base {
				return nil, &DigitError{Row: r, Col: c, Digit: digit, Base: base}
			}
			// Horner's rule: same value as sum(digit[i] * base^(len-1-i))
			total = total*base + digit
		}
		results[r] = total
	}
	return results, nil
}

// DecimalToBases converts a value in [MinDecimal, MaxDecimal] to its binary,
// octal and hexadecimal forms.
func DecimalToBases(value int) (model.Bases, error) {
	if value < MinDecimal || value > MaxDecimal {
		return model.Bases{}, &RangeError{Value: value, Min: MinDecimal, Max: MaxDecimal}
	}

	binary, err := strconv.Atoi(strconv.FormatInt(int64(value), 2))
	if err != nil {
		return model.Bases{}, fmt.Errorf("failed to encode binary digits: %w", err)
	}
	octal, err := strconv.Atoi(strconv.FormatInt(int64(value), 8))
	if err != nil {
		return model.Bases{}, fmt.Errorf("failed to encode octal digits: %w", err)
	}
	hex := strconv.FormatInt(int64(value), 16)

	return model.Bases{
		Value:  value,
		Binary: binary,
		Octal:  octal,
		Hex:    unicode.ToUpper(rune(hex[0])),
	}, nil
}

// FormatDigits returns the uppercase digit string of a non-negative value
func FormatDigits(value, base int) (string, error) {
	if err := validateRadix(base); err != nil {
		return "", err
	}
	if value < 0 {
		return "", fmt.Errorf("%w: negative value %d", ErrOutOfRange, value)
	}
	return strings.ToUpper(strconv.FormatInt(int64(value), base)), nil
}

// ParseDigits turns a digit string into a row. Two forms are accepted:
// compact ("1A3", case-insensitive, digits up to F) and comma separated
// values ("1,10,3") which work for any base. Underscores and spaces in the
// compact form are ignored.
func ParseDigits(s string, base int) ([]int, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		row := make([]int, 0, len(parts))
		for c, part := range parts {
			digit, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("%w: %q at column %d", ErrInvalidDigit, part, c)
			}
			if digit < 0 || digit >= base {
				return nil, &DigitError{Col: c, Digit: digit, Base: base}
			}
			row = append(row, digit)
		}
		return row, nil
	}

	row := make([]int, 0, len(s))
	for _, ch := range s {
		if ch == '_' || ch == ' ' {
			continue
		}
		digit := strings.IndexRune(digitChars, unicode.ToUpper(ch))
		if digit < 0 {
			return nil, fmt.Errorf("%w: %q at column %d", ErrInvalidDigit, ch, len(row))
		}
		if digit >= base {
			return nil, &DigitError{Col: len(row), Digit: digit, Base: base}
		}
		row = append(row, digit)
	}
	return row, nil
}

func validateRadix(base int) error {
	if err := ValidateBase(base); err != nil {
		return err
	}
	if base > MaxRadix {
		return fmt.Errorf("%w: %d (must be at most %d)", ErrInvalidBase, base, MaxRadix)
	}
	return nil
}
