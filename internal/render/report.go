package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ytget/number-converter/internal/convert"
	"github.com/ytget/number-converter/internal/model"
)

// Layout of the text report
const (
	DigitWidth    = 5
	BaseNameWidth = 15
	LabelWidth    = 5
	ResultWidth   = 5
	RuleLine      = "----------------"
	MatrixArrow   = "  -->  "
	DecimalArrow  = "  --->  "
)

// Reporter writes exercises as text or JSON
type Reporter struct {
	loc *Localization
}

// NewReporter creates a reporter using the given localization (English when nil)
func NewReporter(loc *Localization) *Reporter {
	if loc == nil {
		loc = NewLocalization()
	}
	return &Reporter{loc: loc}
}

// Localization returns the reporter's localization
func (r *Reporter) Localization() *Localization {
	return r.loc
}

// WriteExercise writes a text report for any exercise
func (r *Reporter) WriteExercise(w io.Writer, ex *model.Exercise) error {
	if ex.Status == model.ExerciseStatusError {
		_, err := fmt.Fprintf(w, "%s: %s\n", r.loc.GetText(KeyConversionFailed), ex.LastError)
		return err
	}

	switch ex.Kind {
	case model.KindMatrix:
		return r.WriteMatrix(w, ex.Matrix, ex.Results, ex.Base)
	case model.KindDecimal:
		if ex.Bases == nil {
			return fmt.Errorf("exercise %s has no result", ex.ID)
		}
		return r.WriteDecimal(w, *ex.Bases)
	default:
		return fmt.Errorf("unknown exercise kind: %q", ex.Kind)
	}
}

// WriteMatrix writes every matrix row followed by its decimal value:
//
//	    1    0    1    1         Binary  -->  Decimal:    11
func (r *Reporter) WriteMatrix(w io.Writer, matrix [][]int, results []int, base model.Base) error {
	if len(matrix) != len(results) {
		return fmt.Errorf("matrix has %d rows but %d results", len(matrix), len(results))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.loc.GetText(KeyMatrixHeading))
	b.WriteString("\n")

	baseName := r.loc.BaseName(base)
	decimalName := r.loc.GetText(KeyDecimal)
	for i, row := range matrix {
		for _, digit := range row {
			s, err := formatDigit(digit, base)
			if err != nil {
				return err
			}
			b.WriteString(fmt.Sprintf("%*s", DigitWidth, s))
		}
		b.WriteString(fmt.Sprintf("%*s%s%*s: %*d\n",
			BaseNameWidth, baseName, MatrixArrow, LabelWidth, decimalName, ResultWidth, results[i]))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatDigit prints a digit as an uppercase hex character up to base 16 and
// as its decimal value in larger bases, where one hex character is not enough.
func formatDigit(digit int, base model.Base) (string, error) {
	if base.Radix() > model.Hexadecimal.Radix() {
		return strconv.Itoa(digit), nil
	}
	return convert.FormatDigits(digit, model.Hexadecimal.Radix())
}

// WriteDecimal writes the binary/octal/hexadecimal blocks of a decimal value
func (r *Reporter) WriteDecimal(w io.Writer, bases model.Bases) error {
	var b strings.Builder
	b.WriteString(r.loc.GetText(KeyDecimalHeading))
	b.WriteString("\n")

	blocks := []struct {
		label string
		value string
	}{
		{r.loc.GetText(KeyBinary), bases.BinaryDigits()},
		{r.loc.GetText(KeyOctal), bases.OctalDigits()},
		{r.loc.GetText(KeyHexaShort), bases.HexDigits()},
	}
	for _, block := range blocks {
		b.WriteString(RuleLine + "\n")
		b.WriteString(block.label + DecimalArrow + block.value + "\n")
		b.WriteString(RuleLine + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBaseTable writes the base-name lookup table
func (r *Reporter) WriteBaseTable(w io.Writer) error {
	for _, base := range append(model.PositionalBases(), model.Decimal) {
		if _, err := fmt.Fprintf(w, "%3d  %-*s  %s\n", base.Radix(), BaseNameWidth, base.Name(), r.loc.BaseName(base)); err != nil {
			return err
		}
	}
	return nil
}

// ErrorMessage returns the user-facing message for a conversion error
func (r *Reporter) ErrorMessage(err error) string {
	var numErr *strconv.NumError
	switch {
	case errors.Is(err, convert.ErrOutOfRange):
		return r.loc.GetText(KeyOutOfRange)
	case errors.As(err, &numErr):
		if numErr.Num == "" {
			return r.loc.GetText(KeyEmptyInput)
		}
		return r.loc.GetText(KeyInvalidInteger)
	default:
		return fmt.Sprintf("%s: %v", r.loc.GetText(KeyConversionFailed), err)
	}
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
