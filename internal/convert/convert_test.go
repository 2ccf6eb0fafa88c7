package convert

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/number-converter/internal/model"
)

func TestPositionalToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		base     int
		expected []int
	}{
		{"binary 101", [][]int{{1, 0, 1}}, 2, []int{5}},
		{"binary matrix", [][]int{{1, 1, 1, 1}, {0, 0, 0, 0}, {1, 0, 0, 0}}, 2, []int{15, 0, 8}},
		{"octal", [][]int{{7, 7}, {1, 0, 0}}, 8, []int{63, 64}},
		{"hexadecimal", [][]int{{15, 15, 15, 15}, {1, 10}}, 16, []int{65535, 26}},
		{"ragged rows", [][]int{{1}, {1, 0}, {1, 0, 0}}, 10, []int{1, 10, 100}},
		{"empty row", [][]int{{}}, 2, []int{0}},
		{"leading zeros", [][]int{{0, 0, 1}}, 3, []int{1}},
		{"no rows", [][]int{}, 2, []int{}},
		{"large base", [][]int{{1, 99}}, 100, []int{199}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PositionalToDecimal(tt.rows, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPositionalToDecimal_MatchesPowerSum(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		base := 2 + r.IntN(15)
		row := make([]int, r.IntN(8))
		for j := range row {
			row[j] = r.IntN(base)
		}

		expected := 0
		for j, d := range row {
			expected += d * int(math.Pow(float64(base), float64(len(row)-1-j)))
		}

		result, err := PositionalToDecimal([][]int{row}, base)
		require.NoError(t, err)
		assert.Equal(t, expected, result[0], "row %v in base %d", row, base)
	}
}

func TestPositionalToDecimal_InvalidBase(t *testing.T) {
	for _, base := range []int{1, 0, -2} {
		_, err := PositionalToDecimal([][]int{{0}}, base)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBase)
	}
}

func TestPositionalToDecimal_InvalidDigit(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		base int
		row  int
		col  int
	}{
		{"digit equals base", [][]int{{1, 2}}, 2, 0, 1},
		{"digit exceeds base", [][]int{{0}, {9, 0}}, 8, 1, 0},
		{"negative digit", [][]int{{1, -1}}, 16, 0, 1},
		{"hex 16", [][]int{{16}}, 16, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PositionalToDecimal(tt.rows, tt.base)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidDigit)

			var digitErr *DigitError
			require.True(t, errors.As(err, &digitErr))
			assert.Equal(t, tt.row, digitErr.Row)
			assert.Equal(t, tt.col, digitErr.Col)
			assert.Equal(t, tt.base, digitErr.Base)
		})
	}
}

func TestDecimalToBases(t *testing.T) {
	tests := []struct {
		value  int
		binary int
		octal  int
		hex    rune
	}{
		{1, 1, 1, '1'},
		{5, 101, 5, '5'},
		{8, 1000, 10, '8'},
		{10, 1010, 12, 'A'},
		{11, 1011, 13, 'B'},
		{15, 1111, 17, 'F'},
	}

	for _, tt := range tests {
		result, err := DecimalToBases(tt.value)
		require.NoError(t, err)
		assert.Equal(t, model.Bases{Value: tt.value, Binary: tt.binary, Octal: tt.octal, Hex: tt.hex}, result)
	}
}

func TestDecimalToBases_FullDomain(t *testing.T) {
	for v := MinDecimal; v <= MaxDecimal; v++ {
		result, err := DecimalToBases(v)
		require.NoError(t, err)

		bin, err := ParseDigits(result.BinaryDigits(), 2)
		require.NoError(t, err)
		oct, err := ParseDigits(result.OctalDigits(), 8)
		require.NoError(t, err)
		hex, err := ParseDigits(result.HexDigits(), 16)
		require.NoError(t, err)

		b, err := PositionalToDecimal([][]int{bin}, 2)
		require.NoError(t, err)
		o, err := PositionalToDecimal([][]int{oct}, 8)
		require.NoError(t, err)
		h, err := PositionalToDecimal([][]int{hex}, 16)
		require.NoError(t, err)
		assert.Equal(t, []int{v, v, v}, []int{b[0], o[0], h[0]})
	}
}

func TestDecimalToBases_OutOfRange(t *testing.T) {
	for _, value := range []int{0, 16, -1, 255, math.MaxInt} {
		_, err := DecimalToBases(value)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, value, rangeErr.Value)
		assert.Equal(t, MinDecimal, rangeErr.Min)
		assert.Equal(t, MaxDecimal, rangeErr.Max)
	}
}

func TestConversionsAreIdempotent(t *testing.T) {
	rows := [][]int{{1, 0, 1}, {7, 3}}

	first, err := PositionalToDecimal(rows, 8)
	require.NoError(t, err)
	second, err := PositionalToDecimal(rows, 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, [][]int{{1, 0, 1}, {7, 3}}, rows, "input must not be modified")

	a, errA := DecimalToBases(12)
	b, errB := DecimalToBases(12)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestFormatDigits(t *testing.T) {
	tests := []struct {
		value    int
		base     int
		expected string
	}{
		{0, 2, "0"},
		{5, 2, "101"},
		{255, 16, "FF"},
		{64, 8, "100"},
		{35, 16, "23"},
	}

	for _, tt := range tests {
		result, err := FormatDigits(tt.value, tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result)
	}

	_, err := FormatDigits(5, 1)
	assert.ErrorIs(t, err, ErrInvalidBase)
	_, err = FormatDigits(5, 17)
	assert.ErrorIs(t, err, ErrInvalidBase)
	_, err = FormatDigits(-5, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		input    string
		base     int
		expected []int
	}{
		{"101", 2, []int{1, 0, 1}},
		{"1a3", 16, []int{1, 10, 3}},
		{"1A3", 16, []int{1, 10, 3}},
		{"1,10,3", 16, []int{1, 10, 3}},
		{" 7, 0 ", 8, []int{7, 0}},
		{"1010_0101", 2, []int{1, 0, 1, 0, 0, 1, 0, 1}},
		{"", 2, []int{}},
		{"1,30,0", 60, []int{1, 30, 0}},
	}

	for _, tt := range tests {
		result, err := ParseDigits(tt.input, tt.base)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, result, tt.input)
	}
}

func TestParseDigits_Invalid(t *testing.T) {
	tests := []struct {
		input string
		base  int
	}{
		{"102", 2},
		{"8", 8},
		{"G", 16},
		{"1,x", 10},
		{"1,16", 16},
		{"-1,0", 16},
	}

	for _, tt := range tests {
		_, err := ParseDigits(tt.input, tt.base)
		assert.ErrorIs(t, err, ErrInvalidDigit, tt.input)
	}

	_, err := ParseDigits("1", 1)
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestValidateBase(t *testing.T) {
	assert.NoError(t, ValidateBase(2))
	assert.NoError(t, ValidateBase(1000))
	assert.ErrorIs(t, ValidateBase(1), ErrInvalidBase)
}
