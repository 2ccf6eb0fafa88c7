package convert

// Package convert implements numeric base conversion: digit rows in a
// positional base to decimal, and small decimal values back to
// binary/octal/hexadecimal. All functions are pure and report invalid input
// as errors instead of producing truncated results.
