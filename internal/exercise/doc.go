package exercise

// Package exercise generates and solves conversion exercises: random digit
// matrices converted row by row to decimal, and decimal values converted to
// binary/octal/hexadecimal. Exercises are kept in memory and change
// notifications are delivered through an update callback.
