package model

// ExerciseStatus represents the status of a generated exercise
type ExerciseStatus string

const (
	// ExerciseStatusPending means the exercise is generated but not solved yet
	ExerciseStatusPending ExerciseStatus = "pending"

	// ExerciseStatusSolved means the conversion finished successfully
	ExerciseStatusSolved ExerciseStatus = "solved"

	// ExerciseStatusError means the conversion was rejected
	ExerciseStatusError ExerciseStatus = "error"
)

// String returns the string representation of ExerciseStatus
func (s ExerciseStatus) String() string {
	return string(s)
}

// IsFinished returns true if the exercise is solved or failed
func (s ExerciseStatus) IsFinished() bool {
	return s == ExerciseStatusSolved || s == ExerciseStatusError
}

// ExerciseKind tells which direction an exercise converts in
type ExerciseKind string

const (
	// KindMatrix converts each row of a digit matrix to decimal
	KindMatrix ExerciseKind = "matrix"

	// KindDecimal converts a decimal value to binary/octal/hexadecimal
	KindDecimal ExerciseKind = "decimal"
)
