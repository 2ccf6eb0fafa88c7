package model

import (
	"time"
)

// Exercise represents a single conversion exercise
type Exercise struct {
	ID        string         `json:"id"`
	Kind      ExerciseKind   `json:"kind"`
	Base      Base           `json:"base"`
	Matrix    [][]int        `json:"matrix,omitempty"`  // digits, most significant first
	Results   []int          `json:"results,omitempty"` // one decimal per matrix row
	Value     int            `json:"value,omitempty"`   // decimal input for KindDecimal
	Bases     *Bases         `json:"bases,omitempty"`
	Status    ExerciseStatus `json:"status"`
	LastError string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	SolvedAt  time.Time      `json:"solved_at,omitzero"`
}

// Rows returns the number of matrix rows
func (e *Exercise) Rows() int {
	return len(e.Matrix)
}

// Cols returns the length of the longest matrix row
func (e *Exercise) Cols() int {
	cols := 0
	for _, row := range e.Matrix {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Fail marks the exercise as failed with the given error
func (e *Exercise) Fail(err error) {
	e.Status = ExerciseStatusError
	if err != nil {
		e.LastError = err.Error()
	}
	e.SolvedAt = time.Now()
}
