package exercise

import (
	"github.com/ytget/number-converter/internal/model"
)

// Generator defines the interface for the exercise service.
type Generator interface {
	SetUpdateCallback(func(*model.Exercise))
	NewMatrixExercise(base model.Base) (*model.Exercise, error)
	NewDecimalExercise(value int) (*model.Exercise, error)
	GetExercise(id string) (*model.Exercise, bool)
	GetAllExercises() []*model.Exercise
	RemoveExercise(id string) error

	// SetMatrixSize sets the dimensions of generated matrices
	SetMatrixSize(rows, cols int)
}
