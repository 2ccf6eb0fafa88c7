package exercise

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/number-converter/internal/config"
	"github.com/ytget/number-converter/internal/convert"
	"github.com/ytget/number-converter/internal/logging"
	"github.com/ytget/number-converter/internal/model"
)

var _ Generator = (*Service)(nil)

// ExerciseIDPrefix is prepended to every exercise ID
const ExerciseIDPrefix = "ex-"

var (
	// ErrUnsupportedBase is returned when a matrix is requested in a non-positional base
	ErrUnsupportedBase = errors.New("unsupported base")

	// ErrExerciseNotFound is returned for unknown exercise IDs
	ErrExerciseNotFound = errors.New("exercise not found")
)

// Service handles exercise generation
type Service struct {
	exercises      map[string]*model.Exercise
	exercisesMutex sync.RWMutex
	rows           int
	cols           int
	rng            *rand.Rand
	rngMutex       sync.Mutex
	logger         *slog.Logger
	onUpdate       func(*model.Exercise) // callback for presentation updates
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger used by the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed makes digit generation deterministic
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source directly
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewService creates a new exercise service with the default 3x4 matrix
func NewService(opts ...Option) *Service {
	s := &Service{
		exercises: make(map[string]*model.Exercise),
		rows:      config.DefaultMatrixRows,
		cols:      config.DefaultMatrixCols,
		logger:    logging.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// NewServiceFromConfig creates a service sized and seeded from cfg
func NewServiceFromConfig(cfg *config.Config, logger *slog.Logger) *Service {
	opts := []Option{WithLogger(logger)}
	if cfg.Random.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Random.Seed))
	}
	s := NewService(opts...)
	s.SetMatrixSize(cfg.Matrix.Rows, cfg.Matrix.Cols)
	return s
}

// SetUpdateCallback sets the callback function for exercise updates
func (s *Service) SetUpdateCallback(callback func(*model.Exercise)) {
	s.exercisesMutex.Lock()
	defer s.exercisesMutex.Unlock()
	s.onUpdate = callback
}

// SetMatrixSize sets the dimensions of generated matrices
func (s *Service) SetMatrixSize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if rows > config.MaxMatrixRows {
		rows = config.MaxMatrixRows
	}
	if cols < 1 {
		cols = 1
	}
	if cols > config.MaxMatrixCols {
		cols = config.MaxMatrixCols
	}

	s.exercisesMutex.Lock()
	s.rows = rows
	s.cols = cols
	s.exercisesMutex.Unlock()
}

// MatrixSize returns the current matrix dimensions
func (s *Service) MatrixSize() (rows, cols int) {
	s.exercisesMutex.RLock()
	defer s.exercisesMutex.RUnlock()
	return s.rows, s.cols
}

// NewMatrixExercise fills a matrix with random digits below base and
// converts every row to decimal.
func (s *Service) NewMatrixExercise(base model.Base) (*model.Exercise, error) {
	if !base.IsPositional() {
		return nil, fmt.Errorf("%w for matrix exercise: %s (%d)", ErrUnsupportedBase, base, base.Radix())
	}

	rows, cols := s.MatrixSize()
	exercise := &model.Exercise{
		ID:        generateExerciseID(),
		Kind:      model.KindMatrix,
		Base:      base,
		Matrix:    s.fillWithRandomDigits(rows, cols, base.Radix()),
		Status:    model.ExerciseStatusPending,
		CreatedAt: time.Now(),
	}
	s.store(exercise)

	results, err := convert.PositionalToDecimal(exercise.Matrix, base.Radix())
	if err != nil {
		s.fail(exercise, err)
		return exercise, fmt.Errorf("failed to solve matrix exercise: %w", err)
	}

	s.exercisesMutex.Lock()
	exercise.Results = results
	exercise.Status = model.ExerciseStatusSolved
	exercise.SolvedAt = time.Now()
	s.exercisesMutex.Unlock()

	s.logger.Debug("matrix exercise solved",
		"id", exercise.ID, "base", base.Name(), "rows", rows, "cols", cols)
	s.notifyUpdate(exercise)
	return exercise, nil
}

// NewDecimalExercise converts value to binary/octal/hexadecimal. Out of range
// values still produce a stored exercise in error status.
func (s *Service) NewDecimalExercise(value int) (*model.Exercise, error) {
	exercise := &model.Exercise{
		ID:        generateExerciseID(),
		Kind:      model.KindDecimal,
		Base:      model.Decimal,
		Value:     value,
		Status:    model.ExerciseStatusPending,
		CreatedAt: time.Now(),
	}
	s.store(exercise)

	bases, err := convert.DecimalToBases(value)
	if err != nil {
		s.fail(exercise, err)
		return exercise, err
	}

	s.exercisesMutex.Lock()
	exercise.Bases = &bases
	exercise.Status = model.ExerciseStatusSolved
	exercise.SolvedAt = time.Now()
	s.exercisesMutex.Unlock()

	s.logger.Debug("decimal exercise solved", "id", exercise.ID, "value", value)
	s.notifyUpdate(exercise)
	return exercise, nil
}

// GetExercise returns an exercise by ID
func (s *Service) GetExercise(id string) (*model.Exercise, bool) {
	s.exercisesMutex.RLock()
	defer s.exercisesMutex.RUnlock()
	exercise, exists := s.exercises[id]
	return exercise, exists
}

// GetAllExercises returns all exercises ordered by creation time
func (s *Service) GetAllExercises() []*model.Exercise {
	s.exercisesMutex.RLock()
	exercises := make([]*model.Exercise, 0, len(s.exercises))
	for _, exercise := range s.exercises {
		exercises = append(exercises, exercise)
	}
	s.exercisesMutex.RUnlock()

	sort.SliceStable(exercises, func(i, j int) bool {
		if exercises[i].CreatedAt.Equal(exercises[j].CreatedAt) {
			return exercises[i].ID < exercises[j].ID
		}
		return exercises[i].CreatedAt.Before(exercises[j].CreatedAt)
	})
	return exercises
}

// RemoveExercise removes an exercise by ID
func (s *Service) RemoveExercise(id string) error {
	s.exercisesMutex.Lock()
	defer s.exercisesMutex.Unlock()

	if _, exists := s.exercises[id]; !exists {
		return fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	delete(s.exercises, id)
	return nil
}

// fillWithRandomDigits returns a rows x cols matrix of digits in [0, base)
func (s *Service) fillWithRandomDigits(rows, cols, base int) [][]int {
	s.rngMutex.Lock()
	defer s.rngMutex.Unlock()

	matrix := make([][]int, rows)
	for r := range matrix {
		matrix[r] = make([]int, cols)
		for c := range matrix[r] {
			matrix[r][c] = s.rng.IntN(base)
		}
	}
	return matrix
}

func (s *Service) store(exercise *model.Exercise) {
	s.exercisesMutex.Lock()
	s.exercises[exercise.ID] = exercise
	s.exercisesMutex.Unlock()
}

func (s *Service) fail(exercise *model.Exercise, err error) {
	s.exercisesMutex.Lock()
	exercise.Fail(err)
	s.exercisesMutex.Unlock()

	s.logger.Debug("exercise failed", "id", exercise.ID, "kind", exercise.Kind, "error", err)
	s.notifyUpdate(exercise)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(exercise *model.Exercise) {
	s.exercisesMutex.RLock()
	callback := s.onUpdate
	s.exercisesMutex.RUnlock()

	if callback != nil {
		callback(exercise)
	}
}

// generateExerciseID generates a unique, time ordered ID using UUID v7
func generateExerciseID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ExerciseIDPrefix+"%d", time.Now().UnixNano())
	}
	return ExerciseIDPrefix + id.String()
}
