package telemetry

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The three failure classes the API layer maps to transport responses.
// Every storage error crossing the package boundary is classified into one
// of these (or returned as-is when it fits none).
var (
	ErrNotFound           = errors.New("not found")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrValidation         = errors.New("validation error")
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrIntegrityViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrIntegrityViolation, err)
	default:
		return err
	}
}
