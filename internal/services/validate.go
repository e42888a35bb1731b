package services

import (
	"fmt"
	"strings"

	"github.com/GregMSThompson/gatabank/internal/errs"
)

type number interface {
	~int | ~int64 | ~float64
}

func requireText(field string, v *string) error {
	if v == nil || strings.TrimSpace(*v) == "" {
		return errs.NewValidationError(field + " is required")
	}
	return nil
}

func nonNegative[T number](field string, v *T) error {
	if v != nil && *v < 0 {
		return errs.NewValidationError(field + " must not be negative")
	}
	return nil
}

func inRange[T number](field string, v *T, lo, hi T) error {
	if v != nil && (*v < lo || *v > hi) {
		return errs.NewValidationError(fmt.Sprintf("%s must be between %v and %v", field, lo, hi))
	}
	return nil
}

// ordered checks lo <= hi when both bounds are given.
func ordered[T number](loField, hiField string, lo, hi *T) error {
	if lo != nil && hi != nil && *lo > *hi {
		return errs.NewValidationError(loField + " must not exceed " + hiField)
	}
	return nil
}

// firstErr returns the first failed check.
func firstErr(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
