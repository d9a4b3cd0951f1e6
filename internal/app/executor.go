package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

// Operations with side effects run as Validate → Perform → Respond.
// Nothing leaves the process until Validate passes, and the caller only
// sees a result once Perform has succeeded.

// Step names a stage of an operation.
type Step string

const (
	StepValidate Step = "validate"
	StepPerform  Step = "perform"
	StepRespond  Step = "respond"
)

// StepError records the stage an operation failed in. It unwraps to the
// cause, so domain sentinels still match with errors.Is.
type StepError struct {
	Step  Step
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Operation bundles the stages of one use case. Nil stages are skipped.
type Operation[I, P, O any] struct {
	// Name identifies the operation in logs.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Respond  func(ctx context.Context, input I, performed P) (O, error)
}

// Execute runs op against input, logging each failed stage.
func Execute[I, P, O any](ctx context.Context, op Operation[I, P, O], input I) (O, error) {
	var (
		zero      O
		performed P
	)

	logger := logging.FromContext(ctx).With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			logger.InfoContext(ctx, "operation rejected", slog.Any("error", err))
			return zero, &StepError{Step: StepValidate, Cause: err}
		}
	}

	if op.Perform != nil {
		var err error

		performed, err = op.Perform(ctx, input)
		if err != nil {
			logger.WarnContext(ctx, "operation failed",
				slog.Any("error", err),
				slog.Duration("duration", time.Since(start)),
			)

			return zero, &StepError{Step: StepPerform, Cause: err}
		}
	}

	var result O

	if op.Respond != nil {
		var err error

		result, err = op.Respond(ctx, input, performed)
		if err != nil {
			return zero, &StepError{Step: StepRespond, Cause: err}
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// FailedStep reports the stage err came from.
func FailedStep(err error) (Step, bool) {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step, true
	}

	return "", false
}
