package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/domain"
)

func TestExecute_RunsStagesInOrder(t *testing.T) {
	var calls []string

	op := Operation[int, int, string]{
		Name: "double",
		Validate: func(_ context.Context, in int) error {
			calls = append(calls, "validate")
			return nil
		},
		Perform: func(_ context.Context, in int) (int, error) {
			calls = append(calls, "perform")
			return in * 2, nil
		},
		Respond: func(_ context.Context, _ int, performed int) (string, error) {
			calls = append(calls, "respond")
			if performed == 42 {
				return "forty-two", nil
			}

			return "other", nil
		},
	}

	got, err := Execute(quietContext(), op, 21)
	require.NoError(t, err)

	assert.Equal(t, "forty-two", got)
	assert.Equal(t, []string{"validate", "perform", "respond"}, calls)
}

func TestExecute_StopsAtFailedStage(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		op       Operation[string, string, string]
		wantStep Step
	}{
		{
			name: "validate",
			op: Operation[string, string, string]{
				Validate: func(context.Context, string) error { return domain.NewValidationError("in", "bad") },
				Perform: func(context.Context, string) (string, error) {
					t.Fatal("perform must not run")
					return "", nil
				},
			},
			wantStep: StepValidate,
		},
		{
			name: "perform",
			op: Operation[string, string, string]{
				Perform: func(context.Context, string) (string, error) { return "", boom },
				Respond: func(context.Context, string, string) (string, error) {
					t.Fatal("respond must not run")
					return "", nil
				},
			},
			wantStep: StepPerform,
		},
		{
			name: "respond",
			op: Operation[string, string, string]{
				Respond: func(context.Context, string, string) (string, error) { return "", boom },
			},
			wantStep: StepRespond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Execute(quietContext(), tt.op, "in")
			require.Error(t, err)
			assert.Empty(t, got)

			step, ok := FailedStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

func TestStepError_Unwraps(t *testing.T) {
	err := error(&StepError{Step: StepPerform, Cause: domain.NewUnavailableError("inbox", "down")})

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, "perform: inbox unavailable: down", err.Error())

	_, ok := FailedStep(errors.New("plain"))
	assert.False(t, ok)
}

func TestExecute_NilStagesAreSkipped(t *testing.T) {
	got, err := Execute(context.Background(), Operation[int, int, int]{Name: "noop"}, 1)
	require.NoError(t, err)
	assert.Zero(t, got)
}
