package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should name the object and id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehicle", "V042")

		assert.Equal(t, "object not found: vehicle V042", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should format non string ids", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)

		assert.Equal(t, "object not found: order 456", err.Error())
	})

	t.Run("should append the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("article", "A1", cause)

		assert.Equal(t, "object not found: article A1 (cause: connection reset)", err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestValueErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("orientation"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: orientation",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("date", errors.New("day 31")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: date (cause: day 31)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("vehicle code"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: vehicle code",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty list")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items (cause: empty list)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("tolerance", -1, 0, 100),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is out of range: tolerance is -1, min 0, max 100",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("width", 0.0, 0, "+Inf", errors.New("zero")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is out of range: width is 0, min 0, max +Inf (cause: zero)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			assert.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestErrors_SurviveWrappingAndJoining(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("article code"),
		errs.NewValueIsOutOfRangeError("units", -2.0, 0, 10),
	)
	wrapped := fmt.Errorf("order line 3: %w", joined)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, wrapped, &rangeErr)
	assert.Equal(t, "units", rangeErr.ParamName)
}

func TestErrors_KeepMessagesOnOneLine(t *testing.T) {
	err := errs.NewObjectNotFoundError("vehicle", "V1\nV2\r\nV3")

	assert.Equal(t, "object not found: vehicle V1 V2 V3", err.Error())
}
