package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewUsageError("ARG_1000", "bad date range", nil),
			wantErr: NewUsageError("ARG_1000", "bad date range", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewFatalIOError("REG_9000", "cannot read registry", nil)),
			wantErr: NewFatalIOError("REG_9000", "cannot read registry", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")
			if tt.wantErr == nil {
				assert.Nil(t, gotErr)
				return
			}
			require.NotNil(t, gotErr)
			assert.Equal(t, tt.wantErr.Code, gotErr.Code)
			assert.Equal(t, tt.wantErr.Category, gotErr.Category)
			assert.Equal(t, tt.wantErr.ExitCode, gotErr.ExitCode)
		})
	}
}

func TestExitCodesPerCategory(t *testing.T) {
	assert.Equal(t, ExitUsage, NewUsageError("ARG_1000", "m", nil).ExitCode)
	assert.Equal(t, ExitFatal, NewFatalIOError("REG_9000", "m", nil).ExitCode)
	assert.Equal(t, ExitFatal, NewInternalError("SYS_9000", nil).ExitCode)
	assert.Equal(t, ExitFatal, NewInternalErrorUndefined(nil).ExitCode)
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewFatalIOError("REG_9000", "cannot read registry", cause)

	assert.Equal(t, "REG_9000: cannot read registry", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, err.IsUsageError())
	assert.True(t, NewUsageError("ARG_1000", "m", nil).IsUsageError())
}
