package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	withoutCause := NotFound("client not found")
	assert.Equal(t, "client not found", withoutCause.Error())

	withCause := AuthenticationFailed("Email o contraseña incorrectos", stderrors.New("401"))
	assert.Equal(t, "Email o contraseña incorrectos: 401", withCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal("something failed", cause)

	assert.True(t, stderrors.Is(err, cause))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "authentication failed", err: AuthenticationFailed("bad creds", nil), want: ErrCodeAuthentication},
		{name: "session expired", err: SessionExpired(), want: ErrCodeSessionExpired},
		{name: "unauthorized", err: Unauthorized("wrong role"), want: ErrCodeUnauthorized},
		{name: "wrapped app error", err: fmt.Errorf("login: %w", SessionExpired()), want: ErrCodeSessionExpired},
		{name: "plain error defaults to internal", err: stderrors.New("boom"), want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	err := Unauthorized("wrong role")

	require.True(t, IsCode(err, ErrCodeUnauthorized))
	// Wrong role must never read as a missing session.
	assert.False(t, IsCode(err, ErrCodeSessionExpired))
	assert.False(t, IsCode(err, ErrCodeAuthentication))
}
