package websocket

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockUserLookup is a test double for UserLookup
type mockUserLookup struct {
	exists bool
	err    error
}

func (m *mockUserLookup) UserExists(ctx context.Context, userID string) (bool, error) {
	return m.exists, m.err
}

func TestUserLookup_Interface(t *testing.T) {
	var _ UserLookup = (*mockUserLookup)(nil)
}

func TestValidatorErrors(t *testing.T) {
	assert.Equal(t, "invalid token", ErrInvalidToken.Error())
	assert.Equal(t, "unknown user", ErrUnknownUser.Error())
}

func TestCustomClaims_Validate(t *testing.T) {
	claims := &CustomClaims{}
	err := claims.Validate(context.Background())
	assert.NoError(t, err, "CustomClaims.Validate should return nil")
}

func TestNewAuth0JWTValidator_Success(t *testing.T) {
	lookup := &mockUserLookup{exists: true}

	validator, err := NewAuth0JWTValidator("test.auth0.com", "https://api.cointrack.app", lookup)
	assert.NoError(t, err)
	assert.NotNil(t, validator)
	assert.NotNil(t, validator.validator)
	assert.Equal(t, lookup, validator.userLookup)
}

func TestNewAuth0JWTValidator_NilLookup(t *testing.T) {
	validator, err := NewAuth0JWTValidator("test.auth0.com", "https://api.cointrack.app", nil)
	assert.NoError(t, err)
	assert.Nil(t, validator.userLookup)
}

func TestAuth0JWTValidator_ValidateToken_InvalidJWT(t *testing.T) {
	lookup := &mockUserLookup{exists: true}

	validator, err := NewAuth0JWTValidator("test.auth0.com", "https://api.cointrack.app", lookup)
	assert.NoError(t, err)

	userID, err := validator.ValidateToken(context.Background(), "invalid-token")
	assert.Error(t, err)
	assert.Empty(t, userID)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
