package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndVerify(t *testing.T) {
	m := NewSessionManager("test_secret", 7*24*time.Hour)

	token, exp, err := m.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestSessionManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret_a", time.Hour)
	verifier := NewSessionManager("secret_b", time.Hour)

	token, _, err := issuer.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_RejectsExpired(t *testing.T) {
	m := NewSessionManager("test_secret", -time.Minute)

	token, _, err := m.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_RejectsGarbage(t *testing.T) {
	m := NewSessionManager("test_secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
