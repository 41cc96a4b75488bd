package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
)

func newTestAuth(t *testing.T, limiter *LimiterStore) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(Credentials{Cost: bcrypt.MinCost}, limiter)
	require.NoError(t, err)
	return a
}

func TestLogin_DemoCredentials(t *testing.T) {
	a := newTestAuth(t, nil)
	assert.Equal(t, "admin", a.Username())
	assert.NoError(t, a.Login("admin", "password"))
	assert.ErrorIs(t, a.Login("admin", "Password"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Login("root", "password"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Login("", ""), ErrInvalidCredentials)
}

func TestLogin_PasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	a, err := NewAuthenticator(Credentials{Username: "ops", Password: "ignored", PasswordHash: string(hash)}, nil)
	require.NoError(t, err)
	assert.NoError(t, a.Login("ops", "s3cret"))
	assert.ErrorIs(t, a.Login("ops", "ignored"), ErrInvalidCredentials)
}

func TestNewAuthenticator_BadHash(t *testing.T) {
	_, err := NewAuthenticator(Credentials{PasswordHash: "not-a-hash"}, nil)
	assert.Error(t, err)
}

func TestLogin_Throttled(t *testing.T) {
	limiter := NewLimiterStore(1, 3, 0)
	defer limiter.Stop()
	a := newTestAuth(t, limiter)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, a.Login("admin", "wrong"), ErrInvalidCredentials)
	}
	// Budget exhausted: even the right password is refused.
	assert.ErrorIs(t, a.Login("admin", "password"), ErrTooManyAttempts)

	// Other usernames have their own bucket.
	assert.ErrorIs(t, a.Login("guest", "password"), ErrInvalidCredentials)
}

func TestLimiterStore_Cleanup(t *testing.T) {
	s := NewLimiterStore(60, 1, 0)
	defer s.Stop()

	now := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	assert.True(t, s.Allow("a"))
	assert.False(t, s.Allow("a"))
	assert.True(t, s.Allow("b"))
	assert.Equal(t, 2, s.Len())

	now = now.Add(idleAfter + time.Second)
	s.Allow("b")
	s.Cleanup()
	assert.Equal(t, 1, s.Len())

	s.Stop()
	s.Stop()
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	tok, exp, err := issuer.Issue("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewTokenIssuer("one", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("two", time.Hour)
	require.NoError(t, err)

	tok, _, err := other.Issue("admin")
	require.NoError(t, err)
	_, err = issuer.Verify(tok)
	assert.Error(t, err, "wrong secret")

	_, err = issuer.Verify("garbage")
	assert.Error(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	issuer.now = func() time.Time { return issued }
	expired, _, err := issuer.Issue("admin")
	require.NoError(t, err)
	issuer.now = time.Now
	_, err = issuer.Verify(expired)
	assert.Error(t, err, "expired")

	_, err = NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestFeed(t *testing.T) {
	f := Feed()
	assert.Len(t, f.Stats, 3)
	assert.Len(t, f.Alerts, 3)
	assert.Len(t, f.Activity, 5)
	assert.Len(t, f.DataSources, 5)
	assert.Len(t, f.Uploads, 4)
	assert.Len(t, f.Reports, 4)
	assert.Contains(t, f.Alerts[0].Detail, "34 mentions")

	active := 0
	for _, d := range f.DataSources {
		if d.Active() {
			active++
		}
	}
	assert.Equal(t, 4, active)
}

func TestAnalyze_UsesPortalLexicon(t *testing.T) {
	got := Analyze("I feel worried and anxious but there is hope")
	assert.Equal(t, sentiment.Neutral, got.Label)
	assert.Equal(t, 45, got.Score)
	assert.Equal(t, []string{"worried", "anxious", "hope"}, got.Keywords)
}

func TestAnalyze_StressedText(t *testing.T) {
	got := Analyze("Bad week: sad, stressed, worried and full of fear.")
	assert.Equal(t, sentiment.Negative, got.Label)
	assert.Equal(t, 25, got.Score)
}
