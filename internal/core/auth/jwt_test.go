package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "berg-stat-test", TTL: ttl}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := newTestJWTer(time.Hour)

	token, err := j.Issue("user-1", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UID)
	assert.True(t, claims.IsAdmin)

	token, err = j.Issue("user-2", false)
	assert.NoError(t, err)
	claims, err = j.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-2", claims.UID)
	assert.False(t, claims.IsAdmin)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	token, err := j.Issue("user-1", false)
	assert.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "berg-stat-test", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// 负 TTL 叠加 60s leeway 仍要过期
	j := newTestJWTer(-2 * time.Minute)
	token, err := j.Issue("user-1", false)
	assert.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	j := newTestJWTer(time.Hour)
	_, err := j.Parse("not-a-token")
	assert.Error(t, err)
}
