package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaticTokenSource_Valid(t *testing.T) {
	source := NewStaticTokenSource("token-abc", time.Now().Add(time.Hour))

	token, err := source.Token()
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token.AccessToken)
}

func TestStaticTokenSource_NoExpiryNeverExpires(t *testing.T) {
	source := NewStaticTokenSource("token-abc", time.Time{})

	token, err := source.Token()
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token.AccessToken)
}

func TestStaticTokenSource_Expired(t *testing.T) {
	source := NewStaticTokenSource("token-abc", time.Now().Add(-time.Minute))

	_, err := source.Token()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestStaticTokenSource_WithinExpiryBuffer(t *testing.T) {
	// Still nominally valid but inside the buffer window, so treated as
	// expired.
	source := NewStaticTokenSource("token-abc", time.Now().Add(time.Minute))

	_, err := source.Token()
	assert.Error(t, err)
}

func TestStaticTokenSource_MissingToken(t *testing.T) {
	source := NewStaticTokenSource("", time.Now().Add(time.Hour))

	_, err := source.Token()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
