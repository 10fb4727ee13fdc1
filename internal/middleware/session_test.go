package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignSessionID_NoSecret(t *testing.T) {
	cfg := SessionConfig{}
	assert.Equal(t, "s:abc-123", SignSessionID(cfg, "abc-123"))
	assert.Equal(t, "abc-123", parseSessionCookie(cfg, "s:abc-123"))
}

func TestSignSessionID_RoundTrip(t *testing.T) {
	cfg := SessionConfig{Secret: "sekret"}
	signed := SignSessionID(cfg, "abc-123")
	assert.True(t, strings.HasPrefix(signed, "s:abc-123."))
	assert.Equal(t, "abc-123", parseSessionCookie(cfg, signed))
}

func TestParseSessionCookie_RejectsTamperedTag(t *testing.T) {
	cfg := SessionConfig{Secret: "sekret"}
	signed := SignSessionID(cfg, "abc-123")
	tampered := strings.Replace(signed, "abc-123", "abc-124", 1)
	assert.Equal(t, "", parseSessionCookie(cfg, tampered))
}

func TestParseSessionCookie_RejectsUnsigned(t *testing.T) {
	cfg := SessionConfig{Secret: "sekret"}
	assert.Equal(t, "", parseSessionCookie(cfg, "s:abc-123"))
	assert.Equal(t, "", parseSessionCookie(cfg, "abc-123"))
}
