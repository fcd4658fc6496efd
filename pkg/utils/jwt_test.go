package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	assert.NoError(t, err)
	payload, err := json.Marshal(claims)
	assert.NoError(t, err)

	enc := base64.RawURLEncoding
	return fmt.Sprintf("%s.%s.%s", enc.EncodeToString(header), enc.EncodeToString(payload), enc.EncodeToString([]byte("sig")))
}

func TestIsJWTShaped(t *testing.T) {
	assert.True(t, IsJWTShaped(makeToken(t, map[string]interface{}{"sub": "u1"})))
	assert.False(t, IsJWTShaped(""))
	assert.False(t, IsJWTShaped("not-a-jwt"))
	assert.False(t, IsJWTShaped("still.not-a-jwt"))
}

func TestExtractSubject(t *testing.T) {
	assert.Equal(t, "u1", ExtractSubject(makeToken(t, map[string]interface{}{"sub": "u1"})))
	assert.Empty(t, ExtractSubject("garbage"))
	assert.Empty(t, ExtractSubject(makeToken(t, map[string]interface{}{"role": "admin"})))
}
