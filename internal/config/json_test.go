package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// TestParseJSON_AllFields verifies that every section of the JSON file lands
// in the corresponding StructuredConfig field.
func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-key",
			"token_issuer": "learnapp",
			"token_duration": "2h",
			"bcrypt_cost": 12
		},
		"storage": {"db": {"dsn": "postgres://localhost/learnapp"}},
		"server": {"http_address": ":9000", "request_timeout": "45s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "learnapp", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://localhost/learnapp", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

// TestParseJSON_NumericDuration verifies that raw nanosecond numbers are
// accepted for duration fields.
func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// TestParseJSON_BadDuration verifies that an unparseable duration string is
// reported as an error.
func TestParseJSON_BadDuration(t *testing.T) {
	path := writeTempJSON(t, `{"auth": {"token_duration": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// TestParseJSON_MissingFile verifies that a nonexistent path is an error.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestParseJSON_MalformedJSON verifies that invalid JSON is an error.
func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
