package store

import (
	"os"
	"strings"

	"yt2reader/internal/config"
)

// TokenEnvVar overrides the configured token when set.
const TokenEnvVar = "YT2READER_TOKEN"

// TokenSource resolves the Reader API token: environment first, then the
// config file.
type TokenSource struct {
	cfg *config.Config
}

// NewTokenSource creates a token source over the loaded config.
func NewTokenSource(cfg *config.Config) *TokenSource {
	return &TokenSource{cfg: cfg}
}

func (t *TokenSource) Token() (string, bool) {
	if v := strings.TrimSpace(os.Getenv(TokenEnvVar)); v != "" {
		return v, true
	}

	v := strings.TrimSpace(t.cfg.Reader.Token)
	return v, v != ""
}
