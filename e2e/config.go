package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BACKEND_URL targets a running backend; when empty the in-memory assistant is served locally
	BackendURL string `envconfig:"E2E_BACKEND_URL"`
	// E2E_DEBUG_JSON dumps every request/response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool   `envconfig:"E2E_COLOURS" default:"true"`
	Secret  string `envconfig:"E2E_SESSION_SECRET" default:"e2e-secret"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
