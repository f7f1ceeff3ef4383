package herald

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Environment carries the process-level signals the CORS resolver needs:
// the dev/prod switch and the origin allow-list. It is read once at startup
// and threaded into ResolveOrigin as explicit parameters so resolution stays
// deterministic under test.
type Environment struct {
	Env            string   `env:"HERALD_ENV" env-default:"development"`
	AllowedOrigins []string `env:"HERALD_ALLOWED_ORIGINS" env-separator:","`
}

// LoadEnvironment reads the environment configuration from process env vars.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := cleanenv.ReadEnv(&e); err != nil {
		return Environment{}, Wrap(err, ErrInternal, "failed to read environment")
	}
	return e, nil
}

// IsDevelopment reports whether the process runs outside production.
func (e Environment) IsDevelopment() bool {
	return e.Env != "production"
}

// OriginPolicy derives the resolver policy for this environment.
func (e Environment) OriginPolicy() OriginPolicy {
	if e.IsDevelopment() {
		return DevelopmentPolicy()
	}
	return ProductionPolicy()
}

// ResolveOrigin applies this environment's policy and allow-list to a request
// origin.
func (e Environment) ResolveOrigin(requestOrigin string) string {
	return ResolveOrigin(requestOrigin, e.AllowedOrigins, e.OriginPolicy())
}
