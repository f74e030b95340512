package drill

import (
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	envPrefix = "TABLECHECK"
)

type Config struct {
	Environment string `default:"dev"`

	// Capacity of the table under test. Filling it is quadratic,
	// so keep it in the thousands.
	Capacity int `default:"4096"`
	Keys     int `default:"1000"`
	Print    bool
}

// LoadConfig reads TABLECHECK_* variables, after loading the .env file at
// path when one is given. The result isn't validated, Run does that once
// command line overrides are applied.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, errors.Wrapf(err, "load %s", path)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env")
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Environment != EnvDev && c.Environment != EnvProd {
		return errors.Errorf("invalid environment %q", c.Environment)
	}

	if c.Capacity < 1 {
		return errors.Errorf("capacity must be positive, got %d", c.Capacity)
	}

	if c.Keys < 1 || c.Keys > c.Capacity {
		return errors.Errorf("keys must be in [1, %d], got %d", c.Capacity, c.Keys)
	}

	return nil
}
