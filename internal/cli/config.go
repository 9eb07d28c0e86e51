package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ConfigEnv names the environment variable consulted when --config is absent.
const ConfigEnv = "RANGESET_CONFIG"

// Config holds the defaults a config file may supply. Flags set on the
// command line take precedence.
type Config struct {
	Type    DomainType   `toml:"type"`
	Output  OutputFormat `toml:"output"`
	Verbose bool         `toml:"verbose"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Type:   DomainTypeI64,
		Output: OutputFormatText,
	}
}

// ConfigPath returns flagValue when set and the value of ConfigEnv otherwise.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(ConfigEnv)
}

// LoadConfig reads a TOML config file over DefaultConfig. Unknown keys are
// rejected so that typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
