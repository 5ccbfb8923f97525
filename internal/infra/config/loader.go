package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dimanech/aria-grid/internal/domain"
)

// FlagBindings maps setting keys to command-line flag names.
type FlagBindings map[string]string

// Load reads the workspace settings. Layers, lowest first: defaults,
// <root>/ariagrid.yaml, ARIAGRID_* environment variables, then any flags in
// bind that the user actually set. A missing settings file is not an error.
func Load(root string, flags *pflag.FlagSet, bind FlagBindings) (domain.Config, error) {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}

	path := filepath.Join(root, FileName)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if flags != nil {
		for key, name := range bind {
			f := flags.Lookup(name)
			if f == nil {
				return domain.DefaultConfig(), &domain.OpError{
					Op:   "config.bind_flag",
					Kind: domain.KindExecution,
					Err:  fmt.Errorf("no flag %q for %s", name, key),
				}
			}
			if err := v.BindPFlag(key, f); err != nil {
				return domain.DefaultConfig(), &domain.OpError{
					Op:   "config.bind_flag",
					Kind: domain.KindExecution,
					Err:  err,
				}
			}
		}
	}

	return mapConfig(root, path, v)
}
