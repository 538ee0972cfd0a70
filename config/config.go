// Package config wires the registered defaults, the config file and
// the environment into viper.
package config

import (
	"strings"

	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer folds configuration keys into environment variable
// shape, so search.latest binds to EPISAN_SEARCH_LATEST.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads the configuration in ascending precedence: registered
// defaults, then the config file, then environment variables. A
// missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Episan)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Episan)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}

	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}

	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		return nil
	}
	return err
}

// Persist writes the current values back to the config file, creating
// the file on first use.
func Persist() error {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}
