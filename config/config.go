// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Rejected lists keys whose configured value broke the key's rule during
// the last Setup. Each of them was put back to its default.
var Rejected []string

// Setup reads bencyn.toml and BENCYN_* variables on top of the defaults.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Bencyn)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Bencyn)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if err != nil && !errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return err
	}

	Rejected = reject()
	return nil
}

// reject resets every key whose current value fails its rule.
func reject() []string {
	var rejected []string
	for name, field := range Default {
		if field.check(viper.Get(name)) != nil {
			viper.Set(name, field.Value)
			rejected = append(rejected, name)
		}
	}
	sort.Strings(rejected)
	return rejected
}
