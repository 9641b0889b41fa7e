package configuration

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load creates a viper instance that resolves keys from the flag set, the environment (dots replaced by underscores)
// and the optional config file configName.{json,toml,yaml,yml} inside configDir, in this order of precedence.
func Load(flagSet *pflag.FlagSet, configDir, configName string) (config *viper.Viper, err error) {
	config = viper.New()
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err = config.BindPFlags(flagSet); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	config.SetConfigName(configName)
	config.AddConfigPath(configDir)
	if err = config.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			return config, nil
		}

		return nil, errors.Wrapf(err, "failed to read config %s from %s", configName, configDir)
	}

	return config, nil
}
