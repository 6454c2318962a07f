package common

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DefaultOutputSeparator = ", "
	SchemaFileName         = "schema.txt"
	RelationFilesDir       = "files"
	RelationFileExt        = ".csv"
	EnvPrefix              = "CQBASE"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Separator string `mapstructure:"separator"`
	Preview   bool   `mapstructure:"preview"`
	Explain   bool   `mapstructure:"explain"`
}

// Config is the run-level configuration shared by the command line tools.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

func NewConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: LogFormatTextValue},
		Output: OutputConfig{Separator: DefaultOutputSeparator},
	}
}

// LoadConfig reads cfgFile (when given) and the CQBASE_* environment into cfg.
func LoadConfig(v *viper.Viper, cfgFile string, cfg *Config) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "error reading from config file")
		}
	}

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("output.separator", cfg.Output.Separator)
	v.SetDefault("output.preview", cfg.Output.Preview)
	v.SetDefault("output.explain", cfg.Output.Explain)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "cannot decode configuration")
	}
	if cfg.Output.Separator == "" {
		cfg.Output.Separator = DefaultOutputSeparator
	}
	return nil
}
