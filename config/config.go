// Package config holds the sdlprint settings and the attachment files that
// add directives to a loaded schema.
package config

import (
	"strings"

	"github.com/shyptr/schemadirectives/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SDLPRINT"

const (
	KeyConfig      = "config"
	KeyBucket      = "bucket"
	KeySchema      = "schema"
	KeyAttachments = "attachments"
	KeyIndent      = "indent"
	KeyBaseline    = "baseline"
	KeyAddr        = "addr"
	KeyVerbose     = "verbose"
)

const (
	DefaultBucket = "file://."
	DefaultIndent = "  "
	DefaultAddr   = ":8080"
)

type Config struct {
	// Bucket is a gocloud blob URL, e.g. file:///etc/schemas or mem://.
	Bucket string `mapstructure:"bucket" validate:"required"`
	// Schema lists the SDL keys read from Bucket.
	Schema []string `mapstructure:"schema" validate:"required,min=1,dive,required"`
	// Attachments is an optional key in Bucket holding a YAML attachment file.
	Attachments string `mapstructure:"attachments"`
	Indent      string `mapstructure:"indent"`
	// Baseline prints the schema without attached directives.
	Baseline bool   `mapstructure:"baseline"`
	Addr     string `mapstructure:"addr" validate:"required"`
	Verbose  bool   `mapstructure:"verbose"`
}

// SetDefaults registers the defaults of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBucket, DefaultBucket)
	v.SetDefault(KeySchema, []string{})
	v.SetDefault(KeyAttachments, "")
	v.SetDefault(KeyIndent, DefaultIndent)
	v.SetDefault(KeyBaseline, false)
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyVerbose, false)
}

// Load reads the configuration from v: bound flags, SDLPRINT_ environment
// variables, then the file named by the config key when it is set.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := NewValidate().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
