// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/trim21/errgo"
)

var validate = validator.New()

type Config struct {
	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`
	LogJSON  bool   `mapstructure:"log-json"`
}

// Load reads the config from flags already bound to v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{LogLevel: "error"}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errgo.Wrap(err, "failed to parse options")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, errgo.Wrap(err, "invalid options, only trace/debug/info/warn/error is allowed for log-level")
	}

	return cfg, nil
}

func (c Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	}

	return zerolog.ErrorLevel
}
