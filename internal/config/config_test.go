// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"filecopy/internal/config"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, zerolog.ErrorLevel, cfg.Level())
	require.False(t, cfg.LogJSON)
}

func TestLoad(t *testing.T) {
	v := viper.New()
	v.Set("log-level", "DEBUG")
	v.Set("log-json", true)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
	require.True(t, cfg.LogJSON)
}

func TestLoadInvalidLevel(t *testing.T) {
	v := viper.New()
	v.Set("log-level", "verbose")

	_, err := config.Load(v)
	require.Error(t, err)
}
