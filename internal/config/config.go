// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package config builds the runtime configuration of passdev from the environment.
package config

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// EnvDebug enables diagnostic output on standard error when set to a number greater than zero.
	EnvDebug = "DEBUG"

	keyDebug = "debug"
)

// Config is constructed once at startup and passed to everything that needs it.
type Config struct {
	Debug bool
}

// Load reads the configuration from the process environment.
func Load() Config {
	v := viper.New()
	// BindEnv only fails when called without a key.
	_ = v.BindEnv(keyDebug, EnvDebug)
	return FromViper(v)
}

// FromViper reads the configuration from an existing viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Debug: atoi(v.GetString(keyDebug)) > 0,
	}
}

// Logger returns a logger writing to w. Debug lines are only emitted when Debug is set,
// errors are always emitted.
func (c Config) Logger(w io.Writer) *log.Logger {
	level := log.ErrorLevel
	if c.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "passdev",
	})
}

// atoi parses s the way C atoi does: leading whitespace and an optional sign are
// skipped, then decimal digits are consumed up to the first non-digit. Input without
// leading digits yields 0.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (math.MaxInt32-9)/10 {
			n = math.MaxInt32
			break
		}
		n = n*10 + int(s[i]-'0')
	}

	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
