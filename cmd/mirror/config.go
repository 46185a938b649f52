/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/voedger/mirror/pkg/goutils/logger"
	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/host"
)

// Tool configuration.
//
// Read from mirror.yaml in working directory or from --config file,
// every key can be overridden by MIRROR_ environment variable, e.g. MIRROR_POLICY_PRIVATE=true.
type mirrorConfig struct {
	// YAML file with host policy, overrides Policy section
	PolicyFile string       `mapstructure:"policy_file"`
	Policy     policyConfig `mapstructure:"policy"`
	NoColor    bool         `mapstructure:"no_color"`
}

type policyConfig struct {
	Protected      bool `mapstructure:"protected"`
	PackagePrivate bool `mapstructure:"package_private"`
	Private        bool `mapstructure:"private"`
}

// Loads configuration.
//
// Flags, if not nil, are bound to configuration keys.
func loadConfig(configFile string, flags *pflag.FlagSet) (*mirrorConfig, error) {
	v := viper.New()

	def := host.DefaultPolicy()
	v.SetDefault("policy_file", "")
	v.SetDefault("policy.protected", def.Protected)
	v.SetDefault("policy.package_private", def.PackagePrivate)
	v.SetDefault("policy.private", def.Private)
	v.SetDefault("no_color", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("mirror")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MIRROR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("no-color"); f != nil {
			if err := v.BindPFlag("no_color", f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, mirror.EnrichError(err, "read config file")
		}
		logger.Verbose("config file not found, defaults are used")
	} else {
		logger.Verbose("config file used:", v.ConfigFileUsed())
	}

	cfg := &mirrorConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, mirror.EnrichError(err, "unmarshal config")
	}
	return cfg, nil
}

// Returns effective host policy.
func (c mirrorConfig) HostPolicy() (host.Policy, error) {
	if c.PolicyFile != "" {
		return host.LoadPolicy(host.WithPolicyPath(c.PolicyFile))
	}
	return host.Policy{
		Protected:      c.Policy.Protected,
		PackagePrivate: c.Policy.PackagePrivate,
		Private:        c.Policy.Private,
	}, nil
}
