/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package host

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/voedger/mirror/pkg/mirror"
)

// Option configures policy loading.
type Option func(*loaderConfig) error

type loaderConfig struct {
	path string
	data []byte
}

// Loads policy from YAML file.
//
// Symlinks are resolved, relative paths should be local.
func WithPolicyPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return mirror.ErrMissed("policy path")
		}

		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return mirror.EnrichError(err, "policy path «%s»", path)
		}

		if !filepath.IsAbs(realPath) && !filepath.IsLocal(realPath) {
			return mirror.ErrInvalid("policy path «%s» is not local or contains traversal", path)
		}

		cfg.path = realPath
		return nil
	}
}

// Loads policy from YAML data.
func WithPolicyBytes(data []byte) Option {
	return func(cfg *loaderConfig) error {
		cfg.data = data
		return nil
	}
}

// Loads policy.
//
// Keys missed in source are taken from DefaultPolicy(). Unknown keys are errors.
// Returns DefaultPolicy() if no source specified.
func LoadPolicy(opts ...Option) (Policy, error) {
	cfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Policy{}, err
		}
	}

	data := cfg.data
	if cfg.path != "" {
		d, err := os.ReadFile(cfg.path)
		if err != nil {
			return Policy{}, mirror.EnrichError(err, "read policy file")
		}
		data = d
	}

	return parsePolicy(data)
}

func parsePolicy(data []byte) (Policy, error) {
	p := DefaultPolicy()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return Policy{}, mirror.ErrInvalid("policy YAML: %v", err)
	}
	return p, nil
}
