package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

type clientConfigBuilder struct {
	layers []*ClientFile
	source string
	err    error
}

func newClientConfigBuilder() *clientConfigBuilder {
	return &clientConfigBuilder{
		layers: make([]*ClientFile, 0, 3),
	}
}

func (b *clientConfigBuilder) build() (*ClientFile, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	cfg := new(ClientFile)
	for _, layer := range b.layers {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if reflect.ValueOf(*cfg).IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrConfigEmpty, b.source)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (b *clientConfigBuilder) withYAML(path string) *clientConfigBuilder {
	b.source = path

	fileCfg, err := parseYAML(path)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		// environment and flags may still provide everything
		return b
	case err != nil:
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, fileCfg)
	return b
}

func (b *clientConfigBuilder) withEnv() *clientConfigBuilder {
	envCfg := &ClientFile{}
	if err := parseEnv(envCfg, clientEnvPrefix); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg)
	return b
}

func (b *clientConfigBuilder) withOverrides(overrides ClientFile) *clientConfigBuilder {
	b.layers = append(b.layers, &overrides)
	return b
}

func (c *ClientFile) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
}
