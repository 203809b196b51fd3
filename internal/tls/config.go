// SPDX-License-Identifier: MIT

// Package tls loads the certificate the server terminates HTTPS with.
package tls

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"

	"github.com/xilkadim/brandkit/internal/config"
)

// Config holds TLS configuration
type Config struct {
	CertFile string
	KeyFile  string
	Enabled  bool
}

// LoadConfig loads TLS configuration from config system
func LoadConfig() (*Config, error) {
	cfg := &Config{
		CertFile: config.GetString("tls.cert_file"),
		KeyFile:  config.GetString("tls.key_file"),
		Enabled:  config.GetBool("server.tls_enabled"),
	}

	// Validate required fields if TLS is enabled
	if cfg.Enabled {
		if cfg.CertFile == "" {
			return nil, errors.New("tls.cert_file is required when TLS is enabled")
		}
		if cfg.KeyFile == "" {
			return nil, errors.New("tls.key_file is required when TLS is enabled")
		}
		for _, path := range []string{cfg.CertFile, cfg.KeyFile} {
			if _, err := os.Stat(path); err != nil {
				return nil, fmt.Errorf("failed to access %s: %w", path, err)
			}
		}
	}

	return cfg, nil
}

// TLSConfig loads the key pair into a server configuration. It returns nil
// when TLS is disabled.
func (c *Config) TLSConfig() (*tls.Config, error) {
	if !c.Enabled {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
