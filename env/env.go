//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the RSA and
// oblivious transfer modules.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the global configuration for the modules built on
// the mpint engine. Config must not be modified after being passed to
// any module. It is safe for concurrent use by multiple modules as
// they do not modify it.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for key generation,
// blinding, padding, and oblivious transfer. A nil config or a config
// without an explicit source uses crypto/rand.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
