// Package id creates identifiers for rows minted at runtime. Seeded rows use
// deterministic IDs instead and never go through a Generator.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// randomBytes per ID; hex-encoded this gives 24 characters, short enough for
// URLs and log lines while keeping collisions out of reach.
const randomBytes = 12

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces "<prefix>-<hex>" IDs from crypto/rand. An empty
// prefix yields the bare hex string.
type RandomGenerator struct {
	prefix string
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	if g.prefix == "" {
		return hex.EncodeToString(buf), nil
	}
	return g.prefix + "-" + hex.EncodeToString(buf), nil
}
