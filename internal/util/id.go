// Package util provides utility functions for emsim.
package util

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Entity ID prefixes. Every identifier in a simulation run is the kind
// prefix followed by a short alphanumeric suffix, e.g. "INC-3f9a01bc".
const (
	PrefixIncident = "INC"
	PrefixCrew     = "CREW"
	PrefixUnit     = "UNIT"
	PrefixHospital = "HOSP"
	PrefixNote     = "NOTE"
	PrefixRun      = "SIM"
)

// suffixLen is the number of characters in the ID suffix.
const suffixLen = 8

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDGenerator produces unique prefixed identifiers. When constructed with
// a random source the suffixes are drawn from it, so a fixed seed
// reproduces an identical sequence of IDs. Without a source, suffixes come
// from random UUIDs.
type IDGenerator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seen map[string]bool
}

// NewIDGenerator creates an ID generator backed by random UUIDs.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{seen: make(map[string]bool)}
}

// NewSeededIDGenerator creates an ID generator that draws suffixes from
// the given random source.
func NewSeededIDGenerator(rng *rand.Rand) *IDGenerator {
	return &IDGenerator{rng: rng, seen: make(map[string]bool)}
}

// NewID generates a unique identifier with the given kind prefix.
func (g *IDGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := prefix + "-" + g.suffix()
		if !g.seen[id] {
			g.seen[id] = true
			return id
		}
	}
}

func (g *IDGenerator) suffix() string {
	if g.rng == nil {
		u := uuid.New().String()
		return strings.ReplaceAll(u, "-", "")[:suffixLen]
	}

	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = suffixAlphabet[g.rng.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// SplitID separates an identifier into its kind prefix and suffix.
func SplitID(id string) (prefix, suffix string, err error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", "", fmt.Errorf("malformed id: %q", id)
	}
	return id[:i], id[i+1:], nil
}

// HasPrefix reports whether the identifier carries the given kind prefix.
func HasPrefix(id, prefix string) bool {
	p, _, err := SplitID(id)
	return err == nil && p == prefix
}

// NewRunID generates an identifier for a whole simulation run.
func NewRunID() string {
	u := uuid.New().String()
	return PrefixRun + "-" + strings.ReplaceAll(u, "-", "")[:suffixLen]
}
