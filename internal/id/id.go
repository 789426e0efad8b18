// Package id generates transaction identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique transaction IDs within one pipeline run.
type Generator interface {
	Next() string
}

// Random returns a Generator backed by random UUIDs.
func Random() Generator {
	return randomGenerator{}
}

type randomGenerator struct{}

func (randomGenerator) Next() string {
	return uuid.NewString()
}

// Sequential returns a deterministic Generator producing IDs like
// "txn-000001". Intended for tests and reproducible runs.
func Sequential(prefix string) Generator {
	return &sequentialGenerator{prefix: prefix}
}

type sequentialGenerator struct {
	prefix string
	n      int
}

func (g *sequentialGenerator) Next() string {
	g.n++
	return fmt.Sprintf("%s-%06d", g.prefix, g.n)
}
