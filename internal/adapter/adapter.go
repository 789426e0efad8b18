// Package adapter reads bank statement exports into raw rows.
package adapter

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Adapter converts one statement file format into raw rows.
type Adapter interface {
	// Rows parses the file content into ordered raw rows.
	Rows(r io.Reader) ([]*model.RawRow, error)
	// Extensions lists the file extensions (without dot) this adapter handles.
	Extensions() []string
}

// Registry maps file extensions to adapters.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter. Panics on duplicate extension.
func (r *Registry) Register(a Adapter) {
	for _, ext := range a.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.adapters[key]; ok {
			panic("duplicate adapter extension: " + key)
		}
		r.adapters[key] = a
	}
}

// ForFile returns the adapter for a file name's extension, or nil.
func (r *Registry) ForFile(name string) Adapter {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return r.adapters[ext]
}

// DefaultRegistry returns a registry with all built-in adapters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVAdapter{})
	r.Register(NewXLSXAdapter(nil))
	r.Register(&JSONAdapter{})
	return r
}
