// Package zipdir wires the address/rule lexical model to a store.Store,
// implementing the two directory operations a real deployment needs: bulk
// loading a CSV directory dump, and looking up the zipcode for an address.
package zipdir

import (
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/internal/store"
)

// Builder loads directory rows into a Store.
type Builder struct {
	store  store.Store
	logger *zap.Logger
}

// NewBuilder constructs a Builder writing to st, logging through log.
func NewBuilder(st store.Store, log *zap.Logger) *Builder {
	return &Builder{store: st, logger: log}
}

// Lookup resolves addresses against a Store.
type Lookup struct {
	store  store.Store
	logger *zap.Logger
}

// NewLookup constructs a Lookup reading from st, logging through log.
func NewLookup(st store.Store, log *zap.Logger) *Lookup {
	return &Lookup{store: st, logger: log}
}
