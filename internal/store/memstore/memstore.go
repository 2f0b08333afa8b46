// Package memstore is an in-memory store.Store used by unit tests and as a
// reference for the transaction-lifecycle contract real backends implement.
package memstore

import (
	"context"
	"sync"

	"github.com/zipcodetw/zipcodetw/internal/store"
)

type preciseKey struct {
	addrKey string
	ruleKey string
}

// Store is a mutex-guarded in-memory implementation of store.Store. It
// never fails an operation; WithTx snapshots its maps before running fn and
// restores them on error, giving the same rollback guarantee a real backend
// provides.
type Store struct {
	mu      sync.Mutex
	precise map[preciseKey]string
	gradual map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		precise: map[preciseKey]string{},
		gradual: map[string]string{},
	}
}

func (s *Store) PutPrecise(_ context.Context, addrKey, ruleKey, zipcode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := preciseKey{addrKey, ruleKey}
	if _, exists := s.precise[key]; exists {
		return nil
	}
	s.precise[key] = zipcode
	return nil
}

func (s *Store) PutGradual(_ context.Context, addrKey, zipcode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.gradual[addrKey]; ok {
		s.gradual[addrKey] = store.CommonPrefix(stored, zipcode)
	} else {
		s.gradual[addrKey] = zipcode
	}
	return nil
}

func (s *Store) PreciseRows(_ context.Context, addrKey string) ([]store.RuleZip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []store.RuleZip
	for k, zipcode := range s.precise {
		if k.addrKey == addrKey {
			rows = append(rows, store.RuleZip{RuleStr: k.ruleKey, Zipcode: zipcode})
		}
	}
	return rows, nil
}

func (s *Store) Gradual(_ context.Context, addrKey string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	zipcode, ok := s.gradual[addrKey]
	return zipcode, ok, nil
}

// WithTx snapshots state, runs fn against s itself (a single process-local
// map needs no separate transaction object), and restores the snapshot if
// fn returns an error.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	s.mu.Lock()
	preciseSnapshot := make(map[preciseKey]string, len(s.precise))
	for k, v := range s.precise {
		preciseSnapshot[k] = v
	}
	gradualSnapshot := make(map[string]string, len(s.gradual))
	for k, v := range s.gradual {
		gradualSnapshot[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx, s); err != nil {
		s.mu.Lock()
		s.precise = preciseSnapshot
		s.gradual = gradualSnapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
