package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Hybrid combines an L1 and L2 Cache, mirroring the teacher's
// HybridCacheService: reads try L1 first and fall back to L2, a warm L2
// hit is synced back to L1 in the background, and writes go to both
// concurrently.
type Hybrid struct {
	l1     Cache
	l2     Cache
	logger *zap.Logger
}

// NewHybrid composes l1 (fast, small) in front of l2 (slower, shared).
func NewHybrid(l1, l2 Cache, logger *zap.Logger) *Hybrid {
	return &Hybrid{l1: l1, l2: l2, logger: logger}
}

func (h *Hybrid) Get(ctx context.Context, key string) (string, bool, error) {
	if zipcode, ok, err := h.l1.Get(ctx, key); err != nil {
		h.logger.Warn("l1 cache get failed, falling back to l2", zap.Error(err))
	} else if ok {
		return zipcode, true, nil
	}

	zipcode, ok, err := h.l2.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.l1.Set(bgCtx, key, zipcode); err != nil {
			h.logger.Warn("syncing l2 hit back to l1 failed", zap.Error(err), zap.String("key", key))
		}
	}()

	return zipcode, true, nil
}

func (h *Hybrid) Set(ctx context.Context, key, zipcode string) error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.l1.Set(ctx, key, zipcode) }()
	go func() { errCh <- h.l2.Set(ctx, key, zipcode) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache: hybrid set errors: %v", errs)
	}
	return nil
}

func (h *Hybrid) Close() error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.l1.Close() }()
	go func() { errCh <- h.l2.Close() }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache: hybrid close errors: %v", errs)
	}
	return nil
}
