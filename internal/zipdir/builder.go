package zipdir

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/internal/ingest"
	"github.com/zipcodetw/zipcodetw/internal/store"
	"github.com/zipcodetw/zipcodetw/internal/zipaddr"
)

// Load writes every row inside a single transaction: a malformed row
// upstream (caught by ingest) aborts the whole batch.
func (b *Builder) Load(ctx context.Context, rows []ingest.Row) error {
	err := b.store.WithTx(ctx, func(ctx context.Context, tx store.Store) error {
		for i, row := range rows {
			if err := put(ctx, tx, row.HeadAddrStr, row.RuleStr, row.Zipcode); err != nil {
				return fmt.Errorf("zipdir: loading row %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Error("directory load failed", zap.Error(err))
		return err
	}
	b.logger.Info("directory load complete", zap.Int("rows", len(rows)))
	return nil
}

// put is the single-row directory insert: one precise entry keyed by the
// full address-plus-rule text, and a gradual entry fanned out over every
// contiguous token sub-range plus, for three or more tokens, tokens 0 and 2
// joined with token 1 skipped.
func put(ctx context.Context, tx store.Store, headAddrStr, tailRuleStr, zipcode string) error {
	addr := zipaddr.NewAddress(headAddrStr)

	if err := tx.PutPrecise(ctx, addr.Flat(), headAddrStr+tailRuleStr, zipcode); err != nil {
		return err
	}

	n := addr.Len()
	for f := 0; f < n; f++ {
		for l := f; l < n; l++ {
			if err := tx.PutGradual(ctx, addr.Flat(f, l+1), zipcode); err != nil {
				return err
			}
		}
	}

	if n >= 3 {
		if err := tx.PutGradual(ctx, addr.PickToFlat(0, 2), zipcode); err != nil {
			return err
		}
	}

	return nil
}
