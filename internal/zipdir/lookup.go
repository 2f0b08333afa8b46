package zipdir

import (
	"context"

	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/internal/store"
	"github.com/zipcodetw/zipcodetw/internal/zipaddr"
	"github.com/zipcodetw/zipcodetw/internal/ziprule"
)

// Find resolves addrStr to a zipcode, or "" if nothing in the directory
// covers it. It is not an error for an address to have no match.
//
// The standardized address is tried at every prefix length from longest to
// shortest; at each length, a precise-index row whose rule matches wins
// first, falling back to the gradual index's broader common-prefix entry.
func (l *Lookup) Find(ctx context.Context, addrStr string) (string, error) {
	addr := zipaddr.NewStandardAddress(addrStr)

	var zipcode string
	err := l.store.WithTx(ctx, func(ctx context.Context, tx store.Store) error {
		for i := addr.Len(); i > 0; i-- {
			key := addr.Flat(i)

			rows, err := tx.PreciseRows(ctx, key)
			if err != nil {
				return err
			}
			for _, row := range rows {
				if ziprule.Parse(row.RuleStr).Match(addr.Address) {
					zipcode = row.Zipcode
					return nil
				}
			}

			if gz, ok, err := tx.Gradual(ctx, key); err != nil {
				return err
			} else if ok && gz != "" {
				zipcode = gz
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if zipcode != "" && l.logger != nil {
		l.logger.Debug("lookup resolved", zap.String("address", addrStr), zap.String("zipcode", zipcode))
	}
	return zipcode, nil
}
