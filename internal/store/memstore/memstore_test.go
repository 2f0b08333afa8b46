package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/zipcodetw/zipcodetw/internal/store"
)

func TestPutPreciseFirstWriterWins(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.PutPrecise(ctx, "addr", "rule", "100"); err != nil {
		t.Fatal(err)
	}
	if err := s.PutPrecise(ctx, "addr", "rule", "200"); err != nil {
		t.Fatal(err)
	}

	rows, err := s.PreciseRows(ctx, "addr")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Zipcode != "100" {
		t.Errorf("PreciseRows = %#v, want a single row with zipcode 100", rows)
	}
}

func TestPutGradualMergesCommonPrefix(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.PutGradual(ctx, "addr", "100"); err != nil {
		t.Fatal(err)
	}
	if err := s.PutGradual(ctx, "addr", "105"); err != nil {
		t.Fatal(err)
	}

	zipcode, ok, err := s.Gradual(ctx, "addr")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || zipcode != "10" {
		t.Errorf("Gradual = (%q, %v), want (\"10\", true)", zipcode, ok)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	sentinel := errors.New("boom")

	if err := s.PutPrecise(ctx, "addr", "rule", "100"); err != nil {
		t.Fatal(err)
	}

	err := s.WithTx(ctx, func(ctx context.Context, tx store.Store) error {
		if e := tx.PutPrecise(ctx, "addr2", "rule2", "999"); e != nil {
			t.Fatal(e)
		}
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("WithTx err = %v, want sentinel", err)
	}

	rows, _ := s.PreciseRows(ctx, "addr2")
	if len(rows) != 0 {
		t.Errorf("PreciseRows(addr2) = %#v, want none after rollback", rows)
	}
	rows, _ = s.PreciseRows(ctx, "addr")
	if len(rows) != 1 {
		t.Errorf("PreciseRows(addr) = %#v, want the pre-existing row to survive", rows)
	}
}
