package ziprule

import (
	"testing"

	"github.com/zipcodetw/zipcodetw/internal/zipaddr"
)

func TestParseQualifiers(t *testing.T) {
	r := Parse("中正路1號以上")
	if !r.Qualifiers["以上"] {
		t.Fatalf("Qualifiers = %v, want 以上", r.Qualifiers)
	}
	if got := r.Flat(); got != "中正路1號" {
		t.Errorf("residual Flat() = %q, want %q", got, "中正路1號")
	}
}

func TestParseAttachedFull(t *testing.T) {
	r := Parse("中正路1號附號全")
	if !r.Qualifiers["附號全"] {
		t.Fatalf("Qualifiers = %v, want 附號全", r.Qualifiers)
	}
	if got := r.Flat(); got != "中正路1號" {
		t.Errorf("residual Flat() = %q, want %q", got, "中正路1號")
	}
}

func TestParseLianDiscarded(t *testing.T) {
	r := Parse("中正路1號連10號")
	if len(r.Qualifiers) != 0 {
		t.Fatalf("Qualifiers = %v, want empty", r.Qualifiers)
	}
	if got := r.Flat(); got != "中正路1號10號" {
		t.Errorf("residual Flat() = %q, want %q", got, "中正路1號10號")
	}
}

func TestMatchNoQualifier(t *testing.T) {
	r := Parse("中正路1號")
	addr := zipaddr.NewAddress("中正路1號")
	if !r.Match(addr) {
		t.Errorf("expected exact match")
	}
	other := zipaddr.NewAddress("中正路2號")
	if r.Match(other) {
		t.Errorf("expected no match for different house number")
	}
}

func TestMatchAtLeast(t *testing.T) {
	r := Parse("中正路10號以上")
	if !r.Match(zipaddr.NewAddress("中正路10號")) {
		t.Errorf("expected match at boundary")
	}
	if !r.Match(zipaddr.NewAddress("中正路20號")) {
		t.Errorf("expected match above boundary")
	}
	if r.Match(zipaddr.NewAddress("中正路5號")) {
		t.Errorf("expected no match below boundary")
	}
	if r.Match(zipaddr.NewAddress("忠孝路20號")) {
		t.Errorf("expected no match on different road")
	}
}

func TestMatchOddEven(t *testing.T) {
	odd := Parse("中正路單全")
	if !odd.Match(zipaddr.NewAddress("中正路1號")) {
		t.Errorf("expected match for odd number")
	}
	if odd.Match(zipaddr.NewAddress("中正路2號")) {
		t.Errorf("expected no match for even number")
	}

	even := Parse("中正路雙全")
	if !even.Match(zipaddr.NewAddress("中正路2號")) {
		t.Errorf("expected match for even number")
	}
}

func TestMatchThrough(t *testing.T) {
	r := Parse("中正路1號至10號")
	if !r.Match(zipaddr.NewAddress("中正路5號")) {
		t.Errorf("expected match within range")
	}
	if r.Match(zipaddr.NewAddress("中正路11號")) {
		t.Errorf("expected no match above range")
	}
	if r.Match(zipaddr.NewAddress("中正路0號")) {
		t.Errorf("expected no match below range")
	}
}

func TestMatchAttachedFull(t *testing.T) {
	r := Parse("中正路10號附號全")
	if !r.Match(zipaddr.NewAddress("中正路10之1號")) {
		t.Errorf("expected match for any sub-number of 10")
	}
	if r.Match(zipaddr.NewAddress("中正路10號")) {
		t.Errorf("expected no match when there is no sub-number at all")
	}
	if r.Match(zipaddr.NewAddress("中正路11號")) {
		t.Errorf("expected no match for a different house number")
	}
}
