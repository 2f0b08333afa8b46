package zipaddr

import "testing"

func TestTokenize(t *testing.T) {
	toks := Tokenize("臺北市中正區忠孝東路1段1號")
	want := []Token{
		{Name: "臺北", Unit: "市"},
		{Name: "中正", Unit: "區"},
		{Name: "忠孝東", Unit: "路"},
		{Name: "1", Unit: "段"},
		{No: "1", Unit: "號"},
	}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize(...) = %#v, want %#v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, toks[i], want[i])
		}
	}
}

func TestTokenizeSubno(t *testing.T) {
	toks := Tokenize("中正路10之2號")
	want := []Token{
		{Name: "中正", Unit: "路"},
		{No: "10", Subno: "之2", Unit: "號"},
	}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize(...) = %#v, want %#v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, toks[i], want[i])
		}
	}
}

func TestTokenizeElidedUnitAtEnd(t *testing.T) {
	toks := Tokenize("中正路15")
	want := []Token{
		{Name: "中正", Unit: "路"},
		{Name: "15", Unit: ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize(...) = %#v, want %#v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, toks[i], want[i])
		}
	}
}

func TestAddressFlatAndParse(t *testing.T) {
	a := NewAddress("中正路10之2號")
	if got := a.Flat(); got != "中正路10之2號" {
		t.Errorf("Flat() = %q", got)
	}
	if got := a.Flat(1); got != "中正路" {
		t.Errorf("Flat(1) = %q", got)
	}
	no, subno := a.Parse(1)
	if no != 10 || subno != 2 {
		t.Errorf("Parse(1) = (%d,%d), want (10,2)", no, subno)
	}
	if no, subno := a.Parse(5); no != 0 || subno != 0 {
		t.Errorf("Parse(out of range) = (%d,%d), want (0,0)", no, subno)
	}
	if no, subno := a.Parse(-1); no != 10 || subno != 2 {
		t.Errorf("Parse(-1) = (%d,%d), want (10,2)", no, subno)
	}
}
