package zipaddr

import "testing"

func TestStandardizeDropsTokenSkippedByAnEarlierGroupsMatch(t *testing.T) {
	// The cursor only advances forward: once group 1 matches 市 at index 1,
	// index 0's 區 token sits behind the cursor and can never be picked up
	// by group 2, so it is dropped rather than reordered.
	sa := NewStandardAddress("中正區臺北市忠孝東路1號")
	want := []Token{
		{Name: "臺北", Unit: "市"},
		{Name: "忠孝東", Unit: "路"},
		{No: "1", Unit: "號"},
	}
	if len(sa.Tokens) != len(want) {
		t.Fatalf("Standardize(...) = %#v, want %#v", sa.Tokens, want)
	}
	for i := range want {
		if sa.Tokens[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, sa.Tokens[i], want[i])
		}
	}
}

func TestStandardizePrefersEarlierUnitInGroup(t *testing.T) {
	// Within a group, the first listed unit that appears is taken even
	// when a later-listed unit from the same group would also match: 縣 is
	// listed before 市, so the 縣 token is pulled although the 市 token comes
	// first, and the 市 token, now behind the cursor, is dropped.
	sa := NewStandardAddress("竹北市新竹縣光明路1號")
	want := []Token{
		{Name: "新竹", Unit: "縣"},
		{Name: "光明", Unit: "路"},
		{No: "1", Unit: "號"},
	}
	if len(sa.Tokens) != len(want) {
		t.Fatalf("Standardize(...) = %#v, want %#v", sa.Tokens, want)
	}
	for i := range want {
		if sa.Tokens[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, sa.Tokens[i], want[i])
		}
	}
}

func TestStandardizeAlreadyOrdered(t *testing.T) {
	sa := NewStandardAddress("臺北市中正區忠孝東路1號")
	flat := sa.Flat()
	if flat != "臺北市中正區忠孝東路1號" {
		t.Errorf("Flat() = %q", flat)
	}
}

func TestStandardizeSkipsUnmatchedUnitsInGroup(t *testing.T) {
	// No county/city unit present at all; the first group contributes
	// nothing and the scan cursor does not advance past the district token.
	sa := NewStandardAddress("中正區忠孝東路1號")
	want := []Token{
		{Name: "中正", Unit: "區"},
		{Name: "忠孝東", Unit: "路"},
		{No: "1", Unit: "號"},
	}
	if len(sa.Tokens) != len(want) {
		t.Fatalf("Standardize(...) = %#v, want %#v", sa.Tokens, want)
	}
	for i := range want {
		if sa.Tokens[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, sa.Tokens[i], want[i])
		}
	}
}
