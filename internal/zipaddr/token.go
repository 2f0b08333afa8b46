// Package zipaddr implements the address lexical model: normalization,
// tokenization, and the administrative-hierarchy reordering used to turn a
// free-form Taiwanese postal address into an ordered token sequence.
package zipaddr

import "strconv"

// Units is the 15-character unit alphabet a Token's Unit field is drawn
// from. Order is irrelevant; membership is all that matters.
const Units = "縣市鄉鎮區村里鄰路街段巷弄號樓"

// restrictedUnits is the subset of Units that can directly follow a numeric
// head without an intervening named token: house numbers, lanes, alleys and
// floors are the only units addressed by plain digits.
const restrictedUnits = "巷弄號樓"

// Token is the 4-tuple address element described by the data model: exactly
// one of No and Name is populated, Subno and Unit are independent.
type Token struct {
	No    string // decimal digits, or empty
	Subno string // "之" + decimal digits, or empty
	Name  string // one or more characters, or empty
	Unit  string // single rune from Units, or empty when elided
}

// Address is an ordered, finite token sequence.
type Address struct {
	Tokens []Token
}

// NewAddress normalizes and tokenizes s into an Address.
func NewAddress(s string) Address {
	return Address{Tokens: Tokenize(s)}
}

// Len reports the number of tokens.
func (a Address) Len() int { return len(a.Tokens) }

// Flat concatenates all fields of the selected tokens, matching the Python
// original's flat(sarg=None, *sargs) slicing convention:
//   - Flat() flattens every token.
//   - Flat(i) flattens the first i tokens (tokens[:i]).
//   - Flat(from, to) flattens tokens[from:to].
func (a Address) Flat(args ...int) string {
	from, to := 0, len(a.Tokens)
	switch len(args) {
	case 0:
	case 1:
		to = args[0]
	default:
		from, to = args[0], args[1]
	}
	return a.flatRange(from, to)
}

func (a Address) flatRange(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(a.Tokens) {
		to = len(a.Tokens)
	}
	if from >= to {
		return ""
	}
	var b []byte
	for _, tok := range a.Tokens[from:to] {
		b = appendToken(b, tok)
	}
	return string(b)
}

// PickToFlat concatenates the fields of the tokens at the given indices, in
// the order given.
func (a Address) PickToFlat(idxs ...int) string {
	var b []byte
	for _, idx := range idxs {
		i, ok := resolveIndex(len(a.Tokens), idx)
		if !ok {
			continue
		}
		b = appendToken(b, a.Tokens[i])
	}
	return string(b)
}

func appendToken(b []byte, tok Token) []byte {
	b = append(b, tok.No...)
	b = append(b, tok.Subno...)
	b = append(b, tok.Name...)
	b = append(b, tok.Unit...)
	return b
}

// Parse returns the (no, subno-digits) numeric pair of the token at idx,
// treating missing digits as 0 and an out-of-range index (including
// negative indices, Python-style, counted from the end) as (0, 0).
func (a Address) Parse(idx int) (no, subno int) {
	i, ok := resolveIndex(len(a.Tokens), idx)
	if !ok {
		return 0, 0
	}
	tok := a.Tokens[i]
	no = atoiOrZero(tok.No)
	if len(tok.Subno) > 0 {
		// Subno is "之" followed by digits; trim the leading rune.
		subno = atoiOrZero(tok.Subno[len("之"):])
	}
	return no, subno
}

func resolveIndex(n, idx int) (int, bool) {
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
