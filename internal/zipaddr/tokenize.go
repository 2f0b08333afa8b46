package zipaddr

// Tokenize normalizes and lexes s into a token sequence. A digit run
// (optionally with a 之-subno suffix) forms a numeric head only when it is
// immediately followed by one of 巷弄號樓; otherwise the head is a name,
// taken as a single digit or the shortest run of two-or-more characters
// that lets the following unit resolve. The unit itself is either the
// literal character that terminates the head, or elided (empty) when what
// follows is end-of-string or another numeric head. A single leftover
// character that satisfies neither shape is dropped.
func Tokenize(s string) []Token {
	r := []rune(Normalize(s))
	n := len(r)

	var toks []Token
	i := 0
	for i < n {
		tok, consumed, ok := nextToken(r, i, n)
		if !ok {
			i++
			continue
		}
		toks = append(toks, tok)
		i += consumed
	}
	return toks
}

func nextToken(r []rune, i, n int) (Token, int, bool) {
	// Numeric head: digits, optional 之digits, required restricted unit.
	j := scanDigits(r, i, n)
	if j > i {
		end := j
		subno := ""
		if end < n && r[end] == '之' {
			k := scanDigits(r, end+1, n)
			if k > end+1 {
				subno = string(r[end:k])
				end = k
			}
		}
		if end < n && containsRune(restrictedUnits, r[end]) {
			return Token{No: string(r[i:j]), Subno: subno, Unit: string(r[end])}, end + 1 - i, true
		}
	}

	// Name head, single digit.
	if j > i {
		if unit, consumed, ok := matchUnitOrLookahead(r, i+1, n); ok {
			return Token{Name: string(r[i : i+1]), Unit: unit}, 1 + consumed, true
		}
	}

	// Name head, lazy 2+ characters.
	for l := 2; i+l <= n; l++ {
		if unit, consumed, ok := matchUnitOrLookahead(r, i+l, n); ok {
			return Token{Name: string(r[i : i+l]), Unit: unit}, l + consumed, true
		}
	}

	return Token{}, 0, false
}

// matchUnitOrLookahead implements the mandatory trailing group of the
// grammar: either a literal unit character is consumed, or the position
// satisfies the zero-width "followed by a numeric head, or end-of-string"
// lookahead, in which case the unit is elided.
func matchUnitOrLookahead(r []rune, pos, n int) (unit string, consumed int, ok bool) {
	if pos < n && containsRune(Units, r[pos]) {
		return string(r[pos]), 1, true
	}
	if pos == n {
		return "", 0, true
	}
	j := scanDigits(r, pos, n)
	if j > pos {
		end := j
		if end < n && r[end] == '之' {
			k := scanDigits(r, end+1, n)
			if k > end+1 {
				end = k
			}
		}
		if end < n && containsRune(restrictedUnits, r[end]) {
			return "", 0, true
		}
	}
	return "", 0, false
}

func scanDigits(r []rune, i, n int) int {
	j := i
	for j < n && r[j] >= '0' && r[j] <= '9' {
		j++
	}
	return j
}

func containsRune(set string, c rune) bool {
	for _, r := range set {
		if r == c {
			return true
		}
	}
	return false
}
