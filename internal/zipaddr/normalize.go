package zipaddr

import "strings"

// hanDigits maps the Han numerals 一–九 to their ASCII digit.
var hanDigits = map[rune]byte{
	'一': '1', '二': '2', '三': '3', '四': '4', '五': '5',
	'六': '6', '七': '7', '八': '8', '九': '9',
}

// fullWidthDigits maps the full-width digits ０–９ to their ASCII digit.
var fullWidthDigits = map[rune]byte{
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',
}

// singleCharSubst is the replacement for the lone punctuation/spacing
// characters the normalizer folds or drops.
var singleCharSubst = map[rune]string{
	' ': "", '　': "", ',': "", '，': "",
	'台': "臺", '~': "之", '-': "之",
}

// numeralUnitLookahead is the set of units that can directly follow a
// Han-numeral run being expanded (segment/road/lane/alley/house/floor).
const numeralUnitLookahead = "段路街巷弄號樓"

// Normalize rewrites s through the ordered substitution table described by
// the address normalization rules: ASCII-prefix stripping, 臺灣省/台灣省
// elision, punctuation/spacing folding, the 北市→臺北市 correction, and
// full/Han-numeral digit expansion. It never errors; malformed input simply
// passes characters through unchanged where no rule applies.
func Normalize(s string) string {
	r := []rune(s)
	n := len(r)
	i := 0

	// Leading ASCII run is stripped once, only at the very start.
	if n > 0 {
		j := 0
		for j < n && r[j] <= 0x7F {
			j++
		}
		i = j
	}

	var b strings.Builder
	for i < n {
		if out, consumed, ok := tryReplace(r, i, n); ok {
			b.WriteString(out)
			i += consumed
			continue
		}
		b.WriteRune(r[i])
		i++
	}
	return b.String()
}

func tryReplace(r []rune, i, n int) (string, int, bool) {
	if out, consumed, ok := tryTaiwanProvince(r, i, n); ok {
		return out, consumed, ok
	}
	if out, ok := singleCharSubst[r[i]]; ok {
		return out, 1, true
	}
	if out, consumed, ok := tryTaipeiCity(r, i, n); ok {
		return out, consumed, ok
	}
	if d, ok := fullWidthDigits[r[i]]; ok {
		return string(d), 1, true
	}
	if out, consumed, ok := tryHanNumeral(r, i, n); ok {
		return out, consumed, ok
	}
	return "", 0, false
}

// tryTaiwanProvince matches "臺灣省?" or "台灣省?", greedily including the
// trailing 省, unless doing so is immediately followed by 大道 or 港務 — in
// which case it backs off to the shorter form, re-checking the same
// exclusion there.
func tryTaiwanProvince(r []rune, i, n int) (string, int, bool) {
	if !(runesAt(r, i, n, "臺灣") || runesAt(r, i, n, "台灣")) {
		return "", 0, false
	}
	base := 2
	if i+base < n && r[i+base] == '省' {
		if !(runesAt(r, i+base+1, n, "大道") || runesAt(r, i+base+1, n, "港務")) {
			return "", base + 1, true
		}
	}
	if !(runesAt(r, i+base, n, "大道") || runesAt(r, i+base, n, "港務")) {
		return "", base, true
	}
	return "", 0, false
}

// tryTaipeiCity matches "北市" unless preceded by 臺/台/新/竹 (already part of
// a larger, correctly-formed place name) or followed by 場 (北市場).
func tryTaipeiCity(r []rune, i, n int) (string, int, bool) {
	if !runesAt(r, i, n, "北市") {
		return "", 0, false
	}
	if i > 0 {
		switch r[i-1] {
		case '臺', '台', '新', '竹':
			return "", 0, false
		}
	}
	if runesAt(r, i+2, n, "場") {
		return "", 0, false
	}
	return "臺北市", 2, true
}

// tryHanNumeral matches a Han-numeral run of 1–3 characters immediately
// followed (without consuming it) by one of 段路街巷弄號樓, expanding it to
// its ASCII decimal value. The longest valid shape at i wins.
func tryHanNumeral(r []rune, i, n int) (string, int, bool) {
	followedByUnit := func(pos int) bool {
		return pos < n && strings.ContainsRune(numeralUnitLookahead, r[pos])
	}

	d0, isDigit0 := hanDigits[r[i]]
	isTen0 := r[i] == '十'

	// Length 3: digit 十 digit.
	if isDigit0 && i+2 < n && r[i+1] == '十' {
		if d2, ok := hanDigits[r[i+2]]; ok && followedByUnit(i+3) {
			return string([]byte{d0, d2}), 3, true
		}
	}

	// Length 2, first char a plain digit (no 十): "dd" shape.
	if isDigit0 && i+1 < n {
		if d1, ok := hanDigits[r[i+1]]; ok && followedByUnit(i+2) {
			return "1" + string(d1), 2, true
		}
	}

	// Length 2, first char 十: "十d" shape.
	if isTen0 && i+1 < n {
		if d1, ok := hanDigits[r[i+1]]; ok && followedByUnit(i+2) {
			return "1" + string(d1), 2, true
		}
	}

	// Length 1: a lone digit.
	if isDigit0 && followedByUnit(i+1) {
		return string(d0), 1, true
	}

	// Length 1: a lone 十, read as ten.
	if isTen0 && followedByUnit(i+1) {
		return "10", 1, true
	}

	return "", 0, false
}

func runesAt(r []rune, i, n int, s string) bool {
	sr := []rune(s)
	if i < 0 || i+len(sr) > n {
		return false
	}
	for k, c := range sr {
		if r[i+k] != c {
			return false
		}
	}
	return true
}
