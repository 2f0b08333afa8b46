// Package ziprule implements the directory-row rule language: the
// qualifiers ("單", "雙", "以上", "附號全", ...) attached to a directory row
// that describe which house numbers within a matched address prefix the
// row actually covers.
package ziprule

import (
	"strings"

	"github.com/zipcodetw/zipcodetw/internal/zipaddr"
)

// qualifiers, longest first so a greedy left-to-right scan prefers the
// longest applicable qualifier at any position (mirrors the original
// alternation order: 及以上附號|含附號以下|含附號全|含附號|以下|以上|附號全|連|至|單|雙|全).
var qualifiers = []string{
	"及以上附號", "含附號以下", "含附號全", "含附號",
	"以下", "以上",
	"附號全",
	"連", "至", "單", "雙", "全",
}

// singleCharQualifiers must be followed by a digit, 全, or end-of-string —
// 連/至/單/雙/全 are common characters that otherwise occur inside ordinary
// place names, so they only count as qualifiers in this position.
var singleCharQualifiers = map[string]bool{
	"連": true, "至": true, "單": true, "雙": true, "全": true,
}

// Rule is a parsed directory-row rule: the residual address tokens plus the
// set of qualifiers stripped out of the rule string.
type Rule struct {
	zipaddr.Address
	Qualifiers map[string]bool
}

// Parse splits ruleStr into its address residual and qualifier set, then
// tokenizes the residual the same way an ordinary address is tokenized.
func Parse(ruleStr string) Rule {
	qualifiers, residual := part(ruleStr)
	return Rule{Address: zipaddr.Address{Tokens: zipaddr.Tokenize(residual)}, Qualifiers: qualifiers}
}

// part extracts the qualifier set from a normalized rule string, returning
// the qualifiers found and the address residual with each qualifier
// occurrence removed — except 附號全, which contributes its "號" back to
// the residual (it still denotes a house-number unit), and 連, which is
// purely a separator the original author wrote and carries no meaning.
func part(ruleStr string) (map[string]bool, string) {
	s := []rune(zipaddr.Normalize(ruleStr))
	n := len(s)
	found := map[string]bool{}

	var b strings.Builder
	i := 0
	for i < n {
		q, consumed := matchQualifier(s, i, n)
		if consumed == 0 {
			b.WriteRune(s[i])
			i++
			continue
		}
		switch q {
		case "連":
			// discarded entirely, contributes nothing
		case "附號全":
			found[q] = true
			b.WriteString("號")
		default:
			found[q] = true
		}
		i += consumed
	}
	return found, b.String()
}

func matchQualifier(s []rune, i, n int) (string, int) {
	for _, q := range qualifiers {
		qr := []rune(q)
		if i+len(qr) > n {
			continue
		}
		if string(s[i:i+len(qr)]) != q {
			continue
		}
		if singleCharQualifiers[q] {
			// lookahead: next must be a digit, 全, or end-of-string
			end := i + len(qr)
			if end < n {
				c := s[end]
				if !(c >= '0' && c <= '9') && c != '全' {
					continue
				}
			}
		}
		return q, len(qr)
	}
	return "", 0
}

// Match reports whether a matches this rule: the rule's tokens (excluding
// whatever tail is reserved for the qualifiers) must equal addr's tokens
// position-by-position, and addr's token just past that prefix must
// satisfy every qualifier's predicate.
func (r Rule) Match(addr zipaddr.Address) bool {
	myLastPos := len(r.Tokens) - 1
	if len(r.Qualifiers) > 0 && !r.Qualifiers["全"] {
		myLastPos--
	}
	if r.Qualifiers["至"] {
		myLastPos--
	}

	if myLastPos >= addr.Len() {
		return false
	}

	for i := myLastPos; i >= 0; i-- {
		if r.Tokens[i] != addr.Tokens[i] {
			return false
		}
	}

	hisNo, hisSubno := addr.Parse(myLastPos + 1)
	if len(r.Qualifiers) > 0 && hisNo == 0 && hisSubno == 0 {
		return false
	}

	myNo, mySubno := r.Parse(-1)
	myAsstNo, myAsstSubno := r.Parse(-2)

	for rt := range r.Qualifiers {
		ok := true
		switch rt {
		case "單":
			ok = hisNo%2 == 1
		case "雙":
			ok = hisNo%2 == 0
		case "以上":
			ok = ge(hisNo, hisSubno, myNo, mySubno)
		case "以下":
			ok = le(hisNo, hisSubno, myNo, mySubno)
		case "至":
			ok = (ge(hisNo, hisSubno, myAsstNo, myAsstSubno) && le(hisNo, hisSubno, myNo, mySubno)) ||
				(r.Qualifiers["含附號全"] && hisNo == myNo)
		case "含附號":
			ok = hisNo == myNo
		case "附號全":
			ok = hisNo == myNo && hisSubno > 0
		case "及以上附號":
			ok = ge(hisNo, hisSubno, myNo, mySubno)
		case "含附號以下":
			ok = le(hisNo, hisSubno, myNo, mySubno) || hisNo == myNo
		}
		if !ok {
			return false
		}
	}

	return true
}

func ge(no1, subno1, no2, subno2 int) bool {
	if no1 != no2 {
		return no1 > no2
	}
	return subno1 >= subno2
}

func le(no1, subno1, no2, subno2 int) bool {
	if no1 != no2 {
		return no1 < no2
	}
	return subno1 <= subno2
}
