package ledger

import "strings"

// Banks mangle transfer notes: casing varies and separators get
// rewritten or dropped. Normalization upper-cases and strips the
// separators so "GFOCUS-PRO-AB12CD" still matches
// "MBVCB.001.GFOCUS PRO AB12CD thanks".
var separatorStripper = strings.NewReplacer("-", "", " ", "", ".", "")

// Normalize prepares a reference or a free-text transfer note for
// substring comparison.
func Normalize(s string) string {
	return separatorStripper.Replace(strings.ToUpper(s))
}

// Match returns the first feed-order transaction whose normalized
// content contains the normalized reference. A short or reused suffix
// could in principle match an unrelated transfer; first match in feed
// order wins, with no further disambiguation.
func Match(reference string, txs []Transaction) (*Transaction, bool) {
	needle := Normalize(reference)
	if needle == "" {
		return nil, false
	}
	for i := range txs {
		if strings.Contains(Normalize(txs[i].Content), needle) {
			return &txs[i], true
		}
	}
	return nil, false
}
