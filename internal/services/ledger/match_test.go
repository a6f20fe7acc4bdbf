package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GFOCUS-PRO-AB12CD", "GFOCUSPROAB12CD"},
		{"MBVCB.001.GFOCUS PRO AB12CD thanks", "MBVCB001GFOCUSPROAB12CDTHANKS"},
		{"gfocus pro ab12cd", "GFOCUSPROAB12CD"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestMatch_BankMangledContent(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Content: "MBVCB.001.GFOCUS PRO AB12CD thanks", AmountIn: 315000},
	}

	tx, found := Match("GFOCUS-PRO-AB12CD", txs)
	require.True(t, found)
	assert.Equal(t, "1", tx.ID)
}

func TestMatch_FirstInFeedOrderWins(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Content: "unrelated"},
		{ID: "2", Content: "gfocus-pro-ab12cd first", AmountIn: 100},
		{ID: "3", Content: "GFOCUS PRO AB12CD second, bigger", AmountIn: 999999},
	}

	// Feed order wins, not amount or date.
	tx, found := Match("GFOCUS-PRO-AB12CD", txs)
	require.True(t, found)
	assert.Equal(t, "2", tx.ID)
}

func TestMatch_NoMatch(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Content: "GFOCUS PRO ZZZZZZ"},
	}

	_, found := Match("GFOCUS-PRO-AB12CD", txs)
	assert.False(t, found)

	_, found = Match("GFOCUS-PRO-AB12CD", nil)
	assert.False(t, found)
}

func TestMatch_EmptyReferenceNeverMatches(t *testing.T) {
	txs := []Transaction{{ID: "1", Content: "anything"}}

	_, found := Match("", txs)
	assert.False(t, found)

	_, found = Match("-. ", txs)
	assert.False(t, found)
}
