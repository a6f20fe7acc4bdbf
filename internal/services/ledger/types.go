package ledger

import (
	"strconv"
	"strings"
)

// Amount is a transfer amount as reported by the aggregator. The feed
// has been observed sending both JSON numbers and numeric strings
// ("315000.00"), so decoding tolerates either.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Transaction is one entry of the aggregator's read-only feed. It is
// never stored or mutated by this system.
type Transaction struct {
	ID              string `json:"id"`
	Content         string `json:"transaction_content"`
	AmountIn        Amount `json:"amount_in"`
	TransactionDate string `json:"transaction_date"`
}

type feedResponse struct {
	Transactions []Transaction `json:"transactions"`
}
