package rate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// BreakdownLine is one labeled amount in a quote breakdown. Lines keep the
// order in which slices were priced.
type BreakdownLine struct {
	Label       string
	AmountMinor int64
}

// Money is an immutable minor-unit amount with a serialized line-item
// breakdown. The breakdown is diagnostic only; the amount is authoritative.
type Money struct {
	currency    string
	amountMinor int64
	breakdown   string
}

func Zero(currency string) Money {
	return Money{currency: currency, amountMinor: 0, breakdown: "{}"}
}

func NewMoney(currency string, amountMinor int64, lines []BreakdownLine) Money {
	return Money{
		currency:    currency,
		amountMinor: amountMinor,
		breakdown:   serializeBreakdown(lines),
	}
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

// Breakdown returns the ordered label→amount map as a JSON object string.
func (m Money) Breakdown() string {
	return m.breakdown
}

// serializeBreakdown renders lines as a JSON object preserving line order.
// Serialization failures degrade to "{}" rather than failing the quote.
func serializeBreakdown(lines []BreakdownLine) string {
	if len(lines) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, line := range lines {
		label, err := json.Marshal(line.Label)
		if err != nil {
			return "{}"
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(label)
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(line.AmountMinor, 10))
	}
	b.WriteByte('}')
	return b.String()
}
