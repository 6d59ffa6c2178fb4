package response

import (
	"encoding/json"

	"parking-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	RatePlanID   uuid.UUID       `json:"ratePlanId"`
	RatePlanName string          `json:"ratePlanName"`
	Currency     string          `json:"currency"`
	AmountMinor  int64           `json:"amountMinor"`
	Breakdown    json.RawMessage `json:"breakdown"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{}
	_ = copier.Copy(resp, rm)
	// the breakdown is already a JSON object string; embed it verbatim
	resp.Breakdown = json.RawMessage(rm.Breakdown)
	return resp
}
