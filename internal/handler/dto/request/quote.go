package request

import (
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	LotID       *uuid.UUID `json:"lot_id,omitempty"`
	SpaceID     *uuid.UUID `json:"space_id,omitempty"`
	VehicleType string     `json:"vehicle_type" binding:"required"`
	UserGroup   *string    `json:"user_group,omitempty"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     time.Time  `json:"end_time" binding:"required"`
}

// ToQuery validates the enums and builds the usecase request. When the body
// omits user_group the authenticated caller's group applies.
func (r QuoteRequest) ToQuery(callerGroup rate.UserGroup) (queries.QuoteRequest, error) {
	vehicle, err := rate.NewVehicleType(r.VehicleType)
	if err != nil {
		return queries.QuoteRequest{}, err
	}

	group := callerGroup
	if r.UserGroup != nil {
		group, err = rate.NewUserGroup(*r.UserGroup)
		if err != nil {
			return queries.QuoteRequest{}, err
		}
	}

	return queries.QuoteRequest{
		LotID:       r.LotID,
		SpaceID:     r.SpaceID,
		VehicleType: vehicle,
		UserGroup:   group,
		Start:       r.StartTime,
		End:         r.EndTime,
	}, nil
}
