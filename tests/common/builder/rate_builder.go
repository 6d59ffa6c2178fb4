//go:build unit || e2e

package builder

import (
	"context"
	"testing"
	"time"

	"parking-pricing/internal/domain/rate"
	reqdto "parking-pricing/internal/handler/dto/request"
	"parking-pricing/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Int32P(v int32) *int32 { return &v }
func Int64P(v int64) *int64 { return &v }
func WeekdayP(v time.Weekday) *time.Weekday { return &v }
func VehicleP(v rate.VehicleType) *rate.VehicleType { return &v }
func GroupP(v rate.UserGroup) *rate.UserGroup { return &v }
func TimeOfDayP(s string) *rate.TimeOfDay {
	t := rate.MustTimeOfDay(s)
	return &t
}

type RatePlanBuilder struct {
	ID               uuid.UUID
	Name             string
	Type             rate.RateType
	Currency         string
	TimeZone         string
	GraceMinutes     *int32
	IncrementMinutes *int32
	DailyCapMinor    *int64
	Active           bool
}

func NewRatePlanBuilder() *RatePlanBuilder {
	return &RatePlanBuilder{
		ID:       uuid.New(),
		Name:     "Standard Hourly",
		Type:     rate.TypePerHour,
		Currency: "JPY",
		TimeZone: "Asia/Tokyo",
		Active:   true,
	}
}

func (b *RatePlanBuilder) With(mutate func(*RatePlanBuilder)) *RatePlanBuilder {
	mutate(b)
	return b
}

func (b *RatePlanBuilder) BuildDomain() *rate.Plan {
	return &rate.Plan{
		ID:               b.ID,
		Name:             b.Name,
		Type:             b.Type,
		Currency:         b.Currency,
		TimeZone:         b.TimeZone,
		GraceMinutes:     b.GraceMinutes,
		IncrementMinutes: b.IncrementMinutes,
		DailyCapMinor:    b.DailyCapMinor,
		Active:           b.Active,
	}
}

func (b *RatePlanBuilder) Insert(t *testing.T, db dbtest.DBLike) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO rate_plans (id, name, rate_type, currency, time_zone,
		    grace_minutes, increment_minutes, daily_cap_minor, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.Name, string(b.Type), b.Currency, b.TimeZone,
		b.GraceMinutes, b.IncrementMinutes, b.DailyCapMinor, b.Active)
	require.NoError(t, err)
	return b.ID
}

type RateRuleBuilder struct {
	ID                uuid.UUID
	PlanID            uuid.UUID
	Position          int32
	StartMinute       *int32
	EndMinute         *int32
	StartTime         *rate.TimeOfDay
	EndTime           *rate.TimeOfDay
	DayOfWeek         *time.Weekday
	VehicleType       *rate.VehicleType
	UserGroup         *rate.UserGroup
	PricePerHourMinor *int64
	PriceFlatMinor    *int64
}

func NewRateRuleBuilder(planID uuid.UUID) *RateRuleBuilder {
	return &RateRuleBuilder{
		ID:                uuid.New(),
		PlanID:            planID,
		Position:          1,
		PricePerHourMinor: Int64P(100),
	}
}

func (b *RateRuleBuilder) With(mutate func(*RateRuleBuilder)) *RateRuleBuilder {
	mutate(b)
	return b
}

func (b *RateRuleBuilder) BuildDomain() rate.Rule {
	return rate.Rule{
		ID:                b.ID,
		PlanID:            b.PlanID,
		Position:          b.Position,
		StartMinute:       b.StartMinute,
		EndMinute:         b.EndMinute,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		DayOfWeek:         b.DayOfWeek,
		VehicleType:       b.VehicleType,
		UserGroup:         b.UserGroup,
		PricePerHourMinor: b.PricePerHourMinor,
		PriceFlatMinor:    b.PriceFlatMinor,
	}
}

func (b *RateRuleBuilder) Insert(t *testing.T, db dbtest.DBLike) uuid.UUID {
	t.Helper()

	var startTime, endTime *string
	if b.StartTime != nil {
		s := b.StartTime.String()
		startTime = &s
	}
	if b.EndTime != nil {
		s := b.EndTime.String()
		endTime = &s
	}
	var dayOfWeek *int32
	if b.DayOfWeek != nil {
		d := int32(*b.DayOfWeek)
		dayOfWeek = &d
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO rate_rules (id, rate_plan_id, position, start_minute, end_minute,
		    start_time, end_time, day_of_week, vehicle_type, user_group,
		    price_per_hour_minor, price_flat_minor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.PlanID, b.Position, b.StartMinute, b.EndMinute,
		startTime, endTime, dayOfWeek, b.VehicleType, b.UserGroup,
		b.PricePerHourMinor, b.PriceFlatMinor)
	require.NoError(t, err)
	return b.ID
}

type LotAssignmentBuilder struct {
	ID            uuid.UUID
	LotID         uuid.UUID
	PlanID        uuid.UUID
	Priority      int32
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Active        bool
}

func NewLotAssignmentBuilder(lotID, planID uuid.UUID) *LotAssignmentBuilder {
	return &LotAssignmentBuilder{
		ID:       uuid.New(),
		LotID:    lotID,
		PlanID:   planID,
		Priority: 100,
		Active:   true,
	}
}

func (b *LotAssignmentBuilder) With(mutate func(*LotAssignmentBuilder)) *LotAssignmentBuilder {
	mutate(b)
	return b
}

func (b *LotAssignmentBuilder) BuildDomain() rate.LotAssignment {
	return rate.LotAssignment{
		ID:            b.ID,
		LotID:         b.LotID,
		PlanID:        b.PlanID,
		Priority:      b.Priority,
		EffectiveFrom: b.EffectiveFrom,
		EffectiveTo:   b.EffectiveTo,
		Active:        b.Active,
	}
}

func (b *LotAssignmentBuilder) Insert(t *testing.T, db dbtest.DBLike) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO lot_rate_assignments (id, lot_id, rate_plan_id, priority,
		    effective_from, effective_to, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.LotID, b.PlanID, b.Priority, b.EffectiveFrom, b.EffectiveTo, b.Active)
	require.NoError(t, err)
	return b.ID
}

type SpaceOverrideBuilder struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	PlanID        uuid.UUID
	Priority      int32
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Active        bool
}

func NewSpaceOverrideBuilder(spaceID, planID uuid.UUID) *SpaceOverrideBuilder {
	return &SpaceOverrideBuilder{
		ID:       uuid.New(),
		SpaceID:  spaceID,
		PlanID:   planID,
		Priority: 100,
		Active:   true,
	}
}

func (b *SpaceOverrideBuilder) With(mutate func(*SpaceOverrideBuilder)) *SpaceOverrideBuilder {
	mutate(b)
	return b
}

func (b *SpaceOverrideBuilder) BuildDomain() rate.SpaceOverride {
	return rate.SpaceOverride{
		ID:            b.ID,
		SpaceID:       b.SpaceID,
		PlanID:        b.PlanID,
		Priority:      b.Priority,
		EffectiveFrom: b.EffectiveFrom,
		EffectiveTo:   b.EffectiveTo,
		Active:        b.Active,
	}
}

func (b *SpaceOverrideBuilder) Insert(t *testing.T, db dbtest.DBLike) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO space_rate_overrides (id, space_id, rate_plan_id, priority,
		    effective_from, effective_to, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.SpaceID, b.PlanID, b.Priority, b.EffectiveFrom, b.EffectiveTo, b.Active)
	require.NoError(t, err)
	return b.ID
}

// QuoteRequestBuilder builds the HTTP request body for the quote endpoints.
type QuoteRequestBuilder struct {
	LotID       *uuid.UUID
	SpaceID     *uuid.UUID
	VehicleType string
	UserGroup   *string
	StartTime   time.Time
	EndTime     time.Time
}

func NewQuoteRequestBuilder() *QuoteRequestBuilder {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &QuoteRequestBuilder{
		VehicleType: string(rate.VehicleStandard),
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
	}
}

func (b *QuoteRequestBuilder) With(mutate func(*QuoteRequestBuilder)) *QuoteRequestBuilder {
	mutate(b)
	return b
}

func (b *QuoteRequestBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		LotID:       b.LotID,
		SpaceID:     b.SpaceID,
		VehicleType: b.VehicleType,
		UserGroup:   b.UserGroup,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}
}
