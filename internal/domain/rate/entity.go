package rate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownTimeZone = errors.New("unknown rate plan time zone")
)

// Plan is a billing configuration read from the store. The pricing engine
// never mutates plans; they are plain snapshots for the duration of one quote.
type Plan struct {
	ID               uuid.UUID
	Name             string
	Type             RateType
	Currency         string
	TimeZone         string
	GraceMinutes     *int32
	IncrementMinutes *int32
	DailyCapMinor    *int64
	Active           bool
}

// Location resolves the plan's IANA time zone.
func (p *Plan) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return nil, ErrUnknownTimeZone
	}
	return loc, nil
}

// Increment returns the rounding increment in minutes. Absent or non-positive
// values mean minute granularity (no rounding).
func (p *Plan) Increment() int {
	if p.IncrementMinutes == nil || *p.IncrementMinutes <= 0 {
		return 1
	}
	return int(*p.IncrementMinutes)
}

// WithinGrace reports whether a visit of the given length is fully waived.
func (p *Plan) WithinGrace(visitMinutes int64) bool {
	return p.GraceMinutes != nil && visitMinutes <= int64(*p.GraceMinutes)
}

// Rule is a filtered pricing clause within a plan. All filter fields are
// nil-means-any. StartMinute/EndMinute are relative to the visit start and
// only meaningful for TIERED plans; StartTime/EndTime are wall-clock windows
// with an exclusive end that may wrap past midnight.
type Rule struct {
	ID                uuid.UUID
	PlanID            uuid.UUID
	Position          int32
	StartMinute       *int32
	EndMinute         *int32
	StartTime         *TimeOfDay
	EndTime           *TimeOfDay
	DayOfWeek         *time.Weekday
	VehicleType       *VehicleType
	UserGroup         *UserGroup
	PricePerHourMinor *int64
	PriceFlatMinor    *int64
}

// PerHour returns the hourly price in minor units, zero when unset.
func (r *Rule) PerHour() int64 {
	if r.PricePerHourMinor == nil {
		return 0
	}
	return *r.PricePerHourMinor
}

// Flat returns the flat price in minor units, zero when unset.
func (r *Rule) Flat() int64 {
	if r.PriceFlatMinor == nil {
		return 0
	}
	return *r.PriceFlatMinor
}

// ContainsRelativeMinute reports whether the rule's tier window
// [StartMinute, EndMinute) covers the given minute offset from visit start.
// A rule without StartMinute has no tier window.
func (r *Rule) ContainsRelativeMinute(minute int) bool {
	if r.StartMinute == nil {
		return false
	}
	if minute < int(*r.StartMinute) {
		return false
	}
	return r.EndMinute == nil || minute < int(*r.EndMinute)
}

// LotAssignment links a plan to a parking lot. Higher precedence is the lower
// Priority value; the effective window is optional on either side.
type LotAssignment struct {
	ID            uuid.UUID
	LotID         uuid.UUID
	PlanID        uuid.UUID
	Priority      int32
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Active        bool
}

func (a *LotAssignment) EffectiveAt(at time.Time) bool {
	return a.Active && effectiveAt(a.EffectiveFrom, a.EffectiveTo, at)
}

// SpaceOverride is a plan binding for a single space. When one is effective
// it always wins over any lot-level assignment.
type SpaceOverride struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	PlanID        uuid.UUID
	Priority      int32
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Active        bool
}

func (o *SpaceOverride) EffectiveAt(at time.Time) bool {
	return o.Active && effectiveAt(o.EffectiveFrom, o.EffectiveTo, at)
}

// effectiveAt checks [from, to) containment with open-ended sides.
func effectiveAt(from, to *time.Time, at time.Time) bool {
	if from != nil && at.Before(*from) {
		return false
	}
	if to != nil && !at.Before(*to) {
		return false
	}
	return true
}
