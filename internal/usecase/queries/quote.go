package queries

import (
	"context"
	"log/slog"
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type QuoteView struct {
	RatePlanID   uuid.UUID `json:"rate_plan_id"`
	RatePlanName string    `json:"rate_plan_name"`
	Currency     string    `json:"currency"`
	AmountMinor  int64     `json:"amount_minor"`
	Breakdown    string    `json:"breakdown"`
}

type QuoteRequest struct {
	LotID       *uuid.UUID
	SpaceID     *uuid.UUID
	VehicleType rate.VehicleType
	UserGroup   rate.UserGroup
	Start       time.Time
	End         time.Time
}

// RateReadStore is the read-only rule/plan lookup surface the engine depends
// on. Implementations must return rules in stored order (position ascending).
type RateReadStore interface {
	OverridesForSpace(ctx context.Context, spaceID uuid.UUID) ([]rate.SpaceOverride, error)
	AssignmentsForLot(ctx context.Context, lotID uuid.UUID) ([]rate.LotAssignment, error)
	PlanByID(ctx context.Context, id uuid.UUID) (*rate.Plan, error)
	RulesForPlan(ctx context.Context, planID uuid.UUID) ([]rate.Rule, error)
}

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	store  RateReadStore
	pricer rate.DynamicPricer
}

func NewQuoteQueries(store RateReadStore, pricer rate.DynamicPricer) QuoteQueries {
	return &quoteQueriesImpl{store: store, pricer: pricer}
}

// Quote prices the visit [req.Start, req.End) against the plan resolved for
// the requested lot/space. The computation is a pure function of its inputs
// plus the rule-set snapshot read during the call; it holds no state between
// calls and is safe for concurrent use.
func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	if !req.End.After(req.Start) {
		return nil, errs.ErrInvalidInterval
	}

	plan, err := q.resolvePlan(ctx, req.LotID, req.SpaceID, req.Start)
	if err != nil {
		return nil, err
	}

	loc, err := plan.Location()
	if err != nil {
		return nil, errs.Wrap(err, "rate plan "+plan.ID.String())
	}
	start := req.Start.In(loc)
	end := req.End.In(loc)

	visitMinutes := int64(end.Sub(start) / time.Minute)
	if plan.WithinGrace(visitMinutes) {
		return quoteView(plan, rate.Zero(plan.Currency)), nil
	}

	rules, err := q.store.RulesForPlan(ctx, plan.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rate rules")
	}

	acc := newCapAccumulator(plan.DailyCapMinor)
	for _, slice := range rate.SliceByDayAndTime(start, end, rules, loc) {
		rule := slice.MatchedRule(req.VehicleType, req.UserGroup)
		if rule == nil {
			// unrated time deliberately contributes nothing
			continue
		}
		billed := roundUpToIncrement(slice.Minutes(), plan.Increment())
		acc.add(slice.Day(), slice.Label(), q.sliceAmount(plan, rules, slice, rule, billed))
	}

	total, lines := acc.result()
	return quoteView(plan, rate.NewMoney(plan.Currency, total, lines)), nil
}

// sliceAmount computes one slice's minor-unit amount per the plan type.
// Unsupported or unconfigured types degrade to zero with a warning, matching
// the permissive default used for unmatched rules.
func (q *quoteQueriesImpl) sliceAmount(plan *rate.Plan, rules []rate.Rule, slice rate.VisitSlice, rule *rate.Rule, billedMinutes int) int64 {
	switch {
	case plan.Type == rate.TypeFlatPerEntry:
		return rule.Flat()
	case plan.Type.Hourly():
		return hourlyAmount(billedMinutes, rule.PerHour())
	case plan.Type == rate.TypeTiered:
		return tieredAmount(rules, slice.RelativeMinutesFromStart(), billedMinutes)
	case plan.Type == rate.TypeFree:
		return 0
	case plan.Type == rate.TypeDynamic:
		amount, err := q.pricer.PriceSliceMinor(plan, slice, billedMinutes)
		if err != nil {
			slog.Warn("dynamic pricing unavailable, slice priced to zero",
				"rate_plan_id", plan.ID, "slice", slice.Label(), "error", err.Error())
			return 0
		}
		return amount
	default:
		slog.Warn("unsupported rate type, slice priced to zero",
			"rate_plan_id", plan.ID, "rate_type", plan.Type.String(), "error", errs.ErrUnsupportedRateType.Error())
		return 0
	}
}

// tieredAmount looks up the tier whose relative-minute window contains the
// slice's offset from visit start. A flat tier price wins over an hourly one.
func tieredAmount(rules []rate.Rule, relativeMinutes, billedMinutes int) int64 {
	for i := range rules {
		r := &rules[i]
		if !r.ContainsRelativeMinute(relativeMinutes) {
			continue
		}
		if r.PriceFlatMinor != nil {
			return *r.PriceFlatMinor
		}
		return hourlyAmount(billedMinutes, r.PerHour())
	}
	return 0
}

// hourlyAmount bills every started hour of the billed minutes.
func hourlyAmount(billedMinutes int, perHourMinor int64) int64 {
	hours := int64((billedMinutes + 59) / 60)
	return hours * perHourMinor
}

func roundUpToIncrement(minutes, increment int) int {
	if increment <= 1 {
		return minutes
	}
	remainder := minutes % increment
	if remainder == 0 {
		return minutes
	}
	return minutes + increment - remainder
}

func quoteView(plan *rate.Plan, money rate.Money) *QuoteView {
	return &QuoteView{
		RatePlanID:   plan.ID,
		RatePlanName: plan.Name,
		Currency:     money.Currency(),
		AmountMinor:  money.AmountMinor(),
		Breakdown:    money.Breakdown(),
	}
}
