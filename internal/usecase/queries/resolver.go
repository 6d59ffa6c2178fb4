package queries

import (
	"context"
	"sort"
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

// resolvePlan picks the effective rate plan for a (lot, space, instant)
// triple. Space overrides always beat lot assignments. Among simultaneously
// effective candidates the lowest Priority value wins, ties broken by id so
// resolution is deterministic regardless of store ordering. Candidates whose
// plan is inactive are passed over.
func (q *quoteQueriesImpl) resolvePlan(ctx context.Context, lotID, spaceID *uuid.UUID, at time.Time) (*rate.Plan, error) {
	if lotID == nil && spaceID == nil {
		return nil, errs.ErrInvalidQuoteTarget
	}

	if spaceID != nil {
		overrides, err := q.store.OverridesForSpace(ctx, *spaceID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load space rate overrides")
		}
		candidates := make([]planCandidate, 0, len(overrides))
		for i := range overrides {
			if overrides[i].EffectiveAt(at) {
				candidates = append(candidates, planCandidate{
					planID:   overrides[i].PlanID,
					priority: overrides[i].Priority,
					id:       overrides[i].ID,
				})
			}
		}
		if plan, err := q.firstActivePlan(ctx, candidates); plan != nil || err != nil {
			return plan, err
		}
	}

	if lotID != nil {
		assignments, err := q.store.AssignmentsForLot(ctx, *lotID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load lot rate assignments")
		}
		candidates := make([]planCandidate, 0, len(assignments))
		for i := range assignments {
			if assignments[i].EffectiveAt(at) {
				candidates = append(candidates, planCandidate{
					planID:   assignments[i].PlanID,
					priority: assignments[i].Priority,
					id:       assignments[i].ID,
				})
			}
		}
		if plan, err := q.firstActivePlan(ctx, candidates); plan != nil || err != nil {
			return plan, err
		}
	}

	if spaceID != nil && lotID == nil {
		return nil, errs.ErrStandaloneSpaceRateNotFound
	}
	return nil, errs.ErrRatePlanNotFound
}

type planCandidate struct {
	planID   uuid.UUID
	priority int32
	id       uuid.UUID
}

// firstActivePlan walks candidates in precedence order and returns the first
// one backed by an active plan. (nil, nil) means no candidate qualified.
func (q *quoteQueriesImpl) firstActivePlan(ctx context.Context, candidates []planCandidate) (*rate.Plan, error) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		return candidates[i].id.String() < candidates[j].id.String()
	})

	for _, c := range candidates {
		plan, err := q.store.PlanByID(ctx, c.planID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load rate plan")
		}
		if plan != nil && plan.Active {
			return plan, nil
		}
	}
	return nil, nil
}
