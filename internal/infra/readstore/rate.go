package readstore

import (
	"context"
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/infra"
	"parking-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RateReadStore serves the engine's read-only plan/rule/assignment lookups.
// It never writes; rate authoring happens elsewhere.
type RateReadStore struct {
	db *pgxpool.Pool
}

func NewRateReadStore(db *pgxpool.Pool) *RateReadStore {
	return &RateReadStore{db: db}
}

const planColumns = `id, name, rate_type, currency, time_zone, grace_minutes, increment_minutes, daily_cap_minor, active`

func (r *RateReadStore) PlanByID(ctx context.Context, id uuid.UUID) (*rate.Plan, error) {
	row := r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM rate_plans WHERE id = $1`, id)

	var (
		plan      rate.Plan
		rateType  string
		grace     pgtype.Int4
		increment pgtype.Int4
		dailyCap  pgtype.Int8
	)
	err := row.Scan(&plan.ID, &plan.Name, &rateType, &plan.Currency, &plan.TimeZone,
		&grace, &increment, &dailyCap, &plan.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rate plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate plan by ID", err)
	}

	plan.Type, err = rate.NewRateType(rateType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rate plan row", err)
	}
	plan.GraceMinutes = pgconv.Int32PtrFromPgtype(grace)
	plan.IncrementMinutes = pgconv.Int32PtrFromPgtype(increment)
	plan.DailyCapMinor = pgconv.Int64PtrFromPgtype(dailyCap)

	return &plan, nil
}

func (r *RateReadStore) RulesForPlan(ctx context.Context, planID uuid.UUID) ([]rate.Rule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, rate_plan_id, position, start_minute, end_minute,
		       start_time, end_time, day_of_week, vehicle_type, user_group,
		       price_per_hour_minor, price_flat_minor
		FROM rate_rules
		WHERE rate_plan_id = $1
		ORDER BY position, id`, planID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rate rules", err)
	}
	defer rows.Close()

	var rules []rate.Rule
	for rows.Next() {
		var (
			rule        rate.Rule
			startMinute pgtype.Int4
			endMinute   pgtype.Int4
			startTime   pgtype.Time
			endTime     pgtype.Time
			dayOfWeek   pgtype.Int4
			vehicleType pgtype.Text
			userGroup   pgtype.Text
			perHour     pgtype.Int8
			flat        pgtype.Int8
		)
		err := rows.Scan(&rule.ID, &rule.PlanID, &rule.Position, &startMinute, &endMinute,
			&startTime, &endTime, &dayOfWeek, &vehicleType, &userGroup, &perHour, &flat)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate rule row", err)
		}

		rule.StartMinute = pgconv.Int32PtrFromPgtype(startMinute)
		rule.EndMinute = pgconv.Int32PtrFromPgtype(endMinute)
		rule.StartTime = timeOfDayFromPgtype(startTime)
		rule.EndTime = timeOfDayFromPgtype(endTime)
		rule.DayOfWeek = weekdayFromPgtype(dayOfWeek)
		rule.PricePerHourMinor = pgconv.Int64PtrFromPgtype(perHour)
		rule.PriceFlatMinor = pgconv.Int64PtrFromPgtype(flat)

		rule.VehicleType, err = vehicleTypePtrFromPgtype(vehicleType)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert rate rule row", err)
		}
		rule.UserGroup, err = userGroupPtrFromPgtype(userGroup)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert rate rule row", err)
		}

		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rate rules", err)
	}
	return rules, nil
}

func (r *RateReadStore) OverridesForSpace(ctx context.Context, spaceID uuid.UUID) ([]rate.SpaceOverride, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, space_id, rate_plan_id, priority, effective_from, effective_to, active
		FROM space_rate_overrides
		WHERE space_id = $1`, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query space rate overrides", err)
	}
	defer rows.Close()

	var overrides []rate.SpaceOverride
	for rows.Next() {
		var (
			o    rate.SpaceOverride
			from pgtype.Timestamptz
			to   pgtype.Timestamptz
		)
		if err := rows.Scan(&o.ID, &o.SpaceID, &o.PlanID, &o.Priority, &from, &to, &o.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan space rate override row", err)
		}
		o.EffectiveFrom = pgconv.TimePtrFromPgtype(from)
		o.EffectiveTo = pgconv.TimePtrFromPgtype(to)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read space rate overrides", err)
	}
	return overrides, nil
}

func (r *RateReadStore) AssignmentsForLot(ctx context.Context, lotID uuid.UUID) ([]rate.LotAssignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lot_id, rate_plan_id, priority, effective_from, effective_to, active
		FROM lot_rate_assignments
		WHERE lot_id = $1`, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query lot rate assignments", err)
	}
	defer rows.Close()

	var assignments []rate.LotAssignment
	for rows.Next() {
		var (
			a    rate.LotAssignment
			from pgtype.Timestamptz
			to   pgtype.Timestamptz
		)
		if err := rows.Scan(&a.ID, &a.LotID, &a.PlanID, &a.Priority, &from, &to, &a.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lot rate assignment row", err)
		}
		a.EffectiveFrom = pgconv.TimePtrFromPgtype(from)
		a.EffectiveTo = pgconv.TimePtrFromPgtype(to)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lot rate assignments", err)
	}
	return assignments, nil
}

// timeOfDayFromPgtype converts a Postgres TIME column (microseconds since
// midnight) into a wall-clock boundary. Sub-minute precision is discarded;
// rule boundaries are defined at minute granularity.
func timeOfDayFromPgtype(pt pgtype.Time) *rate.TimeOfDay {
	if !pt.Valid {
		return nil
	}
	minutes := int(pt.Microseconds / int64(time.Minute/time.Microsecond))
	tod, err := rate.NewTimeOfDay(minutes/60, minutes%60)
	if err != nil {
		return nil
	}
	return &tod
}

// weekdayFromPgtype maps a 0-6 column (0 = Sunday) onto time.Weekday.
func weekdayFromPgtype(pi pgtype.Int4) *time.Weekday {
	if !pi.Valid {
		return nil
	}
	day := time.Weekday(pi.Int32 % 7)
	return &day
}

func vehicleTypePtrFromPgtype(pt pgtype.Text) (*rate.VehicleType, error) {
	if !pt.Valid {
		return nil, nil
	}
	v, err := rate.NewVehicleType(pt.String)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func userGroupPtrFromPgtype(pt pgtype.Text) (*rate.UserGroup, error) {
	if !pt.Valid {
		return nil, nil
	}
	g, err := rate.NewUserGroup(pt.String)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
