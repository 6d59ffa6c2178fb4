//go:build unit

package rate_test

import (
	"testing"
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceView struct {
	Label      string
	Minutes    int
	RelMinutes int
}

func viewSlices(slices []rate.VisitSlice) []sliceView {
	out := make([]sliceView, len(slices))
	for i, s := range slices {
		out[i] = sliceView{Label: s.Label(), Minutes: s.Minutes(), RelMinutes: s.RelativeMinutesFromStart()}
	}
	return out
}

func TestSliceByDayAndTime(t *testing.T) {
	loc := time.UTC
	planID := uuid.New()

	t.Run("single day without time rules stays one slice", func(t *testing.T) {
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
		slices := rate.SliceByDayAndTime(start, start.Add(90*time.Minute), nil, loc)

		expected := []sliceView{
			{Label: "2026-03-02 10:00-11:30", Minutes: 90, RelMinutes: 0},
		}
		if diff := cmp.Diff(expected, viewSlices(slices)); diff != "" {
			t.Errorf("slices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("visit spanning midnight splits at the day boundary", func(t *testing.T) {
		start := time.Date(2026, 3, 2, 23, 0, 0, 0, loc)
		slices := rate.SliceByDayAndTime(start, start.Add(2*time.Hour), nil, loc)

		expected := []sliceView{
			{Label: "2026-03-02 23:00-00:00", Minutes: 60, RelMinutes: 0},
			{Label: "2026-03-03 00:00-01:00", Minutes: 60, RelMinutes: 60},
		}
		if diff := cmp.Diff(expected, viewSlices(slices)); diff != "" {
			t.Errorf("slices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rule boundaries inside the visit split slices", func(t *testing.T) {
		rules := []rate.Rule{
			builder.NewRateRuleBuilder(planID).
				With(func(b *builder.RateRuleBuilder) {
					b.StartTime = builder.TimeOfDayP("08:00")
					b.EndTime = builder.TimeOfDayP("18:00")
				}).
				BuildDomain(),
		}

		start := time.Date(2026, 3, 2, 7, 0, 0, 0, loc)
		slices := rate.SliceByDayAndTime(start, start.Add(3*time.Hour), rules, loc)

		expected := []sliceView{
			{Label: "2026-03-02 07:00-08:00", Minutes: 60, RelMinutes: 0},
			{Label: "2026-03-02 08:00-10:00", Minutes: 120, RelMinutes: 60},
		}
		if diff := cmp.Diff(expected, viewSlices(slices)); diff != "" {
			t.Errorf("slices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("boundary on the visit edge produces no empty slice", func(t *testing.T) {
		rules := []rate.Rule{
			builder.NewRateRuleBuilder(planID).
				With(func(b *builder.RateRuleBuilder) {
					b.StartTime = builder.TimeOfDayP("10:00")
					b.EndTime = builder.TimeOfDayP("12:00")
				}).
				BuildDomain(),
		}

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
		slices := rate.SliceByDayAndTime(start, start.Add(2*time.Hour), rules, loc)

		require.Len(t, slices, 1)
		assert.Equal(t, 120, slices[0].Minutes())
	})

	t.Run("union of slices is exactly the visit", func(t *testing.T) {
		rules := []rate.Rule{
			builder.NewRateRuleBuilder(planID).
				With(func(b *builder.RateRuleBuilder) {
					b.StartTime = builder.TimeOfDayP("22:00")
					b.EndTime = builder.TimeOfDayP("06:00")
				}).
				BuildDomain(),
		}

		start := time.Date(2026, 3, 2, 20, 30, 0, 0, loc)
		end := time.Date(2026, 3, 3, 7, 15, 0, 0, loc)
		slices := rate.SliceByDayAndTime(start, end, rules, loc)

		require.NotEmpty(t, slices)
		assert.True(t, slices[0].Start().Equal(start))
		assert.True(t, slices[len(slices)-1].End().Equal(end))
		total := 0
		for i, s := range slices {
			if i > 0 {
				assert.True(t, s.Start().Equal(slices[i-1].End()), "slices must be contiguous")
				assert.Equal(t, total, s.RelativeMinutesFromStart())
			}
			total += s.Minutes()
		}
		assert.Equal(t, int(end.Sub(start)/time.Minute), total)
	})

	t.Run("empty interval yields no slices", func(t *testing.T) {
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
		assert.Nil(t, rate.SliceByDayAndTime(start, start, nil, loc))
		assert.Nil(t, rate.SliceByDayAndTime(start, start.Add(-time.Hour), nil, loc))
	})
}

func TestVisitSlice_MatchedRule(t *testing.T) {
	loc := time.UTC
	planID := uuid.New()
	// Monday
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)

	slice := func(rules []rate.Rule) rate.VisitSlice {
		slices := rate.SliceByDayAndTime(start, start.Add(time.Hour), rules, loc)
		require.Len(t, slices, 1)
		return slices[0]
	}

	t.Run("first matching rule in stored order wins", func(t *testing.T) {
		evRule := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 1
				b.VehicleType = builder.VehicleP(rate.VehicleEV)
				b.PricePerHourMinor = builder.Int64P(50)
			}).
			BuildDomain()
		fallback := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 2
				b.PricePerHourMinor = builder.Int64P(100)
			}).
			BuildDomain()

		s := slice([]rate.Rule{evRule, fallback})

		matched := s.MatchedRule(rate.VehicleEV, rate.GroupRegular)
		require.NotNil(t, matched)
		assert.Equal(t, evRule.ID, matched.ID)

		matched = s.MatchedRule(rate.VehicleStandard, rate.GroupRegular)
		require.NotNil(t, matched)
		assert.Equal(t, fallback.ID, matched.ID)
	})

	t.Run("user group filter", func(t *testing.T) {
		staffOnly := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.UserGroup = builder.GroupP(rate.GroupStaff)
			}).
			BuildDomain()

		s := slice([]rate.Rule{staffOnly})
		assert.NotNil(t, s.MatchedRule(rate.VehicleStandard, rate.GroupStaff))
		assert.Nil(t, s.MatchedRule(rate.VehicleStandard, rate.GroupRegular))
	})

	t.Run("day of week filter", func(t *testing.T) {
		mondayOnly := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.DayOfWeek = builder.WeekdayP(time.Monday)
			}).
			BuildDomain()
		sundayOnly := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.DayOfWeek = builder.WeekdayP(time.Sunday)
			}).
			BuildDomain()

		s := slice([]rate.Rule{sundayOnly, mondayOnly})
		matched := s.MatchedRule(rate.VehicleStandard, rate.GroupRegular)
		require.NotNil(t, matched)
		assert.Equal(t, mondayOnly.ID, matched.ID)
	})

	t.Run("time window checks the slice start", func(t *testing.T) {
		night := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.StartTime = builder.TimeOfDayP("22:00")
				b.EndTime = builder.TimeOfDayP("06:00")
			}).
			BuildDomain()

		// 10:00 start is outside the overnight window
		s := slice([]rate.Rule{night})
		assert.Nil(t, s.MatchedRule(rate.VehicleStandard, rate.GroupRegular))

		nightStart := time.Date(2026, 3, 2, 23, 0, 0, 0, loc)
		slices := rate.SliceByDayAndTime(nightStart, nightStart.Add(30*time.Minute), []rate.Rule{night}, loc)
		require.Len(t, slices, 1)
		assert.NotNil(t, slices[0].MatchedRule(rate.VehicleStandard, rate.GroupRegular))
	})

	t.Run("tier window keys off the relative minute offset", func(t *testing.T) {
		firstTwoHours := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 1
				b.StartMinute = builder.Int32P(0)
				b.EndMinute = builder.Int32P(120)
			}).
			BuildDomain()
		after := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 2
				b.StartMinute = builder.Int32P(120)
			}).
			BuildDomain()
		rules := []rate.Rule{firstTwoHours, after}

		slices := rate.SliceByDayAndTime(start, start.Add(26*time.Hour), rules, loc)
		require.Len(t, slices, 2)

		m0 := slices[0].MatchedRule(rate.VehicleStandard, rate.GroupRegular)
		require.NotNil(t, m0)
		assert.Equal(t, firstTwoHours.ID, m0.ID)

		// second slice starts 840 minutes in, past the first tier
		m1 := slices[1].MatchedRule(rate.VehicleStandard, rate.GroupRegular)
		require.NotNil(t, m1)
		assert.Equal(t, after.ID, m1.ID)
	})

	t.Run("no matching rule returns nil", func(t *testing.T) {
		motorcycleOnly := builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.VehicleType = builder.VehicleP(rate.VehicleMotorcycle)
			}).
			BuildDomain()

		s := slice([]rate.Rule{motorcycleOnly})
		assert.Nil(t, s.MatchedRule(rate.VehicleStandard, rate.GroupRegular))
	})
}
