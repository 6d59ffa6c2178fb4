package rate

import (
	"sort"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"
)

// VisitSlice is a maximal sub-interval of a visit that lies within one
// calendar day and between two adjacent rule time boundaries, expressed in
// the plan's time zone. Slices are built by SliceByDayAndTime, consumed by
// the pricing engine, and discarded; they are never persisted.
type VisitSlice struct {
	start               time.Time
	end                 time.Time
	rules               []Rule
	relMinutesFromStart int
}

func (s VisitSlice) Start() time.Time {
	return s.start
}

func (s VisitSlice) End() time.Time {
	return s.end
}

// RelativeMinutesFromStart is the sum of all prior slice durations, i.e. the
// minute offset of this slice from the visit's original start. TIERED rule
// matching keys off this value.
func (s VisitSlice) RelativeMinutesFromStart() int {
	return s.relMinutesFromStart
}

func (s VisitSlice) Minutes() int {
	return int(s.end.Sub(s.start) / time.Minute)
}

// Day is the slice's calendar day in the plan zone, used for daily caps.
func (s VisitSlice) Day() string {
	return s.start.Format(dayLayout)
}

// Label identifies the slice in a quote breakdown, e.g.
// "2026-03-02 22:00-23:30".
func (s VisitSlice) Label() string {
	return s.start.Format(dayLayout) + " " + s.start.Format(clockLayout) + "-" + s.end.Format(clockLayout)
}

// MatchedRule returns the first rule, in stored order, whose filters all
// accept this slice, or nil when none does. A nil result is not an error:
// unrated time deliberately prices to zero.
func (s VisitSlice) MatchedRule(vehicle VehicleType, group UserGroup) *Rule {
	localStart, _ := NewTimeOfDay(s.start.Hour(), s.start.Minute())
	weekday := s.start.Weekday()

	for i := range s.rules {
		r := &s.rules[i]
		if r.VehicleType != nil && *r.VehicleType != vehicle {
			continue
		}
		if r.UserGroup != nil && *r.UserGroup != group {
			continue
		}
		if r.StartTime != nil && r.EndTime != nil && !localStart.InWindow(*r.StartTime, *r.EndTime) {
			continue
		}
		if r.DayOfWeek != nil && *r.DayOfWeek != weekday {
			continue
		}
		if r.StartMinute != nil {
			if s.relMinutesFromStart < int(*r.StartMinute) {
				continue
			}
			if r.EndMinute != nil && s.relMinutesFromStart >= int(*r.EndMinute) {
				continue
			}
		}
		return r
	}
	return nil
}

// SliceByDayAndTime decomposes [start, end) into contiguous, non-overlapping
// slices aligned to calendar-day boundaries and to every distinct rule time
// boundary, in the given zone. The union of the returned slices is exactly
// [start, end); zero-length segments are dropped. The function is pure.
func SliceByDayAndTime(start, end time.Time, rules []Rule, loc *time.Location) []VisitSlice {
	s := start.In(loc)
	e := end.In(loc)
	if !e.After(s) {
		return nil
	}

	boundaries := ruleTimeBoundaries(rules)

	var slices []VisitSlice
	rel := 0
	for cur := s; cur.Before(e); {
		year, month, day := cur.Date()
		nextDay := time.Date(year, month, day+1, 0, 0, 0, 0, loc)

		segEnd := nextDay
		if e.Before(segEnd) {
			segEnd = e
		}

		points := make([]time.Time, 0, len(boundaries)+2)
		points = append(points, cur)
		for _, b := range boundaries {
			at := time.Date(year, month, day, b.Hour(), b.Minute(), 0, 0, loc)
			if at.After(cur) && at.Before(segEnd) {
				points = append(points, at)
			}
		}
		points = append(points, segEnd)
		sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })

		for i := 0; i < len(points)-1; i++ {
			if !points[i+1].After(points[i]) {
				continue
			}
			sl := VisitSlice{
				start:               points[i],
				end:                 points[i+1],
				rules:               rules,
				relMinutesFromStart: rel,
			}
			rel += sl.Minutes()
			slices = append(slices, sl)
		}

		cur = segEnd
	}

	return slices
}

// ruleTimeBoundaries collects the distinct wall-clock boundaries referenced
// by any rule window, sorted ascending.
func ruleTimeBoundaries(rules []Rule) []TimeOfDay {
	seen := make(map[int]struct{})
	var out []TimeOfDay
	add := func(t *TimeOfDay) {
		if t == nil {
			return
		}
		if _, ok := seen[t.MinutesFromMidnight()]; ok {
			return
		}
		seen[t.MinutesFromMidnight()] = struct{}{}
		out = append(out, *t)
	}
	for i := range rules {
		add(rules[i].StartTime)
		add(rules[i].EndTime)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MinutesFromMidnight() < out[j].MinutesFromMidnight()
	})
	return out
}
