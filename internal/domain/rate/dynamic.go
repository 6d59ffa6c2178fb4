package rate

import "errors"

var ErrDynamicNotConfigured = errors.New("dynamic pricing not configured")

// DynamicPricer computes per-slice amounts for DYNAMIC plans. The base
// engine ships no strategy of its own; occupancy- or demand-based pricing
// plugs in here without touching the slicing and matching core.
type DynamicPricer interface {
	PriceSliceMinor(plan *Plan, slice VisitSlice, billedMinutes int) (int64, error)
}

// NoopDynamicPricer is the default strategy: it declines every slice, which
// the engine treats as a zero amount.
type NoopDynamicPricer struct{}

func NewNoopDynamicPricer() *NoopDynamicPricer {
	return &NoopDynamicPricer{}
}

func (p *NoopDynamicPricer) PriceSliceMinor(_ *Plan, _ VisitSlice, _ int) (int64, error) {
	return 0, ErrDynamicNotConfigured
}
