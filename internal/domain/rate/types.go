package rate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidRateType    = errors.New("invalid rate type")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidUserGroup   = errors.New("invalid user group")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
)

type RateType string

const (
	TypeFlatPerEntry RateType = "FLAT_PER_ENTRY"
	TypePerHour      RateType = "PER_HOUR"
	TypeTimeOfDay    RateType = "TIME_OF_DAY"
	TypeDayOfWeek    RateType = "DAY_OF_WEEK"
	TypeTiered       RateType = "TIERED"
	TypeFree         RateType = "FREE"
	TypeDynamic      RateType = "DYNAMIC"
)

func NewRateType(value string) (RateType, error) {
	switch t := RateType(value); t {
	case TypeFlatPerEntry, TypePerHour, TypeTimeOfDay, TypeDayOfWeek, TypeTiered, TypeFree, TypeDynamic:
		return t, nil
	default:
		return "", ErrInvalidRateType
	}
}

func (t RateType) String() string {
	return string(t)
}

// Hourly reports whether the type bills by started hour of the billed minutes.
func (t RateType) Hourly() bool {
	return t == TypePerHour || t == TypeTimeOfDay || t == TypeDayOfWeek
}

type VehicleType string

const (
	VehicleStandard   VehicleType = "STANDARD"
	VehicleDisabled   VehicleType = "DISABLED"
	VehicleEV         VehicleType = "EV"
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
)

func NewVehicleType(value string) (VehicleType, error) {
	switch v := VehicleType(value); v {
	case VehicleStandard, VehicleDisabled, VehicleEV, VehicleMotorcycle:
		return v, nil
	default:
		return "", ErrInvalidVehicleType
	}
}

func (v VehicleType) String() string {
	return string(v)
}

type UserGroup string

const (
	GroupRegular    UserGroup = "REGULAR"
	GroupResident   UserGroup = "RESIDENT"
	GroupStaff      UserGroup = "STAFF"
	GroupSubscriber UserGroup = "SUBSCRIBER"
)

func NewUserGroup(value string) (UserGroup, error) {
	switch g := UserGroup(value); g {
	case GroupRegular, GroupResident, GroupStaff, GroupSubscriber:
		return g, nil
	default:
		return "", ErrInvalidUserGroup
	}
}

func (g UserGroup) String() string {
	return string(g)
}

// TimeOfDay is a wall-clock instant within a day, stored as minutes since
// midnight. Rule windows use it with an exclusive end; a window whose end is
// before its start wraps past midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func MustTimeOfDay(value string) TimeOfDay {
	t, err := ParseTimeOfDay(value)
	if err != nil {
		panic("rate: bad time of day literal: " + value)
	}
	return t
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) MinutesFromMidnight() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// InWindow reports whether t lies in [start, end), wrapping past midnight
// when end <= start (e.g. 22:00-06:00 covers 23:30 and 05:00 but not 12:00).
func (t TimeOfDay) InWindow(start, end TimeOfDay) bool {
	if start.minutes == end.minutes {
		// degenerate window matches the single boundary instant only
		return t.minutes == start.minutes
	}
	if end.minutes < start.minutes {
		return t.minutes >= start.minutes || t.minutes < end.minutes
	}
	return t.minutes >= start.minutes && t.minutes < end.minutes
}
