package model

import (
	"fmt"
	"strings"
)

// Day is one of the twelve days of the two-week cycle. Even weeks come first, so a Day doubles as its index in the cycle
type Day uint64

const (
	MondayEven Day = iota
	TuesdayEven
	WednesdayEven
	ThursdayEven
	FridayEven
	SaturdayEven
	MondayOdd
	TuesdayOdd
	WednesdayOdd
	ThursdayOdd
	FridayOdd
	SaturdayOdd
)

const (
	DaysInWeek  = 6
	DaysInCycle = 2 * DaysInWeek
)

type Parity int

const (
	Even Parity = iota
	Odd
)

func (parity Parity) String() string {
	if parity == Odd {
		return "odd"
	}
	return "even"
}

var weekdays = [DaysInWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Days lists the whole cycle in order
func Days() []Day {
	days := make([]Day, DaysInCycle)
	for i := range days {
		days[i] = Day(i)
	}
	return days
}

func (day Day) Valid() bool {
	return day < DaysInCycle
}

func (day Day) Parity() Parity {
	if day >= DaysInWeek {
		return Odd
	}
	return Even
}

// Weekday is the day name without its parity, e.g. "Monday" for both MondayEven and MondayOdd
func (day Day) Weekday() string {
	if !day.Valid() {
		return ""
	}
	return weekdays[day%DaysInWeek]
}

// Label is the day shown to readers, e.g. "Monday (even)"
func (day Day) Label() string {
	if !day.Valid() {
		return ""
	}
	return fmt.Sprintf("%s (%v)", day.Weekday(), day.Parity())
}

func (day Day) String() string {
	if !day.Valid() {
		return fmt.Sprintf("Day(%d)", uint64(day))
	}
	if day.Parity() == Odd {
		return day.Weekday() + "Odd"
	}
	return day.Weekday() + "Even"
}

// ParseDay accepts the identifier returned by Day.String, ignoring case
func ParseDay(name string) (Day, error) {
	for _, day := range Days() {
		if strings.EqualFold(strings.TrimSpace(name), day.String()) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", name)
}
