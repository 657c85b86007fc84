// internal/domain/entity/arrival.go
package entity

import (
	"time"
)

// RawArrival is the source-agnostic intermediate record an upstream
// adapter produces from one feed row. The adapter resolves any
// source-specific field precedence (updated vs actual vs estimated time)
// before handing the record over, so ActualRaw is already the winning
// value or empty.
type RawArrival struct {
	Airline      string
	FlightNumber string
	ScheduledRaw string
	ActualRaw    string
	Terminal     string
	Wing         string
	Exit         string
	// Date carries an explicit arrival date for feeds that report bare
	// clock times, empty otherwise.
	Date string
}

// Arrival is the canonical arrival record consumed by filtering and
// presentation. Never mutated after normalization.
type Arrival struct {
	Airline        string
	FlightNumber   string
	Terminal       string
	Exit           string
	ScheduledAt    *time.Time
	ActualAt       *time.Time
	ScheduledLabel string
	ActualLabel    string
}

// EffectiveAt returns the actual arrival instant when one was reported,
// else the scheduled instant. ok is false when neither resolved.
func (a *Arrival) EffectiveAt() (time.Time, bool) {
	if a.ActualAt != nil {
		return *a.ActualAt, true
	}
	if a.ScheduledAt != nil {
		return *a.ScheduledAt, true
	}
	return time.Time{}, false
}

// ArrivalView is the JSON projection of an Arrival served to the web page.
type ArrivalView struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	ScheduledTime string `json:"scheduledTime"`
	ActualTime    string `json:"actualTime"`
	Terminal      string `json:"terminal"`
	Exit          string `json:"exit"`
}

// View projects an Arrival for the JSON API. ActualTime is an empty
// string, not null, when no actual time was reported.
func (a *Arrival) View() ArrivalView {
	return ArrivalView{
		Airline:       a.Airline,
		FlightNumber:  a.FlightNumber,
		ScheduledTime: a.ScheduledLabel,
		ActualTime:    a.ActualLabel,
		Terminal:      a.Terminal,
		Exit:          a.Exit,
	}
}

// TimeWindow is the instant range around "now" that decides which
// arrivals are currently relevant. Recomputed on every request.
type TimeWindow struct {
	Lower time.Time
	Upper time.Time
}

// NewTimeWindow builds the window [now-before, now+after].
func NewTimeWindow(now time.Time, before, after time.Duration) TimeWindow {
	return TimeWindow{
		Lower: now.Add(-before),
		Upper: now.Add(after),
	}
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Lower) && !t.After(w.Upper)
}
