package usecase

import (
	"context"
	"sort"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
	"arrivals-service/pkg/timeutil"
)

// internationalTerminal is Haneda terminal 3; its arrivals are never
// relevant to the domestic taxi stands and are dropped outright.
const internationalTerminal = "3"

// ArrivalProcessor runs the arrival pipeline: normalize the upstream
// records, filter to the window around now, sort and truncate. "Now" is
// threaded through every call so the pipeline stays deterministic.
type ArrivalProcessor struct {
	flightSource repository.FlightSource
	windowBefore time.Duration
	windowAfter  time.Duration
	limit        int
	logger       logger.Logger
	metrics      *metrics.Metrics
}

// NewArrivalProcessor creates a new arrival processor
func NewArrivalProcessor(
	flightSource repository.FlightSource,
	windowBefore time.Duration,
	windowAfter time.Duration,
	limit int,
	log logger.Logger,
	m *metrics.Metrics,
) *ArrivalProcessor {
	return &ArrivalProcessor{
		flightSource: flightSource,
		windowBefore: windowBefore,
		windowAfter:  windowAfter,
		limit:        limit,
		logger:       log,
		metrics:      m,
	}
}

// CurrentArrivals fetches the feed and returns the windowed, sorted,
// truncated arrivals relative to now. An upstream failure is logged and
// yields an empty result, not an error.
func (p *ArrivalProcessor) CurrentArrivals(ctx context.Context, now time.Time) []entity.Arrival {
	raws, err := p.flightSource.FetchArrivals(ctx)
	if err != nil {
		p.logger.Error("Failed to fetch arrivals", "error", err)
		raws = nil
	}

	arrivals := make([]entity.Arrival, 0, len(raws))
	for _, raw := range raws {
		if arrival := Normalize(raw, now); arrival != nil {
			arrivals = append(arrivals, *arrival)
		}
	}

	selected := Select(arrivals, entity.NewTimeWindow(now, p.windowBefore, p.windowAfter), p.limit)
	if p.metrics != nil {
		p.metrics.ArrivalsReturned.Observe(float64(len(selected)))
	}
	p.logger.Debug("Selected arrivals", "fetched", len(raws), "selected", len(selected))
	return selected
}

// Normalize maps a raw feed record into a canonical arrival. Returns nil
// for records that are excluded outright, currently only international
// terminal arrivals; that exclusion applies regardless of any window.
func Normalize(raw entity.RawArrival, now time.Time) *entity.Arrival {
	if raw.Terminal == internationalTerminal {
		return nil
	}

	scheduledLabel := "N/A"
	if raw.ScheduledRaw != "" {
		scheduledLabel = timeutil.ClockLabel(raw.ScheduledRaw)
	}
	actualLabel := ""
	if raw.ActualRaw != "" {
		actualLabel = timeutil.ClockLabel(raw.ActualRaw)
	}

	return &entity.Arrival{
		Airline:        raw.Airline,
		FlightNumber:   raw.FlightNumber,
		Terminal:       terminalLabel(raw.Terminal, raw.Wing),
		Exit:           raw.Exit,
		ScheduledAt:    resolveInstant(raw.ScheduledRaw, raw.Date, now),
		ActualAt:       resolveInstant(raw.ActualRaw, raw.Date, now),
		ScheduledLabel: scheduledLabel,
		ActualLabel:    actualLabel,
	}
}

// Select keeps arrivals whose effective instant falls inside the window,
// sorts them ascending by that instant and truncates to limit. The sort
// is stable so feed order breaks ties.
func Select(arrivals []entity.Arrival, window entity.TimeWindow, limit int) []entity.Arrival {
	selected := make([]entity.Arrival, 0, len(arrivals))
	for _, arrival := range arrivals {
		eff, ok := arrival.EffectiveAt()
		if !ok || !window.Contains(eff) {
			continue
		}
		selected = append(selected, arrival)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, _ := selected[i].EffectiveAt()
		b, _ := selected[j].EffectiveAt()
		return a.Before(b)
	})

	if limit >= 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}

// resolveInstant tries the full-date timestamp shapes first and falls
// back to the clock-only shape for feeds that report bare HH:MM times.
func resolveInstant(raw, date string, now time.Time) *time.Time {
	if t := timeutil.Resolve(raw, now); t != nil {
		return t
	}
	return timeutil.ResolveClock(raw, date, now)
}

// terminalLabel renders the terminal display label. Terminals 1 and 2
// are split into wings; other terminals carry no wing suffix.
func terminalLabel(terminal, wing string) string {
	label := "T" + terminal
	if terminal == "1" || terminal == "2" {
		switch wing {
		case "N":
			label += " NorthWing"
		case "S":
			label += " SouthWing"
		}
	}
	return label
}
