package repository

import (
	"context"

	"arrivals-service/internal/domain/entity"
)

// FlightSource defines the interface for an upstream arrival feed. Each
// feed implementation maps its own wire shape into RawArrival records;
// adding an upstream means adding another implementation.
type FlightSource interface {
	FetchArrivals(ctx context.Context) ([]entity.RawArrival, error)
}
