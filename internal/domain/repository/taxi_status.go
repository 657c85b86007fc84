package repository

import (
	"context"
)

// TaxiStatusSource defines the interface for the taxi stand status page.
// The extraction is best effort: an empty string means no usable status.
type TaxiStatusSource interface {
	FetchStatusText(ctx context.Context) (string, error)
}
