// Package geo resolves visitor IP addresses to a country and city.
package geo

import (
	"context"
	"errors"

	"biolink/internal/model"
)

var (
	// ErrLookupFailed is returned when the provider could not produce a location
	ErrLookupFailed = errors.New("geo lookup failed")
	// ErrRateLimited is returned when the local request budget for the provider is spent
	ErrRateLimited = errors.New("geo lookup rate limited")
	// ErrInvalidIP is returned for strings that are not IP addresses
	ErrInvalidIP = errors.New("invalid IP address")
)

// Provider looks up the location of a single IP address.
type Provider interface {
	// Lookup returns the location for ip, or an error when none could be determined.
	Lookup(ctx context.Context, ip string) (*model.Location, error)
	// Name returns the provider name for logging.
	Name() string
}

// Cache stores resolved locations between visits.
// GetLocation returns (nil, nil) on a miss.
type Cache interface {
	GetLocation(ctx context.Context, ip string) (*model.Location, error)
	SaveLocation(ctx context.Context, ip string, loc *model.Location) error
}
