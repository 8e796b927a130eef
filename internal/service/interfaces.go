package service

import (
	"context"

	"biolink/internal/model"
)

// VisitStoreInterface defines the store operations the services need (for testing)
type VisitStoreInterface interface {
	Append(ctx context.Context, visit *model.Visit) error
	ListAll(ctx context.Context) ([]model.Visit, error)
}

// GeoResolverInterface defines the geolocation lookup (for testing)
type GeoResolverInterface interface {
	Resolve(ctx context.Context, ip string) (country, city string)
}

// TrackingServiceInterface defines the visit ingestion operation
type TrackingServiceInterface interface {
	Track(ctx context.Context, req *model.VisitRequest) (*model.Visit, error)
}

// StatsServiceInterface defines the reporting operations
type StatsServiceInterface interface {
	Stats(ctx context.Context) *model.Stats
	Dashboard(ctx context.Context) *model.Dashboard
}
