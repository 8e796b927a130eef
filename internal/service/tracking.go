package service

import (
	"context"
	"time"

	"biolink/internal/model"

	"github.com/rs/zerolog/log"
)

// TrackingService turns an inbound visit into a stored record
type TrackingService struct {
	store VisitStoreInterface
	geo   GeoResolverInterface
	now   func() time.Time
}

// NewTrackingService creates a new Tracking Service
func NewTrackingService(store VisitStoreInterface, geo GeoResolverInterface) *TrackingService {
	return &TrackingService{
		store: store,
		geo:   geo,
		now:   time.Now,
	}
}

// Track classifies and geolocates the visit, then appends it to the store.
// The visit is always returned; the error only reports a failed append.
func (ts *TrackingService) Track(ctx context.Context, req *model.VisitRequest) (*model.Visit, error) {
	r := *req
	applyDefaults(&r)

	ip := clientIP(r.ForwardedFor, r.RemoteAddr)
	device := ClassifyDevice(r.UserAgent)

	country, city := model.Unknown, model.Unknown
	if ip != model.Unknown {
		country, city = ts.geo.Resolve(ctx, ip)
	}

	visit := &model.Visit{
		Timestamp: model.FormatTimestamp(ts.now()),
		IPAddress: ip,
		Country:   country,
		City:      city,
		Browser:   r.UserAgent,
		Device:    device,
		Referrer:  r.Referrer,
	}

	// The record is kept even if the visitor disconnects mid-request.
	if err := ts.store.Append(context.WithoutCancel(ctx), visit); err != nil {
		log.Error().Err(err).
			Str("ip", visit.IPAddress).
			Str("device", string(visit.Device)).
			Msg("Failed to store visit")
		return visit, err
	}

	log.Debug().
		Str("ip", visit.IPAddress).
		Str("country", visit.Country).
		Str("device", string(visit.Device)).
		Msg("Visit tracked")
	return visit, nil
}
