package geo

import (
	"context"
	"strings"
	"time"

	"biolink/internal/model"

	"github.com/rs/zerolog/log"
)

// Resolver maps visitor IPs to a location. It never fails: any problem
// resolving an address degrades to the Unknown location.
type Resolver struct {
	provider Provider
	cache    Cache
	timeout  time.Duration
}

// NewResolver creates a Resolver. cache may be nil.
func NewResolver(provider Provider, cache Cache, timeout time.Duration) *Resolver {
	return &Resolver{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
	}
}

// IsLocal reports whether ip is the loopback address or in 192.168.0.0/16.
func IsLocal(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" || strings.HasPrefix(ip, "192.168")
}

// Resolve returns the country and city for ip.
func (r *Resolver) Resolve(ctx context.Context, ip string) (country, city string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("ip", ip).Msg("Geo lookup panicked, using unknown location")
			country, city = model.Unknown, model.Unknown
		}
	}()

	loc := r.resolve(ctx, ip)
	return loc.Country, loc.City
}

func (r *Resolver) resolve(ctx context.Context, ip string) model.Location {
	if IsLocal(ip) {
		return model.LocalLocation()
	}

	// The timeout bounds the whole lookup, cache round trips included.
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if r.cache != nil {
		cached, err := r.cache.GetLocation(ctx, ip)
		if err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("Failed to read geo cache")
		} else if cached != nil {
			return *cached
		}
	}

	if r.provider == nil {
		return model.UnknownLocation()
	}

	loc, err := r.provider.Lookup(ctx, ip)
	if err != nil || loc == nil {
		log.Warn().Err(err).Str("ip", ip).Str("provider", r.provider.Name()).Msg("Geo lookup failed, using unknown location")
		return model.UnknownLocation()
	}

	if r.cache != nil {
		if err := r.cache.SaveLocation(ctx, ip, loc); err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("Failed to write geo cache")
		}
	}

	return *loc
}
