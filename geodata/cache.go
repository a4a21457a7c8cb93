package geodata

import (
	"context"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"go.uber.org/zap"

	"github.com/stakestar/avaxtracker/logger"
)

// CachedGeolocator memoizes successful lookups per address. Failures are not
// cached so a flaky provider is asked again on the next refresh.
type CachedGeolocator struct {
	next   Geolocator
	store  persistence.CacheStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGeolocator(next Geolocator, ttl time.Duration, log *zap.Logger) *CachedGeolocator {
	return &CachedGeolocator{
		next:   next,
		store:  persistence.NewInMemoryStore(ttl),
		ttl:    ttl,
		logger: logger.Named(log, "GeoCache"),
	}
}

func (c *CachedGeolocator) Lookup(ctx context.Context, ip string) (*Location, error) {
	var cached Location
	if err := c.store.Get(ip, &cached); err == nil {
		return &cached, nil
	}

	location, err := c.next.Lookup(ctx, ip)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(ip, *location, c.ttl); err != nil {
		c.logger.Warn("could not cache geo data", zap.String("ip", ip), zap.Error(err))
	}
	return location, nil
}

func (c *CachedGeolocator) Close() error {
	return closeGeolocator(c.next)
}
