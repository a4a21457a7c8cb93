package geodata

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ProviderIPInfo  = "ipinfo"
	ProviderMaxMind = "maxmind"
)

// ErrNotFound is returned when a provider has no data for an address.
var ErrNotFound = errors.New("no geo data for address")

type Config struct {
	Provider        string `yaml:"provider" json:"provider" env:"GEO_PROVIDER" env-description:"Geolocation provider (ipinfo, maxmind)" env-default:"ipinfo"`
	IPInfoURL       string `yaml:"ipInfoUrl" json:"ipInfoUrl" env:"IPINFO_URL" env-description:"IP geolocation API base URL" env-default:"https://ipinfo.io"`
	IPInfoToken     string `yaml:"ipInfoToken" json:"ipInfoToken" env:"IPINFO_TOKEN" env-description:"Optional IP geolocation API token"`
	TimeoutSeconds  int    `yaml:"timeoutSeconds" json:"timeoutSeconds" env:"GEO_TIMEOUT_SECONDS" env-description:"Timeout of a single geolocation request" env-default:"5"`
	DbPath          string `yaml:"dbPath" json:"dbPath" env:"GEO_DATA_DB_PATH" env-description:"Path to geo data database file" env-default:"GeoLite2-City.mmdb"`
	CacheTTLMinutes int    `yaml:"cacheTtlMinutes" json:"cacheTtlMinutes" env:"GEO_CACHE_TTL_MINUTES" env-description:"How long resolved addresses are cached" env-default:"60"`
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Location is the result of resolving an IP address.
type Location struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
}

// Geolocator resolves an IP address to a location.
type Geolocator interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}

// New builds the configured provider wrapped in a lookup cache.
func New(cfg *Config, logger *zap.Logger) (*CachedGeolocator, error) {
	var (
		geo Geolocator
		err error
	)
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderIPInfo:
		geo = NewIPInfo(cfg)
	case ProviderMaxMind:
		geo, err = NewGeoIP2DB(cfg.DbPath)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open geo database %s", cfg.DbPath)
		}
	default:
		return nil, errors.Errorf("unknown geolocation provider %q", cfg.Provider)
	}
	return NewCachedGeolocator(geo, cfg.CacheTTL(), logger), nil
}

func closeGeolocator(g Geolocator) error {
	if c, ok := g.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
