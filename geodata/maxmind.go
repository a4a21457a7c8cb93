package geodata

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/maxminddb-golang"
)

type geoIP2Record struct {
	Country struct {
		IsoCode string            `maxminddb:"iso_code"`
		Names   map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
}

// GeoIP2DB resolves addresses offline from a GeoLite2/GeoIP2 City database.
type GeoIP2DB struct {
	db *maxminddb.Reader
}

func NewGeoIP2DB(databaseFilePath string) (*GeoIP2DB, error) {
	db, err := maxminddb.Open(databaseFilePath)
	if err != nil {
		return nil, err
	}
	return &GeoIP2DB{db}, nil
}

func (g *GeoIP2DB) Close() error {
	return g.db.Close()
}

func (g *GeoIP2DB) Lookup(_ context.Context, ipAddress string) (*Location, error) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", ipAddress)
	}

	var record geoIP2Record
	err := g.db.Lookup(ip, &record)
	if err != nil {
		return nil, err
	}
	if record.Country.IsoCode == "" && len(record.City.Names) == 0 {
		return nil, ErrNotFound
	}

	country := record.Country.Names["en"]
	if country == "" {
		country = CountryName(record.Country.IsoCode)
	}
	return &Location{
		City:        record.City.Names["en"],
		CountryCode: record.Country.IsoCode,
		Country:     country,
	}, nil
}
