package geodata

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeCityDB builds a small GeoIP2-City style database in a temp dir.
func writeCityDB(t *testing.T) string {
	t.Helper()

	tree, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType: "GeoIP2-City",
		RecordSize:   24,
	})
	require.NoError(t, err)

	insert := func(cidr string, record mmdbtype.Map) {
		_, network, err := net.ParseCIDR(cidr)
		require.NoError(t, err)
		require.NoError(t, tree.Insert(network, record))
	}

	insert("160.202.130.0/24", mmdbtype.Map{
		"country": mmdbtype.Map{
			"iso_code": mmdbtype.String("BR"),
			"names":    mmdbtype.Map{"en": mmdbtype.String("Brazil")},
		},
		"city": mmdbtype.Map{
			"names": mmdbtype.Map{"en": mmdbtype.String("São Paulo")},
		},
	})
	// no names at all, country comes from the ISO code
	insert("158.255.76.0/24", mmdbtype.Map{
		"country": mmdbtype.Map{
			"iso_code": mmdbtype.String("NG"),
		},
	})

	path := filepath.Join(t.TempDir(), "GeoLite2-City.mmdb")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = tree.WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return path
}

func TestGeoIP2DBLookup(t *testing.T) {
	db, err := NewGeoIP2DB(writeCityDB(t))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	loc, err := db.Lookup(ctx, "160.202.130.17")
	require.NoError(t, err)
	assert.Equal(t, &Location{City: "São Paulo", CountryCode: "BR", Country: "Brazil"}, loc)

	loc, err = db.Lookup(ctx, "158.255.76.3")
	require.NoError(t, err)
	assert.Equal(t, &Location{City: "", CountryCode: "NG", Country: "Nigeria"}, loc)

	_, err = db.Lookup(ctx, "8.8.8.8")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = db.Lookup(ctx, "not-an-ip")
	assert.Error(t, err)
}

func TestNewMaxMindProvider(t *testing.T) {
	geo, err := New(&Config{Provider: "maxmind", DbPath: writeCityDB(t)}, zap.NewNop())
	require.NoError(t, err)
	defer geo.Close()
	assert.IsType(t, &GeoIP2DB{}, geo.next)

	loc, err := geo.Lookup(context.Background(), "160.202.130.17")
	require.NoError(t, err)
	assert.Equal(t, "Brazil", loc.Country)
}

func TestGeoIP2DBMissingFile(t *testing.T) {
	_, err := NewGeoIP2DB("does-not-exist.mmdb")
	assert.Error(t, err)
}
