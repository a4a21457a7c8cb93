package geodata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIPInfoServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &paths
}

func TestIPInfoLookup(t *testing.T) {
	server, paths := newIPInfoServer(t, http.StatusOK, `{"ip":"160.202.130.67","city":"São Paulo","region":"São Paulo","country":"BR"}`)

	geo := NewIPInfo(&Config{IPInfoURL: server.URL + "/", IPInfoToken: "secret", TimeoutSeconds: 1})
	location, err := geo.Lookup(context.Background(), "160.202.130.67")
	require.NoError(t, err)

	assert.Equal(t, &Location{City: "São Paulo", CountryCode: "BR", Country: "Brazil"}, location)
	assert.Equal(t, []string{"/160.202.130.67/json?token=secret"}, *paths)
}

func TestIPInfoLookupUnknownCountryCode(t *testing.T) {
	server, _ := newIPInfoServer(t, http.StatusOK, `{"city":"Nowhere","country":"Q1"}`)

	location, err := NewIPInfo(&Config{IPInfoURL: server.URL}).Lookup(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Q1", location.Country)
}

func TestIPInfoLookupErrors(t *testing.T) {
	server, paths := newIPInfoServer(t, http.StatusTooManyRequests, `{}`)
	geo := NewIPInfo(&Config{IPInfoURL: server.URL})

	_, err := geo.Lookup(context.Background(), "1.1.1.1")
	assert.Error(t, err)

	_, err = geo.Lookup(context.Background(), "not-an-ip")
	assert.Error(t, err)
	assert.Len(t, *paths, 1)

	bogon, _ := newIPInfoServer(t, http.StatusOK, `{"ip":"10.0.0.1","bogon":true}`)
	_, err = NewIPInfo(&Config{IPInfoURL: bogon.URL}).Lookup(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotFound)
}
