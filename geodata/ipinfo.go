package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type ipInfoResponse struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Bogon   bool   `json:"bogon"`
}

// IPInfo resolves addresses through an ipinfo.io compatible HTTP API.
type IPInfo struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewIPInfo(cfg *Config) *IPInfo {
	return &IPInfo{
		BaseURL: strings.TrimRight(cfg.IPInfoURL, "/"),
		Token:   cfg.IPInfoToken,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

func (i *IPInfo) Lookup(ctx context.Context, ipAddress string) (*Location, error) {
	if net.ParseIP(ipAddress) == nil {
		return nil, fmt.Errorf("invalid IP address: %s", ipAddress)
	}

	endpoint := i.BaseURL + "/" + url.PathEscape(ipAddress) + "/json"
	if i.Token != "" {
		endpoint += "?" + url.Values{"token": []string{i.Token}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build geolocation request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := i.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geolocation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geolocation request failed with status %d", resp.StatusCode)
	}

	var info ipInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "could not decode geolocation response")
	}
	if info.Bogon || (info.City == "" && info.Country == "") {
		return nil, ErrNotFound
	}

	return &Location{
		City:        info.City,
		CountryCode: strings.ToUpper(info.Country),
		Country:     CountryName(info.Country),
	}, nil
}
