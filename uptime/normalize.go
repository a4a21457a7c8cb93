package uptime

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stakestar/avaxtracker/avascan"
	"github.com/stakestar/avaxtracker/geodata"
	"github.com/stakestar/avaxtracker/logger"
	"github.com/stakestar/avaxtracker/metrics"
)

// ValidationSource fetches raw validations for a set of node IDs.
type ValidationSource interface {
	GetValidations(ctx context.Context, nodeIDs []string) ([]avascan.Validation, error)
}

// Normalizer turns raw validations into the dashboard report.
//
// The uptime cache is owned by whoever builds the Normalizer; Normalize only
// writes to it when a fresh numeric uptime is seen and reads it otherwise.
type Normalizer struct {
	validators []string
	tracked    map[string]struct{}
	overrides  map[string]string
	flagEmoji  bool

	source  ValidationSource
	geo     geodata.Geolocator
	cache   *Cache
	metrics *metrics.Metrics
	logger  *zap.Logger

	now func() time.Time
}

// NewNormalizer builds a Normalizer. geo may be nil, in which case nodes
// without a primary location are reported as unknown.
func NewNormalizer(cfg *Config, source ValidationSource, geo geodata.Geolocator, cache *Cache, m *metrics.Metrics, log *zap.Logger) *Normalizer {
	validators := make([]string, len(cfg.Validators))
	copy(validators, cfg.Validators)

	tracked := make(map[string]struct{}, len(validators))
	for _, id := range validators {
		tracked[id] = struct{}{}
	}

	overrides := make(map[string]string, len(cfg.LocationOverrides))
	for id, location := range cfg.LocationOverrides {
		overrides[id] = location
	}

	return &Normalizer{
		validators: validators,
		tracked:    tracked,
		overrides:  overrides,
		flagEmoji:  cfg.FlagEmoji,
		source:     source,
		geo:        geo,
		cache:      cache,
		metrics:    m,
		logger:     logger.Named(log, "Normalizer"),
		now:        time.Now,
	}
}

func (n *Normalizer) Validators() []string {
	out := make([]string, len(n.validators))
	copy(out, n.validators)
	return out
}

// Normalize fetches all tracked validators and builds their report.
//
// The returned report always holds every tracked node ID. When the fetch fails
// as a whole every ID maps to the failure placeholder; when some IDs are
// missing from an otherwise good response they map to the PartialData
// placeholder. In both cases a *FetchError is returned alongside.
func (n *Normalizer) Normalize(ctx context.Context) (Report, error) {
	items, err := n.source.GetValidations(ctx, n.validators)
	if err != nil {
		kind := classify(err)
		n.metrics.UpstreamFetch(kind.metricResult())
		n.logger.Error("could not fetch validations", zap.Stringer("kind", kind), zap.Error(err))
		return n.placeholders(kind), &FetchError{Kind: kind, Err: err}
	}

	report := make(Report, len(n.validators))
	for _, item := range items {
		if item.NodeID == "" {
			n.logger.Debug("skipping validation without node id")
			continue
		}
		report[item.NodeID] = Entry{Record: n.normalizeItem(ctx, item)}
	}

	var missing []string
	for _, id := range n.validators {
		if _, ok := report[id]; ok {
			continue
		}
		missing = append(missing, id)
		report[id] = Entry{Placeholder: PartialData.Placeholder()}
	}
	if len(missing) > 0 {
		n.metrics.UpstreamFetch(PartialData.metricResult())
		n.logger.Warn("validators missing from response", zap.Strings("nodeIds", missing))
		return report, &FetchError{Kind: PartialData, Missing: missing}
	}

	n.metrics.UpstreamFetch(metrics.ResultSuccess)
	return report, nil
}

func (n *Normalizer) placeholders(kind ErrorKind) Report {
	report := make(Report, len(n.validators))
	for _, id := range n.validators {
		report[id] = Entry{Placeholder: kind.Placeholder()}
	}
	return report
}

func (n *Normalizer) normalizeItem(ctx context.Context, item avascan.Validation) *Record {
	name := item.Name
	if name == "" {
		name = Unknown
	}
	return &Record{
		Name:                 name,
		Uptime:               KnownNumber(n.uptime(item)),
		Location:             n.location(ctx, item),
		ExpirationDate:       FormatExpiration(item.EndTime),
		ExpiresIn:            FormatExpiresIn(item.EndTime, n.now()),
		StakeFromSelf:        FormatStake(item.Stake.FromSelf),
		StakeFromDelegations: FormatStake(item.Stake.FromDelegations),
	}
}

func (n *Normalizer) uptime(item avascan.Validation) float64 {
	avg := item.Node.Uptime.Avg
	if !avg.Valid {
		cached := n.cache.Get(item.NodeID)
		n.logger.Debug("uptime missing, using cached value",
			zap.String("nodeId", item.NodeID),
			zap.Float64("uptime", cached),
		)
		return cached
	}
	percent := FormatUptime(avg.Value)
	n.cache.Set(item.NodeID, percent)
	// untracked IDs would grow the gauge's label set without bound
	if _, ok := n.tracked[item.NodeID]; ok {
		n.metrics.Uptime(item.NodeID, percent)
	}
	return percent
}

// location applies, in order: configured override, primary city and country,
// secondary lookup by IP. The secondary lookup never runs when the primary
// source already has both fields.
func (n *Normalizer) location(ctx context.Context, item avascan.Validation) string {
	if override, ok := n.overrides[item.NodeID]; ok {
		return override
	}

	primary := item.Node.Location
	if primary.City != "" && primary.Country != "" {
		code := primary.CountryCode
		if code == "" && len(primary.Country) == 2 {
			code = primary.Country
		}
		return FormatLocation(primary.City, primary.Country, code, n.flagEmoji)
	}

	if item.Node.IP == "" || n.geo == nil {
		return FormatLocation("", "", "", false)
	}

	found, err := n.geo.Lookup(ctx, item.Node.IP)
	if err != nil {
		n.metrics.GeoLookup(metrics.ResultFailure)
		n.logger.Warn("could not geolocate validator",
			zap.String("nodeId", item.NodeID),
			zap.String("ip", item.Node.IP),
			zap.Error(err),
		)
		return FormatLocation("", "", "", false)
	}
	n.metrics.GeoLookup(metrics.ResultSuccess)

	country := found.Country
	if country == "" {
		country = found.CountryCode
	}
	return FormatLocation(found.City, country, found.CountryCode, n.flagEmoji)
}
