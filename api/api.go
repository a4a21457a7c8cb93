package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/stakestar/avaxtracker/logger"
	"github.com/stakestar/avaxtracker/uptime"
)

const (
	dataKey     = "data"
	dataTimeout = 30 * time.Second
)

type Config struct {
	ListenAddr             string `yaml:"listenAddr" json:"listenAddr" env:"LISTEN_ADDR" env-description:"HTTP listen address" env-default:":8080"`
	RefreshIntervalMinutes int    `yaml:"refreshIntervalMinutes" json:"refreshIntervalMinutes" env:"REFRESH_INTERVAL_MINUTES" env-description:"Dashboard refresh interval in minutes" env-default:"10"`
	RateLimit              string `yaml:"rateLimit" json:"rateLimit" env:"RATE_LIMIT" env-description:"Per client rate limit, e.g. 60-M" env-default:"60-M"`
}

func (c *Config) RefreshInterval() time.Duration {
	if c.RefreshIntervalMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.RefreshIntervalMinutes) * time.Minute
}

// Reporter produces the validator report served on /data.
type Reporter interface {
	Normalize(ctx context.Context) (uptime.Report, error)
}

type Api struct {
	cfg      *Config
	reporter Reporter
	gatherer prometheus.Gatherer
	logger   *zap.Logger

	// concurrent /data requests share a single upstream fetch
	group singleflight.Group
}

type dataResult struct {
	report uptime.Report
	err    error
}

func New(cfg *Config, log *zap.Logger, reporter Reporter, gatherer prometheus.Gatherer) *Api {
	return &Api{
		cfg:      cfg,
		reporter: reporter,
		gatherer: gatherer,
		logger:   logger.Named(log, "Api"),
	}
}

func (api *Api) Router() (*gin.Engine, error) {
	router := gin.Default()

	rate, err := limiter.NewRateFromFormatted(api.cfg.RateLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", api.cfg.RateLimit)
	}
	store := memory.NewStore()
	router.Use(ginlimiter.NewMiddleware(limiter.New(store, rate)))

	cacheStore := persistence.NewInMemoryStore(time.Minute)

	router.GET("/", api.Index)
	router.GET("/data", api.GetData)
	router.GET("/config", cache.CachePage(cacheStore, time.Minute, api.GetConfig))
	if api.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(api.gatherer, promhttp.HandlerOpts{})))
	}
	return router, nil
}

// Start serves the dashboard until the listener fails.
func (api *Api) Start() error {
	gin.SetMode(gin.ReleaseMode)
	router, err := api.Router()
	if err != nil {
		return err
	}

	api.logger.Info("Starting server", zap.String("addr", api.cfg.ListenAddr))
	return router.Run(api.cfg.ListenAddr)
}

func (api *Api) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardHTML))
}

func (api *Api) GetData(c *gin.Context) {
	v, _, _ := api.group.Do(dataKey, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()
		report, err := api.reporter.Normalize(ctx)
		return dataResult{report: report, err: err}, nil
	})
	res := v.(dataResult)
	if res.err != nil {
		api.logger.Warn("serving degraded report",
			zap.Stringer("kind", uptime.KindOf(res.err)),
			zap.Error(res.err),
		)
	}
	if res.report == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res.report)
}

func (api *Api) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"refresh_interval_ms": api.cfg.RefreshInterval().Milliseconds(),
	})
}
