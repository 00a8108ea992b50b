package routes

import (
	"context"
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pkrms_db/internal/hub"
	"pkrms_db/internal/ingest"
	"pkrms_db/internal/metrics"
	"pkrms_db/internal/middleware"
	"pkrms_db/internal/store"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Service *ingest.Service
	Store   store.Store
	Hub     *hub.UploadHub
	// Metrics is nil when the /metrics endpoint is disabled.
	Metrics *metrics.Collector
	// Ping checks the database for /healthz. Nil means always healthy.
	Ping func(ctx context.Context) error

	MaxBodyBytes int64
	CORSOrigins  []string
	AccessLog    io.Writer
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	accessLog := d.AccessLog
	if accessLog == nil {
		accessLog = gin.DefaultWriter
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		ginlog.SetLogger(
			ginlog.WithWriter(accessLog),
			ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
			ginlog.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
				return l.With().Str("request_id", c.GetString(middleware.RequestIDKey)).Logger()
			}),
		),
	)

	UploadRoutes(r, d)
	RecordRoutes(r, d)
	WebSocketRoutes(r, d)
	HealthRoutes(r, d)

	return r
}
