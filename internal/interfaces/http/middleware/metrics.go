package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the meter used for HTTP metrics.
const MeterName = "marketplace-backend/http"

type httpMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	requestCount, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
	}, nil
}

// HTTPMetrics returns middleware recording request count and duration
// per method, route pattern, and status code on the global meter.
func HTTPMetrics(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	metrics, err := newHTTPMetrics(otel.GetMeterProvider().Meter(MeterName))
	if err != nil {
		// Instrument creation only fails on invalid names; serve without metrics
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.response.status_code", strconv.Itoa(c.Writer.Status())),
		)

		ctx := c.Request.Context()
		metrics.requestCount.Add(ctx, 1, attrs)
		metrics.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}
