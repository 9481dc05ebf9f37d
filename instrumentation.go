package main

import (
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// instrumentation holds the Prometheus collectors for the API.
type instrumentation struct {
	registry            *prometheus.Registry
	counterRequests     *prometheus.CounterVec
	counterEntries      *prometheus.CounterVec
	histRequestDuration prometheus.Histogram
}

func newInstrumentation(namespace string) *instrumentation {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &instrumentation{
		registry: reg,
		counterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "route", "status"}),
		counterEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_entries_created",
			Help:      "The total number of food and exercise entries created",
		}, []string{"kind"}),
		histRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// middleware records request count and duration. Unmatched routes are
// labelled "unmatched" to keep label cardinality bounded.
func (in *instrumentation) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		in.histRequestDuration.Observe(time.Since(begin).Seconds())
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		in.counterRequests.With(prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()

		if c.Request.Method == "POST" && c.Writer.Status() == 201 {
			switch route {
			case "/api/food-entries":
				in.counterEntries.WithLabelValues(string(kindFood)).Inc()
			case "/api/exercise-entries":
				in.counterEntries.WithLabelValues(string(kindExercise)).Inc()
			}
		}
	}
}

func (in *instrumentation) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(in.registry, promhttp.HandlerOpts{}))
}

// watchPool exports connection pool stats (acquired, idle, total conns...).
func (in *instrumentation) watchPool(pool *pgxpool.Pool, dbName string) {
	in.registry.MustRegister(pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": dbName}))
}
