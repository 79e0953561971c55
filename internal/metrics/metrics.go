package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

const namespace = "terraingen"

// Collector exports column classification results as Prometheus metrics.
// It implements gen.Observer.
type Collector struct {
	columns       *prometheus.CounterVec
	rebuilds      *prometheus.CounterVec
	bedrock       prometheus.Counter
	dryColumns    prometheus.Counter
	chunks        prometheus.Counter
	chunkDuration prometheus.Histogram
}

var _ gen.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		columns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "columns_total",
			Help:      "Classified columns by biome and surface regime.",
		}, []string{"biome", "regime"}),
		rebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_rebuilds_total",
			Help:      "Columns that had to rebuild the depth lookup table.",
		}, []string{"biome"}),
		bedrock: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bedrock_substitutions_total",
			Help:      "Subsurface slots replaced with bedrock.",
		}),
		dryColumns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "columns_without_surface_total",
			Help:      "Columns with no solid block above y=0.",
		}),
		chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_total",
			Help:      "Generated chunks.",
		}),
		chunkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_duration_seconds",
			Help:      "Time to generate one chunk.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}

	for _, col := range []prometheus.Collector{c.columns, c.rebuilds, c.bedrock, c.dryColumns, c.chunks, c.chunkDuration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) ObserveColumn(biome string, stats gen.ColumnStats) {
	if stats.SurfaceY < 0 {
		c.dryColumns.Inc()
		return
	}
	c.columns.WithLabelValues(biome, stats.Regime.String()).Inc()
	if stats.LookupRebuilt {
		c.rebuilds.WithLabelValues(biome).Inc()
	}
	if stats.BedrockSubstitutions > 0 {
		c.bedrock.Add(float64(stats.BedrockSubstitutions))
	}
}

func (c *Collector) ObserveChunk(_ gen.ChunkPos, d time.Duration) {
	c.chunks.Inc()
	c.chunkDuration.Observe(d.Seconds())
}

// Serve exposes g on addr at /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
