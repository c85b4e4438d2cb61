package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

const (
	OpChunks  = "chunks"
	OpOutline = "outline"
	OpScene   = "scene"

	SourceLLM      = "llm"
	SourceDocument = "document"
)

var (
	// registry holds only this module's collectors; Push sends nothing else.
	registry = prometheus.NewRegistry()

	ChunksSeeded = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_rag_knowledge_chunks_seeded_total",
			Help: "Total number of knowledge chunks written to the retrieval store, partitioned by source.",
		},
		[]string{"source"},
	)
	ScenesGenerated = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "story_rag_scenes_generated_total",
			Help: "Total number of story scenes generated.",
		},
	)
	ImageFailures = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "story_rag_image_failures_total",
			Help: "Total number of scene images that could not be generated.",
		},
	)
	StoriesGenerated = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "story_rag_stories_generated_total",
			Help: "Total number of complete stories generated.",
		},
	)
	LLMDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "story_rag_llm_request_duration_seconds",
			Help:    "Duration of chat completion calls, partitioned by operation.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
		[]string{"operation"},
	)
)

// ObserveLLM records the time since start under op once the call has returned.
func ObserveLLM(op string, start time.Time) {
	LLMDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Push sends the current values to a Pushgateway, grouped by host and pid.
func Push(ctx context.Context, pushgatewayURL, job string) error {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	instanceID := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	pusher := push.New(pushgatewayURL, job).Gatherer(registry).Grouping("instance", instanceID)
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", pushgatewayURL, err)
	}
	log.Debug().Str("pushgateway", pushgatewayURL).Str("job", job).Str("instance", instanceID).Msg("Pushed metrics")
	return nil
}
