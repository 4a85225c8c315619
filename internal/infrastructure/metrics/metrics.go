package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_generations_total",
			Help: "Generation pipeline runs by final status.",
		},
		[]string{"status"},
	)

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "studio_generation_duration_seconds",
			Help:    "End to end duration of the generation pipeline.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
	)

	ExtractionStrategy = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_extraction_strategy_total",
			Help: "Which extraction strategy produced the file set.",
		},
		[]string{"strategy"},
	)

	ValidationIssues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_validation_issues_total",
			Help: "Rubric findings by code and severity.",
		},
		[]string{"code", "severity"},
	)

	RepairSteps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_repair_steps_total",
			Help: "Repair steps that changed the project.",
		},
		[]string{"step"},
	)

	ImageLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_image_lookups_total",
			Help: "Placeholder resolution lookups by outcome.",
		},
		[]string{"outcome"},
	)

	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_llm_requests_total",
			Help: "Model API calls by result.",
		},
		[]string{"result"},
	)

	LLMRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "studio_llm_request_duration_seconds",
			Help:    "Latency of model API calls.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 60, 120},
		},
	)

	Deployments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_deployments_total",
			Help: "Deployment attempts by result.",
		},
		[]string{"result"},
	)

	DBOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_db_operations_total",
			Help: "Datastore operations by collection and operation.",
		},
		[]string{"collection", "operation"},
	)

	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_errors_total",
			Help: "Errors by component and kind.",
		},
		[]string{"component", "kind"},
	)
)

func init() {
	prometheus.MustRegister(
		GenerationsTotal,
		GenerationDuration,
		ExtractionStrategy,
		ValidationIssues,
		RepairSteps,
		ImageLookups,
		LLMRequests,
		LLMRequestDuration,
		Deployments,
		DBOperations,
		Errors,
	)
}

func IncGeneration(status string) { GenerationsTotal.WithLabelValues(status).Inc() }

func ObserveGeneration(sec float64) { GenerationDuration.Observe(sec) }

func IncExtraction(strategy string) { ExtractionStrategy.WithLabelValues(strategy).Inc() }

func IncRepairStep(step string) { RepairSteps.WithLabelValues(step).Inc() }

func IncImageLookup(outcome string) { ImageLookups.WithLabelValues(outcome).Inc() }

func IncLLMRequest(result string) { LLMRequests.WithLabelValues(result).Inc() }

func ObserveLLMRequest(sec float64) { LLMRequestDuration.Observe(sec) }

func IncDeployment(result string) { Deployments.WithLabelValues(result).Inc() }

func IncDBOp(collection, op string) { DBOperations.WithLabelValues(collection, op).Inc() }

func IncError(component, kind string) { Errors.WithLabelValues(component, kind).Inc() }

func IncValidationIssue(code, severity string) {
	ValidationIssues.WithLabelValues(code, severity).Inc()
}
