package wordsearch

// DefaultOversubscription is how many bands each available CPU gets when the
// worker count is not set explicitly. Bands near the grid edges finish faster
// than central ones, so a few extra bands keep every CPU busy.
const DefaultOversubscription = 4

type options struct {
	workers          int
	oversubscription int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		oversubscription: DefaultOversubscription,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Solve.
type Option func(*options)

// WithWorkers sets the number of column bands. n <= 0 restores the default
// of GOMAXPROCS times the oversubscription factor. The count is always capped
// at the number of grid columns.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithOversubscription sets how many bands each CPU gets when the worker
// count is derived from GOMAXPROCS. Values below 1 are treated as 1.
func WithOversubscription(factor int) Option {
	return func(o *options) {
		o.oversubscription = max(factor, 1)
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable
// metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
