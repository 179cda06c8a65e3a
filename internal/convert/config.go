package convert

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/get-eventually/go-textserde/logger"
)

const (
	instrumentationName = "github.com/get-eventually/go-textserde/internal/convert"
	defaultConcurrency  = 4
)

type config struct {
	Logger         logger.Logger
	Concurrency    int
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

func (c config) meter() metric.Meter {
	return c.MeterProvider.Meter(instrumentationName)
}

func (c config) tracer() trace.Tracer {
	return c.TracerProvider.Tracer(instrumentationName)
}

// Option specifies Converter configuration options.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (fn optionFunc) apply(c *config) { fn(c) }

// WithLogger specifies the logger.Logger the Converter reports progress to.
// By default, nothing is logged.
func WithLogger(l logger.Logger) Option {
	return optionFunc(func(c *config) { c.Logger = l })
}

// WithConcurrency specifies how many files ConvertFiles converts at the same time.
// Values lower than 1 are ignored.
func WithConcurrency(n int) Option {
	return optionFunc(func(c *config) {
		if n > 0 {
			c.Concurrency = n
		}
	})
}

// WithMeterProvider specifies the metric.MeterProvider instance to use for the instrumentation.
// By default, the global metric.MeterProvider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return optionFunc(func(c *config) { c.MeterProvider = provider })
}

// WithTracerProvider specifies the trace.TracerProvider instance to use for the instrumentation.
// By default, the global trace.TracerProvider is used.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return optionFunc(func(c *config) { c.TracerProvider = provider })
}

// newConfig computes a config from the supplied Options.
func newConfig(opts ...Option) config {
	c := config{
		Logger:         logger.Nop{},
		Concurrency:    defaultConcurrency,
		MeterProvider:  otel.GetMeterProvider(),
		TracerProvider: otel.GetTracerProvider(),
	}

	for _, opt := range opts {
		opt.apply(&c)
	}

	return c
}
