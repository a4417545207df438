package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
)

// NewMeterProvider creates a meter provider whose instruments are exported through
// the given Prometheus registerer and installs it as the global provider.
// A nil registerer means prometheus.DefaultRegisterer.
func NewMeterProvider(serviceName string, registerer prometheus.Registerer) (*metricsdk.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	exporter, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, err
	}
	mp := metricsdk.NewMeterProvider(
		metricsdk.WithReader(exporter),
		metricsdk.WithResource(serviceResource(serviceName)),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}
