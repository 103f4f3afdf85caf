// Package setup reads the environment into a configuration struct and turns
// the parts it recognizes into providers held by a srvenv.SrvEnv.
package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/qtree/internal/index"
	"github.com/go-sod/qtree/internal/loader"
	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/internal/metric"
	"github.com/go-sod/qtree/internal/scenario"
	"github.com/go-sod/qtree/internal/srvenv"
	"github.com/kelseyhightower/envconfig"
)

type SourceConfigProvider interface {
	SourceConfig() *loader.Config
}

type IndexConfigProvider interface {
	IndexConfig() *index.Config
}

type ScenarioConfigProvider interface {
	ScenarioConfig() *scenario.Config
}

type MetricsConfigProvider interface {
	MetricsConfig() *metric.Config
}

func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	indexConfigProvider, ok := config.(IndexConfigProvider)
	if !ok {
		return nil, fmt.Errorf("unable read index config")
	}
	logger.Info("Configuring index")
	builder, err := index.BuilderFor(indexConfigProvider.IndexConfig())
	if err != nil {
		return nil, fmt.Errorf("unable create index builder: %w", err)
	}
	serverEnvOpts = append(serverEnvOpts, srvenv.WithBuilder(builder))

	if sourceConfigProvider, ok := config.(SourceConfigProvider); ok {
		logger.Info("Configuring point source")
		source, err := ProvideSourceFor(sourceConfigProvider, indexConfigProvider)
		if err != nil {
			return nil, fmt.Errorf("unable create point source: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithSource(source))
	}

	if scenarioConfigProvider, ok := config.(ScenarioConfigProvider); ok {
		cfg := scenarioConfigProvider.ScenarioConfig()
		if cfg.File != "" {
			logger.Infow("Configuring scenario", "file", cfg.File)
			queries, err := scenario.Load(cfg.File)
			if err != nil {
				return nil, fmt.Errorf("unable load scenario: %w", err)
			}
			serverEnvOpts = append(serverEnvOpts, srvenv.WithScenario(queries, *cfg))
		}
	}

	if metricsConfigProvider, ok := config.(MetricsConfigProvider); ok {
		cfg := metricsConfigProvider.MetricsConfig()
		if err := metric.Register(); err != nil {
			return nil, fmt.Errorf("unable register metrics: %w", err)
		}
		if cfg.Addr != "" {
			logger.Infow("Configuring prometheus exporter", "namespace", cfg.Namespace)
			exporter, err := metric.NewExporter(cfg.Namespace)
			if err != nil {
				return nil, fmt.Errorf("unable create exporter: %w", err)
			}
			serverEnvOpts = append(serverEnvOpts, srvenv.WithExporter(exporter))
		}
	}
	return srvenv.New(serverEnvOpts...), nil
}

// ProvideSourceFor binds the configured point source to the index boundary.
func ProvideSourceFor(provider SourceConfigProvider, indexProvider IndexConfigProvider) (loader.Source, error) {
	bounds, err := indexProvider.IndexConfig().Boundary()
	if err != nil {
		return nil, fmt.Errorf("index boundary: %w", err)
	}
	return loader.SourceFor(provider.SourceConfig())(bounds)
}
