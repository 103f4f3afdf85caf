package srvenv

import (
	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/go-sod/qtree/internal/index"
	"github.com/go-sod/qtree/internal/loader"
	"github.com/go-sod/qtree/internal/scenario"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	source   loader.Source
	builder  index.ProvideFn
	queries  []scenario.Query
	scenario scenario.Config
	exporter *prometheus.Exporter
}

func (s *SrvEnv) ProvideSource() loader.Source {
	return s.source
}

func (s *SrvEnv) ProvideBuilder() index.ProvideFn {
	return s.builder
}

// Scenario returns the parsed queries, nil when no scenario file is set.
func (s *SrvEnv) Scenario() ([]scenario.Query, scenario.Config) {
	return s.queries, s.scenario
}

// Exporter is nil unless a metrics address is configured.
func (s *SrvEnv) Exporter() *prometheus.Exporter {
	return s.exporter
}

func WithSource(fn loader.Source) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.source = fn
		return s
	}
}

func WithBuilder(fn index.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.builder = fn
		return s
	}
}

func WithScenario(queries []scenario.Query, cfg scenario.Config) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.queries = queries
		s.scenario = cfg
		return s
	}
}

func WithExporter(exporter *prometheus.Exporter) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.exporter = exporter
		return s
	}
}
