package config

import (
	"github.com/go-sod/qtree/internal/index"
	"github.com/go-sod/qtree/internal/loader"
	"github.com/go-sod/qtree/internal/metric"
	"github.com/go-sod/qtree/internal/scenario"
	"github.com/go-sod/qtree/internal/setup"
)

var (
	_ setup.SourceConfigProvider   = (*Config)(nil)
	_ setup.IndexConfigProvider    = (*Config)(nil)
	_ setup.ScenarioConfigProvider = (*Config)(nil)
	_ setup.MetricsConfigProvider  = (*Config)(nil)
)

type Config struct {
	Source   loader.Config
	Index    index.Config
	Scenario scenario.Config
	Metrics  metric.Config
}

func (c *Config) SourceConfig() *loader.Config {
	return &c.Source
}

func (c *Config) IndexConfig() *index.Config {
	return &c.Index
}

func (c *Config) ScenarioConfig() *scenario.Config {
	return &c.Scenario
}

func (c *Config) MetricsConfig() *metric.Config {
	return &c.Metrics
}
