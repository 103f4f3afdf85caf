package scenario

type Config struct {
	File        string `envconfig:"QTREE_SCENARIO_FILE"`
	Verify      bool   `envconfig:"QTREE_VERIFY" default:"false"`
	Concurrency int    `envconfig:"QTREE_SCENARIO_CONCURRENCY" default:"8"`
}
