package metric

type Config struct {
	Addr      string `envconfig:"QTREE_METRICS_ADDR"`
	Namespace string `envconfig:"QTREE_METRICS_NAMESPACE" default:"qtree"`
}
