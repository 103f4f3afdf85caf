package index

import (
	"github.com/go-sod/qtree/pkg/geom"
)

type Config struct {
	Width             float64 `envconfig:"QTREE_WIDTH" default:"1920"`
	Height            float64 `envconfig:"QTREE_HEIGHT" default:"1080"`
	Capacity          int     `envconfig:"QTREE_CAPACITY" default:"4"`
	MaxDepth          int     `envconfig:"QTREE_MAX_DEPTH" default:"32"`
	RebuildOnOverflow bool    `envconfig:"QTREE_REBUILD_ON_OVERFLOW" default:"true"`
	MaxCapacity       int     `envconfig:"QTREE_MAX_CAPACITY" default:"64"`
	OverflowLimit     int     `envconfig:"QTREE_OVERFLOW_LIMIT" default:"0"`
}

// Boundary is the root rectangle, anchored at the origin like a screen.
func (c Config) Boundary() (geom.AABB, error) {
	return geom.NewAABB(c.Width/2, c.Height/2, c.Width, c.Height)
}
