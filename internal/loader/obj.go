package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-sod/qtree/pkg/geom"
)

var ErrMalformedVertex = errors.New("malformed vertex")

type Option func(*objOptions)

type objOptions struct {
	scale            float64
	offsetX, offsetY float64
}

func WithScale(scale float64) Option {
	return func(o *objOptions) {
		o.scale = scale
	}
}

func WithOffset(dx, dy float64) Option {
	return func(o *objOptions) {
		o.offsetX = dx
		o.offsetY = dy
	}
}

const DefaultScale = 200

// ReadOBJ reads the geometric vertices ("v x y [z [w]]") of a Wavefront OBJ
// stream. x and y are scaled and shifted onto the plane, z is kept as payload.
// Every other record is skipped.
func ReadOBJ(r io.Reader, opts ...Option) ([]geom.Point, error) {
	o := objOptions{scale: DefaultScale}
	for _, f := range opts {
		f(&o)
	}

	var points []geom.Point
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: %w: expected at least 2 coordinates", line, ErrMalformedVertex)
		}
		var coords [3]float64
		for i := 1; i < len(fields) && i <= 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedVertex, err)
			}
			coords[i-1] = v
		}
		points = append(points, geom.Point{
			X: coords[0]*o.scale + o.offsetX,
			Y: coords[1]*o.scale + o.offsetY,
			Z: coords[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return points, nil
}

func ReadOBJFile(path string, opts ...Option) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj file: %w", err)
	}
	defer f.Close()

	points, err := ReadOBJ(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
