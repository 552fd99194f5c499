package main

import (
	"github.com/cznic/mathutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vinerr/kdtree"
)

// maxPoints bounds --points so a typo can't exhaust memory.
const maxPoints = 10000000

type options struct {
	points    int
	seed      int64
	queryX    float64
	queryY    float64
	containsX float64
	containsY float64
	rect      []float64
	plot      string
	logLevel  string
	jsonLog   bool

	// set by validate
	query    kdtree.Point
	contains kdtree.Point
	rng      kdtree.Rect
	level    logrus.Level
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.points, "points", 0, "number of random points to insert, 0 inserts the demo set")
	fs.Int64Var(&o.seed, "seed", 1, "seed for random points")
	fs.Float64Var(&o.queryX, "query-x", 0.3, "x coordinate of the nearest neighbour query")
	fs.Float64Var(&o.queryY, "query-y", 0.35, "y coordinate of the nearest neighbour query")
	fs.Float64Var(&o.containsX, "contains-x", 0.7, "x coordinate of the membership query")
	fs.Float64Var(&o.containsY, "contains-y", 0.2, "y coordinate of the membership query")
	fs.Float64SliceVar(&o.rect, "rect", []float64{0.15, 0.15, 0.75, 0.75}, "range query rectangle as xmin,ymin,xmax,ymax")
	fs.StringVar(&o.plot, "plot", "", "write the tree as GeoJSON to this file")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")
	fs.BoolVar(&o.jsonLog, "json-log", false, "log as JSON")
}

func (o *options) validate() error {
	var err error
	if o.points < 0 {
		return errors.Errorf("--points must not be negative, got %d", o.points)
	}
	o.points = mathutil.Min(o.points, maxPoints)
	if o.query, err = kdtree.NewPoint(o.queryX, o.queryY); err != nil {
		return errors.Wrap(err, "--query-x/--query-y")
	}
	if o.contains, err = kdtree.NewPoint(o.containsX, o.containsY); err != nil {
		return errors.Wrap(err, "--contains-x/--contains-y")
	}
	if len(o.rect) != 4 {
		return errors.Errorf("--rect takes 4 values, got %d", len(o.rect))
	}
	if o.rng, err = kdtree.NewRect(o.rect[0], o.rect[1], o.rect[2], o.rect[3]); err != nil {
		return errors.Wrap(err, "--rect")
	}
	if o.level, err = logrus.ParseLevel(o.logLevel); err != nil {
		return errors.Wrap(err, "--log-level")
	}
	return nil
}

func (o *options) configureLogging() {
	logrus.SetLevel(o.level)
	if o.jsonLog {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
