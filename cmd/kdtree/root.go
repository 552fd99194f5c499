package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinerr/kdtree"
	"github.com/vinerr/kdtree/geojsonplot"
)

// demoPoints is inserted when no random points are requested.
var demoPoints = []kdtree.Point{
	{X: 0.1, Y: 0.3}, {X: 0.5, Y: 0.6}, {X: 0.8, Y: 0.9}, {X: 0.4, Y: 0.2},
	{X: 0.1, Y: 0.4}, {X: 0.7, Y: 0.4}, {X: 0.3, Y: 0.8}, {X: 0.6, Y: 0.1},
	{X: 0.9, Y: 0.7}, {X: 0.2, Y: 0.5}, {X: 0.5, Y: 0.3}, {X: 0.8, Y: 0.2},
}

func newRootCommand(out io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "kdtree",
		Short:         "Build a 2-d tree and query it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			o.configureLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, out)
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func run(o *options, out io.Writer) error {
	log := logrus.WithField("component", "kdtree")
	t, err := kdtree.New(kdtree.WithLogger(log))
	if err != nil {
		return err
	}
	points := demoPoints
	if o.points > 0 {
		points = randomPoints(o.points, o.seed)
	}
	for _, p := range points {
		if err := t.Insert(p); err != nil {
			return errors.Wrapf(err, "insert %s", p)
		}
	}
	log.WithFields(logrus.Fields{
		"size":   t.Len(),
		"height": t.Height(),
	}).Info("tree built")

	ok, err := t.Contains(o.contains)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Number of elements in the tree =", t.Len())
	fmt.Fprintf(out, "Does the tree contain the point %s? %t\n", o.contains, ok)

	if nearest, found, err := t.Nearest(o.query); err != nil {
		return err
	} else if found {
		fmt.Fprintf(out, "Closest point to %s: %s\n", o.query, nearest)
	}

	inside, err := t.Range(o.rng)
	if err != nil {
		return err
	}
	kdtree.SortPoints(inside)
	fmt.Fprintf(out, "Points inside the rectangle %s: %v\n", o.rng, inside)

	// printing every random point is rarely useful
	if o.points == 0 {
		if err := t.Fprint(out); err != nil {
			return err
		}
	}
	if o.plot != "" {
		return writePlot(t, o, log)
	}
	return nil
}

func writePlot(t *kdtree.Tree, o *options, log *logrus.Entry) error {
	plot := geojsonplot.New()
	t.Draw(plot)
	o.rng.Draw(plot)
	o.query.Draw(plot)

	f, err := os.Create(o.plot)
	if err != nil {
		return errors.Wrap(err, "create plot file")
	}
	n, err := plot.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "write plot %s", o.plot)
	}
	log.WithFields(logrus.Fields{
		"file":     o.plot,
		"bytes":    n,
		"features": len(plot.Features()),
	}).Info("plot written")
	return nil
}

func randomPoints(n int, seed int64) []kdtree.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]kdtree.Point, n)
	for i := range points {
		points[i] = kdtree.Point{X: r.Float64(), Y: r.Float64()}
	}
	return points
}
