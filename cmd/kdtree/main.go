// Command kdtree builds a 2-d tree from a fixed demo set or from random
// points in the unit square, runs a contains, a nearest and a range query
// against it, and prints the tree. With --plot the tree is also written
// out as GeoJSON.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("kdtree failed")
		os.Exit(1)
	}
}
