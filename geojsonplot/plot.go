// Package geojsonplot records kdtree drawings as a GeoJSON feature
// collection, which most map and plotting tools can render.
package geojsonplot

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Property keys set on every recorded feature.
const (
	KindProperty        = "kind"
	OrientationProperty = "orientation"
)

// Plot is a kdtree.Drawer collecting draw calls as features. Points become
// Point features, lines become two-point LineString features.
type Plot struct {
	fc *geojson.FeatureCollection
}

// New creates an empty plot.
func New() *Plot {
	return &Plot{fc: geojson.NewFeatureCollection()}
}

// SetPlotBounds records the plot area as the collection's bounding box.
func (p *Plot) SetPlotBounds(xmin, xmax, ymin, ymax float64) {
	p.fc.BBox = geojson.NewBBox(orb.Bound{
		Min: orb.Point{xmin, ymin},
		Max: orb.Point{xmax, ymax},
	})
}

func (p *Plot) DrawPoint(x, y float64) {
	f := geojson.NewFeature(orb.Point{x, y})
	f.Properties[KindProperty] = "point"
	p.fc.Append(f)
}

// DrawLine also tags the line "vertical" or "horizontal" when it is one,
// so split lines can be styled per axis.
func (p *Plot) DrawLine(x0, y0, x1, y1 float64) {
	f := geojson.NewFeature(orb.LineString{{x0, y0}, {x1, y1}})
	f.Properties[KindProperty] = "line"
	switch {
	case x0 == x1:
		f.Properties[OrientationProperty] = "vertical"
	case y0 == y1:
		f.Properties[OrientationProperty] = "horizontal"
	}
	p.fc.Append(f)
}

// Features returns the recorded features in draw order.
func (p *Plot) Features() []*geojson.Feature {
	return p.fc.Features
}

// Bound returns the plot bounds, or the bound of the recorded features if
// SetPlotBounds was never called.
func (p *Plot) Bound() orb.Bound {
	if len(p.fc.BBox) == 4 {
		return p.fc.BBox.Bound()
	}
	var b orb.Bound
	for i, f := range p.fc.Features {
		if i == 0 {
			b = f.Geometry.Bound()
			continue
		}
		b = b.Union(f.Geometry.Bound())
	}
	return b
}

// WriteTo writes the collection as GeoJSON.
func (p *Plot) WriteTo(w io.Writer) (int64, error) {
	data, err := p.fc.MarshalJSON()
	if err != nil {
		return 0, errors.Wrap(err, "marshal feature collection")
	}
	n, err := w.Write(data)
	return int64(n), errors.Wrap(err, "write feature collection")
}
