// Package geojsonio converts solved junction geometry into GeoJSON, the
// interchange format downstream tooling (map viewers, debugging UIs)
// consumes.
package geojsonio

import (
	"github.com/paulmach/go.geojson"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/osmstreets/intersectgeom/geom"
	"github.com/osmstreets/intersectgeom/junction"
)

// RoadProperties looks up the OSM provenance for a road id, used to
// populate feature properties on the exported center-line features.
// Implementations typically close over the original []InputRoad slice
// Solve was called with.
type RoadProperties func(id junction.RoadID) *junction.OriginalRoad

// FeatureCollection converts res into a GeoJSON FeatureCollection: one
// LineString feature per trimmed center-line (sorted by road id for
// deterministic output), one Polygon feature for the intersection
// polygon, and one Point feature per debug marker.
func FeatureCollection(res junction.Results, props RoadProperties) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ids := lo.Keys(res.TrimmedCenterPts)
	slices.Sort(ids)

	for _, id := range ids {
		pl := res.TrimmedCenterPts[id]
		feature := geojson.NewLineStringFeature(toLineStringCoords(pl))
		feature.SetProperty("road_id", int64(id))
		if props != nil {
			if orig := props(id); orig != nil {
				feature.SetProperty("osm_way_id", orig.OSMWayID)
				feature.SetProperty("osm_node_1", orig.OSMNode1)
				feature.SetProperty("osm_node_2", orig.OSMNode2)
			}
		}
		fc.AddFeature(feature)
	}

	if len(res.IntersectionPolygon) >= 3 {
		ring := toLineStringCoords(res.IntersectionPolygon)
		ring = append(ring, ring[0])
		polygonFeature := geojson.NewPolygonFeature([][][]float64{ring})
		polygonFeature.SetProperty("intersection_id", int64(res.IntersectionID))
		fc.AddFeature(polygonFeature)
	}

	for _, marker := range res.Debug {
		pointFeature := geojson.NewPointFeature([]float64{marker.Pt.X, marker.Pt.Y})
		pointFeature.SetProperty("label", marker.Label)
		fc.AddFeature(pointFeature)
	}

	return fc
}

func toLineStringCoords(pl geom.PolyLine) [][]float64 {
	return lo.Map(pl, func(p geom.Pt2D, _ int) []float64 {
		return []float64{p.X, p.Y}
	})
}
