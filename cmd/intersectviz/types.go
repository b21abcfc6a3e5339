package main

import (
	"fmt"

	"github.com/paulmach/go.geojson"

	"github.com/osmstreets/intersectgeom/geom"
	"github.com/osmstreets/intersectgeom/junction"
	"github.com/osmstreets/intersectgeom/junction/geojsonio"
)

type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type roadRequest struct {
	ID          int64          `json:"id"`
	SrcI        int64          `json:"src_intersection"`
	DstI        int64          `json:"dst_intersection"`
	CenterLine  []pointRequest `json:"center_line"`
	TotalWidth  float64        `json:"total_width"`
	HighwayType string         `json:"highway_type"`
	OSMWayID    *int64         `json:"osm_way_id,omitempty"`
	OSMNode1    *int64         `json:"osm_node_1,omitempty"`
	OSMNode2    *int64         `json:"osm_node_2,omitempty"`
}

// solveRequest is the POST /solve body. RampMaxAngleDegrees and
// RampMaxGapMeters are optional per-request overrides of the server's
// configured ramp thresholds; a nil field means "use the server default".
type solveRequest struct {
	IntersectionID      int64         `json:"intersection_id"`
	Roads               []roadRequest `json:"roads"`
	RampMaxAngleDegrees *float64      `json:"ramp_max_angle_degrees,omitempty"`
	RampMaxGapMeters    *float64      `json:"ramp_max_gap_meters,omitempty"`
}

func (r roadRequest) toOriginalRoad() *junction.OriginalRoad {
	if r.OSMWayID == nil && r.OSMNode1 == nil && r.OSMNode2 == nil {
		return nil
	}
	orig := &junction.OriginalRoad{}
	if r.OSMWayID != nil {
		orig.OSMWayID = *r.OSMWayID
	}
	if r.OSMNode1 != nil {
		orig.OSMNode1 = *r.OSMNode1
	}
	if r.OSMNode2 != nil {
		orig.OSMNode2 = *r.OSMNode2
	}
	return orig
}

func (req solveRequest) toInputRoads() ([]junction.InputRoad, error) {
	roads := make([]junction.InputRoad, 0, len(req.Roads))
	for _, rr := range req.Roads {
		pts := make([]geom.Pt2D, 0, len(rr.CenterLine))
		for _, p := range rr.CenterLine {
			pts = append(pts, geom.Pt2D{X: p.X, Y: p.Y})
		}
		pl, err := geom.NewPolyLine(pts)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", rr.ID, err)
		}
		roads = append(roads, junction.InputRoad{
			ID:          junction.RoadID(rr.ID),
			SrcI:        junction.IntersectionID(rr.SrcI),
			DstI:        junction.IntersectionID(rr.DstI),
			CenterLine:  pl,
			TotalWidth:  rr.TotalWidth,
			HighwayType: rr.HighwayType,
			Original:    rr.toOriginalRoad(),
		})
	}
	return roads, nil
}

func collectionOf(res junction.Results, props geojsonio.RoadProperties) *geojson.FeatureCollection {
	return geojsonio.FeatureCollection(res, props)
}
