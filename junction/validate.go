package junction

import "fmt"

// Validate checks that every road in roads touches intersectionID and
// carries a positive width. It does not check clockwise ordering -- that
// requires knowing the junction's center, which is a network-layer
// concern outside this package. Solve never calls Validate automatically;
// it exists for callers that want to fail fast before relying on the
// clockwise-order precondition.
func Validate(roads []InputRoad, intersectionID IntersectionID) error {
	for _, r := range roads {
		if r.SrcI != intersectionID && r.DstI != intersectionID {
			return fmt.Errorf("road %d does not touch intersection %d: %w", r.ID, intersectionID, ErrUnsortedRoads)
		}
		if r.TotalWidth <= 0 {
			return fmt.Errorf("road %d has non-positive width: %w", r.ID, ErrPolylineInvalid)
		}
	}
	return nil
}
