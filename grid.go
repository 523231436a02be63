package physics2d

import "math"

// ==================== BROAD-PHASE: UNIFORM SPATIAL HASH ====================

// DefaultCellSize is the default width/height of a grid cell in world units.
const DefaultCellSize = 2.0

type gridCell struct {
	X, Y int
}

type pairKey struct {
	i, j int
}

// bodyPair is a deduplicated candidate pair of body indices, i < j.
type bodyPair struct {
	I, J int
}

// broadPhase buckets each body's AABB into every grid cell it overlaps,
// then emits every unordered pair of indices that share at least one
// bucket, once each, across the whole grid.
func broadPhase(aabbs []AABB, cellSize float64) []bodyPair {
	buckets := make(map[gridCell][]int)

	for i, box := range aabbs {
		x0 := cellCoord(box.Min.X(), cellSize)
		x1 := cellCoord(box.Max.X(), cellSize)
		y0 := cellCoord(box.Min.Y(), cellSize)
		y1 := cellCoord(box.Max.Y(), cellSize)

		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				cell := gridCell{X: x, Y: y}
				buckets[cell] = append(buckets[cell], i)
			}
		}
	}

	seen := make(map[pairKey]struct{})
	var pairs []bodyPair

	for _, ids := range buckets {
		if len(ids) < 2 {
			continue
		}
		for a := 0; a < len(ids); a++ {
			for b := a + 1; b < len(ids); b++ {
				i, j := ids[a], ids[b]
				if i > j {
					i, j = j, i
				}
				key := pairKey{i: i, j: j}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, bodyPair{I: i, J: j})
			}
		}
	}

	return pairs
}

func cellCoord(x, cellSize float64) int {
	return int(math.Floor(x / cellSize))
}
