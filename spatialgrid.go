package slab

import (
	"math"
	"slices"
	"sort"
	"sync"

	"github.com/akmonengine/slab/actor"
	"github.com/go-gl/mathgl/mgl32"
)

// maxCellCoord bounds cell coordinates so products in forEachCell cannot overflow
const maxCellCoord = 1 << 20

// ============================================================================
// Types
// ============================================================================

// CellKey - integer coordinates of a grid cell
type CellKey struct {
	X, Y, Z int
}

// Cell - indices of the shapes overlapping a hashed cell
type Cell struct {
	shapeIndices []int
}

// Pair - two shapes whose AABBs overlap, A < B, indexing the caller's slice
type Pair struct {
	A int
	B int
}

// SpatialGrid - uniform hashed grid used to cull AABB overlap candidates
// The grid stores indices only; it is rebuilt from the caller's shapes for each
// query set and never keeps references to them.
type SpatialGrid struct {
	cellSize float32
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - numCells is rounded up to a power of two
// A negative cellSize is taken by magnitude. A zero or non-finite one leaves no
// addressable cell, and every query falls back to scanning each bucket.
func NewSpatialGrid(cellSize float32, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)
	cellSize = mgl32.Abs(cellSize)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].shapeIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds n up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - adds a shape index to every cell its AABB covers
func (sg *SpatialGrid) Insert(shapeIndex int, aabb actor.AABB) {
	sg.forEachCell(aabb, func(cellIdx int) {
		sg.cells[cellIdx].shapeIndices = append(sg.cells[cellIdx].shapeIndices, shapeIndex)
	})
}

// Build - clears the grid and inserts every shape
func (sg *SpatialGrid) Build(shapes []actor.ShapeInterface) {
	sg.Clear()
	for i, shape := range shapes {
		sg.Insert(i, shape.GetAABB())
	}
	sg.SortCells()
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].shapeIndices = sg.cells[i].shapeIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].shapeIndices) > 1 {
			sort.Ints(sg.cells[i].shapeIndices)
		}
	}
}

// FindPairs - sequential version, pairs come out ordered by A
func (sg *SpatialGrid) FindPairs(shapes []actor.ShapeInterface) []Pair {
	pairs := make([]Pair, 0, len(shapes)/2)
	seen := make([]bool, len(shapes))

	for shapeIdx := range shapes {
		clear(seen)
		sg.pairsFor(shapes, shapeIdx, seen, func(p Pair) {
			pairs = append(pairs, p)
		})
	}

	return pairs
}

// FindPairsParallel - splits shapes across workers, the channel closes once
// every worker is done
func (sg *SpatialGrid) FindPairsParallel(shapes []actor.ShapeInterface, numWorkers int) <-chan Pair {
	var wg sync.WaitGroup
	numWorkers = max(1, numWorkers)
	pairsChan := make(chan Pair, numWorkers*10)

	shapesPerWorker := len(shapes) / numWorkers
	if shapesPerWorker == 0 {
		shapesPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		startIdx := w * shapesPerWorker
		endIdx := startIdx + shapesPerWorker
		if w == numWorkers-1 {
			endIdx = len(shapes)
		}
		if startIdx >= len(shapes) {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(shapes))
			for shapeIdx := start; shapeIdx < end; shapeIdx++ {
				clear(seen)
				sg.pairsFor(shapes, shapeIdx, seen, func(p Pair) {
					pairsChan <- p
				})
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// pairsFor - emits every overlapping pair (shapeIdx, other) with other > shapeIdx
func (sg *SpatialGrid) pairsFor(shapes []actor.ShapeInterface, shapeIdx int, seen []bool, emit func(Pair)) {
	aabbA := shapes[shapeIdx].GetAABB()

	sg.forEachCell(aabbA, func(cellIdx int) {
		for _, otherIdx := range sg.cells[cellIdx].shapeIndices {
			// Avoid duplicates (A,B) and (B,A), and shapes sharing several cells
			if otherIdx <= shapeIdx || seen[otherIdx] {
				continue
			}
			seen[otherIdx] = true

			if aabbA.Overlaps(shapes[otherIdx].GetAABB()) {
				emit(Pair{A: shapeIdx, B: otherIdx})
			}
		}
	})
}

// QueryAABB - sorted indices of the shapes sharing a cell with aabb
// The result is a candidate set: callers still run the exact test.
func (sg *SpatialGrid) QueryAABB(aabb actor.AABB) []int {
	var candidates []int

	sg.forEachCell(aabb, func(cellIdx int) {
		candidates = append(candidates, sg.cells[cellIdx].shapeIndices...)
	})

	slices.Sort(candidates)
	return slices.Compact(candidates)
}

// forEachCell - visits the hashed index of every cell covered by aabb
// A region wider than the table, or too far out to address, visits each
// bucket once instead.
func (sg *SpatialGrid) forEachCell(aabb actor.AABB, fn func(cellIdx int)) {
	// An inverted or NaN box overlaps nothing
	if !aabb.IsValid() {
		return
	}

	minCell, okMin := sg.worldToCell(aabb.Min)
	maxCell, okMax := sg.worldToCell(aabb.Max)

	n := len(sg.cells)
	dx, dy, dz := maxCell.X-minCell.X+1, maxCell.Y-minCell.Y+1, maxCell.Z-minCell.Z+1
	if !okMin || !okMax || dx > n || dy > n || dz > n || dx*dy*dz > n {
		for i := range sg.cells {
			fn(i)
		}
		return
	}

	visited := make(map[int]struct{}, dx*dy*dz)
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})
				if _, ok := visited[cellIdx]; ok {
					continue
				}
				visited[cellIdx] = struct{}{}
				fn(cellIdx)
			}
		}
	}
}

// worldToCell - converts a world position to cell coordinates
// ok is false when a coordinate is not finite or too large to address, which
// includes every position of a grid with a zero cell size.
func (sg *SpatialGrid) worldToCell(pos mgl32.Vec3) (key CellKey, ok bool) {
	var c [3]int
	for i := range c {
		f := math.Floor(float64(pos[i]) / float64(sg.cellSize))
		if math.IsNaN(f) || math.Abs(f) > maxCellCoord {
			return CellKey{}, false
		}
		c[i] = int(f)
	}

	return CellKey{X: c[0], Y: c[1], Z: c[2]}, true
}

// hashCell - hashes a cell to an index in the table
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
