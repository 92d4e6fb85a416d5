package assignment

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for assignment solving.
var (
	// ErrRaggedMatrix is returned when the cost matrix rows differ in length.
	ErrRaggedMatrix = errors.New("assignment: ragged cost matrix")

	// ErrInvalidEntry is returned when a cost is NaN or negative infinity.
	ErrInvalidEntry = errors.New("assignment: cost matrix contains NaN or -Inf")

	// ErrInfeasible is returned when no assignment of size min(m,n) exists,
	// i.e. some row can only reach +Inf entries.
	ErrInfeasible = errors.New("assignment: cost matrix is infeasible")
)

// Solve returns a minimum-cost assignment of size min(m, n) for the m×n
// cost matrix: rows[k] is assigned to cols[k], pairs sorted by row index.
// Entries of +Inf are forbidden pairs. An empty matrix (either dimension
// zero) yields empty slices.
//
// Returns ErrRaggedMatrix, ErrInvalidEntry or ErrInfeasible.
// Complexity: O(min(m,n)² · max(m,n)) time, O(m+n) extra space.
func Solve(cost [][]float64) (rows, cols []int, err error) {
	nr := len(cost)
	if nr == 0 {
		return []int{}, []int{}, nil
	}
	nc := len(cost[0])
	for _, row := range cost {
		if len(row) != nc {
			return nil, nil, ErrRaggedMatrix
		}
		for _, c := range row {
			if math.IsNaN(c) || math.IsInf(c, -1) {
				return nil, nil, ErrInvalidEntry
			}
		}
	}
	if nc == 0 {
		return []int{}, []int{}, nil
	}

	// The augmenting-path solver wants nr ≤ nc; transpose if needed and
	// swap the roles back afterwards.
	transposed := nr > nc
	work := cost
	if transposed {
		work = make([][]float64, nc)
		for j := 0; j < nc; j++ {
			work[j] = make([]float64, nr)
			for i := 0; i < nr; i++ {
				work[j][i] = cost[i][j]
			}
		}
		nr, nc = nc, nr
	}

	col4row, err := solveRect(work, nr, nc)
	if err != nil {
		return nil, nil, err
	}

	rows = make([]int, nr)
	cols = make([]int, nr)
	if transposed {
		for i, j := range col4row {
			rows[i], cols[i] = j, i
		}
		sort.Sort(byRow{rows, cols})
	} else {
		for i, j := range col4row {
			rows[i], cols[i] = i, j
		}
	}

	return rows, cols, nil
}

// solveRect assigns every row of the nr×nc matrix (nr ≤ nc) via shortest
// augmenting paths over reduced costs. col4row[i] is the column assigned
// to row i.
func solveRect(cost [][]float64, nr, nc int) ([]int, error) {
	inf := math.Inf(1)

	u := make([]float64, nr) // row potentials
	v := make([]float64, nc) // column potentials
	shortest := make([]float64, nc)
	path := make([]int, nc) // predecessor row on the shortest path to each column
	col4row := make([]int, nr)
	row4col := make([]int, nc)
	visitedRow := make([]bool, nr)
	visitedCol := make([]bool, nc)
	remaining := make([]int, nc)

	for i := range col4row {
		col4row[i] = -1
	}
	for j := range row4col {
		row4col[j] = -1
	}

	for curRow := 0; curRow < nr; curRow++ {
		for j := 0; j < nc; j++ {
			shortest[j] = inf
			path[j] = -1
			visitedCol[j] = false
			remaining[j] = j
		}
		for i := range visitedRow {
			visitedRow[i] = false
		}
		numRemaining := nc
		minVal := 0.0
		i := curRow
		sink := -1

		// Dijkstra over columns in the reduced-cost graph until a free
		// column becomes the cheapest frontier node.
		for sink == -1 {
			visitedRow[i] = true
			lowest := inf
			index := -1
			for it := 0; it < numRemaining; it++ {
				j := remaining[it]
				r := minVal + cost[i][j] - u[i] - v[j]
				if r < shortest[j] {
					shortest[j] = r
					path[j] = i
				}
				if shortest[j] < lowest || (shortest[j] == lowest && row4col[j] == -1) {
					lowest = shortest[j]
					index = it
				}
			}
			minVal = lowest
			if math.IsInf(minVal, 1) {
				return nil, ErrInfeasible
			}
			j := remaining[index]
			if row4col[j] == -1 {
				sink = j
			} else {
				i = row4col[j]
			}
			visitedCol[j] = true
			numRemaining--
			remaining[index] = remaining[numRemaining]
		}

		// Dual update keeps all reduced costs non-negative.
		u[curRow] += minVal
		for k := 0; k < nr; k++ {
			if visitedRow[k] && k != curRow {
				u[k] += minVal - shortest[col4row[k]]
			}
		}
		for j := 0; j < nc; j++ {
			if visitedCol[j] {
				v[j] -= minVal - shortest[j]
			}
		}

		// Augment along the alternating path back to curRow.
		j := sink
		for {
			k := path[j]
			row4col[j] = k
			col4row[k], j = j, col4row[k]
			if k == curRow {
				break
			}
		}
	}

	return col4row, nil
}

// byRow sorts paired (rows, cols) slices by row index.
type byRow struct {
	rows []int
	cols []int
}

func (b byRow) Len() int           { return len(b.rows) }
func (b byRow) Less(i, j int) bool { return b.rows[i] < b.rows[j] }
func (b byRow) Swap(i, j int) {
	b.rows[i], b.rows[j] = b.rows[j], b.rows[i]
	b.cols[i], b.cols[j] = b.cols[j], b.cols[i]
}
