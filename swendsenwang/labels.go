package swendsenwang

// Labels maps every lattice site to its (not necessarily canonical) cluster label.
// Sites not yet visited by the build pass hold Unlabeled() == rows*cols.
type Labels struct {
	rows, cols int
	data       []int
}

// NewLabels returns a rows×cols grid filled with the sentinel.
func NewLabels(rows, cols int) *Labels {
	l := &Labels{rows: rows, cols: cols, data: make([]int, rows*cols)}
	l.Reset()

	return l
}

// Shape returns (rows, cols).
func (l *Labels) Shape() (rows, cols int) { return l.rows, l.cols }

// Unlabeled returns the sentinel label.
func (l *Labels) Unlabeled() int { return l.rows * l.cols }

// At returns the label stored at (row,col).
func (l *Labels) At(row, col int) int { return l.data[row*l.cols+col] }

// Set stores label at (row,col).
func (l *Labels) Set(row, col, label int) { l.data[row*l.cols+col] = label }

// Reset fills the grid with the sentinel. Complexity: O(rows×cols).
func (l *Labels) Reset() {
	sentinel := l.rows * l.cols
	for i := range l.data {
		l.data[i] = sentinel
	}
}
