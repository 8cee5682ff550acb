package unionfind

import "fmt"

// Forest is a parent-array disjoint set over labels 1..Cap().
type Forest struct {
	data []int
}

// New returns a forest able to mint up to n labels. n < 0 is treated as 0.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{data: make([]int, n+1)}
	f.Reset()

	return f
}

// Cap returns the maximum number of classes the forest can create.
func (f *Forest) Cap() int { return len(f.data) - 1 }

// Created returns the number of classes minted since the last Reset.
func (f *Forest) Created() int { return f.data[0] }

// CreateClass mints the next label as a new self-rooted class and returns it.
// It panics when the capacity is exhausted; a raster pass over n sites never
// creates more than n classes.
func (f *Forest) CreateClass() int {
	next := f.data[0] + 1
	if next >= len(f.data) {
		panic(fmt.Sprintf("unionfind: capacity %d exhausted", f.Cap()))
	}
	f.data[0] = next
	f.data[next] = next

	return next
}

// Find follows parent pointers from label to its root.
func (f *Forest) Find(label int) int {
	for f.data[label] != label {
		label = f.data[label]
	}

	return label
}

// Union merges the classes of a and b and returns the surviving root,
// which is the smaller of the two roots.
func (f *Forest) Union(a, b int) int {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	f.data[rb] = ra

	return ra
}

// Connected reports whether a and b belong to the same class.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }

// Roots returns the number of distinct classes among the created labels.
// Complexity: O(Created()).
func (f *Forest) Roots() int {
	n := 0
	for i := 1; i <= f.data[0]; i++ {
		if f.data[i] == i {
			n++
		}
	}

	return n
}

// Reset makes every slot self-pointing and the counter zero.
func (f *Forest) Reset() {
	for i := range f.data {
		f.data[i] = i
	}
	f.data[0] = 0
}
