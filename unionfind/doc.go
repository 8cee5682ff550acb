// Package unionfind implements the disjoint-set forest used to label
// Swendsen-Wang clusters during a single raster pass.
//
// Layout:
//
//	data[0]        — number of classes created since the last Reset
//	data[1..n]     — parent pointers; data[i]==i means i is a root
//
// Labels are minted in increasing order starting at 1. Union always hangs the
// larger root under the smaller one, so every root is the minimum label of its
// class and no cycle other than self-loops at roots can form.
//
// Find performs no path compression: the forest is rebuilt every sweep, so
// depth stays bounded by the unions a node went through, and Find stays a
// read-only operation that the flip pass can call on a frozen forest.
//
// Complexity:
//
//   - CreateClass: O(1)
//   - Find, Union: O(depth)
//   - Reset:       O(n)
package unionfind
