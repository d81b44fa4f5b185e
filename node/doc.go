// Package node provides the search tree shared by the solver and its tests.
//
// Nodes live in an arena (Tree) and point at their parent by index, so a
// terminal node's chain back to the root can be walked without shared
// pointers. Path extraction produces a fresh start-to-terminal slice and
// never rewrites parent links.
package node
