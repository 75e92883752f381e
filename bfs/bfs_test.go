package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/matrix"
)

// dense builds a matrix fixture or fails the test.
func dense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil adjacency
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrNilAdjacency) {
		t.Errorf("nil adjacency: want ErrNilAdjacency, got %v", err)
	}
	// non-square
	rect := dense(t, [][]int64{{0, 1, 0}, {1, 0, 0}})
	if _, err := bfs.BFS(rect, 0); !errors.Is(err, bfs.ErrNonSquare) {
		t.Errorf("non-square: want ErrNonSquare, got %v", err)
	}
	// start out of range
	sq := dense(t, [][]int64{{0, 1}, {1, 0}})
	if _, err := bfs.BFS(sq, 2); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start 2: want ErrStartOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(sq, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// unknown mode is a violation
	if _, err := bfs.BFS(sq, 0, bfs.WithMode(bfs.Mode(7))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("unknown mode: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(dense(t, [][]int64{{0}}), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
}

// TestBFS_ForwardVersusWeak shows the effect of edge direction on reach.
func TestBFS_ForwardVersusWeak(t *testing.T) {
	// 1→0, 1→2: from 0 nothing is forward-reachable.
	m := dense(t, [][]int64{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0, 0},
	})
	fwd, err := bfs.BFS(m, 0, bfs.WithMode(bfs.Forward))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fwd.Order, []int{0}) {
		t.Errorf("forward Order = %v; want [0]", fwd.Order)
	}
	if fwd.Reached(1) {
		t.Errorf("forward: vertex 1 must be unreached")
	}

	weak, err := bfs.BFS(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(weak.Order, []int{0, 1, 2}) {
		t.Errorf("weak Order = %v; want [0 1 2]", weak.Order)
	}
	if got := weak.Depth[2]; got != 2 {
		t.Errorf("weak Depth[2] = %d; want 2", got)
	}
}

// TestBFS_MaxDepthAndHook verifies depth limiting and hook abort.
func TestBFS_MaxDepthAndHook(t *testing.T) {
	// path 0→1→2→3
	m := dense(t, [][]int64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	res, err := bfs.BFS(m, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("Order = %v; want [0 1 2]", res.Order)
	}

	boom := errors.New("boom")
	_, err = bfs.BFS(m, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("hook error: want boom, got %v", err)
	}
}

// TestNeighbors_OutOnly checks neighbors follow stored direction only.
func TestNeighbors_OutOnly(t *testing.T) {
	m := dense(t, [][]int64{
		{1, 0, 3},
		{1, 0, 0},
		{0, -2, 0},
	})
	cases := map[int][]int{0: {0, 2}, 1: {0}, 2: {1}}
	for v, want := range cases {
		got, err := bfs.Neighbors(m, v)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Neighbors(%d) = %v; want %v", v, got, want)
		}
	}
	if _, err := bfs.Neighbors(m, 3); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("Neighbors(3): want ErrStartOutOfRange, got %v", err)
	}
}
