package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prestonraab/cs-575/bfs"
	"github.com/prestonraab/cs-575/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g2 := core.NewGraph()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleDepths covers a 4-cycle and checks depths and determinism.
func TestBFS_CycleDepths(t *testing.T) {
	// A-B-C-D-A undirected cycle
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	// Insertion order makes neighbor expansion deterministic: B before D.
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

// TestBFS_MaxDepth verifies the depth bound.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort verifies that a hook error stops the traversal.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error propagated, got %v", err)
	}
}

// TestBFS_ContextCancel verifies cancellation.
func TestBFS_ContextCancel(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestConnected(t *testing.T) {
	if _, err := bfs.Connected(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.Connected(core.NewGraph()); !errors.Is(err, bfs.ErrEmptyGraph) {
		t.Errorf("empty graph: want ErrEmptyGraph, got %v", err)
	}

	single := core.NewGraph()
	single.AddVertex("A")
	if ok, err := bfs.Connected(single); err != nil || !ok {
		t.Errorf("single vertex: want connected, got (%v, %v)", ok, err)
	}

	// Two vertices, no edges: disconnected.
	bare := core.NewGraph()
	bare.AddVertex("A")
	bare.AddVertex("B")
	if ok, _ := bfs.Connected(bare); ok {
		t.Error("edgeless two-vertex graph reported connected")
	}

	// Path is connected; adding an isolated vertex breaks it.
	path := core.NewGraph()
	path.AddEdge("A", "B")
	path.AddEdge("B", "C")
	if ok, _ := bfs.Connected(path); !ok {
		t.Error("path reported disconnected")
	}
	path.AddVertex("Z")
	if ok, _ := bfs.Connected(path); ok {
		t.Error("path plus isolated vertex reported connected")
	}
}
