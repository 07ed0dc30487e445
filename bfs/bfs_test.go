package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
)

// adjacency turns an undirected edge list into a neighbour function that
// lists neighbours in insertion order.
func adjacency(edges ...[2]string) func(string) []string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return func(s string) []string { return adj[s] }
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	// nil neighbour function
	if _, err := bfs.Walk[string]("A", nil); !errors.Is(err, bfs.ErrNilNeighbors) {
		t.Errorf("nil next: want ErrNilNeighbors, got %v", err)
	}
	// negative MaxDepth is a violation
	next := adjacency()
	if _, err := bfs.Walk("A", next, bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SimpleTraversal covers the trivial one-state graph.
func TestWalk_SimpleTraversal(t *testing.T) {
	res, err := bfs.Walk("A", adjacency())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("start must have no parent")
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.Walk("A", next)
	if err != nil {
		t.Fatal(err)
	}
	// Must start at A
	if res.Order[0] != "A" {
		t.Errorf("first state = %s; want A", res.Order[0])
	}
	// Next two must be B and D in any order
	layer1 := map[string]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1["B"] || !layer1["D"] {
		t.Errorf("depth-1 layer = %v; want {B,D}", res.Order[1:3])
	}
	// Finally C
	if res.Order[3] != "C" {
		t.Errorf("last state = %s; want C", res.Order[3])
	}

	// Depth checks
	if got, want := res.Depth["A"], 0; got != want {
		t.Errorf("Depth[A] = %d; want %d", got, want)
	}
	for _, v := range []string{"B", "D"} {
		if got, want := res.Depth[v], 1; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if got, want := res.Depth["C"], 2; got != want {
		t.Errorf("Depth[C] = %d; want %d", got, want)
	}
}

// TestWalk_Disconnected ensures Walk only explores the component of the start.
func TestWalk_Disconnected(t *testing.T) {
	next := adjacency([2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, _ := bfs.Walk("X", next)
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if resX.Reached("P") {
		t.Errorf("From X: P must not be reached")
	}
}

// TestWalk_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestWalk_MaxDepth(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	// depth = 1 should only visit A,B
	if res, _ := bfs.Walk("A", next, bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.Walk("A", next, bfs.WithMaxDepth[string](0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.Walk("A", next, bfs.WithMaxDepth[string](10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestWalk_FilterNeighbor shows how filtering prunes certain edges.
func TestWalk_FilterNeighbor(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	// filter out B→C
	res, _ := bfs.Walk("A", next,
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestWalk_SelfLoopAndParallelDedup ensures that loops and repeated
// neighbours do not enqueue twice.
func TestWalk_SelfLoopAndParallelDedup(t *testing.T) {
	next := func(s string) []string {
		if s == "A" {
			return []string{"A", "B", "B"}
		}
		return nil
	}
	res, _ := bfs.Walk("A", next)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestWalk_Hooks asserts that hooks fire in the expected sequence and count.
func TestWalk_Hooks(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.Walk("A", next,
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestWalk_OnVisitAbort checks that a hook error stops the walk and is wrapped.
func TestWalk_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.Walk("A", next, bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_PathTo covers trivial (start→start), multi-hop and unreachable targets.
func TestWalk_PathTo(t *testing.T) {
	next := adjacency([2]string{"X", "Y"}, [2]string{"Y", "Z"})
	res, _ := bfs.Walk("X", next)
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if path, _ := res.PathTo("Z"); !reflect.DeepEqual(path, []string{"X", "Y", "Z"}) {
		t.Errorf("PathTo Z: got %v; want [X Y Z]", path)
	}
	_, err := res.PathTo("W")
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestWalk_Cancellation verifies that a cancelled context halts the walk promptly.
func TestWalk_Cancellation(t *testing.T) {
	// unbounded chain
	next := func(i int) []int { return []int{i + 1} }
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Walk(0, next, bfs.WithContext[int](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestWalk_ConcurrentSafety ensures two concurrent walks over the same
// neighbour function do not interfere.
func TestWalk_ConcurrentSafety(t *testing.T) {
	next := adjacency([2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Walk("A", next); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
