package graph

import (
	"reflect"
	"testing"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

func testBlocks(ids ...string) []model.Block {
	blocks := make([]model.Block, len(ids))
	for i, id := range ids {
		blocks[i] = model.Block{ID: id, Number: i + 1, Reliability: 0.9}
	}
	return blocks
}

func signal(from, to string) model.Connection {
	return model.Connection{
		ID: from + "-" + to, FromBlockID: from, ToBlockID: to,
		FromSide: model.SideRight, ToSide: model.SideLeft,
	}
}

func busTie(from, to string, side model.Side) model.Connection {
	return model.Connection{
		ID: from + "=" + to, FromBlockID: from, ToBlockID: to,
		FromSide: side, ToSide: side,
	}
}

func TestBuildAdjacency_SignalEdgesOnly(t *testing.T) {
	blocks := testBlocks("a", "b", "c")
	connections := []model.Connection{
		signal("a", "b"),
		busTie("b", "c", model.SideLeft),
	}

	adj := BuildAdjacency(blocks, connections)
	if !reflect.DeepEqual(adj["a"], []string{"b"}) {
		t.Errorf("Expected a -> [b], got %v", adj["a"])
	}
	if len(adj["b"]) != 0 {
		t.Errorf("Bus tie must not create adjacency, got %v", adj["b"])
	}
}

func TestBuildAdjacency_MirroredRecord(t *testing.T) {
	// Edge recorded input-end first still points source -> target
	blocks := testBlocks("a", "b")
	connections := []model.Connection{{
		ID: "c1", FromBlockID: "b", ToBlockID: "a",
		FromSide: model.SideLeft, ToSide: model.SideRight,
	}}

	adj := BuildAdjacency(blocks, connections)
	if !reflect.DeepEqual(adj["a"], []string{"b"}) {
		t.Errorf("Expected a -> [b], got %v", adj["a"])
	}
}

func TestBuildAdjacency_IgnoresSelfLoopsAndUnknownBlocks(t *testing.T) {
	blocks := testBlocks("a", "b")
	connections := []model.Connection{
		signal("a", "a"),
		signal("a", "ghost"),
	}

	adj := BuildAdjacency(blocks, connections)
	if len(adj["a"]) != 0 {
		t.Errorf("Expected no edges, got %v", adj["a"])
	}
}

func TestSignalDegrees(t *testing.T) {
	blocks := testBlocks("a", "b", "c")
	connections := []model.Connection{
		signal("a", "b"),
		signal("b", "c"),
		busTie("a", "c", model.SideLeft),
	}

	in := SignalInDegree(blocks, connections)
	out := SignalOutDegree(blocks, connections)
	if in["a"] != 0 || in["b"] != 1 || in["c"] != 1 {
		t.Errorf("Unexpected in-degrees: %v", in)
	}
	if out["a"] != 1 || out["b"] != 1 || out["c"] != 0 {
		t.Errorf("Unexpected out-degrees: %v", out)
	}
}

func TestComponents_SplitsDisconnected(t *testing.T) {
	blocks := testBlocks("a", "b", "c", "d")
	connections := []model.Connection{
		signal("a", "b"),
		busTie("c", "d", model.SideLeft),
	}
	ids := []string{"a", "b", "c", "d"}

	components := Components(ids, blocks, connections)
	if len(components) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(components))
	}
	if !reflect.DeepEqual(components[0], []string{"a", "b"}) {
		t.Errorf("Expected [a b], got %v", components[0])
	}
	if !reflect.DeepEqual(components[1], []string{"c", "d"}) {
		t.Errorf("Expected [c d], got %v", components[1])
	}
}

func TestComponents_RestrictedToGivenIDs(t *testing.T) {
	blocks := testBlocks("a", "b", "c")
	connections := []model.Connection{
		signal("a", "b"),
		signal("b", "c"),
	}

	components := Components([]string{"a", "c"}, blocks, connections)
	if len(components) != 2 {
		t.Fatalf("Expected excluded middle block to split the component, got %v", components)
	}
}

func TestComponents_CyclicInputTerminates(t *testing.T) {
	blocks := testBlocks("a", "b")
	connections := []model.Connection{
		signal("a", "b"),
		signal("b", "a"),
	}

	components := Components([]string{"a", "b"}, blocks, connections)
	if len(components) != 1 || len(components[0]) != 2 {
		t.Errorf("Expected one 2-block component, got %v", components)
	}
}

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind(6)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 2)

	if !uf.Connected(0, 3) {
		t.Error("Expected 0 and 3 connected after transitive unions")
	}
	if uf.Connected(0, 4) {
		t.Error("Expected 0 and 4 to stay separate")
	}
	if uf.Find(5) != 5 {
		t.Error("Singleton must be its own representative")
	}
}

func TestOrderGroups_Topological(t *testing.T) {
	groups := [][]string{{"c"}, {"a"}, {"b"}}
	adj := Adjacency{"a": {"b"}, "b": {"c"}}
	numbers := map[string]int{"a": 1, "b": 2, "c": 3}

	order := OrderGroups(groups, adj, numbers)
	// Group indices: 0={c}, 1={a}, 2={b}; expect a, b, c
	if !reflect.DeepEqual(order, []int{1, 2, 0}) {
		t.Errorf("Expected [1 2 0], got %v", order)
	}
}

func TestOrderGroups_CycleFallsBackToNumberOrder(t *testing.T) {
	groups := [][]string{{"b"}, {"a"}}
	adj := Adjacency{"a": {"b"}, "b": {"a"}}
	numbers := map[string]int{"a": 1, "b": 2}

	order := OrderGroups(groups, adj, numbers)
	if !reflect.DeepEqual(order, []int{1, 0}) {
		t.Errorf("Expected number-ordered fallback [1 0], got %v", order)
	}
}
