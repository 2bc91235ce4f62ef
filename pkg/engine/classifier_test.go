package engine

import (
	"testing"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

func TestIsActive_ReserveAlwaysActive(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "r", Number: 2, Reliability: 0.9, IsReserve: true},
	}
	if !IsActive("r", blocks, nil, true) {
		t.Error("Expected reserve block to be active")
	}
}

func TestIsActive_SingleNonReserveBlock(t *testing.T) {
	blocks := []model.Block{{ID: "a", Number: 7, Reliability: 0.9}}
	if !IsActive("a", blocks, nil, false) {
		t.Error("Expected the only non-reserve block to be active")
	}
}

func TestIsActive_MinNumberIsAnchor(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 3, Reliability: 0.9},
		{ID: "b", Number: 1, Reliability: 0.9},
		{ID: "c", Number: 2, Reliability: 0.9},
	}
	// No connections at all: only the smallest number is active
	if !IsActive("b", blocks, nil, false) {
		t.Error("Expected minimum-numbered block to be active")
	}
	if IsActive("a", blocks, nil, false) {
		t.Error("Expected unconnected non-anchor block to be inactive")
	}
	if IsActive("c", blocks, nil, false) {
		t.Error("Expected unconnected non-anchor block to be inactive")
	}
}

func TestIsActive_SignalInputActivates(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "b", Number: 2, Reliability: 0.9},
	}
	connections := []model.Connection{signal("s1", "a", "b")}
	if !IsActive("b", blocks, connections, false) {
		t.Error("Expected block with signal input to be active")
	}
}

func TestIsActive_ParallelBranchSharingRails(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "b", Number: 2, Reliability: 0.9},
	}
	connections := []model.Connection{
		busTie("t1", "a", "b", model.SideLeft),
		busTie("t2", "a", "b", model.SideRight),
	}
	if !IsActive("b", blocks, connections, false) {
		t.Error("Expected rail-sharing parallel branch to be active")
	}
}

func TestIsActive_LeftTieWithoutRightTieIsInactive(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "b", Number: 2, Reliability: 0.9},
	}
	connections := []model.Connection{
		busTie("t1", "a", "b", model.SideLeft),
	}
	if IsActive("b", blocks, connections, false) {
		t.Error("Expected block with only a left tie to be inactive")
	}
}

func TestIsActive_UnanchoredRingIsInactive(t *testing.T) {
	// b and c share rails with each other but neither reaches the
	// anchor: the shallow neighbor check classifies both inactive
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "b", Number: 2, Reliability: 0.9},
		{ID: "c", Number: 3, Reliability: 0.9},
	}
	connections := []model.Connection{
		busTie("t1", "b", "c", model.SideLeft),
		busTie("t2", "b", "c", model.SideRight),
	}
	if IsActive("b", blocks, connections, false) {
		t.Error("Expected unanchored parallel ring member to be inactive")
	}
	if IsActive("c", blocks, connections, false) {
		t.Error("Expected unanchored parallel ring member to be inactive")
	}
}

func TestActiveMains_FiltersReservesAndInactive(t *testing.T) {
	blocks := []model.Block{
		{ID: "a", Number: 1, Reliability: 0.9},
		{ID: "b", Number: 2, Reliability: 0.9},
		{ID: "r", Number: 3, Reliability: 0.9, IsReserve: true},
		{ID: "orphan", Number: 4, Reliability: 0.9},
	}
	connections := []model.Connection{signal("s1", "a", "b")}

	mains := ActiveMains(blocks, connections)
	if len(mains) != 2 {
		t.Fatalf("Expected 2 active mains, got %d", len(mains))
	}
	if mains[0].ID != "a" || mains[1].ID != "b" {
		t.Errorf("Expected [a b], got [%s %s]", mains[0].ID, mains[1].ID)
	}
}
