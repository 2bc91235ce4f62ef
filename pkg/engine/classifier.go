package engine

import (
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// IsActive determines whether a block participates in the working
// configuration. The rules, in order:
//  1. A reserve block always stands by, so it is active.
//  2. If exactly one non-reserve block exists, only that block is active.
//  3. The non-reserve block with the smallest number anchors every
//     chain and is always active.
//  4. A block with at least one valid signal input is active.
//  5. A block bus-tied on its left terminal to an active block, whose
//     right terminal is also connected, is active (a parallel branch
//     sharing the left rail and feeding somewhere).
//  6. Everything else is inactive.
//
// The rule-5 neighbor check is deliberately shallow (rules 1-4 only,
// no recursion), matching the per-block evaluation model: rings of
// mutually bus-tied blocks with no anchored neighbor classify inactive.
func IsActive(blockID string, blocks []model.Block, connections []model.Connection, isReserve bool) bool {
	if isReserve {
		return true
	}
	if anchoredActive(blockID, blocks, connections) {
		return true
	}
	return parallelBranchActive(blockID, blocks, connections)
}

// anchoredActive applies rules 2-4
func anchoredActive(blockID string, blocks []model.Block, connections []model.Connection) bool {
	var block *model.Block
	nonReserve := 0
	minNumber := 0
	minID := ""
	for i := range blocks {
		b := &blocks[i]
		if b.ID == blockID {
			block = b
		}
		if b.IsReserve {
			continue
		}
		nonReserve++
		if minID == "" || b.Number < minNumber {
			minNumber, minID = b.Number, b.ID
		}
	}
	if block == nil || block.IsReserve {
		return false
	}

	if nonReserve == 1 {
		return minID == blockID
	}
	if minID == blockID {
		return true
	}

	for _, conn := range connections {
		if conn.IsSignal() && conn.SignalTarget() == blockID {
			return true
		}
	}
	return false
}

// parallelBranchActive applies rule 5: the block shares a left rail
// with an active block and its right terminal is itself connected
// (bus tie or outgoing signal). A bare left tie with a dangling right
// terminal stays inactive.
func parallelBranchActive(blockID string, blocks []model.Block, connections []model.Connection) bool {
	rightConnected := false
	for _, conn := range connections {
		if (conn.IsBusTie() || conn.IsSignal()) && conn.Touches(blockID, model.SideRight) {
			rightConnected = true
			break
		}
	}
	if !rightConnected {
		return false
	}

	index := model.BlockIndex(blocks)
	for _, conn := range connections {
		if !conn.IsBusTie() || !conn.Touches(blockID, model.SideLeft) {
			continue
		}
		neighborID := conn.OtherEnd(blockID)
		neighbor, ok := index[neighborID]
		if !ok {
			continue
		}
		if neighbor.IsReserve || anchoredActive(neighborID, blocks, connections) {
			return true
		}
	}
	return false
}

// ActiveMains returns the active non-reserve blocks, preserving input
// order
func ActiveMains(blocks []model.Block, connections []model.Connection) []model.Block {
	active := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.IsReserve {
			continue
		}
		if IsActive(b.ID, blocks, connections, false) {
			active = append(active, b)
		}
	}
	return active
}

// Reserves returns the reserve blocks, preserving input order
func Reserves(blocks []model.Block) []model.Block {
	reserves := make([]model.Block, 0)
	for _, b := range blocks {
		if b.IsReserve {
			reserves = append(reserves, b)
		}
	}
	return reserves
}
