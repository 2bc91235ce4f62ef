package model

// IsSelfLoop reports whether the connection joins a block to itself.
// Self-loops contribute no edge to any computation.
func (c Connection) IsSelfLoop() bool {
	return c.FromBlockID == c.ToBlockID
}

// IsSignal reports whether the connection is a directed signal edge:
// one end on an output (right) terminal, the other on an input (left)
// terminal. Both record orientations are honored.
func (c Connection) IsSignal() bool {
	if c.IsSelfLoop() || !c.FromSide.Valid() || !c.ToSide.Valid() {
		return false
	}
	return c.FromSide != c.ToSide
}

// IsBusTie reports whether the connection declares two same-kind
// terminals equipotential (left-left or right-right)
func (c Connection) IsBusTie() bool {
	if c.IsSelfLoop() || !c.FromSide.Valid() || !c.ToSide.Valid() {
		return false
	}
	return c.FromSide == c.ToSide
}

// SignalSource returns the block id on the output side of a signal
// edge. Result is meaningful only when IsSignal is true.
func (c Connection) SignalSource() string {
	if c.FromSide == SideRight {
		return c.FromBlockID
	}
	return c.ToBlockID
}

// SignalTarget returns the block id on the input side of a signal edge
func (c Connection) SignalTarget() string {
	if c.FromSide == SideRight {
		return c.ToBlockID
	}
	return c.FromBlockID
}

// Touches reports whether the connection has an end on the given
// terminal of the given block
func (c Connection) Touches(blockID string, side Side) bool {
	return (c.FromBlockID == blockID && c.FromSide == side) ||
		(c.ToBlockID == blockID && c.ToSide == side)
}

// OtherEnd returns the block id at the opposite end from blockID.
// Returns the empty string if blockID is not an endpoint.
func (c Connection) OtherEnd(blockID string) string {
	switch blockID {
	case c.FromBlockID:
		return c.ToBlockID
	case c.ToBlockID:
		return c.FromBlockID
	}
	return ""
}

// BlockIndex builds a lookup from block id to block
func BlockIndex(blocks []Block) map[string]Block {
	index := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		index[b.ID] = b
	}
	return index
}
