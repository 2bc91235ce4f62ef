package model

// Side identifies which terminal of a block a connection touches.
// By convention the left terminal is the block's input and the right
// terminal is its output.
type Side string

const (
	// SideLeft is the input terminal of a block
	SideLeft Side = "left"
	// SideRight is the output terminal of a block
	SideRight Side = "right"
)

// Valid reports whether s is one of the two known sides
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Block is an independently-failing unit with a success probability.
// Blocks are owned by the caller; the engine only reads them.
type Block struct {
	// ID is an opaque unique identifier
	ID string `json:"id" yaml:"id"`
	// Number is the display/ordering key, unique among non-reserve
	// blocks at creation time. The smallest-numbered non-reserve block
	// anchors every chain.
	Number int `json:"number" yaml:"number"`
	// Reliability is the block's success probability in [0,1]
	Reliability float64 `json:"reliability" yaml:"reliability"`
	// IsReserve marks a standby-redundancy block
	IsReserve bool `json:"isReserve,omitempty" yaml:"isReserve,omitempty"`
}

// Connection joins a terminal of one block to a terminal of another.
// One right side and one left side make a directed signal edge; two
// equal sides make a bus tie (the terminals are the same circuit node).
type Connection struct {
	ID          string `json:"id" yaml:"id"`
	FromBlockID string `json:"fromBlockId" yaml:"fromBlockId"`
	ToBlockID   string `json:"toBlockId" yaml:"toBlockId"`
	FromSide    Side   `json:"fromSide" yaml:"fromSide"`
	ToSide      Side   `json:"toSide" yaml:"toSide"`
}

// Diagram is a full block diagram as supplied by the caller
type Diagram struct {
	Blocks      []Block      `json:"blocks" yaml:"blocks"`
	Connections []Connection `json:"connections" yaml:"connections"`
}
