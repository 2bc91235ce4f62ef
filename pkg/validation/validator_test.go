package validation

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

func validRequest() *DiagramRequest {
	return &DiagramRequest{
		Blocks: []BlockRequest{
			{ID: "pump-1", Number: 1, Reliability: 0.95},
			{ID: "pump-2", Number: 2, Reliability: 0.9, IsReserve: true},
		},
		Connections: []ConnectionRequest{
			{FromBlockID: "pump-1", ToBlockID: "pump-2", FromSide: "right", ToSide: "left"},
		},
	}
}

func TestValidateDiagramRequest_Accepts(t *testing.T) {
	if err := ValidateDiagramRequest(validRequest()); err != nil {
		t.Fatalf("Expected valid request to pass, got %v", err)
	}
}

func TestValidateDiagramRequest_Empty(t *testing.T) {
	if err := ValidateDiagramRequest(&DiagramRequest{}); err != nil {
		t.Fatalf("Empty diagram should be accepted, got %v", err)
	}
}

func TestValidateDiagramRequest_Nil(t *testing.T) {
	if err := ValidateDiagramRequest(nil); err == nil {
		t.Fatal("Expected error for nil request")
	}
}

func TestValidateDiagramRequest_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*DiagramRequest)
		wantSub string
	}{
		{
			name:    "missing block id",
			mutate:  func(r *DiagramRequest) { r.Blocks[0].ID = "" },
			wantSub: "required",
		},
		{
			name:    "zero block number",
			mutate:  func(r *DiagramRequest) { r.Blocks[0].Number = 0 },
			wantSub: "required",
		},
		{
			name:    "reliability above one",
			mutate:  func(r *DiagramRequest) { r.Blocks[0].Reliability = 1.5 },
			wantSub: "must not exceed 1",
		},
		{
			name:    "negative reliability",
			mutate:  func(r *DiagramRequest) { r.Blocks[0].Reliability = -0.1 },
			wantSub: "must be at least 0",
		},
		{
			name:    "invalid side",
			mutate:  func(r *DiagramRequest) { r.Connections[0].FromSide = "top" },
			wantSub: "one of [left right]",
		},
		{
			name:    "missing connection endpoint",
			mutate:  func(r *DiagramRequest) { r.Connections[0].ToBlockID = "" },
			wantSub: "required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			err := ValidateDiagramRequest(req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("Error %q does not mention %q", err.Error(), tc.wantSub)
			}
		})
	}
}

func TestValidateDiagramRequest_SizeLimits(t *testing.T) {
	req := &DiagramRequest{}
	for i := 0; i <= MaxBlocks; i++ {
		req.Blocks = append(req.Blocks, BlockRequest{ID: "b", Number: i + 1, Reliability: 0.5})
	}
	if err := ValidateDiagramRequest(req); err == nil {
		t.Fatal("Expected error for oversized block list")
	}
}

func TestToModel(t *testing.T) {
	req := validRequest()
	blocks, connections := req.ToModel()

	if len(blocks) != 2 || len(connections) != 1 {
		t.Fatalf("Expected 2 blocks and 1 connection, got %d and %d", len(blocks), len(connections))
	}
	if blocks[1].IsReserve != true {
		t.Error("Reserve flag lost in conversion")
	}
	if connections[0].FromSide != model.SideRight || connections[0].ToSide != model.SideLeft {
		t.Errorf("Sides not converted: %s -> %s", connections[0].FromSide, connections[0].ToSide)
	}
	if !connections[0].IsSignal() {
		t.Error("Converted connection should be a signal edge")
	}
}
