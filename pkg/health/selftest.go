package health

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-rbd/pkg/engine"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// selfTestTolerance bounds the allowed drift on the reference result
const selfTestTolerance = 1e-9

// EngineSelfTest evaluates a two-block series chain with known
// reliabilities and verifies the engine produces the exact product.
// Any drift indicates a broken build rather than a transient fault.
func EngineSelfTest() Check {
	blocks := []model.Block{
		{ID: "probe-a", Number: 1, Reliability: 0.9},
		{ID: "probe-b", Number: 2, Reliability: 0.8},
	}
	connections := []model.Connection{
		{FromBlockID: "probe-a", ToBlockID: "probe-b", FromSide: model.SideRight, ToSide: model.SideLeft},
	}

	result := engine.EvaluateSystem(blocks, connections)
	if math.Abs(result.SystemReliability-0.72) > selfTestTolerance {
		return Check{
			Status:  StatusUnhealthy,
			Message: fmt.Sprintf("reference diagram evaluated to %v, expected 0.72", result.SystemReliability),
		}
	}
	return Check{Status: StatusHealthy}
}
