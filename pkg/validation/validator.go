package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Request size limits. These guard the HTTP surface only; the
	// engine itself evaluates any decodable graph without error.
	MaxBlocks      = 5000
	MaxConnections = 20000
)

func init() {
	validate = validator.New()
}

// DiagramRequest is a block diagram as submitted to the API
type DiagramRequest struct {
	Blocks      []BlockRequest      `json:"blocks" validate:"dive"`
	Connections []ConnectionRequest `json:"connections" validate:"dive"`
}

// BlockRequest mirrors model.Block with validation tags
type BlockRequest struct {
	ID          string  `json:"id" validate:"required,max=128"`
	Number      int     `json:"number" validate:"required,min=1"`
	Reliability float64 `json:"reliability" validate:"min=0,max=1"`
	IsReserve   bool    `json:"isReserve"`
}

// ConnectionRequest mirrors model.Connection with validation tags
type ConnectionRequest struct {
	ID          string `json:"id" validate:"max=128"`
	FromBlockID string `json:"fromBlockId" validate:"required,max=128"`
	ToBlockID   string `json:"toBlockId" validate:"required,max=128"`
	FromSide    string `json:"fromSide" validate:"required,oneof=left right"`
	ToSide      string `json:"toSide" validate:"required,oneof=left right"`
}

// ValidateDiagramRequest validates a diagram submission
func ValidateDiagramRequest(req *DiagramRequest) error {
	if req == nil {
		return errors.New("diagram request cannot be nil")
	}
	if len(req.Blocks) > MaxBlocks {
		return fmt.Errorf("Blocks: maximum %d blocks allowed, got %d", MaxBlocks, len(req.Blocks))
	}
	if len(req.Connections) > MaxConnections {
		return fmt.Errorf("Connections: maximum %d connections allowed, got %d", MaxConnections, len(req.Connections))
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ToModel converts a validated request into engine model values
func (req *DiagramRequest) ToModel() ([]model.Block, []model.Connection) {
	blocks := make([]model.Block, len(req.Blocks))
	for i, b := range req.Blocks {
		blocks[i] = model.Block{
			ID:          b.ID,
			Number:      b.Number,
			Reliability: b.Reliability,
			IsReserve:   b.IsReserve,
		}
	}
	connections := make([]model.Connection, len(req.Connections))
	for i, c := range req.Connections {
		connections[i] = model.Connection{
			ID:          c.ID,
			FromBlockID: c.FromBlockID,
			ToBlockID:   c.ToBlockID,
			FromSide:    model.Side(c.FromSide),
			ToSide:      model.Side(c.ToSide),
		}
	}
	return blocks, connections
}

// formatValidationError converts validator errors to a user-friendly form
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
