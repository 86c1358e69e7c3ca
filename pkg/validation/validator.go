package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxGraphNameLength = 50
	MaxTopN            = 100

	// Regular expressions
	graphNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func init() {
	validate = validator.New()
}

// AnalysisRequest represents a request to analyze a corpus file
type AnalysisRequest struct {
	CorpusPath string `json:"corpusPath" validate:"required"`
	GraphName  string `json:"graphName" validate:"omitempty,max=50"`
	TopN       int    `json:"topN" validate:"omitempty,min=1,max=100"`
}

// ExportRequest represents a request to export an analysis artifact
type ExportRequest struct {
	Format   string `json:"format" validate:"required,oneof=graphml json jsonl csv"`
	Path     string `json:"path" validate:"required"`
	Compress bool   `json:"compress"`
}

// ValidateAnalysisRequest validates an analysis request
func ValidateAnalysisRequest(req *AnalysisRequest) error {
	if req == nil {
		return errors.New("analysis request cannot be nil")
	}

	// Validate using struct tags
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	// Additional graph name validation
	if req.GraphName != "" {
		if err := ValidateGraphName(req.GraphName); err != nil {
			return fmt.Errorf("GraphName: %w", err)
		}
	}

	return nil
}

// ValidateExportRequest validates an export request
func ValidateExportRequest(req *ExportRequest) error {
	if req == nil {
		return errors.New("export request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// ValidateGraphName validates a graph name used in reports and exports
func ValidateGraphName(name string) error {
	if name == "" {
		return errors.New("graph name cannot be empty")
	}
	if len(name) > MaxGraphNameLength {
		return fmt.Errorf("graph name '%s' exceeds maximum length of %d characters", name, MaxGraphNameLength)
	}
	if !graphNamePattern.MatchString(name) {
		return fmt.Errorf("graph name '%s' contains invalid characters (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

// ValidateTopN validates a ranking-list length
func ValidateTopN(n int) error {
	if n < 1 {
		return fmt.Errorf("top-N must be at least 1, got %d", n)
	}
	if n > MaxTopN {
		return fmt.Errorf("top-N must not exceed %d, got %d", MaxTopN, n)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
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
