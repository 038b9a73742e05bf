package maze

import "fmt"

// Constraint classifies which validation rule a configuration field violated.
type Constraint string

const (
	// ConstraintSign covers positivity and non-negativity checks.
	ConstraintSign Constraint = "sign"
	// ConstraintParity covers odd-dimension checks.
	ConstraintParity Constraint = "parity"
	// ConstraintRange covers bounded numeric checks.
	ConstraintRange Constraint = "range"
	// ConstraintCrossField covers checks spanning two fields.
	ConstraintCrossField Constraint = "cross-field"
	// ConstraintLength covers token length checks.
	ConstraintLength Constraint = "length"
)

// ConfigError reports an invalid construction parameter. It is the only error
// the engine produces: once a configuration validates, generation is total.
type ConfigError struct {
	Field      string
	Constraint Constraint
	Message    string
}

// Error returns the human-readable description, e.g.
// "maze: height must be a positive odd integer".
func (e *ConfigError) Error() string {
	return fmt.Sprintf("maze: %s", e.Message)
}

func configErr(field string, constraint Constraint, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field:      field,
		Constraint: constraint,
		Message:    fmt.Sprintf(format, args...),
	}
}
