package rubric

import "fmt"

// ValidationError represents a single rubric defect.
type ValidationError struct {
	Section string // empty for table-wide defects
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("rubric: %s", e.Reason)
	}
	return fmt.Sprintf("rubric section %q: %s", e.Section, e.Reason)
}

// AggregateError represents multiple rubric defects.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d rubric errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all defects if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
