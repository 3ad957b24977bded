// Package ranking combines skill, experience and seniority sub-scores into a
// ranked, explainable candidate ordering for a job.
package ranking

import "fmt"

// ConfigurationError reports invalid ranking configuration, such as weights
// that do not sum to 1.0 or an unknown weight key. It is fatal and rejected
// before any scoring runs.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// InvalidInputError reports an invalid input record. For a job this aborts
// the rank call; for a candidate the record is excluded from the batch and
// reported, and ranking continues for the remaining candidates.
type InvalidInputError struct {
	Record string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Record, e.Reason)
}
