package experience

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/types"
)

// CandidateFile is the on-disk JSON shape of a candidate batch.
type CandidateFile struct {
	Candidates []types.Candidate `json:"candidates"`
}

// LoadCandidates reads a candidate batch from a JSON file. Candidates without
// an id are assigned a fresh UUID so downstream results can reference them.
func LoadCandidates(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read candidates file " + path, Cause: err}
	}

	var file CandidateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse candidates JSON", Cause: err}
	}

	for i := range file.Candidates {
		if file.Candidates[i].ID == "" {
			file.Candidates[i].ID = uuid.NewString()
		}
	}

	return file.Candidates, nil
}

// LoadJob reads a job record from a JSON file, assigning an id when missing.
func LoadJob(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read job file " + path, Cause: err}
	}

	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, &LoadError{Message: "failed to parse job JSON", Cause: err}
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	return &job, nil
}
