// Package results stores the outcome of annealing runs.
//
// A Record is the JSON-friendly summary of one run; Store is the port that
// the CLI and the HTTP API persist records through. Implementations live in
// the memory and redis subpackages.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when a record ID is unknown to the store.
var ErrRecordNotFound = errors.New("results: record not found")

// Record summarises one annealing run.
type Record struct {
	ID           string          `json:"id"`
	Problem      string          `json:"problem"`
	Steps        int             `json:"steps"`
	Energy       float64         `json:"energy"`
	Temperature  float64         `json:"temperature"`
	ReturnedBest bool            `json:"returnedBest"`
	Solution     json.RawMessage `json:"solution,omitempty"`
	StartedAt    time.Time       `json:"startedAt"`
	Duration     time.Duration   `json:"duration"`
}

// NewRecord returns a Record for problem with a fresh ID and start time.
func NewRecord(problem string) Record {
	return Record{
		ID:        uuid.NewString(),
		Problem:   problem,
		StartedAt: time.Now().UTC(),
	}
}

// SetSolution stores solution as JSON.
func (r *Record) SetSolution(solution any) error {
	raw, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}
	r.Solution = raw
	return nil
}

// Store persists run records.
type Store interface {
	// Save inserts or replaces the record with r.ID.
	Save(ctx context.Context, r Record) error
	// Load returns the record with id or ErrRecordNotFound.
	Load(ctx context.Context, id string) (Record, error)
	// List returns every record, oldest first.
	List(ctx context.Context) ([]Record, error)
}
