// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation is the remote action attempted for one asset.
type Operation string

const (
	OperationUpload   Operation = "upload"
	OperationDelete   Operation = "delete"
	OperationDownload Operation = "download"
)

// Outcome is the result of one asset operation.
type Outcome string

const (
	// OutcomeSuccess means the theme store accepted the operation.
	OutcomeSuccess Outcome = "success"

	// OutcomeFailure means the operation was attempted and failed; Err holds
	// the detail.
	OutcomeFailure Outcome = "failure"

	// OutcomeSkipped means the operation was refused before any remote call
	// (e.g. the path lies outside the theme directories); Err holds the reason.
	OutcomeSkipped Outcome = "skipped"
)

// SyncResult is the per-asset outcome of a batch operation.
type SyncResult struct {
	Path      string
	Operation Operation
	Outcome   Outcome
	Err       error
}

// OK reports whether the operation succeeded.
func (r SyncResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// SyncReport collects the results of a batch operation in the order the
// assets were submitted.
type SyncReport struct {
	Results []SyncResult
}

// Add appends results to the report.
func (r *SyncReport) Add(results ...SyncResult) {
	r.Results = append(r.Results, results...)
}

// Merge appends every result of other to the report.
func (r *SyncReport) Merge(other SyncReport) {
	r.Results = append(r.Results, other.Results...)
}

// Succeeded returns the number of successful operations.
func (r SyncReport) Succeeded() int {
	return r.count(OutcomeSuccess)
}

// Failed returns the number of failed operations.
func (r SyncReport) Failed() int {
	return r.count(OutcomeFailure)
}

// Skipped returns the number of refused operations.
func (r SyncReport) Skipped() int {
	return r.count(OutcomeSkipped)
}

// Len returns the total number of results.
func (r SyncReport) Len() int {
	return len(r.Results)
}

// Result returns the first result recorded for path and operation.
func (r SyncReport) Result(path string, op Operation) (SyncResult, bool) {
	for _, res := range r.Results {
		if res.Path == path && res.Operation == op {
			return res, true
		}
	}
	return SyncResult{}, false
}

func (r SyncReport) count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}
