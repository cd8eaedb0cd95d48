package domain

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CheckStatus is the outcome of a single check
type CheckStatus string

const (
	StatusPassed CheckStatus = "passed"
	StatusFailed CheckStatus = "failed"
	// StatusSkipped is a pass with a warning, e.g. no server to probe.
	StatusSkipped CheckStatus = "skipped"
)

// Detail is an indented sub-line of a check result. An empty Status is plain info.
type Detail struct {
	Text   string      `json:"text"`
	Status CheckStatus `json:"status,omitempty"`
}

// CheckResult represents the result of running one check
type CheckResult struct {
	Name       string              `json:"name"`
	Title      string              `json:"title"`
	Status     CheckStatus         `json:"status"`
	Message    string              `json:"message,omitempty"`
	Details    []Detail            `json:"details,omitempty"`
	StatusCode ldvalue.OptionalInt `json:"status_code"` // HTTP status, only when a response was received
	Reproduce  string              `json:"reproduce,omitempty"`
	Duration   time.Duration       `json:"duration_ns"`
}

// OK reports whether the check counts as passing. Skipped checks do.
func (r CheckResult) OK() bool {
	return r.Status != StatusFailed
}

// Passed builds a passing result.
func Passed(message string, details ...Detail) CheckResult {
	return CheckResult{Status: StatusPassed, Message: message, Details: details}
}

// Failed builds a failing result.
func Failed(message string, details ...Detail) CheckResult {
	return CheckResult{Status: StatusFailed, Message: message, Details: details}
}

// Skipped builds a pass-with-warning result.
func Skipped(message string, details ...Detail) CheckResult {
	return CheckResult{Status: StatusSkipped, Message: message, Details: details}
}

// Summarize counts results by status.
func Summarize(results []CheckResult) (passed, failed, skipped int) {
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			passed++
		case StatusSkipped:
			skipped++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}

// AllPassed reports whether every result counts as passing.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.OK() {
			return false
		}
	}
	return true
}

// FailSkipped returns results with every skipped check marked failed. Used
// when a missing server must not count as healthy.
func FailSkipped(results []CheckResult) []CheckResult {
	out := make([]CheckResult, len(results))
	for i, r := range results {
		if r.Status == StatusSkipped {
			r.Status = StatusFailed
			if r.Message == "" {
				r.Message = "skipped"
			}
			r.Message = "required but " + r.Message
		}
		out[i] = r
	}
	return out
}

// RunMeta contains metadata about a check run
type RunMeta struct {
	TotalChecks     int     `json:"total_checks"`
	PassedChecks    int     `json:"passed_checks"`
	FailedChecks    int     `json:"failed_checks"`
	SkippedChecks   int     `json:"skipped_checks"`
	Environment     string  `json:"environment"`
	Port            string  `json:"port"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// OK reports whether the stored run passed.
func (m RunMeta) OK() bool {
	return m.FailedChecks == 0
}

// RunOutput is the complete output structure for a check run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Results []CheckResult `json:"results"`
}
