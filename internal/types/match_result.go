// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the output of scoring a candidate against a job.
// MatchScore is always within [15, 99]. MatchedRequired and MatchedNice
// preserve the job's own skill ordering. MatchReasons is ordered: the
// required-skill summary line (if any) comes first, then the nice-to-have
// summary line (if any), then the remaining reasons in evaluation order.
type MatchResult struct {
	MatchScore      int      `json:"match_score"`
	MatchedRequired []string `json:"matched_required"`
	MatchedNice     []string `json:"matched_nice"`
	MatchReasons    []string `json:"match_reasons"`
}

// RankedJob pairs a job with its match result for batch ranking output.
type RankedJob struct {
	Job    Job         `json:"job"`
	Result MatchResult `json:"result"`
}

// RankedCandidate pairs a candidate with its score against a single job.
type RankedCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     int       `json:"score"`
}
