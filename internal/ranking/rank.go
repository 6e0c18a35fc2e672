// Package ranking provides batch scoring over the pure matching engine: one
// candidate against many jobs (seeker browse view) and many candidates
// against one job (recruiter view). Scoring is stateless, so the fan-out
// needs no locking beyond indexed writes.
package ranking

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-engine/internal/matching"
	"github.com/jonathan/match-engine/internal/types"
)

// maxConcurrentScores bounds the scoring fan-out. Scoring is CPU-only, so a
// small limit keeps large batches from spawning a goroutine per job.
const maxConcurrentScores = 8

// RankJobs scores the candidate against every job concurrently and returns
// the results sorted by match score descending, ties broken by job ID
// ascending so the ordering is deterministic.
func RankJobs(ctx context.Context, candidate types.Candidate, jobs []types.Job) ([]types.RankedJob, error) {
	ranked := make([]types.RankedJob, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			ranked[i] = types.RankedJob{Job: job, Result: matching.Score(candidate, job)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.MatchScore != ranked[j].Result.MatchScore {
			return ranked[i].Result.MatchScore > ranked[j].Result.MatchScore
		}
		return ranked[i].Job.ID < ranked[j].Job.ID
	})
	return ranked, nil
}

// RankCandidates scores every candidate against the job concurrently and
// returns them sorted by score descending. Candidates carry no identifier
// here, so equal scores keep their input order.
func RankCandidates(ctx context.Context, candidates []types.Candidate, job types.Job) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			ranked[i] = types.RankedCandidate{Candidate: candidate, Score: matching.ScoreValue(candidate, job)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}
