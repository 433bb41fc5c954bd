// Package link pairs rows across two rosters believed to represent the same
// student. Candidate identities are extracted from each roster's detected
// name columns, scored with the fuzzy matcher, and assigned greedily
// one-to-one in source row order.
package link

import (
	"context"
	"strings"

	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/match"
	"github.com/routeworks/rosterlink/pkg/names"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// Candidate is an identity-bearing row: its index in the originating roster
// and the normalized combined name extracted from the name columns. Rows
// from which no name could be extracted never become candidates and are
// excluded from matching entirely.
type Candidate struct {
	Row  int
	Name string
}

// Pair is one accepted source-to-target assignment with the score that
// cleared the threshold.
type Pair struct {
	SourceRow  int
	TargetRow  int
	Score      int
	SourceName string
	TargetName string
}

// NearMiss records the best-scoring target for a source row that still fell
// below the threshold. Useful for diagnosing why a roster matched poorly.
type NearMiss struct {
	SourceRow  int
	SourceName string
	TargetRow  int
	TargetName string
	Score      int
}

// Result is the outcome of linking two rosters. Matches is one-to-one: no
// source row and no target row appears in more than one pair. The unmatched
// sets are the identity-bearing rows left over on each side.
type Result struct {
	Matches         []Pair
	UnmatchedSource []Candidate
	UnmatchedTarget []Candidate
	NearMisses      []NearMiss

	// Candidate counts per side, before matching.
	SourceCandidates int
	TargetCandidates int
}

// MatchCount returns the number of accepted pairs.
func (r *Result) MatchCount() int {
	return len(r.Matches)
}

// Candidates extracts the identity-bearing rows of a roster by combining
// the values of the given name columns per row. Each value is normalized;
// values that are placeholders or purely numeric are skipped. Rows whose
// combined name is empty are dropped.
func Candidates(t *roster.Roster, nameColumns []string) []Candidate {
	var out []Candidate
	for i := 0; i < t.Len(); i++ {
		name := combinedName(t.Row(i), nameColumns)
		if name != "" {
			out = append(out, Candidate{Row: i, Name: name})
		}
	}
	return out
}

// combinedName joins the normalized values of the name columns for one row.
func combinedName(rec roster.Record, nameColumns []string) string {
	var parts []string
	for _, col := range nameColumns {
		v, ok := rec.Get(col)
		if !ok {
			continue
		}
		if isNumeric(v) {
			continue
		}
		normalized := names.Normalize(v)
		if len(normalized) > 1 {
			parts = append(parts, normalized)
		}
	}
	return strings.Join(parts, " ")
}

// isNumeric reports whether a value is digits only, ignoring periods.
func isNumeric(v string) bool {
	stripped := strings.ReplaceAll(v, ".", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Link computes a best-effort one-to-one assignment between the two
// rosters. Source candidates are visited in original row order; each takes
// the not-yet-consumed target with the strictly highest score clearing the
// threshold, ties going to the first target encountered. A consumed target
// is unavailable to later source rows, which is what guarantees the
// one-to-one invariant: an earlier source row keeps a target even if a
// later row would have scored higher against it.
//
// Link fails fast with a DetectionError when either side's name column list
// is empty; a zero-match result is not an error.
func Link(ctx context.Context, source, target *roster.Roster, sourceColumns, targetColumns []string, threshold int) (*Result, error) {
	if len(sourceColumns) == 0 {
		return nil, errors.NewDetectionError("source", source.Columns())
	}
	if len(targetColumns) == 0 {
		return nil, errors.NewDetectionError("target", target.Columns())
	}

	log := logging.FromContext(ctx)

	sourceCandidates := Candidates(source, sourceColumns)
	targetCandidates := Candidates(target, targetColumns)

	log.Debug().
		Int("source_candidates", len(sourceCandidates)).
		Int("target_candidates", len(targetCandidates)).
		Int("threshold", threshold).
		Msg("linking rosters")

	result := &Result{
		SourceCandidates: len(sourceCandidates),
		TargetCandidates: len(targetCandidates),
	}

	consumed := make(map[int]bool, len(targetCandidates))

	for _, src := range sourceCandidates {
		bestIdx := -1
		bestScore := 0
		bestAny := 0
		bestAnyIdx := -1

		for i, tgt := range targetCandidates {
			if consumed[tgt.Row] {
				continue
			}
			ok, score := match.Match(src.Name, tgt.Name, threshold)
			if score > bestAny {
				bestAny = score
				bestAnyIdx = i
			}
			if ok && score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 {
			tgt := targetCandidates[bestIdx]
			consumed[tgt.Row] = true
			result.Matches = append(result.Matches, Pair{
				SourceRow:  src.Row,
				TargetRow:  tgt.Row,
				Score:      bestScore,
				SourceName: src.Name,
				TargetName: tgt.Name,
			})
			continue
		}

		result.UnmatchedSource = append(result.UnmatchedSource, src)
		if bestAnyIdx >= 0 {
			tgt := targetCandidates[bestAnyIdx]
			result.NearMisses = append(result.NearMisses, NearMiss{
				SourceRow:  src.Row,
				SourceName: src.Name,
				TargetRow:  tgt.Row,
				TargetName: tgt.Name,
				Score:      bestAny,
			})
		}
	}

	for _, tgt := range targetCandidates {
		if !consumed[tgt.Row] {
			result.UnmatchedTarget = append(result.UnmatchedTarget, tgt)
		}
	}

	log.Debug().
		Int("matches", len(result.Matches)).
		Int("unmatched_source", len(result.UnmatchedSource)).
		Int("unmatched_target", len(result.UnmatchedTarget)).
		Msg("linking complete")

	return result, nil
}
