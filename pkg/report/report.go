// Package report assembles run statistics from the linking and
// reconciliation stages into a summary suitable for logs, the CLI, and the
// exported workbook.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routeworks/rosterlink/pkg/link"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/roster"
	"github.com/routeworks/rosterlink/pkg/transportation"
)

// Summary aggregates the outcome of one end-to-end run.
type Summary struct {
	// Roster sizes before any filtering.
	SourceRows int `json:"source_rows" yaml:"source_rows"`
	TargetRows int `json:"target_rows" yaml:"target_rows"`

	// Rows on each side that yielded a usable identity string.
	SourceCandidates int `json:"source_candidates" yaml:"source_candidates"`
	TargetCandidates int `json:"target_candidates" yaml:"target_candidates"`

	Matched         int `json:"matched" yaml:"matched"`
	UnmatchedSource int `json:"unmatched_source" yaml:"unmatched_source"`
	UnmatchedTarget int `json:"unmatched_target" yaml:"unmatched_target"`

	// MatchRate is matched source candidates as a percentage of all
	// source candidates. Zero when there were no candidates.
	MatchRate float64 `json:"match_rate" yaml:"match_rate"`

	TotalChanges      int                             `json:"total_changes" yaml:"total_changes"`
	ChangesByCategory map[reconcile.Category]int      `json:"changes_by_category" yaml:"changes_by_category"`
	ChangesByField    map[string]int                  `json:"changes_by_field" yaml:"changes_by_field"`
	Transportation    map[transportation.Category]int `json:"transportation,omitempty" yaml:"transportation,omitempty"`

	NearMisses []link.NearMiss `json:"near_misses,omitempty" yaml:"near_misses,omitempty"`
}

// Build assembles a Summary from the stage outputs. The reconcile result
// may be nil when the run stopped after linking.
func Build(source, target *roster.Roster, links *link.Result, rec *reconcile.Result) *Summary {
	s := &Summary{}
	if source != nil {
		s.SourceRows = source.Len()
	}
	if target != nil {
		s.TargetRows = target.Len()
	}
	if links != nil {
		s.SourceCandidates = links.SourceCandidates
		s.TargetCandidates = links.TargetCandidates
		s.Matched = len(links.Matches)
		s.UnmatchedSource = len(links.UnmatchedSource)
		s.UnmatchedTarget = len(links.UnmatchedTarget)
		s.NearMisses = links.NearMisses
		if s.SourceCandidates > 0 {
			s.MatchRate = float64(s.Matched) / float64(s.SourceCandidates) * 100
		}
	}
	if rec != nil {
		s.TotalChanges = len(rec.Changes)
		s.ChangesByCategory = rec.Changes.ByCategory()
		s.ChangesByField = rec.Changes.ByField()
		s.Transportation = rec.Categories
	}
	return s
}

// String renders the summary as the multi-line block printed by the CLI.
func (s *Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source rows:        %d (%d with usable names)\n", s.SourceRows, s.SourceCandidates)
	fmt.Fprintf(&b, "Target rows:        %d (%d with usable names)\n", s.TargetRows, s.TargetCandidates)
	fmt.Fprintf(&b, "Matched:            %d (%.1f%%)\n", s.Matched, s.MatchRate)
	fmt.Fprintf(&b, "Unmatched source:   %d\n", s.UnmatchedSource)
	fmt.Fprintf(&b, "Unmatched target:   %d\n", s.UnmatchedTarget)
	fmt.Fprintf(&b, "Changes applied:    %d\n", s.TotalChanges)

	for _, cat := range sortedCategoryKeys(s.ChangesByCategory) {
		fmt.Fprintf(&b, "  %-17s %d\n", string(cat)+":", s.ChangesByCategory[cat])
	}

	if len(s.Transportation) > 0 {
		b.WriteString("Transportation:\n")
		for _, cat := range sortedTransportKeys(s.Transportation) {
			fmt.Fprintf(&b, "  %-17s %d\n", cat.String()+":", s.Transportation[cat])
		}
	}

	return b.String()
}

func sortedCategoryKeys(m map[reconcile.Category]int) []reconcile.Category {
	keys := make([]reconcile.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedTransportKeys(m map[transportation.Category]int) []transportation.Category {
	keys := make([]transportation.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return transportation.SortKey(keys[i]) < transportation.SortKey(keys[j])
	})
	return keys
}
