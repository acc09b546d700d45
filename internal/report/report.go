// Package report assembles per-user records from a chat export and keeps the
// cross-run results and unknown-token worklist in SQLite.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abcgmn74-spec/teampick/internal/classify"
	"github.com/abcgmn74-spec/teampick/internal/resolve"
	"github.com/abcgmn74-spec/teampick/internal/segment"
)

// joinDelim separates values inside one output cell.
const joinDelim = ", "

// UserRecord is one parsed user's output row. All sets are deduplicated with
// first-seen order preserved.
type UserRecord struct {
	Name       string
	Contacts   []string
	Teams      []string
	Comments   []string
	Unresolved []string
}

// UnknownCount is one row of the admin review worklist.
type UnknownCount struct {
	Token string
	Count int
}

// Result is the output of one parse run.
type Result struct {
	Records  []UserRecord
	Unknowns []UnknownCount
}

// Summary is the status line every run reports.
func (r *Result) Summary() string {
	total := 0
	for _, u := range r.Unknowns {
		total += u.Count
	}
	return fmt.Sprintf("Parsed users: %d (unknown tokens: %d)", len(r.Records), total)
}

// Build runs the full segment-classify-resolve pass over one export's text.
// Empty input or input without valid headers yields an empty result, not an
// error.
func Build(text string, accountKeywords []string, resolver *resolve.Resolver) *Result {
	res := &Result{}

	unknownOrder := []string{}
	unknownCounts := map[string]int{}

	for _, block := range segment.Split(text) {
		cls := classify.New(block.Name, accountKeywords)

		contacts := newOrderedSet()
		teams := newOrderedSet()
		comments := newOrderedSet()
		unresolved := newOrderedSet()

		for _, line := range block.Lines {
			cat, value := cls.Classify(line)
			switch cat {
			case classify.Account:
				contacts.add(value)
				continue
			case classify.Skipped:
				continue
			}

			display, disp := resolver.Resolve(value)
			switch disp {
			case resolve.Team:
				teams.add(display)
			case resolve.Other:
				comments.add(display)
			case resolve.Unknown:
				unresolved.add(display)
				if unknownCounts[display] == 0 {
					unknownOrder = append(unknownOrder, display)
				}
				unknownCounts[display]++
			}
		}

		res.Records = append(res.Records, UserRecord{
			Name:       block.Name,
			Contacts:   contacts.items,
			Teams:      teams.items,
			Comments:   comments.items,
			Unresolved: unresolved.items,
		})
	}

	for _, tok := range unknownOrder {
		res.Unknowns = append(res.Unknowns, UnknownCount{Token: tok, Count: unknownCounts[tok]})
	}
	// most frequent first, first-seen order breaking ties
	sort.SliceStable(res.Unknowns, func(i, j int) bool {
		return res.Unknowns[i].Count > res.Unknowns[j].Count
	})

	return res
}

// Join renders one record cell: deduplicated values in first-seen order with
// the fixed delimiter.
func Join(values []string) string {
	return strings.Join(values, joinDelim)
}

// Header is the output table column order consumed by export.
var Header = []string{"Name", "Contacts", "Teams", "Other Comments", "Unresolved"}

// Row renders a record in Header column order.
func (u UserRecord) Row() []string {
	return []string{
		u.Name,
		Join(u.Contacts),
		Join(u.Teams),
		Join(u.Comments),
		Join(u.Unresolved),
	}
}

func splitCell(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, joinDelim)
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}
