// Package resolve maps a team-candidate line to a canonical team through a
// tiered strategy: learned corrections first, then the static alias
// dictionary, then fuzzy matching against the canonical list, then a
// free-text heuristic. Resolution is a pure function of the token and the
// current store/dictionary contents and never fails; no match is itself a
// valid outcome.
package resolve

import (
	"strings"

	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/team"
)

// Disposition is the terminal classification of a team-candidate line.
type Disposition int

const (
	// Team means the line resolved to a canonical team name.
	Team Disposition = iota
	// Other means the line is free-text comment, not worth tracking as an
	// unresolved team.
	Other
	// Unknown means the line looks like it could be a team but nothing
	// matched; it goes to the admin review queue.
	Unknown
)

func (d Disposition) String() string {
	switch d {
	case Team:
		return "team"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Options carries the empirically tuned heuristic knobs. They are
// configuration, not contract; zero values fall back to the defaults below.
type Options struct {
	// FuzzyCutoff is the minimum similarity for a fuzzy canonical match.
	// High by intent: a lower cutoff silently mislabels comments as teams.
	FuzzyCutoff float64
	// MaxCommentLen: raw text longer than this is free-text comment.
	MaxCommentLen int
	// CommentKeywords mark sentiment/comment lines (checked case-insensitively).
	CommentKeywords []string
}

const (
	defaultFuzzyCutoff   = 0.85
	defaultMaxCommentLen = 20
)

// Resolver resolves team-candidate lines for one session. The learned store
// is consulted by reference: corrections applied during the session are
// visible to later resolutions.
type Resolver struct {
	registry *team.Registry
	store    *learn.Store
	sim      Similarity
	opts     Options
}

// New builds a resolver. A nil sim falls back to EditRatio.
func New(registry *team.Registry, store *learn.Store, sim Similarity, opts Options) *Resolver {
	if sim == nil {
		sim = EditRatio{}
	}
	if opts.FuzzyCutoff == 0 {
		opts.FuzzyCutoff = defaultFuzzyCutoff
	}
	if opts.MaxCommentLen == 0 {
		opts.MaxCommentLen = defaultMaxCommentLen
	}
	return &Resolver{registry: registry, store: store, sim: sim, opts: opts}
}

// Resolve maps one raw team-candidate line to (display value, disposition).
// For Team the value is the canonical name; for Other and Unknown it is the
// raw text, which is what the admin needs to see.
func (r *Resolver) Resolve(raw string) (string, Disposition) {
	token := team.Normalize(raw)

	// Admin corrections encode ground truth and override everything.
	if t, ok := r.store.Lookup(token); ok {
		return t, Team
	}

	if t, ok := r.registry.Alias(token); ok {
		return t, Team
	}

	if t, ok := r.fuzzy(token); ok {
		return t, Team
	}

	if r.isComment(raw, token) {
		return raw, Other
	}
	return raw, Unknown
}

// fuzzy picks the best-scoring canonical team at or above the cutoff. Ties
// go to the earlier team in registry order, keeping resolution deterministic.
func (r *Resolver) fuzzy(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	best := ""
	bestScore := 0.0
	for _, t := range r.registry.Teams() {
		score := r.sim.Score(token, strings.ToLower(t))
		if score >= r.opts.FuzzyCutoff && score > bestScore {
			best = t
			bestScore = score
		}
	}
	return best, best != ""
}

// isComment decides Other vs Unknown for a line nothing matched. Long lines,
// multi-word lines that are not known variants, and configured sentiment
// keywords are comments; everything else is surfaced for review.
func (r *Resolver) isComment(raw, token string) bool {
	if token == "" {
		return true
	}
	if len([]rune(raw)) > r.opts.MaxCommentLen {
		return true
	}
	// Multi-word text that survived the alias tier is a sentence, not a variant.
	if strings.ContainsAny(raw, " \t") {
		return true
	}
	lower := strings.ToLower(raw)
	for _, k := range r.opts.CommentKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
