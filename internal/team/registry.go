package team

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Standard is the built-in canonical team list. It is fixed for the lifetime
// of a run; deployments extend it through config, never through learning.
var Standard = []string{
	"Real Madrid", "Barcelona", "Manchester United", "Manchester City",
	"Liverpool", "Arsenal", "Chelsea", "Tottenham", "Newcastle",
	"Brighton", "Aston Villa", "Everton", "West Ham", "Sevilla",
	"Villarreal", "Athletic Club", "Wolves", "Brentford", "Leeds",
	"Fulham", "Forest", "Burnley", "Bournemouth", "Celta Vigo",
}

// builtinAliases maps known Myanmar-script and common Latin spelling variants
// to canonical names. Keys are stored in normalized form.
var builtinAliases = map[string]string{
	"man city":            "Manchester City",
	"man united":          "Manchester United",
	"man u":               "Manchester United",
	"မန်စီးတီး":           "Manchester City",
	"ရီးရဲ":               "Real Madrid",
	"ရီးရဲလ်":             "Real Madrid",
	"ရီးရဲမက်ဒရစ်":        "Real Madrid",
	"လီပါပူး":             "Liverpool",
	"ဗီလာရီးရဲလ်":         "Villarreal",
	"နယူး":                "Newcastle",
	"ဘရိုက်တန်":           "Brighton",
	"aston villa":         "Aston Villa",
	"west ham":            "West Ham",
	"wolves":              "Wolves",
	"athletic club":       "Athletic Club",
	"tottenham hotspur":   "Tottenham",
	"celta vigo":          "Celta Vigo",
}

// Registry holds the canonical team set and the static alias dictionary for
// one run. Read-only after construction.
type Registry struct {
	teams   []string
	canon   map[string]string // normalized canonical name -> canonical name
	aliases map[string]string // normalized variant -> canonical name
	phrases []string          // multi-word variants, sorted, for substring lookup
}

// NewRegistry builds a registry from the built-in list plus config extras.
// Extra aliases override built-in ones; extra teams are appended in order.
func NewRegistry(extraTeams []string, extraAliases map[string]string) *Registry {
	r := &Registry{
		canon:   make(map[string]string),
		aliases: make(map[string]string),
	}
	for _, t := range Standard {
		r.addTeam(t)
	}
	for _, t := range extraTeams {
		r.addTeam(t)
	}
	for v, t := range builtinAliases {
		r.aliases[Normalize(v)] = t
	}
	for v, t := range extraAliases {
		r.aliases[Normalize(v)] = t
	}
	for v := range r.aliases {
		if strings.Contains(v, " ") {
			r.phrases = append(r.phrases, v)
		}
	}
	sort.Strings(r.phrases)
	return r
}

func (r *Registry) addTeam(t string) {
	key := Normalize(t)
	if _, ok := r.canon[key]; ok {
		return
	}
	r.canon[key] = t
	r.teams = append(r.teams, t)
}

// Teams returns the canonical list in registry order.
func (r *Registry) Teams() []string {
	out := make([]string, len(r.teams))
	copy(out, r.teams)
	return out
}

// Has reports whether name is a canonical team (compared in normalized form).
func (r *Registry) Has(name string) bool {
	_, ok := r.canon[Normalize(name)]
	return ok
}

// Canonical returns the registry spelling for name, if name normalizes to a
// canonical team.
func (r *Registry) Canonical(name string) (string, bool) {
	t, ok := r.canon[Normalize(name)]
	return t, ok
}

// Alias resolves a normalized token against the static variant dictionary:
// exact match first, then containment of a multi-word variant inside the
// token (so "tottenham hotspur fc" still hits "tottenham hotspur").
func (r *Registry) Alias(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if t, ok := r.aliases[token]; ok {
		return t, true
	}
	for _, v := range r.phrases {
		if strings.Contains(token, v) {
			return r.aliases[v], true
		}
	}
	return "", false
}

// AliasPairs returns the alias dictionary as sorted (variant, team) pairs.
func (r *Registry) AliasPairs() [][2]string {
	pairs := make([][2]string, 0, len(r.aliases))
	for v, t := range r.aliases {
		pairs = append(pairs, [2]string{v, t})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

func isTokenLetter(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || unicode.Is(unicode.Myanmar, r)
}

// Normalize produces the lookup key for a raw token: NFC-compose, strip
// leading and trailing runes that are neither Latin nor Myanmar letters,
// then lowercase. Learned-mapping keys and resolver lookups must agree on
// this exact transformation.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimFunc(s, func(r rune) bool { return !isTokenLetter(r) })
	return strings.ToLower(strings.TrimSpace(s))
}
