package classify

import (
	"regexp"
	"strings"
)

// Category is the disposition of one body line. Categories are mutually
// exclusive: the first matching rule wins.
type Category int

const (
	// Account lines carry a phone number or betting-platform identifier.
	Account Category = iota
	// TeamCandidate lines go on to the resolver for team/other/unknown
	// disposition.
	TeamCandidate
	// Skipped lines are noise (the display name repeated as content).
	Skipped
)

func (c Category) String() string {
	switch c {
	case Account:
		return "account"
	case TeamCandidate:
		return "team-candidate"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// phoneRe matches a Myanmar dialing prefix (+959 / 959 / 09) followed by
// 7-12 digits. Anchoring on the prefix bounds false positives from long
// unrelated digit runs.
var phoneRe = regexp.MustCompile(`(?:\+?959|09)\d{7,12}`)

// ordinalRe strips a leading list marker: "1.", "2)", "3 -", "- ".
var ordinalRe = regexp.MustCompile(`^\s*(?:\d{1,2}\s*[.)-]\s*|-\s+)`)

// DefaultAccountKeywords are the built-in platform-identifier markers.
// Deployments extend the set through config.
var DefaultAccountKeywords = []string{"okbet", "ok bet", "slot", "shank", "bet"}

// Classifier classifies the body lines of one block. It carries the block's
// display name so a repeated name is not re-classified as content.
type Classifier struct {
	displayName string
	keywords    []string
}

// New returns a classifier for a block owned by displayName. An empty keyword
// list falls back to DefaultAccountKeywords.
func New(displayName string, keywords []string) *Classifier {
	if len(keywords) == 0 {
		keywords = DefaultAccountKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return &Classifier{displayName: displayName, keywords: lowered}
}

// Classify assigns exactly one category to a trimmed body line. For Account
// lines the returned identifier is the extracted digit run, or the raw line
// when only a keyword matched. Account detection runs first: a phone number
// must never be read as a team name.
func (c *Classifier) Classify(line string) (Category, string) {
	if id, ok := c.accountID(line); ok {
		return Account, id
	}
	stripped := StripOrdinal(line)
	if strings.EqualFold(stripped, c.displayName) {
		return Skipped, ""
	}
	return TeamCandidate, stripped
}

func (c *Classifier) accountID(line string) (string, bool) {
	if m := phoneRe.FindString(line); m != "" {
		return strings.TrimPrefix(m, "+"), true
	}
	lower := strings.ToLower(line)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// StripOrdinal removes a leading ordinal/bullet prefix from a pick line, so
// "1. Real Madrid" and "- Real Madrid" resolve like "Real Madrid".
func StripOrdinal(line string) string {
	return strings.TrimSpace(ordinalRe.ReplaceAllString(line, ""))
}
