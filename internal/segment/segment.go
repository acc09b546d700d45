package segment

import (
	"regexp"
	"strings"
)

// headerRe is the full header grammar: display name, comma, then a literal
// bracketed M/D/YYYY H:MM AM|PM timestamp. A line has to satisfy the whole
// grammar to open a new block; near misses (stray slashes, digits) stay body
// lines so multi-line messages are not truncated.
var headerRe = regexp.MustCompile(`^(.+?),\s*\[\d{1,2}/\d{1,2}/\d{4}\s+\d{1,2}:\d{2}\s+(?i:AM|PM)\]$`)

// Block is one user's contiguous message segment: the raw header line plus
// the trimmed, non-empty body lines that follow it.
type Block struct {
	Name   string
	Header string
	Lines  []string
}

// HeaderName returns the display name if line is a valid header, else "".
func HeaderName(line string) string {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Split scans the full decoded text of a chat export and cuts it into blocks
// at each valid header line. Content before the first header cannot be
// attributed to a user and is discarded. No headers means no blocks, which is
// a valid empty result rather than an error.
func Split(text string) []Block {
	var blocks []Block

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		if name := HeaderName(line); name != "" {
			blocks = append(blocks, Block{Name: name, Header: line})
			continue
		}
		if len(blocks) == 0 {
			continue
		}
		last := len(blocks) - 1
		blocks[last].Lines = append(blocks[last].Lines, line)
	}
	return blocks
}
