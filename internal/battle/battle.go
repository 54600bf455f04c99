package battle

import "strings"

// Markers delimiting one battle transcript in simulation output. Each
// appears on its own line, surrounding whitespace ignored.
const (
	StartMarker = "[[[[["
	EndMarker   = "]]]]]"
)

// UnknownMatchup is the header used when a block carries no header line.
const UnknownMatchup = "UNKNOWN_MATCHUP"

// Block is a single battle transcript carved out of simulation output.
// Blocks are value types; transformations copy rather than mutate.
type Block struct {
	Header        string   // free-text matchup label, e.g. "PlayerA vs PlayerB"
	ProtocolLines []string // only lines starting with '|', in original order
}

// IsStartMarker reports whether line opens a battle block.
func IsStartMarker(line string) bool {
	return strings.TrimSpace(line) == StartMarker
}

// IsEndMarker reports whether line closes a battle block.
func IsEndMarker(line string) bool {
	return strings.TrimSpace(line) == EndMarker
}

// IsProtocolLine reports whether line is a pipe-delimited protocol event.
// Leading whitespace disqualifies a line — no trimming here.
func IsProtocolLine(line string) bool {
	return strings.HasPrefix(line, "|")
}
