package replay

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Record is the replay object handed to the HTML exporter. Field names
// follow the replay-embed JSON contract and must not change.
type Record struct {
	Player1   string   `json:"p1"`
	Player2   string   `json:"p2"`
	Log       []string `json:"log"`
	InputLog  string   `json:"inputLog"`
	RoomID    string   `json:"roomid"`
	Format    string   `json:"format"`
	Timestamp string   `json:"timestamp"`
}

// DefaultFormat is used when the input carries no |tier| record.
const DefaultFormat = "Custom Game"

// timestampLayout renders timestamps the way the replay viewer expects,
// e.g. "Tue Nov 14 2023 22:13:20". Locale-independent.
const timestampLayout = "Mon Jan 02 2006 15:04:05"

// now is a hook for tests; production code always uses the wall clock.
var now = time.Now

// BuildRecord extracts structured metadata from protocol lines and
// packages them with the lines themselves into a Record. Each field is
// filled by the first protocol line that provides a non-empty value:
// players from |player| records, format from |tier|, timestamp from
// |t:| (epoch seconds, rendered in UTC). Missing or unparseable fields
// fall back to documented defaults; a bad timestamp falls back to the
// current time rather than failing. The record's log is the input plus
// one trailing empty line, a sentinel the renderer requires.
func BuildRecord(lines []string, roomID string) Record {
	var p1, p2, format, ts string

	for _, ln := range lines {
		switch {
		case p1 == "" && strings.HasPrefix(ln, p1Prefix):
			p1 = pipeField(ln, 3)
		case p2 == "" && strings.HasPrefix(ln, p2Prefix):
			p2 = pipeField(ln, 3)
		case format == "" && strings.HasPrefix(ln, tierPrefix):
			format = pipeField(ln, 2)
		case ts == "" && strings.HasPrefix(ln, timePrefix):
			ts = formatEpoch(pipeField(ln, 2))
		}
	}

	if p1 == "" {
		p1 = "p1"
	}
	if p2 == "" {
		p2 = "p2"
	}
	if format == "" {
		format = DefaultFormat
	}
	if ts == "" {
		ts = now().UTC().Format(timestampLayout)
	}

	log := make([]string, 0, len(lines)+1)
	log = append(log, lines...)
	log = append(log, "")

	return Record{
		Player1:   p1,
		Player2:   p2,
		Log:       log,
		InputLog:  "",
		RoomID:    roomID,
		Format:    format,
		Timestamp: ts,
	}
}

// pipeField returns the idx-th pipe-delimited field of a protocol line,
// or "" when the line is too short.
func pipeField(line string, idx int) string {
	parts := strings.Split(line, "|")
	if idx >= len(parts) {
		return ""
	}
	return parts[idx]
}

// formatEpoch converts an epoch-seconds field to the display layout.
// Returns "" when the field does not parse, so the caller falls through
// to the current-time default.
func formatEpoch(field string) string {
	sec, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(timestampLayout)
}

var roomIDStrip = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeRoomID lowercases s, strips everything outside [a-z0-9], and
// caps the result at 64 characters. An empty result yields fallback.
func SanitizeRoomID(s, fallback string) string {
	s = roomIDStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
	if s == "" {
		s = fallback
	}
	if len(s) > 64 {
		s = s[:64]
	}
	return s
}
