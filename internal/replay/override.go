package replay

import (
	"slices"
	"strings"
)

// Protocol record prefixes consumed by the rewrite and build passes.
// Player lines look like |player|p1|Name|Avatar| — side, name, avatar.
const (
	p1Prefix    = "|player|p1|"
	p2Prefix    = "|player|p2|"
	tierPrefix  = "|tier|"
	timePrefix  = "|t:|"
	startPrefix = "|start|"
)

// Overrides carries optional replacement values for the two player
// records. A nil field leaves the corresponding protocol field untouched.
// Avatar ids are opaque string tokens, not validated numerically.
type Overrides struct {
	P1Name   *string
	P1Avatar *string
	P2Name   *string
	P2Avatar *string
}

func (o Overrides) p1Set() bool { return o.P1Name != nil || o.P1Avatar != nil }
func (o Overrides) p2Set() bool { return o.P2Name != nil || o.P2Avatar != nil }

// OverridePlayers returns a copy of lines with player name and avatar
// fields replaced per ov. Existing |player| records are rewritten field
// by field; a side never seen in the input gets a synthesized record
// inserted before the first |start| line, or at the very beginning when
// no |start| line exists. All other lines pass through unchanged and in
// order. The input is never mutated.
func OverridePlayers(lines []string, ov Overrides) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	foundP1, foundP2 := false, false
	for i, ln := range out {
		switch {
		case strings.HasPrefix(ln, p1Prefix):
			out[i] = rewritePlayerLine(ln, ov.P1Name, ov.P1Avatar)
			foundP1 = true
		case strings.HasPrefix(ln, p2Prefix):
			out[i] = rewritePlayerLine(ln, ov.P2Name, ov.P2Avatar)
			foundP2 = true
		}
	}

	insertAt := 0
	for i, ln := range out {
		if strings.HasPrefix(ln, startPrefix) {
			insertAt = i
			break
		}
	}

	if !foundP1 && ov.p1Set() {
		out = slices.Insert(out, insertAt, playerLine("p1", ov.P1Name, ov.P1Avatar))
	}
	if !foundP2 && ov.p2Set() {
		out = slices.Insert(out, insertAt, playerLine("p2", ov.P2Name, ov.P2Avatar))
	}
	return out
}

// rewritePlayerLine replaces the name (field 3) and avatar (field 4) of a
// player record, padding short records to the full five-field shape.
func rewritePlayerLine(line string, name, avatar *string) string {
	parts := strings.Split(line, "|") // ["", "player", "p1", name, avatar, ...]
	for len(parts) < 6 {
		parts = append(parts, "")
	}
	if name != nil {
		parts[3] = *name
	}
	if avatar != nil {
		parts[4] = *avatar
	}
	return strings.Join(parts, "|")
}

// playerLine synthesizes a record for a side missing from the input,
// falling back to the side token as name and "1" as avatar.
func playerLine(side string, name, avatar *string) string {
	n, a := side, "1"
	if name != nil && *name != "" {
		n = *name
	}
	if avatar != nil && *avatar != "" {
		a = *avatar
	}
	return "|player|" + side + "|" + n + "|" + a + "|"
}
