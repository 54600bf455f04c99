package replay

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"text/template"
)

// DefaultEmbedBase hosts the replay-embed script used by exported pages.
const DefaultEmbedBase = "https://play.pokemonshowdown.com"

// RenderOptions control the HTML export.
type RenderOptions struct {
	// EmbedBase is the server hosting js/replay-embed.js. Empty means
	// DefaultEmbedBase. A trailing slash is tolerated.
	EmbedBase string
	// ShowFullDamage keeps exact HP fractions in the exported log.
	// When false, |-damage| and |-heal| HP values are rescaled to a
	// /100 percentage, matching what spectators see on ladder replays.
	ShowFullDamage bool
}

// The page mirrors the upstream replay file format: metadata up top, the
// raw log in a text/plain script block, and the embed script to animate
// it. Fields are HTML-escaped before execution, so a plain text template
// is sufficient.
var replayPage = template.Must(template.New("replay").Parse(`<!DOCTYPE html>
<meta charset="utf-8" />
<!-- version 1 -->
<title>{{.Title}} replay</title>
<div class="wrapper replay-wrapper" style="max-width:1180px;margin:0 auto">
<input type="hidden" name="replayid" value="{{.RoomID}}" />
<div class="battle"></div><div class="battle-log"></div><div class="replay-controls"></div><p class="replay-controls-2"></p>
<h1 style="font-weight:normal;text-align:center">{{.Format}}: {{.Title}}</h1>
<p style="text-align:center">{{.Timestamp}}</p>
<script type="text/plain" class="battle-log-data">{{.LogData}}</script>
</div>
<script src="{{.EmbedURL}}"></script>
`))

type pageData struct {
	Title     string
	RoomID    string
	Format    string
	Timestamp string
	LogData   string
	EmbedURL  string
}

// Render writes rec as a standalone replay HTML page.
func Render(w io.Writer, rec Record, opts RenderOptions) error {
	base := strings.TrimRight(opts.EmbedBase, "/")
	if base == "" {
		base = DefaultEmbedBase
	}

	lines := rec.Log
	if !opts.ShowFullDamage {
		scrubbed := make([]string, len(lines))
		for i, ln := range lines {
			scrubbed[i] = scrubExactHP(ln)
		}
		lines = scrubbed
	}

	return replayPage.Execute(w, pageData{
		Title:     html.EscapeString(rec.Player1 + " vs. " + rec.Player2),
		RoomID:    html.EscapeString(rec.RoomID),
		Format:    html.EscapeString(rec.Format),
		Timestamp: html.EscapeString(rec.Timestamp),
		LogData:   html.EscapeString(strings.Join(lines, "\n")),
		EmbedURL:  base + "/js/replay-embed.js",
	})
}

// scrubExactHP rescales an exact HP fraction like "172/252 par" to a
// /100 percentage on damage and heal records. The percentage is rounded
// up so a surviving target never reads 0/100. Anything that does not
// look like a fraction passes through untouched.
func scrubExactHP(line string) string {
	parts := strings.Split(line, "|")
	if len(parts) < 4 || (parts[1] != "-damage" && parts[1] != "-heal") {
		return line
	}

	hp := parts[3]
	cond := ""
	if i := strings.IndexByte(hp, ' '); i >= 0 {
		cond = hp[i:]
		hp = hp[:i]
	}
	cur, max, ok := strings.Cut(hp, "/")
	if !ok {
		return line
	}
	c, err1 := strconv.Atoi(cur)
	m, err2 := strconv.Atoi(max)
	if err1 != nil || err2 != nil || m <= 0 || m == 100 {
		return line
	}

	parts[3] = fmt.Sprintf("%d/100%s", (c*100+m-1)/m, cond)
	return strings.Join(parts, "|")
}
