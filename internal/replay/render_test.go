package replay

import (
	"strings"
	"testing"
)

func renderToString(t *testing.T, rec Record, opts RenderOptions) string {
	t.Helper()
	var sb strings.Builder
	if err := Render(&sb, rec, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestRender_EmbedsLogAndScript(t *testing.T) {
	rec := BuildRecord([]string{"|player|p1|Alder|1|", "|tier|OU", "|start|"}, "sim0")
	out := renderToString(t, rec, RenderOptions{})

	if !strings.Contains(out, `class="battle-log-data"`) {
		t.Fatal("missing battle-log-data block")
	}
	if !strings.Contains(out, "|player|p1|Alder|1|") {
		t.Fatal("log lines not embedded")
	}
	if !strings.Contains(out, "https://play.pokemonshowdown.com/js/replay-embed.js") {
		t.Fatal("default embed script missing")
	}
	if !strings.Contains(out, `value="sim0"`) {
		t.Fatal("replayid missing")
	}
}

func TestRender_CustomEmbedBase(t *testing.T) {
	rec := BuildRecord([]string{"|start|"}, "sim")
	out := renderToString(t, rec, RenderOptions{EmbedBase: "https://example.test/"})
	if !strings.Contains(out, "https://example.test/js/replay-embed.js") {
		t.Fatal("embed base not applied")
	}
}

func TestRender_EscapesHTMLInNames(t *testing.T) {
	rec := BuildRecord([]string{"|player|p1|<script>|1|"}, "sim")
	out := renderToString(t, rec, RenderOptions{})
	if strings.Contains(out, "<script>|1|") {
		t.Fatal("player name not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatal("expected escaped name in output")
	}
}

func TestRender_ScrubsExactHPByDefault(t *testing.T) {
	rec := BuildRecord([]string{"|-damage|p1a: Volcarona|126/252 brn"}, "sim")
	out := renderToString(t, rec, RenderOptions{})
	if strings.Contains(out, "126/252") {
		t.Fatal("exact HP leaked into exported log")
	}
	if !strings.Contains(out, "50/100 brn") {
		t.Fatalf("expected percentage HP, got:\n%s", out)
	}
}

func TestRender_ShowFullDamageKeepsExactHP(t *testing.T) {
	rec := BuildRecord([]string{"|-damage|p1a: Volcarona|126/252"}, "sim")
	out := renderToString(t, rec, RenderOptions{ShowFullDamage: true})
	if !strings.Contains(out, "126/252") {
		t.Fatal("exact HP should be kept with ShowFullDamage")
	}
}

func TestScrubExactHP(t *testing.T) {
	cases := []struct{ in, want string }{
		{"|-damage|p1a: X|126/252", "|-damage|p1a: X|50/100"},
		{"|-heal|p2a: Y|252/252", "|-heal|p2a: Y|100/100"},
		{"|-damage|p1a: X|1/252", "|-damage|p1a: X|1/100"}, // rounds up, never 0 for a survivor
		{"|-damage|p1a: X|0 fnt", "|-damage|p1a: X|0 fnt"}, // no fraction, untouched
		{"|-damage|p1a: X|55/100", "|-damage|p1a: X|55/100"},
		{"|turn|1", "|turn|1"},
		{"|-damage|p1a: X|126/252 tox", "|-damage|p1a: X|50/100 tox"},
	}
	for _, c := range cases {
		if got := scrubExactHP(c.in); got != c.want {
			t.Errorf("scrubExactHP(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
