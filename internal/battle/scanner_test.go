package battle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func collect(t *testing.T, input string, mode Mode) []Block {
	t.Helper()
	s := NewScanner(strings.NewReader(input), mode)
	var blocks []Block
	for s.Scan() {
		blocks = append(blocks, s.Block())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	return blocks
}

func TestDetectMode(t *testing.T) {
	if m := DetectMode("[[[[[\nA vs B\n]]]]]\n"); m != Marked {
		t.Fatalf("expected Marked, got %v", m)
	}
	if m := DetectMode("A vs B\n|start|\n"); m != Fallback {
		t.Fatalf("expected Fallback, got %v", m)
	}
	// One marker alone is not enough
	if m := DetectMode("[[[[[\nA vs B\n"); m != Fallback {
		t.Fatalf("start marker without end marker should be Fallback, got %v", m)
	}
}

func TestScanMarked_SingleBlock(t *testing.T) {
	input := "[[[[[\nA vs B\n|player|p1|A|1|\n|player|p2|B|2|\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Header != "A vs B" {
		t.Fatalf("header = %q, want %q", blocks[0].Header, "A vs B")
	}
	want := []string{"|player|p1|A|1|", "|player|p2|B|2|"}
	if len(blocks[0].ProtocolLines) != len(want) {
		t.Fatalf("got %d protocol lines, want %d", len(blocks[0].ProtocolLines), len(want))
	}
	for i, ln := range want {
		if blocks[0].ProtocolLines[i] != ln {
			t.Errorf("line %d = %q, want %q", i, blocks[0].ProtocolLines[i], ln)
		}
	}
}

func TestScanMarked_MultipleBlocks(t *testing.T) {
	input := strings.Join([]string{
		"junk before",
		"[[[[[",
		"A vs B",
		"|start|",
		"]]]]]",
		"junk between",
		"[[[[[",
		"C vs D",
		"|start|",
		"]]]]]",
		"",
	}, "\n")
	blocks := collect(t, input, Marked)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Header != "A vs B" || blocks[1].Header != "C vs D" {
		t.Fatalf("headers = %q, %q", blocks[0].Header, blocks[1].Header)
	}
}

func TestScanMarked_BlankLinesBeforeHeader(t *testing.T) {
	input := "[[[[[\n\n\nA vs B\n|start|\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Header != "A vs B" {
		t.Fatalf("header = %q, want %q", blocks[0].Header, "A vs B")
	}
}

func TestScanMarked_MissingHeader(t *testing.T) {
	input := "[[[[[\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Header != UnknownMatchup {
		t.Fatalf("header = %q, want sentinel %q", blocks[0].Header, UnknownMatchup)
	}
}

func TestScanMarked_NonProtocolLinesDropped(t *testing.T) {
	input := "[[[[[\nA vs B\n|start|\nsome stray text\n|turn|1\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	want := []string{"|start|", "|turn|1"}
	got := blocks[0].ProtocolLines
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("protocol lines = %v, want %v", got, want)
	}
}

func TestScanMarked_IndentedProtocolLineIgnored(t *testing.T) {
	input := "[[[[[\nA vs B\n |start|\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks[0].ProtocolLines) != 0 {
		t.Fatalf("indented line should not count as protocol, got %v", blocks[0].ProtocolLines)
	}
}

func TestScanMarked_UnterminatedBlockDropped(t *testing.T) {
	complete := "[[[[[\nA vs B\n|start|\n]]]]]\n"
	withPartial := complete + "[[[[[\nC vs D\n|start|\n"

	a := collect(t, complete, Marked)
	b := collect(t, withPartial, Marked)
	if len(a) != len(b) {
		t.Fatalf("trailing partial block changed count: %d vs %d", len(a), len(b))
	}
	if len(b) != 1 || b[0].Header != "A vs B" {
		t.Fatalf("unexpected blocks: %+v", b)
	}
}

func TestScanMarked_MarkerWithSurroundingWhitespace(t *testing.T) {
	input := "  [[[[[ \nA vs B\n|start|\n\t]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

func TestScanFallback_WholeInputIsOneBlock(t *testing.T) {
	input := "A vs B\n|player|p1|A|1|\nstray\n|turn|1\n"
	blocks := collect(t, input, Fallback)
	if len(blocks) != 1 {
		t.Fatalf("expected exactly 1 block, got %d", len(blocks))
	}
	if blocks[0].Header != "A vs B" {
		t.Fatalf("header = %q, want %q", blocks[0].Header, "A vs B")
	}
	want := []string{"|player|p1|A|1|", "|turn|1"}
	got := blocks[0].ProtocolLines
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("protocol lines = %v, want %v", got, want)
	}
}

func TestScanFallback_ProtocolBeforeHeader(t *testing.T) {
	// Protocol lines before the header line are still collected.
	input := "|t:|1700000000\nA vs B\n|start|\n"
	blocks := collect(t, input, Fallback)
	if blocks[0].Header != "A vs B" {
		t.Fatalf("header = %q, want %q", blocks[0].Header, "A vs B")
	}
	if len(blocks[0].ProtocolLines) != 2 {
		t.Fatalf("protocol lines = %v", blocks[0].ProtocolLines)
	}
}

func TestScanFallback_NoHeader(t *testing.T) {
	input := "|start|\n|turn|1\n"
	blocks := collect(t, input, Fallback)
	if blocks[0].Header != UnknownMatchup {
		t.Fatalf("header = %q, want sentinel %q", blocks[0].Header, UnknownMatchup)
	}
}

func TestScanner_CRLFInput(t *testing.T) {
	input := "[[[[[\r\nA vs B\r\n|start|\r\n]]]]]\r\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].ProtocolLines[0] != "|start|" {
		t.Fatalf("CR not stripped: %q", blocks[0].ProtocolLines[0])
	}
}

func TestScanner_InvalidUTF8Replaced(t *testing.T) {
	input := "[[[[[\nA vs B\n|chat|bad\xffbyte\n]]]]]\n"
	blocks := collect(t, input, Marked)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	got := blocks[0].ProtocolLines
	if len(got) != 1 {
		t.Fatalf("protocol lines = %v", got)
	}
	if !utf8.ValidString(got[0]) {
		t.Fatalf("emitted line is not valid UTF-8: %q", got[0])
	}
	if got[0] != "|chat|bad�byte" {
		t.Fatalf("line = %q, want bad byte replaced with U+FFFD", got[0])
	}
}

func TestOpen_DetectsModeFromFile(t *testing.T) {
	dir := t.TempDir()

	marked := filepath.Join(dir, "marked.txt")
	if err := os.WriteFile(marked, []byte("[[[[[\nA vs B\n|start|\n]]]]]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(marked)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if !s.Scan() {
		t.Fatal("expected one block from marked file")
	}
	if s.Block().Header != "A vs B" {
		t.Fatalf("header = %q", s.Block().Header)
	}
	if s.Scan() {
		t.Fatal("expected no second block")
	}

	plain := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plain, []byte("C vs D\n|start|\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s2, err := Open(plain)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s2.Close()
	if !s2.Scan() {
		t.Fatal("expected fallback block")
	}
	if s2.Block().Header != "C vs D" {
		t.Fatalf("header = %q", s2.Block().Header)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
