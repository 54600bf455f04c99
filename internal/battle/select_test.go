package battle

import (
	"errors"
	"strings"
	"testing"
)

const selectInput = "[[[[[\n" +
	"Alder vs Alder\n" +
	"|num|1\n" +
	"]]]]]\n" +
	"[[[[[\n" +
	"Cynthia vs Alder\n" +
	"|num|2\n" +
	"]]]]]\n" +
	"[[[[[\n" +
	"alder vs alder\n" +
	"|num|3\n" +
	"]]]]]\n"

func newSelectScanner() *Scanner {
	return NewScanner(strings.NewReader(selectInput), Marked)
}

func TestSelectIndex(t *testing.T) {
	b, err := SelectIndex(newSelectScanner(), 1)
	if err != nil {
		t.Fatalf("SelectIndex: %v", err)
	}
	if b.Header != "Cynthia vs Alder" {
		t.Fatalf("header = %q", b.Header)
	}
}

func TestSelectIndex_OutOfRange(t *testing.T) {
	_, err := SelectIndex(newSelectScanner(), 5)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.Index != 5 || oor.Total != 3 {
		t.Fatalf("OutOfRangeError = %+v", oor)
	}
	if !strings.Contains(err.Error(), "5") {
		t.Fatalf("error should name the attempted index: %v", err)
	}
}

func TestSelectIndex_Negative(t *testing.T) {
	_, err := SelectIndex(newSelectScanner(), -1)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}

func TestSelectMatchup_CaseInsensitive(t *testing.T) {
	b, err := SelectMatchup(newSelectScanner(), "  ALDER VS ALDER ", 1)
	if err != nil {
		t.Fatalf("SelectMatchup: %v", err)
	}
	// Occurrence 1 of the case-folded matchup is the third block.
	if b.ProtocolLines[0] != "|num|3" {
		t.Fatalf("got wrong occurrence: %v", b.ProtocolLines)
	}
}

func TestSelectMatchup_NotFound(t *testing.T) {
	_, err := SelectMatchup(newSelectScanner(), "Cynthia vs Alder", 1)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Matchup != "Cynthia vs Alder" || nf.Occurrence != 1 || nf.Matches != 1 {
		t.Fatalf("NotFoundError = %+v", nf)
	}
	if !strings.Contains(err.Error(), "Cynthia vs Alder") || !strings.Contains(err.Error(), "occurrence 1") {
		t.Fatalf("error should name key and occurrence: %v", err)
	}
}

func TestSelectMatchup_UnknownHeader(t *testing.T) {
	_, err := SelectMatchup(newSelectScanner(), "Nobody vs Nobody", 0)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Matches != 0 {
		t.Fatalf("Matches = %d, want 0", nf.Matches)
	}
}
