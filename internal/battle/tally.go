package battle

import "sort"

// MatchupCount pairs a header with its number of occurrences.
type MatchupCount struct {
	Header string
	Count  int
}

// Tally aggregates block headers over one full pass of a Scanner.
// Headers are counted case-preserving, exactly as emitted.
type Tally struct {
	Total  int
	counts map[string]int
	order  []string // first-seen emission order, used to break count ties
}

// CountMatchups consumes the Scanner and counts blocks per header.
func CountMatchups(s *Scanner) (*Tally, error) {
	t := &Tally{counts: make(map[string]int)}
	for s.Scan() {
		header := s.Block().Header
		if _, seen := t.counts[header]; !seen {
			t.order = append(t.order, header)
		}
		t.counts[header]++
		t.Total++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Unique returns the number of distinct headers.
func (t *Tally) Unique() int {
	return len(t.order)
}

// Top returns up to n matchups sorted by count descending, ties broken by
// first-seen order. A negative n returns all matchups.
func (t *Tally) Top(n int) []MatchupCount {
	out := make([]MatchupCount, 0, len(t.order))
	for _, h := range t.order {
		out = append(out, MatchupCount{Header: h, Count: t.counts[h]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
