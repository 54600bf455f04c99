package battle

import (
	"fmt"
	"strings"
)

// OutOfRangeError reports an index selection beyond the available blocks.
type OutOfRangeError struct {
	Index int
	Total int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("battle index %d out of range (%d battle(s) available)", e.Index, e.Total)
}

// NotFoundError reports a matchup+occurrence selection with no match.
type NotFoundError struct {
	Matchup    string
	Occurrence int
	Matches    int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matchup %q found at occurrence %d (%d match(es) in input)", e.Matchup, e.Occurrence, e.Matches)
}

// SelectIndex returns the block at zero-based position index in emission
// order, consuming the Scanner only as far as needed.
func SelectIndex(s *Scanner, index int) (Block, error) {
	n := 0
	if index >= 0 {
		for s.Scan() {
			if n == index {
				return s.Block(), nil
			}
			n++
		}
		if err := s.Err(); err != nil {
			return Block{}, err
		}
	}
	return Block{}, &OutOfRangeError{Index: index, Total: n}
}

// SelectMatchup returns the occurrence-th block (zero-based) whose header
// matches matchup, compared case-insensitively after trimming whitespace.
func SelectMatchup(s *Scanner, matchup string, occurrence int) (Block, error) {
	target := strings.ToLower(strings.TrimSpace(matchup))
	hits := 0
	for s.Scan() {
		b := s.Block()
		if strings.ToLower(strings.TrimSpace(b.Header)) != target {
			continue
		}
		if hits == occurrence {
			return b, nil
		}
		hits++
	}
	if err := s.Err(); err != nil {
		return Block{}, err
	}
	return Block{}, &NotFoundError{Matchup: matchup, Occurrence: occurrence, Matches: hits}
}
