package battle

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Mode selects the segmentation strategy.
type Mode int

const (
	// Marked parses explicit [[[[[ ... ]]]]] regions, one block each.
	Marked Mode = iota
	// Fallback treats the entire input as a single block.
	Fallback
)

// DetectMode picks the strategy for content: Marked when both markers
// appear anywhere in the text, Fallback otherwise.
func DetectMode(content string) Mode {
	if strings.Contains(content, StartMarker) && strings.Contains(content, EndMarker) {
		return Marked
	}
	return Fallback
}

// maxLineSize bounds a single input line. Protocol lines from large team
// previews can exceed bufio's default 64K token limit.
const maxLineSize = 1024 * 1024

// Scanner produces battle blocks from a line source, one Scan call per
// block. It is forward-only and not safe for concurrent use; restart by
// constructing a new Scanner over the source.
type Scanner struct {
	lines  *bufio.Scanner
	mode   Mode
	block  Block
	err    error
	done   bool
	closer io.Closer
}

// NewScanner returns a Scanner reading lines from r using the given mode.
func NewScanner(r io.Reader, mode Mode) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{lines: lines, mode: mode}
}

// Open reads the file once to detect the segmentation mode, then returns
// a Scanner over a fresh handle. The double read is deliberate: the
// presence check and the emission pass are independent traversals, cheap
// at the input sizes these logs reach. Close the Scanner when done.
func Open(path string) (*Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewScanner(f, DetectMode(string(data)))
	s.closer = f
	return s, nil
}

// Block returns the block produced by the last successful Scan.
func (s *Scanner) Block() Block {
	return s.block
}

// Err returns the first error encountered while reading the source.
func (s *Scanner) Err() error {
	return s.err
}

// Close releases the underlying file when the Scanner was built by Open.
func (s *Scanner) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Scan advances to the next block. It returns false at end of input or on
// a read error; a region opened by a start marker but never closed is
// discarded, not emitted.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	if s.mode == Fallback {
		s.done = true
		return s.scanFallback()
	}
	return s.scanMarked()
}

func (s *Scanner) scanMarked() bool {
	inBlock := false
	awaitingHeader := false
	header := ""
	var protocol []string

	for s.lines.Scan() {
		line := cleanLine(s.lines.Text())

		if !inBlock {
			if IsStartMarker(line) {
				inBlock = true
				awaitingHeader = true
				header = ""
				protocol = nil
			}
			continue
		}

		if IsEndMarker(line) {
			if header == "" {
				header = UnknownMatchup
			}
			s.block = Block{Header: header, ProtocolLines: protocol}
			return true
		}

		if awaitingHeader {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				header = trimmed
				awaitingHeader = false
			}
			continue
		}

		if IsProtocolLine(line) {
			protocol = append(protocol, line)
		}
	}

	s.err = s.lines.Err()
	return false
}

// scanFallback consumes the whole source as one block: the header is the
// first non-empty line that is not a protocol line, and every protocol
// line is collected regardless of position.
func (s *Scanner) scanFallback() bool {
	header := ""
	var protocol []string

	for s.lines.Scan() {
		line := cleanLine(s.lines.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == "" && !IsProtocolLine(line) {
			header = strings.TrimSpace(line)
			continue
		}
		if IsProtocolLine(line) {
			protocol = append(protocol, line)
		}
	}
	if err := s.lines.Err(); err != nil {
		s.err = err
		return false
	}

	if header == "" {
		header = UnknownMatchup
	}
	s.block = Block{Header: header, ProtocolLines: protocol}
	return true
}

// cleanLine strips a trailing CR from CRLF input and replaces invalid
// UTF-8 so decoding problems never abort a parse.
func cleanLine(line string) string {
	line = strings.TrimSuffix(line, "\r")
	return strings.ToValidUTF8(line, "�")
}
