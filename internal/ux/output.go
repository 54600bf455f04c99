package ux

import (
	"fmt"
	"os"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// MatchupHeader prints the tally summary line.
func MatchupHeader(total, unique int) {
	fmt.Printf("Found %s%d%s battle(s) across %s%d%s unique matchup header(s):\n",
		Bold, total, Reset, Bold, unique, Reset)
}

// MatchupRow prints one count/header pair of the matchup listing.
func MatchupRow(count int, header string) {
	fmt.Printf("%s%5d%s  %s\n", Cyan, count, Reset, header)
}

// NoBattles prints the empty-input message for the matchup listing.
func NoBattles() {
	fmt.Println("No battles found.")
}

// Wrote prints the output path of a finished export.
func Wrote(path string) {
	fmt.Printf("%s✓ Wrote:%s %s\n", Green, Reset, path)
}

// Selected prints the header of the chosen battle.
func Selected(header string) {
	fmt.Printf("Selected battle header: %s%s%s\n", Bold, header, Reset)
}

// ServeHint reminds the user how to view a replay that file:// blocks.
func ServeHint(folder, output string) {
	fmt.Printf("%sIf it doesn't play from file://, serve the folder:%s\n", Dim, Reset)
	fmt.Printf("  cd %s && python3 -m http.server 8001\n", folder)
	fmt.Printf("  open http://localhost:8001/%s\n", output)
}

// Warning prints a non-fatal problem to stderr.
func Warning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%swarning:%s %s\n", Yellow, Reset, fmt.Sprintf(format, args...))
}

// IterationRetry announces a re-run of the simulation for an output file.
func IterationRetry(name string, attempt, expected int) {
	fmt.Printf("%s↺ %s missing or incomplete (< %d battle(s)). Running simulation (attempt %d)...%s\n",
		Yellow, name, expected, attempt, Reset)
}

// IterationComplete announces a completed output file.
func IterationComplete(name string) {
	fmt.Printf("%s✓ %s complete.%s\n", Green, name, Reset)
}

// RerunDone announces that every iteration finished.
func RerunDone(iterations int) {
	fmt.Printf("\n%s%s══ All %d iteration(s) complete ══%s\n", Bold, Green, iterations, Reset)
}
