package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CheddyG/PWT-Simulation-Tournament/internal/config"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/ux"
)

var configTemplate = `# battleview configuration. Every field is optional; command-line flags
# override anything set here.

folder: TestOutput
input: output1.txt
output: replay.html
embed-base: https://play.pokemonshowdown.com

rerun:
  # Shell command that produces one simulation output file. The target
  # path is passed as $1.
  command: node runSimulations.js
  expected-battles: 1
  max-iterations: 100
  retry-delay: 2
`

// Init writes an example battleview.yaml into targetDir.
func Init(targetDir string) error {
	path := filepath.Join(targetDir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in %s", config.DefaultPath, targetDir)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultPath, err)
	}

	fmt.Printf("\n%s%s✓ Wrote %s%s\n\n", ux.Bold, ux.Green, config.DefaultPath, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s%s%s to point at your simulation output\n", ux.Cyan, config.DefaultPath, ux.Reset)
	fmt.Printf("    2. Run %sbattleview matchups%s to see what the log contains\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %sbattleview render%s to export a replay\n\n", ux.Cyan, ux.Reset)

	return nil
}
