package rerun

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// State records supervisor progress so interrupted runs can be resumed
// and stubborn output files diagnosed. One state file per output dir.
type State struct {
	RunID    string         `json:"run_id"`
	Attempts map[string]int `json:"attempts"` // output file name → simulation attempts
}

func statePath(outputDir string) string {
	return filepath.Join(outputDir, "rerun-state.json")
}

// LoadState reads the state from the output directory. A missing file
// yields a fresh state with a new run id.
func LoadState(outputDir string) (*State, error) {
	data, err := os.ReadFile(statePath(outputDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &State{RunID: uuid.NewString(), Attempts: make(map[string]int)}, nil
		}
		return nil, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.RunID == "" {
		s.RunID = uuid.NewString()
	}
	if s.Attempts == nil {
		s.Attempts = make(map[string]int)
	}
	return &s, nil
}

// Save writes the state to the output directory, atomically so a crash
// mid-write cannot corrupt it: write to a temp file, fsync, rename.
func (s *State) Save(outputDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	path := statePath(outputDir)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
