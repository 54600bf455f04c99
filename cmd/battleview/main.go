package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/CheddyG/PWT-Simulation-Tournament/internal/battle"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/config"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/docs"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/replay"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/rerun"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/scaffold"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "battleview",
		Usage:       "Carve simulation battle logs into replay pages",
		Description: "Run 'battleview docs' for documentation on the log format, selection, overrides, and more.",
		Commands: []*cli.Command{
			renderCmd(),
			matchupsCmd(),
			rerunCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: config.DefaultPath, Usage: "Path to battleview.yaml"},
		&cli.StringFlag{Name: "folder", Usage: "Directory holding simulation output"},
		&cli.StringFlag{Name: "input", Usage: "Log file name inside folder"},
	}
}

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Export one battle from a simulation log as a replay HTML page",
		Flags: append(commonFlags(),
			&cli.StringFlag{Name: "output", Usage: "Replay HTML name inside folder"},
			&cli.IntFlag{Name: "battle-index", Usage: "Pick battle by index (0-based)"},
			&cli.StringFlag{Name: "matchup", Usage: `Pick by header, exact match e.g. "Alder vs Alder"`},
			&cli.IntFlag{Name: "occurrence", Usage: "If multiple matchups match, pick Nth occurrence (0-based)"},
			&cli.StringFlag{Name: "p1-name", Usage: "Override player 1 name"},
			&cli.StringFlag{Name: "p2-name", Usage: "Override player 2 name"},
			&cli.StringFlag{Name: "p1-avatar", Usage: "Override player 1 avatar id"},
			&cli.StringFlag{Name: "p2-avatar", Usage: "Override player 2 avatar id"},
			&cli.StringFlag{Name: "both-name", Usage: "Set both player names"},
			&cli.StringFlag{Name: "both-avatar", Usage: "Set both avatar ids"},
			&cli.BoolFlag{Name: "show-full-damage", Usage: "Keep exact HP values in the exported log"},
			&cli.StringFlag{Name: "embed-base", Usage: "Server hosting js/replay-embed.js"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			folder := pick(cmd.String("folder"), cfg.Folder)
			inputPath := filepath.Join(folder, pick(cmd.String("input"), cfg.Input))
			outputName := pick(cmd.String("output"), cfg.Output)
			outputPath := filepath.Join(folder, outputName)

			sc, err := battle.Open(inputPath)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer sc.Close()

			var block battle.Block
			var roomID string
			if cmd.IsSet("matchup") {
				matchup := cmd.String("matchup")
				occ := int(cmd.Int("occurrence"))
				block, err = battle.SelectMatchup(sc, matchup, occ)
				roomID = replay.SanitizeRoomID(fmt.Sprintf("%s-%d", matchup, occ), "sim")
			} else {
				idx := int(cmd.Int("battle-index"))
				block, err = battle.SelectIndex(sc, idx)
				roomID = replay.SanitizeRoomID(fmt.Sprintf("sim-battle-%d", idx), "sim")
			}
			if err != nil {
				return err
			}

			ov := replay.Overrides{
				P1Name:   optional(cmd, "p1-name", "both-name"),
				P2Name:   optional(cmd, "p2-name", "both-name"),
				P1Avatar: optional(cmd, "p1-avatar", "both-avatar"),
				P2Avatar: optional(cmd, "p2-avatar", "both-avatar"),
			}
			rewritten := replay.OverridePlayers(block.ProtocolLines, ov)
			rec := replay.BuildRecord(rewritten, roomID)

			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return err
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			opts := replay.RenderOptions{
				EmbedBase:      pick(cmd.String("embed-base"), cfg.EmbedBase),
				ShowFullDamage: cmd.Bool("show-full-damage"),
			}
			if err := replay.Render(f, rec, opts); err != nil {
				f.Close()
				return fmt.Errorf("writing replay: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			ux.Wrote(outputPath)
			ux.Selected(block.Header)
			ux.ServeHint(folder, outputName)
			return nil
		},
	}
}

func matchupsCmd() *cli.Command {
	return &cli.Command{
		Name:  "matchups",
		Usage: "List matchup headers and their occurrence counts",
		Flags: append(commonFlags(),
			&cli.IntFlag{Name: "top", Value: 80, Usage: "Show at most N matchups"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			folder := pick(cmd.String("folder"), cfg.Folder)
			inputPath := filepath.Join(folder, pick(cmd.String("input"), cfg.Input))

			sc, err := battle.Open(inputPath)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer sc.Close()

			tally, err := battle.CountMatchups(sc)
			if err != nil {
				return fmt.Errorf("counting matchups: %w", err)
			}
			if tally.Total == 0 {
				ux.NoBattles()
				return nil
			}

			ux.MatchupHeader(tally.Total, tally.Unique())
			for _, mc := range tally.Top(int(cmd.Int("top"))) {
				ux.MatchupRow(mc.Count, mc.Header)
			}
			return nil
		},
	}
}

func rerunCmd() *cli.Command {
	return &cli.Command{
		Name:  "rerun",
		Usage: "Re-run the simulation until every output file is complete",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: config.DefaultPath, Usage: "Path to battleview.yaml"},
			&cli.StringFlag{Name: "folder", Usage: "Directory for simulation output"},
			&cli.StringFlag{Name: "command", Usage: "Shell command producing one output file ($1 = target path)"},
			&cli.IntFlag{Name: "expected", Usage: "Completed battles required per file"},
			&cli.IntFlag{Name: "iterations", Usage: "Number of output files to produce"},
			&cli.IntFlag{Name: "retry-delay", Usage: "Seconds to wait between attempts"},
			&cli.IntFlag{Name: "max-attempts", Usage: "Per-file attempt cap (0 = unlimited)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			command := pick(cmd.String("command"), cfg.Rerun.Command)
			if command == "" {
				return fmt.Errorf("a simulation command is required (--command or rerun.command in %s)", config.DefaultPath)
			}

			loop := &rerun.Loop{
				OutputDir:       pick(cmd.String("folder"), cfg.Folder),
				BaseName:        "output",
				Extension:       ".txt",
				ExpectedBattles: pickInt(cmd, "expected", cfg.Rerun.ExpectedBattles),
				MaxIterations:   pickInt(cmd, "iterations", cfg.Rerun.MaxIterations),
				MaxAttempts:     pickInt(cmd, "max-attempts", cfg.Rerun.MaxAttempts),
				RetryDelay:      time.Duration(pickInt(cmd, "retry-delay", cfg.Rerun.RetryDelay)) * time.Second,
				Runner:          &rerun.ExecRunner{Command: command},
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return loop.Run(ctx)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example battleview.yaml to the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'battleview docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// pick returns the flag value when set, else the config value.
func pick(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}

func pickInt(cmd *cli.Command, name string, cfgVal int) int {
	if cmd.IsSet(name) {
		return int(cmd.Int(name))
	}
	return cfgVal
}

// optional resolves an override flag: the side-specific flag wins, then
// the both- variant, then nil (leave the protocol field alone).
func optional(cmd *cli.Command, names ...string) *string {
	for _, n := range names {
		if cmd.IsSet(n) {
			v := cmd.String(n)
			return &v
		}
	}
	return nil
}
