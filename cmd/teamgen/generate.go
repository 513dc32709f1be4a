package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/teamgen/internal/fileutil"
	"github.com/lox/teamgen/internal/session"
	"github.com/lox/teamgen/internal/tui"
	"github.com/muesli/termenv"
)

type GenerateCmd struct {
	Names     []string `arg:"" optional:"" help:"Player names"`
	Teams     int      `short:"t" help:"Number of teams (overrides config)"`
	PerTeam   int      `short:"p" name:"per-team" help:"Target players per team, shown for reference only (overrides config)"`
	NamesFile string   `short:"f" name:"names-file" type:"existingfile" help:"Read player names from a file, one per line"`
	Seed      int64    `help:"Seed for reproducible teams (0 picks a random seed)"`
	Rounds    int      `short:"n" default:"1" help:"Number of arrangements to print, regenerating from the same roster"`
	Output    string   `short:"o" help:"Also write the last arrangement as plain text to this file"`
	NoColor   bool     `name:"no-color" help:"Disable colored output"`

	out io.Writer `kong:"-"`
}

func (c *GenerateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if c.NoColor || !cfg.ColorEnabled() {
		disableColor()
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	logger := setupLogger(os.Stderr, cfg)

	names := append([]string(nil), cfg.Defaults.Players...)
	if c.NamesFile != "" || len(c.Names) > 0 {
		names, err = c.collectNames()
		if err != nil {
			return err
		}
	}

	teamCount := cfg.Defaults.TeamCount
	if c.Teams != 0 {
		teamCount = c.Teams
	}
	perTeam := cfg.Defaults.PlayersPerTeam
	if c.PerTeam != 0 {
		perTeam = c.PerTeam
	}

	sess := session.New(newPartitioner(c.Seed), logger)
	teams, err := sess.SubmitSetup(names, teamCount, perTeam)
	if err != nil {
		return err
	}

	for round := 1; ; round++ {
		if c.Rounds > 1 {
			fmt.Fprintln(out, tui.HeaderStyle.Render(fmt.Sprintf("ROUND %d", round)))
		}
		fmt.Fprintln(out, tui.RenderTeams(teams, 0))
		fmt.Fprintln(out, tui.RenderStats(teams))

		if round >= c.Rounds {
			break
		}
		fmt.Fprintln(out)
		if teams, err = sess.Regenerate(); err != nil {
			return err
		}
	}

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, []byte(tui.FormatText(teams)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Output, err)
		}
		logger.Info("Wrote teams", "file", c.Output)
	}

	return nil
}

// collectNames returns names from --names-file followed by positional names.
func (c *GenerateCmd) collectNames() ([]string, error) {
	var names []string
	if c.NamesFile != "" {
		f, err := os.Open(c.NamesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open names file: %w", err)
		}
		defer func() { _ = f.Close() }()

		names, err = readNames(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", c.NamesFile, err)
		}
	}
	return append(names, c.Names...), nil
}

// readNames reads one name per line. Blank lines and lines starting with #
// are skipped.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
