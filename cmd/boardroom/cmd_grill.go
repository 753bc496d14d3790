package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kingrea/boardroom/internal/config"
	"github.com/kingrea/boardroom/internal/llm"
	"github.com/kingrea/boardroom/internal/logbook"
	"github.com/kingrea/boardroom/internal/panel"
	"github.com/kingrea/boardroom/internal/render"
	"github.com/kingrea/boardroom/internal/tui"
)

var grillFlags struct {
	pitch      string
	pitchFile  string
	configPath string
	model      string
	timeout    time.Duration
	plain      bool
}

var grillCmd = &cobra.Command{
	Use:   "grill",
	Short: "Get grilled by AI stakeholders on your roadmap pitch",
	Long: `Run a pitch through the stakeholder panel. The pitch comes from
--pitch, --file, or stdin, in that order of precedence for explicit
flags; with neither flag set the pitch is read from stdin.

Usage:
  boardroom grill -p "Ship feature X in Q2 with 2 engineers"
  boardroom grill -f pitch.md
  cat pitch.md | boardroom grill`,
	Args: cobra.NoArgs,
	RunE: runGrill,
}

func init() {
	f := grillCmd.Flags()
	f.StringVarP(&grillFlags.pitch, "pitch", "p", "", "Roadmap pitch text")
	f.StringVarP(&grillFlags.pitchFile, "file", "f", "", "File containing the pitch")
	f.StringVar(&grillFlags.configPath, "config", "", "Config file path (default: $BOARDROOM_CONFIG or the user config dir)")
	f.StringVar(&grillFlags.model, "model", "", "Override the configured model")
	f.DurationVar(&grillFlags.timeout, "timeout", 0, "Override the configured session timeout")
	f.BoolVar(&grillFlags.plain, "plain", false, "Skip the live view and print results when done")
}

// resolvePitch picks the pitch source: --file wins, then --pitch, then
// stdin. The bool reports whether stdin was consumed, which forces plain
// output because the live view needs stdin for key input.
func resolvePitch(pitchFlag, fileFlag string, stdin io.Reader, stdinIsTTY bool) (string, bool, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", false, fmt.Errorf("read pitch file: %w", err)
		}
		return string(data), false, nil
	}
	if pitchFlag != "" {
		return pitchFlag, false, nil
	}
	if stdinIsTTY {
		fmt.Fprintln(os.Stderr, "Enter your pitch (Ctrl+D when done):")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", true, fmt.Errorf("read pitch from stdin: %w", err)
	}
	return string(data), true, nil
}

func runGrill(cmd *cobra.Command, _ []string) error {
	pitch, fromStdin, err := resolvePitch(
		grillFlags.pitch,
		grillFlags.pitchFile,
		cmd.InOrStdin(),
		isatty.IsTerminal(os.Stdin.Fd()),
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(pitch) == "" {
		return fmt.Errorf("no pitch provided; use --pitch, --file, or pipe text on stdin")
	}

	cfg, err := config.Load(grillFlags.configPath)
	if err != nil {
		return err
	}
	if grillFlags.model != "" {
		cfg.Model = grillFlags.model
	}
	timeout := cfg.RequestTimeout
	if grillFlags.timeout > 0 {
		timeout = grillFlags.timeout
	}

	lb, err := logbook.Open(cfg.LogPath)
	if err != nil {
		// A broken log path should not block the session.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		lb = nil
	}
	defer lb.Close()

	gen := llm.NewClient(llm.ClientConfig{
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Banner(cfg.Model))

	interactive := !grillFlags.plain && !fromStdin &&
		isatty.IsTerminal(os.Stdout.Fd())

	var outcome *panel.Outcome
	if interactive {
		outcome, err = tui.Run(ctx, gen, pitch, cfg.Model, panel.WithLogbook(lb))
	} else {
		fmt.Fprintln(out, render.Note("grilling in progress..."))
		outcome, err = panel.NewSession(gen, panel.WithLogbook(lb)).Run(ctx, pitch)
	}
	if err != nil {
		for _, line := range lb.Tail(5) {
			fmt.Fprintln(os.Stderr, render.Note(line))
		}
		return err
	}

	fmt.Fprintln(out, render.Outcome(outcome))
	fmt.Fprintln(out, render.Note("Grilling session complete. Use this feedback to strengthen your pitch."))
	return nil
}
