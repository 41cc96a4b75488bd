package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/simulator"
)

var (
	simulateInterval string
	simulateSeed     uint64
	simulateCount    int
	simulateQuiet    bool
	simulateNotify   bool
	simulateLogFile  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the conversation simulator and flag depression indicators",
	Long: `Generate a stream of synthetic conversation messages, tag each with
keyword sentiment and raise an alert for every message containing a crisis
phrase. Runs until interrupted. With --count, generates that many messages
immediately and exits.

Examples:
  mindhub simulate --interval 2s
  mindhub simulate --count 20 --seed 42 --json
  mindhub simulate --quiet --notify --log-file sim.log`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateInterval, "interval", "", "Time between messages as a duration (default from config, 8s)")
	simulateCmd.Flags().Uint64Var(&simulateSeed, "seed", 0, "Seed for a reproducible run (default from config; 0 picks one at random)")
	simulateCmd.Flags().IntVar(&simulateCount, "count", 0, "Generate this many messages without waiting and exit (0 runs until interrupted)")
	simulateCmd.Flags().BoolVar(&simulateQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	simulateCmd.Flags().BoolVar(&simulateNotify, "notify", false, "Send a desktop notification for each depression alert")
	simulateCmd.Flags().StringVar(&simulateLogFile, "log-file", "", "Append a transcript of messages and alerts to this file")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval := cfg.Simulator.Interval
	if simulateInterval != "" {
		interval, err = time.ParseDuration(simulateInterval)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", simulateInterval, err)
		}
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}
	seed := cfg.Simulator.Seed
	if simulateSeed != 0 {
		seed = simulateSeed
	}
	if simulateCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", simulateCount)
	}

	var logFile *os.File
	if simulateLogFile != "" {
		logFile, err = os.OpenFile(simulateLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = logFile.Close() }()
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	w := cmd.OutOrStdout()
	var (
		mu       sync.Mutex
		produced int
	)

	sim := simulator.New(simulator.Options{
		Interval:     interval,
		HistoryLimit: cfg.Simulator.HistoryLimit,
		Seed:         seed,
		OnMessage: func(m simulator.Message) {
			mu.Lock()
			defer mu.Unlock()

			if logFile != nil {
				writeLog(logFile, "%s [%s] %s", m.ID, m.Sentiment, m.Content)
			}
			switch {
			case simulateQuiet:
			case flagJSON:
				_ = writeJSONLine(w, m)
			default:
				printMessage(w, m)
			}

			produced++
		},
		OnAlert: func(a simulator.Alert) {
			if simulateNotify {
				_ = simulator.Notify(a)
			}
			if logFile != nil {
				writeLog(logFile, "ALERT %s: %s", a.Title, a.Message)
			}
			if !simulateQuiet && !flagJSON {
				mu.Lock()
				printAlert(w, a)
				mu.Unlock()
			}
		},
	})

	summary := func() {
		if simulateQuiet || flagJSON {
			return
		}
		mu.Lock()
		n := produced
		mu.Unlock()
		tally := sentimentTally(sim.Messages())
		fmt.Fprintf(w, "\nStopped after %d messages (%d positive, %d neutral, %d negative).\n",
			n, tally[sentiment.Positive], tally[sentiment.Neutral], tally[sentiment.Negative])
	}

	if simulateCount > 0 {
		tickN(ctx, sim, simulateCount)
		summary()
		return nil
	}

	if !simulateQuiet && !flagJSON {
		fmt.Fprintf(w, "mindhub simulating conversation... (new message every %s)\n", sim.Interval())
	}

	err = sim.Run(ctx)
	if errors.Is(err, context.Canceled) {
		summary()
		return nil
	}
	return err
}

// tickN generates up to n messages back to back, stopping early when ctx
// is done. It returns how many were generated.
func tickN(ctx context.Context, sim *simulator.Simulator, n int) int {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return i
		}
		sim.Tick()
	}
	return n
}

// writeLog appends a timestamped line to f.
func writeLog(f *os.File, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
}

// writeJSONLine encodes v as a single line, for streaming output.
func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printMessage(w io.Writer, m simulator.Message) {
	label := m.Sentiment.Title()
	tag := output.SentimentStyle(label).Render(fmt.Sprintf("%-8s", label))
	fmt.Fprintf(w, "[%s] %s %s\n", m.Timestamp.Format("15:04:05"), tag, m.Content)
}

func printAlert(w io.Writer, a simulator.Alert) {
	timestamp := a.Time.Format("15:04:05")
	icon := alertIcon(a.Level)
	fmt.Fprintf(w, "[%s] %s %s\n", timestamp, icon, output.StyleError.Render(a.Title))
	if a.Message != "" {
		fmt.Fprintf(w, "         %s\n", a.Message)
	}
}

func alertIcon(level string) string {
	switch level {
	case simulator.LevelCritical:
		return "\xf0\x9f\x94\xb4" // red circle
	case simulator.LevelWarning:
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning sign
	case simulator.LevelInfo:
		return "\xe2\x9c\x93" // check mark
	default:
		return " "
	}
}

// sentimentTally counts labels across a message history.
func sentimentTally(msgs []simulator.Message) map[sentiment.Label]int {
	out := make(map[sentiment.Label]int, 3)
	for _, m := range msgs {
		out[m.Sentiment]++
	}
	return out
}
