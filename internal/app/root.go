// Package app contains the Cobra command tree for mindhub.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/config"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/quotes"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

// service is one area of the hub shown on the landing summary.
type service struct {
	Name        string
	Command     string
	Description string
}

var services = []service{
	{"Live Dashboard", "dashboard", "Real-time mental health sentiment trends across Zambia"},
	{"Personal Wellness", "wellness", "Check in with yourself and get personalized tips"},
	{"Mental Health Map", "resources", "Find mental health services and providers near you"},
	{"Admin Portal", "admin", "Crisis alerts, data sources and text analysis for staff"},
}

var rootCmd = &cobra.Command{
	Use:   "mindhub",
	Short: "Zambia Mind Wellbeing Hub",
	Long: `mindhub is a mental wellbeing toolkit for Zambia: a personal wellness
check-in, keyword sentiment analysis, a simulated support conversation, a
directory of mental health providers, national insight dashboards and an
emergency hotline.

Run 'mindhub' with no arguments to see the landing summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		renderLanding(cmd.OutOrStdout(), quotes.Pick(nil))
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/mindhub/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// loadConfig reads configuration and applies the global logging and color
// settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	if _, err := observability.Setup(observability.Options{Level: level, Format: cfg.Log.Format}); err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	output.SetNoColor(flagNoColor || !output.ShouldColor(cfg.Output.Color))
	return cfg, nil
}

// writeJSON encodes v to w with indentation.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderLanding(w io.Writer, q quotes.Quote) {
	fmt.Fprintln(w, output.StyleHeader.Render("Zambia Mind Wellbeing Hub"), output.StyleMuted.Render(appVersion))
	fmt.Fprintln(w, " Your mental health matters. Support is here.")
	fmt.Fprintln(w, output.Section("Services"))
	fmt.Fprintln(w)

	tbl := output.NewTable("Service", "Command", "About")
	for _, s := range services {
		tbl.AddRow(s.Name, "mindhub "+s.Command, s.Description)
	}
	fmt.Fprint(w, tbl.Render())

	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s\n", output.StyleMuted.Render(q.String()))
	fmt.Fprintln(w)
	n := hotline.Numbers()[0]
	fmt.Fprintf(w, " %s %s: %s (mindhub hotline)\n",
		output.StyleError.Render("Need help now?"), n.Name, output.StyleBold.Render(n.Contact))
}
