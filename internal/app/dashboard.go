package app

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
)

var (
	dashboardRange  string
	dashboardSeed   uint64
	dashboardRegion string
	dashboardTop    int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show national mental health insight panels",
	Long: `Render the live dashboard: sentiment trends, emotion distribution,
trending keywords and the regional crisis overview for a time range.

Panel values are synthetic. Pass --seed to reproduce a previous run; the
seed used is always printed.

Examples:
  mindhub dashboard --range month
  mindhub dashboard --region copperbelt`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardRange, "range", "", "Time range: day, week or month (default from config)")
	dashboardCmd.Flags().Uint64Var(&dashboardSeed, "seed", 0, "Seed for reproducible panels (0 picks one at random)")
	dashboardCmd.Flags().StringVar(&dashboardRegion, "region", "", "Highlight one province by id or name")
	dashboardCmd.Flags().IntVar(&dashboardTop, "top", 10, "Number of trending keywords to show")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rangeName := dashboardRange
	if rangeName == "" {
		rangeName = cfg.Dashboard.DefaultRange
	}
	tr, err := dashboard.ParseTimeRange(rangeName)
	if err != nil {
		return err
	}

	var selected string
	if dashboardRegion != "" {
		r, ok := dashboard.FindRegion(dashboardRegion)
		if !ok {
			return fmt.Errorf("unknown region %q", dashboardRegion)
		}
		selected = dashboard.SelectRegion("", r.ID)
	}

	seed := dashboardSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	snap, err := dashboard.Build(cmd.Context(), seed, tr)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), snap)
	}
	renderDashboard(cmd.OutOrStdout(), snap, selected, dashboardTop, cfg.Output.Width)
	return nil
}

func renderDashboard(w io.Writer, snap dashboard.Snapshot, selected string, top, width int) {
	barWidth := width / 3
	if barWidth < 10 {
		barWidth = 10
	}

	fmt.Fprintf(w, "%s %s\n",
		output.StyleHeader.Render("Mental Health Dashboard"),
		output.StyleMuted.Render(fmt.Sprintf("(%s, seed %d)", snap.Range.Label(), snap.Seed)))
	fmt.Fprintf(w, " %s %s\n", output.StyleWarning.Render("Alert:"), snap.Banner)

	fmt.Fprintln(w, output.Section("Sentiment Trends"))
	fmt.Fprintln(w)
	for _, p := range snap.Sentiment {
		fmt.Fprintf(w, " %-7s %s %s\n", p.Name,
			output.StackedBar(p.Positive, p.Neutral, p.Negative, barWidth),
			output.StyleMuted.Render(fmt.Sprintf("+%d ~%d -%d", p.Positive, p.Neutral, p.Negative)))
	}

	fmt.Fprintln(w, output.Section("Emotion Distribution"))
	fmt.Fprintln(w)
	maxEmotion := 0
	for _, e := range snap.Emotions {
		maxEmotion = max(maxEmotion, e.Value)
	}
	for _, e := range snap.Emotions {
		style := colorStyle(e.Color)
		fmt.Fprintf(w, " %-8s %s %3d%%\n", e.Name, style.Render(output.Bar(e.Value, maxEmotion, barWidth)), e.Percent)
	}

	fmt.Fprintln(w, output.Section("Trending Keywords"))
	fmt.Fprintln(w)
	keywords := append([]dashboard.Keyword(nil), snap.Keywords...)
	sort.SliceStable(keywords, func(i, j int) bool { return keywords[i].Value > keywords[j].Value })
	if top > 0 && len(keywords) > top {
		keywords = keywords[:top]
	}
	maxKeyword := 0
	if len(keywords) > 0 {
		maxKeyword = keywords[0].Value
	}
	for _, k := range keywords {
		fmt.Fprintf(w, " %-14s %s %d\n", k.Text, colorStyle(k.Color).Render(output.Bar(k.Value, maxKeyword, barWidth)), k.Value)
	}

	fmt.Fprintln(w, output.Section("Regional Overview"))
	fmt.Fprintln(w)
	tbl := output.NewTable("Province", "Sentiment", "Crisis", "Change")
	for _, r := range snap.Regions {
		name := r.Name
		if r.ID == selected {
			name = output.StyleBold.Render("▶ " + r.Name)
		}
		tbl.AddRow(name, r.Sentiment, crisisStyle(r.CrisisClass).Render(fmt.Sprintf("%d %s", r.CrisisLevel, r.CrisisClass)), r.Arrow())
	}
	fmt.Fprint(w, tbl.Render())
}

func colorStyle(hex string) lipgloss.Style {
	if output.IsNoColor() || hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func crisisStyle(class string) lipgloss.Style {
	switch class {
	case dashboard.CrisisHigh:
		return output.StyleError
	case dashboard.CrisisModerate:
		return output.StyleWarning
	default:
		return output.StyleSuccess
	}
}
