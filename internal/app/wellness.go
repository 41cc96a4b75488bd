package app

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/wellness"
)

var (
	wellnessFeelings string
	wellnessSleep    int
	wellnessStress   int
	wellnessName     string
	wellnessAge      string
)

var wellnessCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Check in with yourself and get a wellness score",
	Long: `Score a wellness check-in from how you are feeling, your sleep quality
and your stress level. Prints a 0-100 score, its category and coping tips.

Example:
  mindhub wellness --feelings "tired but hopeful" --sleep 6 --stress 7`,
	RunE: runWellness,
}

func init() {
	wellnessCmd.Flags().StringVar(&wellnessFeelings, "feelings", "", "How you are feeling today (at least 5 characters)")
	wellnessCmd.Flags().IntVar(&wellnessSleep, "sleep", 0, "Sleep quality from 1 (poor) to 10 (excellent), required")
	wellnessCmd.Flags().IntVar(&wellnessStress, "stress", 0, "Stress level from 1 (low) to 10 (high), required")
	wellnessCmd.Flags().StringVar(&wellnessName, "name", "", "Your name (optional)")
	wellnessCmd.Flags().StringVar(&wellnessAge, "age", "", "Your age (optional)")
	rootCmd.AddCommand(wellnessCmd)
}

// WellnessReport is the JSON shape of a scored check-in.
type WellnessReport struct {
	wellness.Result
	Crisis        bool             `json:"crisis"`
	CrisisPhrases []string         `json:"crisis_phrases,omitempty"`
	Hotlines      []hotline.Number `json:"hotlines,omitempty"`
}

func runWellness(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	sub := wellness.Submission{
		Name:         wellnessName,
		Age:          wellnessAge,
		Feelings:     wellnessFeelings,
		SleepQuality: wellnessSleep,
		StressLevel:  wellnessStress,
	}
	report, err := checkIn(sub)
	if err != nil {
		var verr *wellness.ValidationError
		if errors.As(err, &verr) && !flagJSON {
			renderValidation(cmd.ErrOrStderr(), verr)
		}
		return err
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	renderWellness(cmd.OutOrStdout(), sub.Name, report)
	return nil
}

// checkIn validates and scores a submission, attaching hotline numbers when
// the feelings text contains a crisis phrase.
func checkIn(sub wellness.Submission) (WellnessReport, error) {
	if err := wellness.Validate(sub); err != nil {
		return WellnessReport{}, err
	}

	report := WellnessReport{Result: wellness.Score(sub)}
	report.Crisis, report.CrisisPhrases = sentiment.DetectCrisis(sub.Feelings)
	if report.Crisis {
		report.Hotlines = hotline.Numbers()
	}
	return report, nil
}

func renderValidation(w io.Writer, verr *wellness.ValidationError) {
	names := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, output.StyleError.Render("Please fix the following:"))
	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n", output.StyleLabel.Render(name), verr.Fields[name])
	}
}

func scoreStyleFor(category string) func(...string) string {
	switch category {
	case wellness.CategoryWell:
		return output.StyleSuccess.Render
	case wellness.CategoryManaging:
		return output.StyleWarning.Render
	default:
		return output.StyleError.Render
	}
}

func renderWellness(w io.Writer, name string, r WellnessReport) {
	title := "Your Wellness Score"
	if name != "" {
		title = fmt.Sprintf("%s, here is your wellness score", name)
	}
	fmt.Fprintln(w, output.Section(title))
	fmt.Fprintln(w)

	render := scoreStyleFor(r.Category)
	fmt.Fprintf(w, " %s  %s\n", output.ScoreBar(float64(r.Score), 30), render(r.Category))
	fmt.Fprintln(w)

	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Feelings"), output.StyleValue.Render(fmt.Sprintf("%d", r.FeelingsScore)))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Sleep"), output.StyleValue.Render(fmt.Sprintf("%d", r.SleepScore)))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Stress"), output.StyleValue.Render(fmt.Sprintf("%d", r.StressScore)))

	if len(r.Tips) > 0 {
		fmt.Fprintln(w, output.Section("Tips"))
		for _, tip := range r.Tips {
			fmt.Fprintf(w, "  • %s\n", tip)
		}
	}

	if r.Crisis {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleError.Render(" It sounds like you are going through a lot. You do not have to face it alone."))
		for _, n := range r.Hotlines {
			fmt.Fprintf(w, "  %s %s\n", output.StyleLabel.Render(n.Name), output.StyleBold.Render(n.Contact))
		}
	}
}
