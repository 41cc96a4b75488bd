package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
)

var analyzeLexicon string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Tag text with keyword sentiment and crisis indicators",
	Long: `Run keyword sentiment analysis on text given as arguments or on stdin.

The conversation lexicon labels text by comparing positive and negative
keyword hits. The admin lexicon scores from a neutral 50 and labels by
threshold.

Examples:
  mindhub analyze "I feel hopeful and grateful today"
  echo "sad and worried" | mindhub analyze --lexicon admin`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "conversation", "Keyword lexicon: conversation or admin")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	lex, err := sentiment.LexiconByName(analyzeLexicon)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		text, err = readAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("please enter text to analyze")
	}

	a := sentiment.NewTagger(lex).Analyze(text)
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), a)
	}
	renderAnalysis(cmd.OutOrStdout(), lex.Name, a)
	return nil
}

func readAll(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && output.IsTerminal(f) {
		return "", nil
	}
	var b strings.Builder
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	return b.String(), sc.Err()
}

func renderAnalysis(w io.Writer, lexicon string, a sentiment.Analysis) {
	fmt.Fprintln(w, output.Section("Sentiment Analysis"))
	fmt.Fprintln(w)

	label := a.Label.Title()
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Sentiment"), output.SentimentStyle(label).Bold(true).Render(label))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Score"), output.ScoreBar(float64(a.Score), 20))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Keyword hits"),
		fmt.Sprintf("%s positive, %s negative",
			output.StyleSuccess.Render(fmt.Sprintf("%d", a.PositiveCount)),
			output.StyleError.Render(fmt.Sprintf("%d", a.NegativeCount))))

	keywords := "none"
	if len(a.Keywords) > 0 {
		keywords = strings.Join(a.Keywords, ", ")
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Keywords"), keywords)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Lexicon"), output.StyleMuted.Render(lexicon))

	if a.CrisisIndicator {
		fmt.Fprintln(w)
		fmt.Fprintf(w, " %s %s\n",
			output.StyleError.Bold(true).Render("Depression indicator:"),
			strings.Join(a.CrisisPhrases, ", "))
	}
}
