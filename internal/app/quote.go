package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/quotes"
)

var quoteFollow bool

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print an inspirational quote",
	Long: `Print a random inspirational quote. With --follow, keep printing a new
quote on the configured interval until interrupted.`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().BoolVar(&quoteFollow, "follow", false, "Rotate quotes until interrupted")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	emit := func(q quotes.Quote) {
		if flagJSON {
			_ = writeJSONLine(w, q)
			return
		}
		fmt.Fprintf(w, "%s\n  %s\n", output.StyleBold.Render(`"`+q.Text+`"`), output.StyleMuted.Render(q.Author))
	}

	if !quoteFollow {
		emit(quotes.Pick(nil))
		return nil
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	err = quotes.Rotator{Interval: cfg.Quotes.Interval}.Run(ctx, emit)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
