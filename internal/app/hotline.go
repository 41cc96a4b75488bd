package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
)

var (
	hotlineCall bool
	hotlineText bool
)

var hotlineCmd = &cobra.Command{
	Use:   "hotline",
	Short: "Show emergency mental health contacts",
	Long: `List the emergency helpline and crisis text line. With --call, run a
simulated call with a live timer; press Ctrl+C to hang up.`,
	RunE: runHotline,
}

func init() {
	hotlineCmd.Flags().BoolVar(&hotlineCall, "call", false, "Start a simulated call to the helpline")
	hotlineCmd.Flags().BoolVar(&hotlineText, "text", false, "Send a simulated message to the crisis text line")
	rootCmd.AddCommand(hotlineCmd)
}

func runHotline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	switch {
	case hotlineCall:
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		fmt.Fprintln(w, output.StyleInfo.Render(hotline.ConnectingMessage))
		res := hotline.Call(ctx, cfg.Hotline.CallDuration, func(elapsed int) {
			fmt.Fprintf(w, "\r Call in progress %s", output.StyleBold.Render(hotline.FormatElapsed(elapsed)))
		})
		fmt.Fprintln(w)
		if flagJSON {
			return writeJSON(w, res)
		}
		fmt.Fprintln(w, res.Message())
		return nil

	case hotlineText:
		fmt.Fprintln(w, output.StyleSuccess.Render(hotline.TextSentMessage))
		return nil
	}

	if flagJSON {
		return writeJSON(w, hotline.Numbers())
	}
	renderHotlines(w, hotline.Numbers())
	return nil
}

func renderHotlines(w io.Writer, numbers []hotline.Number) {
	fmt.Fprintln(w, output.Section("Emergency Support"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, " If you are in crisis, reach out now. Help is available 24/7.")
	fmt.Fprintln(w)
	for _, n := range numbers {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(n.Name), output.StyleBold.Render(n.Contact))
	}
}
