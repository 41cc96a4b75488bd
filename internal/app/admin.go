package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/config"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
)

var (
	adminUsername string
	adminPassword string
	adminHashCost int
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin portal: crisis alerts, data sources and text analysis",
	Long: `Sign in to the demo admin portal. Without a subcommand, prints the
portal overview.

The portal account is a demo login (admin / password unless configured).
It is not a security boundary.`,
	RunE: runAdminOverview,
}

var adminAnalyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze text with the portal's sentiment scorer",
	RunE:  runAdminAnalyze,
}

var adminHashCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for admin.password_hash",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdminHash,
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminUsername, "username", "", "Admin username (prompted when empty)")
	adminCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "Admin password (prompted when empty)")
	adminHashCmd.Flags().IntVar(&adminHashCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	adminCmd.AddCommand(adminAnalyzeCmd, adminHashCmd)
	rootCmd.AddCommand(adminCmd)
}

// newAuthenticator builds the portal authenticator from config.
func newAuthenticator(cfg *config.Config, limiter *admin.LimiterStore) (*admin.Authenticator, error) {
	return admin.NewAuthenticator(admin.Credentials{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, limiter)
}

// signIn checks the flag or prompted credentials against config.
func signIn(cmd *cobra.Command, cfg *config.Config) error {
	auth, err := newAuthenticator(cfg, nil)
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	username, password := adminUsername, adminPassword
	if username == "" {
		if username, err = prompt(cmd.ErrOrStderr(), in, "Username: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = prompt(cmd.ErrOrStderr(), in, "Password: "); err != nil {
			return err
		}
	}

	return auth.Login(username, password)
}

func prompt(w io.Writer, r *bufio.Reader, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimSpace(line), nil
}

func runAdminOverview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := signIn(cmd, cfg); err != nil {
		return err
	}

	feed := admin.Feed()
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), feed)
	}
	renderOverview(cmd.OutOrStdout(), feed)
	return nil
}

func runAdminAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("please enter text to analyze")
	}
	if err := signIn(cmd, cfg); err != nil {
		return err
	}

	a := admin.Analyze(text)
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), a)
	}
	renderAnalysis(cmd.OutOrStdout(), "admin", a)
	return nil
}

func runAdminHash(cmd *cobra.Command, args []string) error {
	password := adminPassword
	if len(args) == 1 {
		password = args[0]
	}
	if password == "" {
		var err error
		password, err = prompt(cmd.ErrOrStderr(), bufio.NewReader(cmd.InOrStdin()), "Password: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := admin.HashPassword(password, adminHashCost)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(hash))
	return nil
}

func severityStyle(severity string) func(...string) string {
	switch severity {
	case "critical":
		return output.StyleError.Render
	case "warning":
		return output.StyleWarning.Render
	default:
		return output.StyleInfo.Render
	}
}

func renderOverview(w io.Writer, o admin.Overview) {
	fmt.Fprintln(w, output.StyleHeader.Render("Admin Portal"))

	fmt.Fprintln(w, output.Section("Overview"))
	fmt.Fprintln(w)
	for _, s := range o.Stats {
		fmt.Fprintf(w, " %s %s %s\n",
			output.StyleLabel.Render(s.Title),
			output.StyleValue.Render(s.Value),
			output.StyleMuted.Render(s.Change))
	}

	fmt.Fprintln(w, output.Section("Crisis Alerts"))
	fmt.Fprintln(w)
	for _, a := range o.Alerts {
		render := severityStyle(a.Severity)
		fmt.Fprintf(w, " %s %s\n", render(fmt.Sprintf("[%s]", a.Severity)), output.StyleBold.Render(a.Title))
		fmt.Fprintf(w, "   %s\n", a.Detail)
		fmt.Fprintf(w, "   %s\n", output.StyleMuted.Render("→ "+a.Action))
	}

	fmt.Fprintln(w, output.Section("Data Sources"))
	fmt.Fprintln(w)
	sources := output.NewTable("Source", "Status", "Last Update")
	for _, d := range o.DataSources {
		status := output.StyleSuccess.Render(d.Status)
		if !d.Active() {
			status = output.StyleMuted.Render(d.Status)
		}
		sources.AddRow(d.Name, status, d.LastUpdate)
	}
	fmt.Fprint(w, sources.Render())

	fmt.Fprintln(w, output.Section("Recent Activity"))
	fmt.Fprintln(w)
	activity := output.NewTable("Action", "User", "When")
	for _, a := range o.Activity {
		activity.AddRow(a.Action, a.User, a.When)
	}
	fmt.Fprint(w, activity.Render())

	fmt.Fprintln(w, output.Section("Recent Uploads"))
	fmt.Fprintln(w)
	for _, u := range o.Uploads {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(u.Name), output.StyleMuted.Render(u.When))
	}

	fmt.Fprintln(w, output.Section("Reports"))
	fmt.Fprintln(w)
	for _, r := range o.Reports {
		fmt.Fprintf(w, " %s %s\n", output.StyleBold.Render(r.Title), output.StyleMuted.Render(r.Date))
		fmt.Fprintf(w, "   %s\n", r.Description)
	}
}
