package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/config"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/output"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/store"
)

var (
	resourcesTab     string
	resourcesNoStore bool
)

var resourcesCmd = &cobra.Command{
	Use:   "resources [query]",
	Short: "Find mental health services and providers",
	Long: `Search the directory of mental health providers in Zambia by name,
location, type or service. Results can be narrowed to one tab: all,
hospital, ngo or other.

The directory is served from the local database, which is seeded with the
built-in catalog on first use.

Examples:
  mindhub resources lusaka
  mindhub resources --tab ngo counseling`,
	Args: cobra.ArbitraryArgs,
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().StringVar(&resourcesTab, "tab", resources.TabAll, "Provider tab: "+strings.Join(resources.Tabs, ", "))
	resourcesCmd.Flags().BoolVar(&resourcesNoStore, "no-store", false, "Use the built-in catalog without touching the database")
	rootCmd.AddCommand(resourcesCmd)
}

func runResources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var dir *resources.Directory
	if resourcesNoStore {
		dir = resources.NewDirectory(nil)
	} else {
		var closeDir func()
		dir, closeDir = openDirectory(cmd.Context(), cfg)
		defer closeDir()
	}

	query := strings.Join(args, " ")
	found, err := dir.Tab(cmd.Context(), resourcesTab, query)
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), found)
	}
	renderResources(cmd.OutOrStdout(), query, found)
	return nil
}

// openDirectory returns a Directory backed by the local database, seeding it
// with the built-in catalog when empty. If the database cannot be used the
// built-in catalog is served instead. The returned func releases the
// database.
func openDirectory(ctx context.Context, cfg *config.Config) (*resources.Directory, func()) {
	log := observability.WithFields("component", "store", "path", cfg.DatabasePath())

	db, err := store.Open(cfg.DatabasePath())
	if err != nil {
		log.Warn("resource database unavailable, using built-in catalog", "error", err)
		return resources.NewDirectory(nil), func() {}
	}

	seeded, err := db.SeedResources(ctx, resources.Catalog())
	if err != nil {
		_ = db.Close()
		log.Warn("seeding resource database failed, using built-in catalog", "error", err)
		return resources.NewDirectory(nil), func() {}
	}
	if seeded {
		log.Info("seeded resource database")
	}

	return resources.NewDirectory(db), func() { _ = db.Close() }
}

func renderResources(w io.Writer, query string, rs []resources.Resource) {
	title := "Mental Health Resources"
	if query != "" {
		title = fmt.Sprintf("Mental Health Resources matching %q", query)
	}
	fmt.Fprintln(w, output.Section(title))
	fmt.Fprintln(w)

	if len(rs) == 0 {
		fmt.Fprintln(w, " No resources found matching your search criteria.")
		return
	}

	tbl := output.NewTable("Name", "Type", "Location", "Contact")
	for _, r := range rs {
		tbl.AddRow(r.Name, r.Type, r.Location, r.Contact)
	}
	fmt.Fprint(w, tbl.Render())

	fmt.Fprintln(w)
	for _, r := range rs {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render(r.Name))
		fmt.Fprintf(w, "   %s\n", output.StyleMuted.Render(r.Description))
		fmt.Fprintf(w, "   Services: %s\n", strings.Join(r.Services, ", "))
		if r.Website != "" {
			fmt.Fprintf(w, "   %s\n", output.StyleInfo.Render(r.Website))
		}
	}
	fmt.Fprintf(w, "\n %d provider(s)\n", len(rs))
}
