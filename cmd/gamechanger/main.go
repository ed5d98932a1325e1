// Command gamechanger is a terminal client for the GameChanger demo data:
// it signs in and out against the configured session storage and prints the
// feed, notifications and discovery results.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gamechanger/internal/bootstrap"
	"gamechanger/internal/config"
	"gamechanger/internal/featureflags"
	"gamechanger/internal/models"
	"gamechanger/internal/repository"
	"gamechanger/internal/seed"
	"gamechanger/internal/service"
	"gamechanger/internal/session"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRuntime loads the config and opens storage. The caller must defer rt.Close().
func newRuntime() (*config.Config, *bootstrap.Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	rt, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing runtime: %w", err)
	}
	return cfg, rt, nil
}

func openSession(ctx context.Context) (*session.Store, func(), error) {
	cfg, rt, err := newRuntime()
	if err != nil {
		return nil, nil, err
	}
	return rt.OpenSession(ctx, cfg), rt.Close, nil
}

var rootCmd = &cobra.Command{
	Use:          "gamechanger",
	Short:        "GameChanger terminal client",
	SilenceUsage: true,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, closeFn, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		identity, ok := sess.CurrentIdentity()
		if !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s <%s> (%s)\n", identity.Name, identity.Email, identity.Role)
		fmt.Printf("Handle: %s\n", identity.Handle())
		return nil
	},
}

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with the demo identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		sess, closeFn, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		identity := session.DemoIdentity(name, email)
		if err := sess.Login(cmd.Context(), identity); err != nil {
			return fmt.Errorf("signing in: %w", err)
		}
		fmt.Printf("Signed in as %s\n", identity.Name)
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, closeFn, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		if err := sess.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("signing out: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the home feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		sess := rt.OpenSession(cmd.Context(), cfg)
		var viewerID, handle string
		if identity, ok := sess.CurrentIdentity(); ok {
			viewerID, handle = identity.ID, identity.Handle()
		}

		feeds := service.NewFeedService(rt.Catalog, featureflags.NewManager(cfg.FeatureFlags))
		posts, source := feeds.Load(cmd.Context(), viewerID, handle)
		if source == service.FeedSourceFallback {
			fmt.Println("(catalog unavailable, showing sample posts)")
		}
		for _, p := range posts {
			fmt.Printf("#%d  %s %s  %s\n    %s\n", p.ID, p.User.Name, p.User.Username, p.Timestamp, p.Content)
		}
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		unread, _ := cmd.Flags().GetBool("unread")

		notifications := service.NewNotificationService()
		for _, n := range notifications.List(unread) {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			who := ""
			if n.User != nil {
				who = n.User.Name + " "
			}
			fmt.Printf("%s %-10s %s%s  (%s)\n", marker, n.Type, who, n.Content, n.Timestamp)
		}
		fmt.Printf("%d unread\n", notifications.UnreadCount())
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the athlete and scout directories",
}

func searchFilter(cmd *cobra.Command, args []string) models.SearchFilter {
	var filter models.SearchFilter
	if len(args) > 0 {
		filter.Query = args[0]
	}
	filter.Sport, _ = cmd.Flags().GetString("sport")
	filter.Location, _ = cmd.Flags().GetString("location")
	filter.Level, _ = cmd.Flags().GetString("level")
	return filter
}

var searchAthletesCmd = &cobra.Command{
	Use:   "athletes [query]",
	Short: "Search athletes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := service.NewDirectoryService().SearchAthletes(searchFilter(cmd, args))
		if len(results) == 0 {
			fmt.Println("No athletes found.")
			return nil
		}
		for _, a := range results {
			fmt.Printf("%-20s %-10s %-14s %-10s %s\n", a.Name, a.Sport, a.Position, a.Level, a.Location)
		}
		return nil
	},
}

var searchScoutsCmd = &cobra.Command{
	Use:   "scouts [query]",
	Short: "Search scouts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := service.NewDirectoryService().SearchScouts(searchFilter(cmd, args))
		if len(results) == 0 {
			fmt.Println("No scouts found.")
			return nil
		}
		for _, s := range results {
			fmt.Printf("%-20s %-30s %-12s %s\n", s.Name, s.Club, s.Specialization, s.Location)
		}
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage feed catalogs",
}

var catalogGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the demo catalog plus generated athletes to a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		athletes, _ := cmd.Flags().GetInt("athletes")
		posts, _ := cmd.Flags().GetInt("posts")
		seedValue, _ := cmd.Flags().GetInt64("seed")

		catalog := seed.NewFactory(seed.Options{
			Athletes:        athletes,
			PostsPerAthlete: posts,
			Seed:            seedValue,
			Now:             time.Now(),
		}).BuildCatalog()

		if err := repository.WriteCatalogYAML(out, catalog); err != nil {
			return err
		}
		fmt.Printf("Wrote %d athletes to %s\n", len(catalog.Athletes), out)
		return nil
	},
}

func init() {
	signinCmd.Flags().String("name", "", "display name (default "+session.DemoName+")")
	signinCmd.Flags().String("email", "", "email (default "+session.DemoEmail+")")

	notificationsCmd.Flags().Bool("unread", false, "only show unread notifications")

	for _, c := range []*cobra.Command{searchAthletesCmd, searchScoutsCmd} {
		c.Flags().String("sport", "all", "sport filter")
		c.Flags().String("location", "", "location filter")
	}
	searchAthletesCmd.Flags().String("level", "all", "level filter")
	searchCmd.AddCommand(searchAthletesCmd, searchScoutsCmd)

	catalogGenerateCmd.Flags().String("out", "catalog.yaml", "output file")
	catalogGenerateCmd.Flags().Int("athletes", 20, "number of generated athletes")
	catalogGenerateCmd.Flags().Int("posts", 3, "posts per generated athlete")
	catalogGenerateCmd.Flags().Int64("seed", 0, "random seed, 0 for time based")
	catalogCmd.AddCommand(catalogGenerateCmd)

	rootCmd.AddCommand(whoamiCmd, signinCmd, signoutCmd, feedCmd, notificationsCmd, searchCmd, catalogCmd)
}
