package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tyriadev/tyria/filter"
	"github.com/tyriadev/tyria/gw2"
)

// The API caps ids= lookups at 200 elements per request.
const achievementBatchSize = 200

const achievementFetchConcurrency = 4

var showDaily bool

// achievementsCmd represents the achievements command
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievement progress matching a filter",
	Long: `List the account's achievement progress joined with the achievement
definitions, optionally narrowed by a filter expression.

The filter sees the definition fields (Name, Type, Flags, PointCap),
the progress fields (Current, Max, Done, Repeated) and helpers like
hasFlag and percentDone. Examples:

  tyria achievements --filter 'Done == false && Current > 0'
  tyria achievements --filter 'hasFlag("Daily")'
  tyria achievements --preset almost-done`,
	RunE: runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)

	achievementsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	achievementsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	achievementsCmd.Flags().BoolVar(&showDaily, "daily", false, "show today's daily achievements instead")
}

func runAchievements(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if showDaily {
		return runDaily(ctx)
	}

	if err := requireToken(); err != nil {
		return err
	}

	progress, err := client.AccountAchievements(ctx)
	if err != nil {
		return fmt.Errorf("failed to get achievement progress: %w", err)
	}
	if len(progress) == 0 {
		fmt.Println("No achievement progress on this account.")
		return nil
	}

	logger.Debug().Int("count", len(progress)).Msg("Fetching achievement definitions")

	definitions, err := fetchDefinitions(ctx, progress)
	if err != nil {
		return fmt.Errorf("failed to get achievement definitions: %w", err)
	}

	// Join progress with definitions. Definitions the API no longer knows
	// (retired dailies) are skipped.
	var achievements []filter.Achievement
	for _, p := range progress {
		def, ok := definitions[p.ID]
		if !ok {
			continue
		}
		achievements = append(achievements, filter.Achievement{Achievement: def, Progress: p})
	}

	// Apply filter if one is configured
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		f, err := compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		achievements, err = f.Apply(achievements)
		if err != nil {
			return err
		}
	}

	if len(achievements) == 0 {
		fmt.Println("No achievements match the filter criteria.")
		return nil
	}

	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].Name < achievements[j].Name
	})

	fmt.Printf("\nFound %d achievements:\n", len(achievements))
	fmt.Println(strings.Repeat("-", 80))

	for _, a := range achievements {
		fmt.Printf("• %s", a.Name)
		if a.Progress.Done {
			fmt.Printf(" [DONE]")
		} else if a.Progress.Max > 0 {
			fmt.Printf(" (%d/%d)", a.Progress.Current, a.Progress.Max)
		}
		if a.Progress.Repeated > 0 {
			fmt.Printf(" x%d", a.Progress.Repeated)
		}
		fmt.Println()

		if cfg.Output.ShowDetails {
			if a.Requirement != "" {
				fmt.Printf("  %s\n", a.Requirement)
			}
			if len(a.Flags) > 0 {
				fmt.Printf("  Flags: %s\n", strings.Join(a.Flags, ", "))
			}
		}
	}

	return nil
}

// fetchDefinitions resolves achievement definitions for every progress
// entry, batched and fetched concurrently.
func fetchDefinitions(ctx context.Context, progress []gw2.AccountAchievement) (map[int]gw2.Achievement, error) {
	ids := make([]int, len(progress))
	for i, p := range progress {
		ids[i] = p.ID
	}

	definitions := make(map[int]gw2.Achievement, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(achievementFetchConcurrency)

	for start := 0; start < len(ids); start += achievementBatchSize {
		end := min(start+achievementBatchSize, len(ids))
		batch := ids[start:end]

		g.Go(func() error {
			// A 206 answer resolves the known subset; retired IDs drop out
			achievements, err := client.Achievements(gctx, batch)
			if err != nil {
				return err
			}

			mu.Lock()
			for _, a := range achievements {
				definitions[a.ID] = a
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return definitions, nil
}

// runDaily prints today's daily achievement rotation.
func runDaily(ctx context.Context) error {
	daily, err := client.DailyAchievements(ctx)
	if err != nil {
		return fmt.Errorf("failed to get daily achievements: %w", err)
	}

	groups := []struct {
		name    string
		entries []gw2.DailyAchievement
	}{
		{"PvE", daily.PvE},
		{"PvP", daily.PvP},
		{"WvW", daily.WvW},
		{"Fractals", daily.Fractals},
		{"Special", daily.Special},
	}

	// Resolve names for everything in one batch
	var ids []int
	for _, group := range groups {
		for _, entry := range group.entries {
			ids = append(ids, entry.ID)
		}
	}
	names := make(map[int]string, len(ids))
	if len(ids) > 0 {
		achievements, err := client.Achievements(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to resolve daily achievements: %w", err)
		}
		for _, a := range achievements {
			names[a.ID] = a.Name
		}
	}

	for _, group := range groups {
		if len(group.entries) == 0 {
			continue
		}
		fmt.Printf("\n%s:\n", group.name)
		for _, entry := range group.entries {
			name, ok := names[entry.ID]
			if !ok {
				name = fmt.Sprintf("achievement %d", entry.ID)
			}
			fmt.Printf("  • %s (level %d-%d)\n", name, entry.Level.Min, entry.Level.Max)
		}
	}

	return nil
}
