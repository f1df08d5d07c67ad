package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// charactersCmd represents the characters command
var charactersCmd = &cobra.Command{
	Use:   "characters [name]",
	Short: "List characters or show one character",
	Long: `Without arguments, list the names of all characters on the account.
With a character name, show that character's details. Names with spaces
need quoting:

  tyria characters "First Last"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCharacters,
}

func init() {
	rootCmd.AddCommand(charactersCmd)
}

func runCharacters(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	ctx := context.Background()

	if len(args) == 0 {
		names, err := client.CharacterNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to get character names: %w", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	character, err := client.Character(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	fmt.Printf("%s\n", character.Name)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Profession: %s (%s %s)\n", character.Profession, character.Race, character.Gender)
	fmt.Printf("Level:      %d\n", character.Level)
	fmt.Printf("Created:    %s\n", character.Created.Format("2006-01-02"))
	fmt.Printf("Played:     %s\n", formatPlaytime(character.Age))
	fmt.Printf("Deaths:     %d\n", character.Deaths)

	if len(character.Crafting) > 0 {
		var disciplines []string
		for _, c := range character.Crafting {
			disciplines = append(disciplines, fmt.Sprintf("%s (%d)", c.Discipline, c.Rating))
		}
		fmt.Printf("Crafting:   %s\n", strings.Join(disciplines, ", "))
	}

	if cfg.Output.ShowDetails {
		if len(character.Specializations.PvE) > 0 {
			var specs []string
			for _, s := range character.Specializations.PvE {
				specs = append(specs, fmt.Sprintf("%d", s.ID))
			}
			fmt.Printf("PvE specs:  %s\n", strings.Join(specs, ", "))
		}

		equipped := 0
		for _, bag := range character.Bags {
			for _, slot := range bag.Inventory {
				if slot != nil {
					equipped++
				}
			}
		}
		fmt.Printf("Inventory:  %d bags, %d occupied slots\n", len(character.Bags), equipped)
		fmt.Printf("Recipes:    %d unlocked\n", len(character.Recipes))
	}

	return nil
}
