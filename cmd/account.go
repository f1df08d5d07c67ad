package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tyriadev/tyria/gw2"
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show a summary of the account",
	Long: `Show a summary of the account the configured API token belongs to:
core details, wallet and trading post activity. Requires a token with at
least the account scope; wallet and trading post details are skipped when
the token lacks their scopes.`,
	RunE: runAccount,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(testCmd)
}

func runAccount(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	ctx := context.Background()

	var (
		account      *gw2.Account
		wallet       []gw2.AccountCurrency
		currentBuys  []gw2.TPTransaction
		currentSells []gw2.TPTransaction
	)

	// The account family is independent per endpoint; fetch concurrently
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = client.Account(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		wallet, err = client.Wallet(gctx)
		// Wallet needs its own scope; absence is not fatal for a summary
		if isPermissionDenied(err) {
			wallet = nil
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		currentBuys, err = client.CurrentBuyTransactions(gctx)
		if isPermissionDenied(err) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		currentSells, err = client.CurrentSellTransactions(gctx)
		if isPermissionDenied(err) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%s (world %d)\n", account.Name, account.World)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Created:       %s\n", account.Created.Format("2006-01-02"))
	fmt.Printf("Played:        %s\n", formatPlaytime(account.Age))
	fmt.Printf("Access:        %s\n", strings.Join(account.Access, ", "))
	if account.Commander {
		fmt.Println("Commander:     yes")
	}
	if account.FractalLevel > 0 {
		fmt.Printf("Fractal level: %d\n", account.FractalLevel)
	}
	if account.WvWRank > 0 {
		fmt.Printf("WvW rank:      %d\n", account.WvWRank)
	}
	fmt.Printf("Daily AP:      %d\n", account.DailyAP)
	fmt.Printf("Monthly AP:    %d\n", account.MonthlyAP)

	if len(wallet) > 0 {
		// Coins are always currency 1
		for _, currency := range wallet {
			if currency.ID == 1 {
				fmt.Printf("Coins:         %s\n", formatCoins(currency.Value))
			}
		}
	}

	if len(currentBuys) > 0 || len(currentSells) > 0 {
		fmt.Printf("Trading post:  %d buy orders, %d sell offers\n", len(currentBuys), len(currentSells))
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API token",
	Long:  `Check that the configured API token is accepted and show its permissions.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	info, err := client.TokenInfo(context.Background())
	if err != nil {
		return fmt.Errorf("token check failed: %w", err)
	}

	fmt.Println("✓ Token accepted")
	fmt.Printf("Name:        %s\n", info.Name)
	fmt.Printf("Permissions: %s\n", strings.Join(info.Permissions, ", "))

	return nil
}

// isPermissionDenied reports whether err is an API denial rather than a
// transport or decoding failure.
func isPermissionDenied(err error) bool {
	var apiErr *gw2.APIError
	return errors.As(err, &apiErr) && apiErr.IsPermissionDenied()
}

// formatPlaytime renders an age in seconds as whole hours.
func formatPlaytime(seconds int) string {
	hours := time.Duration(seconds) * time.Second / time.Hour
	return fmt.Sprintf("%dh", hours)
}

// formatCoins renders a copper amount as gold/silver/copper.
func formatCoins(copper int) string {
	gold := copper / 10000
	silver := (copper % 10000) / 100
	return fmt.Sprintf("%dg %ds %dc", gold, silver, copper%100)
}
