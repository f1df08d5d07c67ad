package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// commerceCmd represents the commerce command
var commerceCmd = &cobra.Command{
	Use:   "commerce",
	Short: "Trading post and currency exchange lookups",
}

// exchangeCmd quotes the coin/gem exchange
var exchangeCmd = &cobra.Command{
	Use:   "exchange (coins|gems) <quantity>",
	Short: "Quote the coin/gem exchange",
	Long: `Quote the currency exchange in either direction. Coins are given in
copper:

  tyria commerce exchange coins 1000000
  tyria commerce exchange gems 400`,
	Args: cobra.ExactArgs(2),
	RunE: runExchange,
}

// pricesCmd shows trading post prices
var pricesCmd = &cobra.Command{
	Use:   "prices <item-id>...",
	Short: "Show trading post prices for items",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrices,
}

// transactionsCmd shows the account's trading post activity
var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Show the account's outstanding trading post orders",
	RunE:  runTransactions,
}

func init() {
	rootCmd.AddCommand(commerceCmd)
	commerceCmd.AddCommand(exchangeCmd)
	commerceCmd.AddCommand(pricesCmd)
	commerceCmd.AddCommand(transactionsCmd)
}

func runExchange(cmd *cobra.Command, args []string) error {
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity '%s': must be a positive integer", args[1])
	}

	ctx := context.Background()

	switch args[0] {
	case "coins":
		rate, err := client.CoinExchange(ctx, quantity)
		if err != nil {
			return err
		}
		fmt.Printf("%s buys %d gems (%s per gem)\n", formatCoins(quantity), rate.Quantity, formatCoins(rate.CoinsPerGem))
	case "gems":
		rate, err := client.GemExchange(ctx, quantity)
		if err != nil {
			return err
		}
		fmt.Printf("%d gems buy %s (%s per gem)\n", quantity, formatCoins(rate.Quantity), formatCoins(rate.CoinsPerGem))
	default:
		return fmt.Errorf("unknown exchange direction '%s' (must be 'coins' or 'gems')", args[0])
	}

	return nil
}

func runPrices(cmd *cobra.Command, args []string) error {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid item id '%s': must be a positive integer", arg)
		}
		ids[i] = id
	}

	prices, err := client.Prices(context.Background(), ids)
	if err != nil {
		return err
	}

	if len(prices) < len(ids) {
		fmt.Printf("Note: %d of %d items are not tradeable or unknown.\n\n", len(ids)-len(prices), len(ids))
	}

	for _, price := range prices {
		fmt.Printf("Item %d:\n", price.ID)
		fmt.Printf("  Buy:  %s (%d ordered)\n", formatCoins(price.Buys.UnitPrice), price.Buys.Quantity)
		fmt.Printf("  Sell: %s (%d offered)\n", formatCoins(price.Sells.UnitPrice), price.Sells.Quantity)
	}

	return nil
}

func runTransactions(cmd *cobra.Command, args []string) error {
	if err := requireToken(); err != nil {
		return err
	}

	ctx := context.Background()

	buys, err := client.CurrentBuyTransactions(ctx)
	if err != nil {
		return err
	}
	sells, err := client.CurrentSellTransactions(ctx)
	if err != nil {
		return err
	}

	if len(buys) == 0 && len(sells) == 0 {
		fmt.Println("No outstanding trading post orders.")
		return nil
	}

	if len(buys) > 0 {
		fmt.Printf("Buy orders (%d):\n", len(buys))
		for _, tx := range buys {
			fmt.Printf("  • item %d: %d @ %s (placed %s)\n",
				tx.ItemID, tx.Quantity, formatCoins(tx.Price), tx.Created.Format("2006-01-02"))
		}
	}

	if len(sells) > 0 {
		fmt.Printf("Sell offers (%d):\n", len(sells))
		for _, tx := range sells {
			fmt.Printf("  • item %d: %d @ %s (placed %s)\n",
				tx.ItemID, tx.Quantity, formatCoins(tx.Price), tx.Created.Format("2006-01-02"))
		}
	}

	return nil
}
