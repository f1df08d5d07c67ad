package gw2

import (
	"context"
)

// AccountAPI groups the account-bound operations. All of them require a
// token; consumers that only read account state can depend on this instead
// of the full client.
type AccountAPI interface {
	Account(ctx context.Context) (*Account, error)
	AccountAchievements(ctx context.Context) ([]AccountAchievement, error)
	Wallet(ctx context.Context) ([]AccountCurrency, error)
	TokenInfo(ctx context.Context) (*TokenInfo, error)
}

// AchievementsAPI groups the public achievement lookups.
type AchievementsAPI interface {
	AchievementIDs(ctx context.Context) ([]int, error)
	Achievement(ctx context.Context, id int) (*Achievement, error)
	Achievements(ctx context.Context, ids []int) ([]Achievement, error)
	DailyAchievements(ctx context.Context) (*DailyAchievements, error)
	DailyAchievementsTomorrow(ctx context.Context) (*DailyAchievements, error)
}

// CharactersAPI groups the character operations.
type CharactersAPI interface {
	CharacterNames(ctx context.Context) ([]string, error)
	Character(ctx context.Context, name string) (*Character, error)
	CharacterCore(ctx context.Context, name string) (*CharacterCore, error)
}

// CommerceAPI groups the trading post and exchange operations.
type CommerceAPI interface {
	CoinExchange(ctx context.Context, quantity int) (*ExchangeRate, error)
	GemExchange(ctx context.Context, quantity int) (*ExchangeRate, error)
	Prices(ctx context.Context, ids []int) ([]TPItemInfo, error)
	Listings(ctx context.Context, ids []int) ([]TPItem, error)
	CurrentBuyTransactions(ctx context.Context) ([]TPTransaction, error)
	CurrentSellTransactions(ctx context.Context) ([]TPTransaction, error)
}

var (
	_ AccountAPI      = (*Client)(nil)
	_ AchievementsAPI = (*Client)(nil)
	_ CharactersAPI   = (*Client)(nil)
	_ CommerceAPI     = (*Client)(nil)
)
