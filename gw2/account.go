package gw2

import (
	"context"
	"time"
)

// Account is the core record of a player account.
type Account struct {
	// Unique persistent account GUID
	ID string `json:"id"`
	// Age of the account in seconds
	Age int `json:"age"`
	// Unique account name with numerical suffix
	Name string `json:"name"`
	// ID of the home world the account is assigned to
	World int `json:"world"`
	// List of guilds assigned to the given account
	Guilds []string `json:"guilds"`
	// List of guilds the account is leader of
	GuildLeader []string `json:"guild_leader"`
	// Timestamp of when the account was created
	Created time.Time `json:"created"`
	// Type of game the account has access to (F2P, base game, HoT, PoF etc.)
	Access []string `json:"access"`
	// True if the player has bought a commander tag
	Commander bool `json:"commander"`
	// Account's personal fractal reward level (requires the progression scope)
	FractalLevel int `json:"fractal_level"`
	// Account's daily AP (requires the progression scope)
	DailyAP int `json:"daily_ap"`
	// Account's monthly AP (requires the progression scope)
	MonthlyAP int `json:"monthly_ap"`
	// Account's personal WvW rank (requires the progression scope)
	WvWRank int `json:"wvw_rank"`
}

// AccountAchievement is an achievement the account has progress on.
type AccountAchievement struct {
	ID int `json:"id"`
	// Current progress towards the achievement, if any
	Current int `json:"current"`
	// Amount needed to complete the achievement, if any.
	// Most WvW achievements have this set to -1.
	Max int `json:"max"`
	// Whether or not the achievement is done
	Done bool `json:"done"`
	// Number of times the achievement has been completed, if repeatable
	Repeated int `json:"repeated"`
	// Bits giving more information on the progress for the achievement
	Bits []int `json:"bits"`
}

// AccountCurrency is one currency in the account's wallet.
type AccountCurrency struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

// AccountFinisher is a finisher unlocked for the account.
type AccountFinisher struct {
	ID int `json:"id"`
	// Indicates if the finisher is permanent or temporary
	Permanent bool `json:"permanent"`
	// If not permanent, indicates the remaining uses
	Quantity int `json:"quantity"`
}

// AccountMastery is an unlocked mastery for the account.
type AccountMastery struct {
	ID    int `json:"id"`
	Level int `json:"level"`
}

// AccountMaterial is a material stored in the account's vault.
type AccountMaterial struct {
	// Item ID of the material
	ID int `json:"id"`
	// Material category the item belongs to
	Category int `json:"category"`
	// Number of the material stored in the account vault
	Count int `json:"count"`
}

// BankSlot is one item slot in the account bank. Empty slots decode as nil.
type BankSlot struct {
	ID    int `json:"id"`
	Count int `json:"count"`
	// The skin applied to the item, if it is different from its original
	Skin int `json:"skin"`
	// Item IDs for each rune or signet applied to the item
	Upgrades []int `json:"upgrades"`
	// Item IDs for each infusion applied to the item
	Infusions []int `json:"infusions"`
	// Current binding of the item
	Binding string `json:"binding"`
	// Amount of charges remaining on the item
	Charges int `json:"charges"`
	// If bound to a character, which character the item is bound to
	BoundTo string `json:"bound_to"`
}

// Cat is a home instance cat.
type Cat struct {
	ID int `json:"id"`
	// Hint to identify what is needed for the cat
	Hint string `json:"hint"`
}

// InventorySlot is a shared inventory slot. Empty slots decode as nil.
type InventorySlot struct {
	ID    int `json:"id"`
	Count int `json:"count"`
	// Scope of the inventory slot
	Binding string `json:"binding"`
}

// TokenInfo describes the API token the client is configured with.
type TokenInfo struct {
	// First half of the requested API token
	ID string `json:"id"`
	// Name given to the API token by the account owner (not escaped!)
	Name string `json:"name"`
	// Permissions the API token has
	Permissions []string `json:"permissions"`
}

// Account returns the details of the account the token belongs to.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	return fetch[*Account](ctx, c, epAccount, true, statusOK, statusForbidden)
}

// AccountAchievements returns the achievements the account has progress on.
func (c *Client) AccountAchievements(ctx context.Context) ([]AccountAchievement, error) {
	return fetch[[]AccountAchievement](ctx, c, epAccountAchievements, true, statusOK, statusForbidden)
}

// Bank returns the account bank, one entry per slot. Empty slots are nil.
func (c *Client) Bank(ctx context.Context) ([]*BankSlot, error) {
	return fetch[[]*BankSlot](ctx, c, epAccountBank, true, statusOK, statusForbidden)
}

// Dungeons returns the dungeon paths completed since the daily reset.
func (c *Client) Dungeons(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epAccountDungeons, true, statusOK, statusForbidden)
}

// Dyes returns the dye IDs unlocked for the account.
func (c *Client) Dyes(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountDyes, true, statusOK, statusForbidden)
}

// Finishers returns the finishers unlocked for the account.
func (c *Client) Finishers(ctx context.Context) ([]AccountFinisher, error) {
	return fetch[[]AccountFinisher](ctx, c, epAccountFinishers, true, statusOK, statusForbidden)
}

// HomeCats returns the cats unlocked in the home instance.
func (c *Client) HomeCats(ctx context.Context) ([]Cat, error) {
	return fetch[[]Cat](ctx, c, epAccountHomeCats, true, statusOK, statusForbidden)
}

// HomeNodes returns the gathering nodes unlocked in the home instance.
func (c *Client) HomeNodes(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epAccountHomeNodes, true, statusOK, statusForbidden)
}

// SharedInventory returns the shared inventory slots. Empty slots are nil.
func (c *Client) SharedInventory(ctx context.Context) ([]*InventorySlot, error) {
	return fetch[[]*InventorySlot](ctx, c, epAccountInventory, true, statusOK, statusForbidden)
}

// AccountMasteries returns the masteries unlocked for the account.
func (c *Client) AccountMasteries(ctx context.Context) ([]AccountMastery, error) {
	return fetch[[]AccountMastery](ctx, c, epAccountMasteries, true, statusOK, statusForbidden)
}

// Materials returns the materials stored in the account vault.
func (c *Client) Materials(ctx context.Context) ([]AccountMaterial, error) {
	return fetch[[]AccountMaterial](ctx, c, epAccountMaterials, true, statusOK, statusForbidden)
}

// Minis returns the miniature IDs unlocked for the account.
func (c *Client) Minis(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountMinis, true, statusOK, statusForbidden)
}

// AccountOutfits returns the outfit IDs unlocked for the account.
func (c *Client) AccountOutfits(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountOutfits, true, statusOK, statusForbidden)
}

// Raids returns the raid encounters completed since the weekly reset.
func (c *Client) Raids(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epAccountRaids, true, statusOK, statusForbidden)
}

// AccountRecipes returns the recipe IDs unlocked for the account.
func (c *Client) AccountRecipes(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountRecipes, true, statusOK, statusForbidden)
}

// Skins returns the skin IDs unlocked for the account.
func (c *Client) Skins(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountSkins, true, statusOK, statusForbidden)
}

// Titles returns the title IDs unlocked for the account.
func (c *Client) Titles(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAccountTitles, true, statusOK, statusForbidden)
}

// Wallet returns the currencies in the account's wallet.
func (c *Client) Wallet(ctx context.Context) ([]AccountCurrency, error) {
	return fetch[[]AccountCurrency](ctx, c, epAccountWallet, true, statusOK, statusForbidden)
}

// TokenInfo returns details about the configured API token.
func (c *Client) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	return fetch[*TokenInfo](ctx, c, epTokenInfo, true, statusOK, statusForbidden)
}
