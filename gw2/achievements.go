package gw2

import "context"

// Achievement is one achievement definition.
type Achievement struct {
	ID int `json:"id"`
	// URL to the achievement icon, if any
	Icon string `json:"icon"`
	Name string `json:"name"`
	// Description as listed in-game
	Description string `json:"description"`
	// Requirement as listed in-game
	Requirement string `json:"requirement"`
	// Description prior to unlocking the achievement
	LockedText string `json:"locked_text"`
	Type       string `json:"type"`
	// Achievement flags (categories)
	Flags []string          `json:"flags"`
	Tiers []AchievementTier `json:"tiers"`
	// Achievement IDs required to progress this achievement
	Prerequisites []int               `json:"prerequisites"`
	Rewards       []AchievementReward `json:"rewards"`
	// Bitmask values giving further information on progress
	Bits []AchievementBit `json:"bits"`
	// Maximum AP a repeatable achievement can reward
	PointCap int `json:"point_cap"`
}

// AchievementBit is one trackable sub-objective of an achievement.
type AchievementBit struct {
	// Type of bit (Text, Item, Minipet, Skin)
	Type string `json:"type"`
	// ID of the item, mini or skin, if applicable
	ID int `json:"id"`
	// Text for the bit when Type is Text
	Text string `json:"text"`
}

// AchievementReward is one reward granted for completing an achievement.
// The Type discriminates which of the remaining fields apply: Coins uses
// Count, Item uses ID and Count, Mastery uses ID and Region, Title uses ID.
type AchievementReward struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Count int    `json:"count"`
	// Region the mastery point applies to, when Type is Mastery
	Region string `json:"region"`
}

// AchievementTier describes one tier of a repeatable achievement: the count
// needed to unlock the tier and the AP awarded for it.
type AchievementTier struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// AchievementCategory groups achievements inside an achievement group.
type AchievementCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Sort position among the other categories in the group, lowest first
	Order int `json:"order"`
	// URL to the category icon
	Icon string `json:"icon"`
	// Achievement IDs the category contains
	Achievements []int `json:"achievements"`
}

// AchievementGroup is a top-level grouping of achievement categories.
type AchievementGroup struct {
	// Group GUID
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Sort position among other groups, lowest first
	Order int `json:"order"`
	// Category IDs the group contains
	Categories []int `json:"categories"`
}

// DailyAchievement is one entry in the daily achievement rotation.
type DailyAchievement struct {
	ID int `json:"id"`
	// Character level range required for the daily to appear
	Level DailyAchievementLevel `json:"level"`
	// Campaigns required to see this daily
	RequiredAccess []string `json:"required_access"`
}

// DailyAchievementLevel is the character level range a daily applies to.
type DailyAchievementLevel struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DailyAchievements is the daily rotation, grouped by game mode.
type DailyAchievements struct {
	PvE      []DailyAchievement `json:"pve"`
	PvP      []DailyAchievement `json:"pvp"`
	WvW      []DailyAchievement `json:"wvw"`
	Fractals []DailyAchievement `json:"fractals"`
	Special  []DailyAchievement `json:"special"`
}

// AchievementIDs returns the IDs of all achievements.
func (c *Client) AchievementIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAchievements, false, statusOK, statusNotFound)
}

// Achievement returns the details of a single achievement.
func (c *Client) Achievement(ctx context.Context, id int) (*Achievement, error) {
	path := withParam(epAchievements, numberToParam("id", id))
	return fetch[*Achievement](ctx, c, path, false, statusOK, statusNotFound)
}

// Achievements returns the details of several achievements at once. A 206
// from the API means only some of the requested IDs resolved; the returned
// slice then holds the subset that did.
func (c *Client) Achievements(ctx context.Context, ids []int) ([]Achievement, error) {
	path := withParam(epAchievements, numbersToParam("ids", ids))
	return fetch[[]Achievement](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// DailyAchievements returns the current daily achievement rotation.
func (c *Client) DailyAchievements(ctx context.Context) (*DailyAchievements, error) {
	return fetch[*DailyAchievements](ctx, c, epAchievementsDaily, false, statusOK, statusNotFound)
}

// DailyAchievementsTomorrow returns tomorrow's daily achievement rotation.
func (c *Client) DailyAchievementsTomorrow(ctx context.Context) (*DailyAchievements, error) {
	return fetch[*DailyAchievements](ctx, c, epAchievementsTomorrow, false, statusOK, statusNotFound)
}

// AchievementGroupIDs returns the GUIDs of all achievement groups.
func (c *Client) AchievementGroupIDs(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epAchievementGroups, false, statusOK, statusNotFound)
}

// AchievementGroup returns the details of a single achievement group.
func (c *Client) AchievementGroup(ctx context.Context, id string) (*AchievementGroup, error) {
	path := withParam(epAchievementGroups, stringToParam("id", id))
	return fetch[*AchievementGroup](ctx, c, path, false, statusOK, statusNotFound)
}

// AchievementGroups returns the details of several achievement groups.
func (c *Client) AchievementGroups(ctx context.Context, ids []string) ([]AchievementGroup, error) {
	path := withParam(epAchievementGroups, stringsToParam("ids", ids))
	return fetch[[]AchievementGroup](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// AchievementCategoryIDs returns the IDs of all achievement categories.
func (c *Client) AchievementCategoryIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epAchievementCategories, false, statusOK, statusNotFound)
}

// AchievementCategory returns the details of a single achievement category.
func (c *Client) AchievementCategory(ctx context.Context, id int) (*AchievementCategory, error) {
	path := withParam(epAchievementCategories, numberToParam("id", id))
	return fetch[*AchievementCategory](ctx, c, path, false, statusOK, statusNotFound)
}

// AchievementCategories returns the details of several achievement
// categories.
func (c *Client) AchievementCategories(ctx context.Context, ids []int) ([]AchievementCategory, error) {
	path := withParam(epAchievementCategories, numbersToParam("ids", ids))
	return fetch[[]AchievementCategory](ctx, c, path, false, statusOKPartial, statusNotFound)
}
