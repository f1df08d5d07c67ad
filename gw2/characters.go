package gw2

import (
	"context"
	"time"
)

// Character is the full record of a single character, combining what the
// per-aspect endpoints return individually.
type Character struct {
	// Backstory answer IDs from character creation
	Backstory  []string `json:"backstory"`
	Name       string   `json:"name"`
	Race       string   `json:"race"`
	Gender     string   `json:"gender"`
	Profession string   `json:"profession"`
	Level      int      `json:"level"`
	// Guild ID of the currently represented guild, if any
	Guild string `json:"guild"`
	// Seconds this character has been played
	Age     int       `json:"age"`
	Created time.Time `json:"created"`
	Deaths  int       `json:"deaths"`
	// Currently selected title ID
	Title int `json:"title"`
	// Unlocked crafting disciplines
	Crafting []CraftingDiscipline `json:"crafting"`
	// Equipment currently on the character
	Equipment    []Equipment           `json:"equipment"`
	EquipmentPvP CharacterPvPEquipment `json:"equipment_pvp"`
	Bags         []Bag                 `json:"bags"`
	// Recipe IDs unlocked by the character
	Recipes []int `json:"recipes"`
	// Utility skills equipped in PvE, PvP and WvW
	Skills CharacterSkillSets `json:"skills"`
	// Specializations and traits equipped in PvE, PvP and WvW
	Specializations CharacterSpecializationSet `json:"specializations"`
	Training        []CharacterSkillTree       `json:"training"`
	WvWAbilities    []CharacterWvWAbility      `json:"wvw_abilities"`
}

// Bag is a bag equipped on a character.
type Bag struct {
	// Item ID of the bag
	ID int `json:"id"`
	// Number of slots in the bag
	Size int `json:"size"`
	// One entry per slot. Empty slots decode as nil.
	Inventory []*BagSlot `json:"inventory"`
}

// BagSlot is one occupied slot inside a bag.
type BagSlot struct {
	ID    int `json:"id"`
	Count int `json:"count"`
	// Infusion item IDs, if any
	Infusions []int `json:"infusions"`
	// Upgrade component item IDs, if any
	Upgrades []int `json:"upgrades"`
	Skin     int   `json:"skin"`
	// Stats chosen if the item offers a stat/prefix option
	Stats   *EquipmentStats `json:"stats"`
	Binding string          `json:"binding"`
	// If character bound, the owning character's name
	BoundTo string `json:"bound_to"`
}

// CharacterBackstory holds the backstory answer IDs from character creation.
type CharacterBackstory struct {
	Backstory []string `json:"backstory"`
}

// CharacterCore is the basic identity of a character.
type CharacterCore struct {
	Name       string    `json:"name"`
	Race       string    `json:"race"`
	Gender     string    `json:"gender"`
	Profession string    `json:"profession"`
	Level      int       `json:"level"`
	Guild      string    `json:"guild"`
	Age        int       `json:"age"`
	Created    time.Time `json:"created"`
	Deaths     int       `json:"deaths"`
	Title      int       `json:"title"`
}

// CharacterCrafting lists the crafting disciplines a character unlocked.
type CharacterCrafting struct {
	Crafting []CraftingDiscipline `json:"crafting"`
}

// CharacterEquipment lists the equipment currently on a character.
type CharacterEquipment struct {
	Equipment []Equipment `json:"equipment"`
}

// CharacterInventory lists the bags in a character's inventory.
type CharacterInventory struct {
	Bags []Bag `json:"bags"`
}

// CharacterPvPEquipment is a character's PvP equipment setup.
type CharacterPvPEquipment struct {
	// Equipped PvP amulet ID
	Amulet int `json:"amulet"`
	// Equipped PvP rune ID
	Rune int `json:"rune"`
	// Equipped PvP sigil IDs. Empty sigil slots decode as nil.
	Sigils []*int `json:"sigils"`
}

// CharacterRecipes lists the recipe IDs a character unlocked.
type CharacterRecipes struct {
	Recipes []int `json:"recipes"`
}

// CharacterSkills holds the skills slotted per game mode.
type CharacterSkills struct {
	Skills CharacterSkillSets `json:"skills"`
}

// CharacterSkillSets groups the slotted skills by game mode.
type CharacterSkillSets struct {
	PvE CharacterSkillSet `json:"pve"`
	PvP CharacterSkillSet `json:"pvp"`
	WvW CharacterSkillSet `json:"wvw"`
}

// CharacterSkillSet is the skills slotted for one game mode.
type CharacterSkillSet struct {
	// Heal skill ID
	Heal int `json:"heal"`
	// Equipped utility skill IDs
	Utilities []int `json:"utilities"`
	// Elite skill ID
	Elite int `json:"elite"`
}

// CharacterSpecializations holds the specializations equipped per game mode.
type CharacterSpecializations struct {
	Specializations CharacterSpecializationSet `json:"specializations"`
}

// CharacterSpecializationSet groups equipped specializations by game mode.
type CharacterSpecializationSet struct {
	PvE []CharacterSpecialization `json:"pve"`
	PvP []CharacterSpecialization `json:"pvp"`
	WvW []CharacterSpecialization `json:"wvw"`
}

// CharacterSpecialization is one equipped specialization and its selected
// traits.
type CharacterSpecialization struct {
	ID int `json:"id"`
	// Selected trait IDs
	Traits []int `json:"traits"`
}

// CharacterTraining lists the skill trees a character has trained.
type CharacterTraining struct {
	Training []CharacterSkillTree `json:"training"`
}

// CharacterSkillTree is the training progress in one skill tree.
type CharacterSkillTree struct {
	ID int `json:"id"`
	// Hero points spent in this tree
	Spent int `json:"spent"`
	// Whether the tree is fully trained
	Done bool `json:"done"`
}

// CharacterWvWAbility is the rank a character holds in one WvW ability.
type CharacterWvWAbility struct {
	ID   int `json:"id"`
	Rank int `json:"rank"`
}

// CraftingDiscipline is one crafting discipline unlocked on a character.
type CraftingDiscipline struct {
	Discipline string `json:"discipline"`
	// Current crafting level for the discipline
	Rating int `json:"rating"`
	// Whether the discipline is currently active on the character
	Active bool `json:"active"`
}

// Equipment is one piece of equipment on a character.
type Equipment struct {
	ID int `json:"id"`
	// Equipment slot the item is slotted in
	Slot string `json:"slot"`
	// Infusion item IDs on the piece
	Infusions []int `json:"infusions"`
	// Upgrade component item IDs on the piece
	Upgrades []int `json:"upgrades"`
	Skin     int   `json:"skin"`
	// Stats chosen if the item offers a stat/prefix option
	Stats   *EquipmentStats `json:"stats"`
	Binding string          `json:"binding"`
	// Charges remaining on the item
	Charges int    `json:"charges"`
	BoundTo string `json:"bound_to"`
	// Selected dye IDs per channel. Undyed channels decode as nil.
	Dyes []*int `json:"dyes"`
}

// EquipmentStats is the chosen stats of an equipped item.
type EquipmentStats struct {
	// Itemstat ID
	ID         int                  `json:"id"`
	Attributes *EquipmentAttributes `json:"attributes"`
}

// EquipmentAttributes is the stat summary of an item. The API uses
// CamelCase keys here, unlike everywhere else.
type EquipmentAttributes struct {
	Power             int `json:"Power"`
	Precision         int `json:"Precision"`
	Toughness         int `json:"Toughness"`
	Vitality          int `json:"Vitality"`
	ConditionDamage   int `json:"ConditionDamage"`
	ConditionDuration int `json:"ConditionDuration"`
	CriticalDamage    int `json:"CritDamage"`
	Healing           int `json:"Healing"`
	BoonDuration      int `json:"BoonDuration"`
}

// SABProgress is a character's progress in Super Adventure Box.
type SABProgress struct {
	// Worlds cleared, and in which difficulty
	Zones []SABZone `json:"zones"`
	// Upgrades unlocked on the character
	Unlocks []SABUnlock `json:"unlocks"`
	// Songs unlocked on the character
	Songs []SABSong `json:"songs"`
}

// SABSong is a song unlocked in Super Adventure Box.
type SABSong struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SABUnlock is an upgrade unlocked in Super Adventure Box.
type SABUnlock struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SABZone is one cleared Super Adventure Box zone.
type SABZone struct {
	ID int `json:"id"`
	// Difficulty mode cleared
	Mode  string `json:"mode"`
	World int    `json:"world"`
	Zone  int    `json:"zone"`
}

// characterPath renders a per-character endpoint path. The character name
// is percent-encoded; names regularly contain spaces.
func characterPath(name, aspect string) string {
	p := epCharacters + "/" + pathSegment(name)
	if aspect != "" {
		p += "/" + aspect
	}
	return p
}

// CharacterNames returns the names of all characters on the account.
func (c *Client) CharacterNames(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epCharacters, true, statusOK, statusForbidden)
}

// Character returns the full record of the named character.
func (c *Client) Character(ctx context.Context, name string) (*Character, error) {
	return fetch[*Character](ctx, c, characterPath(name, ""), true, statusOK, statusAuthFailure)
}

// CharacterBackstory returns the named character's backstory answers.
func (c *Client) CharacterBackstory(ctx context.Context, name string) (*CharacterBackstory, error) {
	return fetch[*CharacterBackstory](ctx, c, characterPath(name, "backstory"), true, statusOK, statusAuthBadInput)
}

// CharacterCore returns the named character's basic identity.
func (c *Client) CharacterCore(ctx context.Context, name string) (*CharacterCore, error) {
	return fetch[*CharacterCore](ctx, c, characterPath(name, "core"), true, statusOK, statusAuthBadInput)
}

// CharacterCrafting returns the named character's crafting disciplines.
func (c *Client) CharacterCrafting(ctx context.Context, name string) (*CharacterCrafting, error) {
	return fetch[*CharacterCrafting](ctx, c, characterPath(name, "crafting"), true, statusOK, statusAuthBadInput)
}

// CharacterEquipment returns the named character's equipped items.
func (c *Client) CharacterEquipment(ctx context.Context, name string) (*CharacterEquipment, error) {
	return fetch[*CharacterEquipment](ctx, c, characterPath(name, "equipment"), true, statusOK, statusAuthBadInput)
}

// CharacterHeroPoints returns the hero point IDs the named character has
// obtained.
func (c *Client) CharacterHeroPoints(ctx context.Context, name string) ([]string, error) {
	return fetch[[]string](ctx, c, characterPath(name, "heropoints"), true, statusOK, statusAuthBadInput)
}

// CharacterInventory returns the named character's bags.
func (c *Client) CharacterInventory(ctx context.Context, name string) (*CharacterInventory, error) {
	return fetch[*CharacterInventory](ctx, c, characterPath(name, "inventory"), true, statusOK, statusAuthBadInput)
}

// CharacterRecipes returns the recipe IDs the named character unlocked.
func (c *Client) CharacterRecipes(ctx context.Context, name string) (*CharacterRecipes, error) {
	return fetch[*CharacterRecipes](ctx, c, characterPath(name, "recipes"), true, statusOK, statusAuthBadInput)
}

// CharacterSAB returns the named character's Super Adventure Box progress.
func (c *Client) CharacterSAB(ctx context.Context, name string) (*SABProgress, error) {
	return fetch[*SABProgress](ctx, c, characterPath(name, "sab"), true, statusOK, statusAuthFailure)
}

// CharacterSkills returns the named character's slotted skills.
func (c *Client) CharacterSkills(ctx context.Context, name string) (*CharacterSkills, error) {
	return fetch[*CharacterSkills](ctx, c, characterPath(name, "skills"), true, statusOK, statusAuthBadInput)
}

// CharacterSpecializations returns the named character's equipped
// specializations.
func (c *Client) CharacterSpecializations(ctx context.Context, name string) (*CharacterSpecializations, error) {
	return fetch[*CharacterSpecializations](ctx, c, characterPath(name, "specializations"), true, statusOK, statusAuthBadInput)
}

// CharacterTraining returns the named character's skill tree training.
func (c *Client) CharacterTraining(ctx context.Context, name string) (*CharacterTraining, error) {
	return fetch[*CharacterTraining](ctx, c, characterPath(name, "training"), true, statusOK, statusAuthBadInput)
}
