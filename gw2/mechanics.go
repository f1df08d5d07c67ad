package gw2

import "context"

// Legend is a revenant legend.
type Legend struct {
	ID string `json:"id"`
	// Profession skill ID
	Swap int `json:"swap"`
	// Heal skill ID
	Heal int `json:"heal"`
	// Elite skill ID
	Elite int `json:"elite"`
	// Utility skill IDs
	Utilities []int `json:"utilities"`
}

// Mastery is one mastery track.
type Mastery struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Requirement to unlock the track, as written in-game
	Requirement string `json:"requirement"`
	// Sort position of the track, lowest first
	Order int `json:"order"`
	// URL to the track's background image
	Background string `json:"background"`
	// In-game region the track belongs to
	Region string         `json:"region"`
	Levels []MasteryLevel `json:"levels"`
}

// MasteryLevel is one level of a mastery track.
type MasteryLevel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	Icon        string `json:"icon"`
	// Mastery points required to unlock the level
	PointCost int `json:"point_cost"`
	// Experience needed to train the level, non-cumulative between levels
	ExpCost int `json:"exp_cost"`
}

// Outfit is a wardrobe outfit.
type Outfit struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	// Item IDs that unlock this outfit
	UnlockItems []int `json:"unlock_items"`
}

// Pet is a ranger pet.
type Pet struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Skills      []PetSkill `json:"skills"`
}

// PetSkill is one skill of a ranger pet.
type PetSkill struct {
	ID int `json:"id"`
}

// Profession is one playable profession.
type Profession struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	// URL to the large profession icon
	IconBig string `json:"icon_big"`
	// Specialization IDs available to the profession
	Specializations []int                `json:"specializations"`
	Training        []ProfessionTraining `json:"training"`
	// Profession flags (NoRacialSkills, NoWeaponSwap)
	Flags  []string          `json:"flags"`
	Skills []ProfessionSkill `json:"skills"`
	// Weapons usable by the profession, keyed by weapon type
	Weapons map[string]ProfessionWeapon `json:"weapons"`
}

// ProfessionSkill is a class skill available to a profession.
type ProfessionSkill struct {
	ID int `json:"id"`
	// Slot the skill can be equipped in
	Slot string `json:"slot"`
	Type string `json:"type"`
}

// ProfessionTraining is one training track of a profession.
type ProfessionTraining struct {
	// ID of the object named by Category
	ID int `json:"id"`
	// Category of the track (Skills, Specializations, EliteSpecializations)
	Category string `json:"category"`
	// Name of the skill or specialization
	Name  string                   `json:"name"`
	Track []ProfessionTrainingItem `json:"track"`
}

// ProfessionTrainingItem is one step in a training track, either a skill or
// a trait.
type ProfessionTrainingItem struct {
	// Hero point cost to train this step
	Cost int    `json:"cost"`
	Type string `json:"type"`
	// Skill ID, when Type is Skill
	SkillID int `json:"skill_id"`
	// Trait ID, when Type is Trait
	TraitID int `json:"trait_id"`
}

// ProfessionWeapon describes one weapon usable by a profession.
type ProfessionWeapon struct {
	// Specialization ID required to wield the weapon, if any
	Specialization int                     `json:"specialization"`
	Skills         []ProfessionWeaponSkill `json:"skills"`
	// Hands the weapon can be equipped in
	Flags []string `json:"flags"`
}

// ProfessionWeaponSkill is one weapon skill of a profession.
type ProfessionWeaponSkill struct {
	ID int `json:"id"`
	// Skill bar slot the skill occupies
	Slot string `json:"slot"`
	// Offhand weapon type the skill requires, if any
	Offhand string `json:"offhand"`
	// Elementalist attunement the skill requires, if any
	Attunement string `json:"attunement"`
	// Class the skill is stolen from, for thief
	Source string `json:"source"`
}

// Race is one playable race.
type Race struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Racial skill IDs
	Skills []int `json:"skills"`
}

// Skill is one player-usable skill.
type Skill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ChatLink    string `json:"chat_link"`
	// Skill type (Bundle, Elite, Heal, Profession, Utility, Weapon)
	Type string `json:"type"`
	// Weapon the skill is tied to, or "None"
	WeaponType string `json:"weapon_type"`
	// Professions that can use the skill
	Professions []string `json:"professions"`
	// Slot the skill fits into
	Slot  string      `json:"slot"`
	Facts []SkillFact `json:"facts"`
	// Facts that replace or extend Facts depending on trait choices
	TraitedFacts []SkillTraitedFact `json:"traited_facts"`
}

// SkillFact describes one effect of a skill. Type discriminates which of
// the remaining fields are meaningful.
type SkillFact struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Type string `json:"type"`
	// Adjustment amount, count, range or recharge, depending on Type
	Value int `json:"value"`
	// Attribute adjusted; Ferocity is encoded as "CritDamage"
	Target string `json:"target"`
	// Boon, condition or effect the fact refers to
	Status      string `json:"status"`
	Description string `json:"description"`
	// Number of stacks applied
	ApplyCount int `json:"apply_count"`
	// Effect duration or time value, in seconds
	Duration int `json:"duration"`
	// Combo field type
	FieldType string `json:"field_type"`
	// Combo finisher type
	FinisherType string `json:"finisher_type"`
	// Finisher trigger chance or percentage value
	Percent int `json:"percent"`
	// Times the damage hits or the heal applies
	HitCount int `json:"hit_count"`
	// Damage multiplier of the skill
	DmgMultiplier float64 `json:"dmg_multiplier"`
	// Distance or radius value
	Distance int `json:"distance"`
	// Icon shown before the fact
	Prefix *SkillFactPrefix `json:"prefix"`
}

// SkillFactPrefix is the icon shown before a prefixed buff fact.
type SkillFactPrefix struct {
	Text        string `json:"text"`
	Icon        string `json:"icon"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// SkillTraitedFact is a skill fact that only applies with a specific trait
// selected.
type SkillTraitedFact struct {
	SkillFact
	// Trait that must be selected for the fact to take effect
	RequiresTrait int `json:"requires_trait"`
	// Index in Facts this fact overrides; nil means the fact is appended
	Overrides *int `json:"overrides"`
}

// Specialization is one trait line of a profession.
type Specialization struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Profession the specialization belongs to
	Profession string `json:"profession"`
	// Whether this is an elite specialization
	Elite      bool   `json:"elite"`
	Icon       string `json:"icon"`
	Background string `json:"background"`
	// Minor trait IDs
	MinorTraits []int `json:"minor_traits"`
	// Major trait IDs
	MajorTraits []int `json:"major_traits"`
}

// Trait is one selectable trait of a specialization.
type Trait struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	// Specialization the trait belongs to
	Specialization int `json:"specialization"`
	// Tier of the trait (Adept, Master, Grandmaster) on a 0-3 scale
	Tier int `json:"tier"`
	// Either Major or Minor
	Slot  string      `json:"slot"`
	Facts []TraitFact `json:"facts"`
	// Facts that replace or extend Facts depending on trait choices
	TraitedFacts []TraitTraitedFact `json:"traited_facts"`
	// Skills that may be triggered by the trait
	Skills []Skill `json:"skills"`
}

// TraitFact describes one effect of a trait. Type discriminates which of
// the remaining fields are meaningful.
type TraitFact struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Type string `json:"type"`
	// Adjustment amount, count, range or recharge, depending on Type
	Value int `json:"value"`
	// Attribute adjusted; Ferocity is encoded as "CritDamage"
	Target string `json:"target"`
	// Boon, condition or effect the fact refers to
	Status      string `json:"status"`
	Description string `json:"description"`
	// Number of stacks applied
	ApplyCount int `json:"apply_count"`
	// Effect duration or time value, in seconds
	Duration int `json:"duration"`
	// Attribute used to calculate the gain, for buff conversions
	Source string `json:"source"`
	// Combo field type
	FieldType string `json:"field_type"`
	// Combo finisher type
	FinisherType string `json:"finisher_type"`
	// Finisher trigger chance or percentage value
	Percent int `json:"percent"`
	// Times the damage hits or the heal applies
	HitCount int `json:"hit_count"`
	// Distance or radius value
	Distance int `json:"distance"`
	// Icon shown before the fact
	Prefix *SkillFactPrefix `json:"prefix"`
}

// TraitTraitedFact is a trait fact that only applies with a specific trait
// selected.
type TraitTraitedFact struct {
	TraitFact
	// Trait that must be selected for the fact to take effect
	RequiresTrait int `json:"requires_trait"`
	// Index in Facts this fact overrides; nil means the fact is appended
	Overrides *int `json:"overrides"`
}

// MasteryIDs returns the IDs of all mastery tracks.
func (c *Client) MasteryIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epMasteries, false, statusOK, statusNotFound)
}

// Mastery returns the details of a single mastery track.
func (c *Client) Mastery(ctx context.Context, id int) (*Mastery, error) {
	path := withParam(epMasteries, numberToParam("id", id))
	return fetch[*Mastery](ctx, c, path, false, statusOK, statusNotFound)
}

// Masteries returns the details of several mastery tracks at once.
func (c *Client) Masteries(ctx context.Context, ids []int) ([]Mastery, error) {
	path := withParam(epMasteries, numbersToParam("ids", ids))
	return fetch[[]Mastery](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// OutfitIDs returns the IDs of all outfits.
func (c *Client) OutfitIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epOutfits, false, statusOK, statusNotFound)
}

// Outfit returns the details of a single outfit.
func (c *Client) Outfit(ctx context.Context, id int) (*Outfit, error) {
	path := withParam(epOutfits, numberToParam("id", id))
	return fetch[*Outfit](ctx, c, path, false, statusOK, statusNotFound)
}

// Outfits returns the details of several outfits at once.
func (c *Client) Outfits(ctx context.Context, ids []int) ([]Outfit, error) {
	path := withParam(epOutfits, numbersToParam("ids", ids))
	return fetch[[]Outfit](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// PetIDs returns the IDs of all ranger pets.
func (c *Client) PetIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epPets, false, statusOK, statusNotFound)
}

// Pet returns the details of a single ranger pet.
func (c *Client) Pet(ctx context.Context, id int) (*Pet, error) {
	path := withParam(epPets, numberToParam("id", id))
	return fetch[*Pet](ctx, c, path, false, statusOK, statusNotFound)
}

// Pets returns the details of several ranger pets at once.
func (c *Client) Pets(ctx context.Context, ids []int) ([]Pet, error) {
	path := withParam(epPets, numbersToParam("ids", ids))
	return fetch[[]Pet](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// ProfessionIDs returns the IDs of all professions.
func (c *Client) ProfessionIDs(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epProfessions, false, statusOK, statusNotFound)
}

// Profession returns the details of a single profession.
func (c *Client) Profession(ctx context.Context, id string) (*Profession, error) {
	path := withParam(epProfessions, stringToParam("id", id))
	return fetch[*Profession](ctx, c, path, false, statusOK, statusNotFound)
}

// Professions returns the details of several professions at once.
func (c *Client) Professions(ctx context.Context, ids []string) ([]Profession, error) {
	path := withParam(epProfessions, stringsToParam("ids", ids))
	return fetch[[]Profession](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// RaceIDs returns the IDs of all playable races.
func (c *Client) RaceIDs(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epRaces, false, statusOK, statusNotFound)
}

// Race returns the details of a single playable race.
func (c *Client) Race(ctx context.Context, id string) (*Race, error) {
	path := withParam(epRaces, stringToParam("id", id))
	return fetch[*Race](ctx, c, path, false, statusOK, statusNotFound)
}

// Races returns the details of several playable races at once.
func (c *Client) Races(ctx context.Context, ids []string) ([]Race, error) {
	path := withParam(epRaces, stringsToParam("ids", ids))
	return fetch[[]Race](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// SpecializationIDs returns the IDs of all specializations.
func (c *Client) SpecializationIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epSpecializations, false, statusOK, statusNotFound)
}

// Specialization returns the details of a single specialization.
func (c *Client) Specialization(ctx context.Context, id int) (*Specialization, error) {
	path := withParam(epSpecializations, numberToParam("id", id))
	return fetch[*Specialization](ctx, c, path, false, statusOK, statusNotFound)
}

// Specializations returns the details of several specializations at once.
func (c *Client) Specializations(ctx context.Context, ids []int) ([]Specialization, error) {
	path := withParam(epSpecializations, numbersToParam("ids", ids))
	return fetch[[]Specialization](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// SkillIDs returns the IDs of all skills.
func (c *Client) SkillIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epSkills, false, statusOK, statusNotFound)
}

// Skill returns the details of a single skill.
func (c *Client) Skill(ctx context.Context, id int) (*Skill, error) {
	path := withParam(epSkills, numberToParam("id", id))
	return fetch[*Skill](ctx, c, path, false, statusOK, statusNotFound)
}

// Skills returns the details of several skills at once.
func (c *Client) Skills(ctx context.Context, ids []int) ([]Skill, error) {
	path := withParam(epSkills, numbersToParam("ids", ids))
	return fetch[[]Skill](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// TraitIDs returns the IDs of all traits.
func (c *Client) TraitIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epTraits, false, statusOK, statusNotFound)
}

// Trait returns the details of a single trait.
func (c *Client) Trait(ctx context.Context, id int) (*Trait, error) {
	path := withParam(epTraits, numberToParam("id", id))
	return fetch[*Trait](ctx, c, path, false, statusOK, statusNotFound)
}

// Traits returns the details of several traits at once.
func (c *Client) Traits(ctx context.Context, ids []int) ([]Trait, error) {
	path := withParam(epTraits, numbersToParam("ids", ids))
	return fetch[[]Trait](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// LegendIDs returns the IDs of all revenant legends.
func (c *Client) LegendIDs(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epLegends, false, statusOK, statusNotFound)
}

// Legend returns the details of a single revenant legend.
func (c *Client) Legend(ctx context.Context, id string) (*Legend, error) {
	path := withParam(epLegends, stringToParam("id", id))
	return fetch[*Legend](ctx, c, path, false, statusOK, statusNotFound)
}

// Legends returns the details of several revenant legends at once.
func (c *Client) Legends(ctx context.Context, ids []string) ([]Legend, error) {
	path := withParam(epLegends, stringsToParam("ids", ids))
	return fetch[[]Legend](ctx, c, path, false, statusOKPartial, statusNotFound)
}
