package gw2

// The endpoint catalog. Paths are fixed at build time; endpoints taking
// parameters get them appended as a query string or substituted as an
// escaped path segment by their wrapper.
const (
	epAccount             = "/v2/account"
	epAccountAchievements = "/v2/account/achievements"
	epAccountBank         = "/v2/account/bank"
	epAccountDungeons     = "/v2/account/dungeons"
	epAccountDyes         = "/v2/account/dyes"
	epAccountFinishers    = "/v2/account/finishers"
	epAccountHomeCats     = "/v2/account/home/cats"
	epAccountHomeNodes    = "/v2/account/home/nodes"
	epAccountInventory    = "/v2/account/inventory"
	epAccountMasteries    = "/v2/account/masteries"
	epAccountMaterials    = "/v2/account/materials"
	epAccountMinis        = "/v2/account/minis"
	epAccountOutfits      = "/v2/account/outfits"
	epAccountRaids        = "/v2/account/raids"
	epAccountRecipes      = "/v2/account/recipes"
	epAccountSkins        = "/v2/account/skins"
	epAccountTitles       = "/v2/account/titles"
	epAccountWallet       = "/v2/account/wallet"
	epTokenInfo           = "/v2/tokeninfo"

	epAchievements          = "/v2/achievements"
	epAchievementsDaily     = "/v2/achievements/daily"
	epAchievementsTomorrow  = "/v2/achievements/daily/tomorrow"
	epAchievementGroups     = "/v2/achievements/groups"
	epAchievementCategories = "/v2/achievements/categories"

	epCharacters = "/v2/characters"

	epCommerceExchange      = "/v2/commerce/exchange"
	epCommerceExchangeCoins = "/v2/commerce/exchange/coins"
	epCommerceExchangeGems  = "/v2/commerce/exchange/gems"
	epCommerceListings      = "/v2/commerce/listings"
	epCommercePrices        = "/v2/commerce/prices"
	epCommerceCurrentBuy    = "/v2/commerce/transactions/current/buy"
	epCommerceCurrentSell   = "/v2/commerce/transactions/current/sell"
	epCommerceHistoryBuy    = "/v2/commerce/transactions/history/buy"
	epCommerceHistorySell   = "/v2/commerce/transactions/history/sell"

	epMasteries       = "/v2/masteries"
	epOutfits         = "/v2/outfits"
	epPets            = "/v2/pets"
	epProfessions     = "/v2/professions"
	epRaces           = "/v2/races"
	epSpecializations = "/v2/specializations"
	epSkills          = "/v2/skills"
	epTraits          = "/v2/traits"
	epLegends         = "/v2/legends"
)

// withParam appends a rendered query fragment to an endpoint path.
func withParam(endpoint, param string) string {
	return endpoint + "?" + param
}
