package models

// ActivityCategory classifies an activity in the catalog
type ActivityCategory string

const (
	// ActivityCategoryRaid indicates a six-player raid
	ActivityCategoryRaid ActivityCategory = "raid"

	// ActivityCategoryDungeon indicates a three-player dungeon
	ActivityCategoryDungeon ActivityCategory = "dungeon"

	// ActivityCategoryCrucible indicates a PvP activity
	ActivityCategoryCrucible ActivityCategory = "crucible"

	// ActivityCategoryGambit indicates a Gambit activity
	ActivityCategoryGambit ActivityCategory = "gambit"

	// ActivityCategorySeasonal indicates a seasonal activity
	ActivityCategorySeasonal ActivityCategory = "seasonal"

	// ActivityCategoryOther covers anything that has no category of its own
	ActivityCategoryOther ActivityCategory = "other"
)

// Reaction is an emoji used to select or toggle something on a message
type Reaction struct {
	// Key is the Discord shortcode, e.g. ":regional_indicator_d:"
	Key string

	// Emoji is the rendered glyph, e.g. "🇩"
	Emoji string
}

// ActivityDefinition is an immutable catalog entry describing a schedulable activity
type ActivityDefinition struct {
	// ID is a short identifier for the activity, e.g. "dsc"
	ID string

	// Name is the display name used as the event title
	Name string

	// Category classifies the activity
	Category ActivityCategory

	// Reaction is the emoji used to choose this activity in the creation wizard
	Reaction Reaction

	// DefaultMaxPlayers is the fireteam size for this activity, 0 if unbounded
	DefaultMaxPlayers int
}
