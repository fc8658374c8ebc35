// Package catalog holds the static activity and reaction definitions. The
// catalog is loaded once at process start and never mutated.
package catalog

import (
	"github.com/uxbn/hawkthorne/internal/models"
)

// Standing reactions attached to every rendered event summary. Participants
// toggle their registration by tapping one of these.
var (
	// ReactionJoin registers the reacting user as confirmed
	ReactionJoin = models.Reaction{Key: ":heavy_plus_sign:", Emoji: "➕"}

	// ReactionLeave removes the reacting user's registration
	ReactionLeave = models.Reaction{Key: ":heavy_minus_sign:", Emoji: "➖"}

	// ReactionTentative registers the reacting user as tentative
	ReactionTentative = models.Reaction{Key: ":question:", Emoji: "❓"}
)

var activityDefinitions = []*models.ActivityDefinition{
	{
		ID:                "dsc",
		Name:              "Deep Stone Crypt",
		Category:          models.ActivityCategoryRaid,
		Reaction:          models.Reaction{Key: ":regional_indicator_d:", Emoji: "🇩"},
		DefaultMaxPlayers: 6,
	},
	{
		ID:                "gos",
		Name:              "Garden of Salvation",
		Category:          models.ActivityCategoryRaid,
		Reaction:          models.Reaction{Key: ":regional_indicator_g:", Emoji: "🇬"},
		DefaultMaxPlayers: 6,
	},
	{
		ID:                "lw",
		Name:              "Last Wish",
		Category:          models.ActivityCategoryRaid,
		Reaction:          models.Reaction{Key: ":regional_indicator_w:", Emoji: "🇼"},
		DefaultMaxPlayers: 6,
	},
	{
		ID:                "vog",
		Name:              "Vault of Glass",
		Category:          models.ActivityCategoryRaid,
		Reaction:          models.Reaction{Key: ":regional_indicator_v:", Emoji: "🇻"},
		DefaultMaxPlayers: 6,
	},
	{
		ID:                "pit",
		Name:              "Pit of Heresy",
		Category:          models.ActivityCategoryDungeon,
		Reaction:          models.Reaction{Key: ":regional_indicator_h:", Emoji: "🇭"},
		DefaultMaxPlayers: 3,
	},
	{
		ID:                "pro",
		Name:              "Prophecy",
		Category:          models.ActivityCategoryDungeon,
		Reaction:          models.Reaction{Key: ":regional_indicator_p:", Emoji: "🇵"},
		DefaultMaxPlayers: 3,
	},
	{
		ID:                "to",
		Name:              "Trials of Osiris",
		Category:          models.ActivityCategoryCrucible,
		Reaction:          models.Reaction{Key: ":regional_indicator_t:", Emoji: "🇹"},
		DefaultMaxPlayers: 3,
	},
	{
		ID:                "ib",
		Name:              "Iron Banner",
		Category:          models.ActivityCategoryCrucible,
		Reaction:          models.Reaction{Key: ":regional_indicator_i:", Emoji: "🇮"},
		DefaultMaxPlayers: 6,
	},
	{
		ID:                "gam",
		Name:              "Gambit",
		Category:          models.ActivityCategoryGambit,
		Reaction:          models.Reaction{Key: ":regional_indicator_b:", Emoji: "🇧"},
		DefaultMaxPlayers: 4,
	},
	{
		ID:                "nf",
		Name:              "Nightfall: The Ordeal",
		Category:          models.ActivityCategorySeasonal,
		Reaction:          models.Reaction{Key: ":regional_indicator_n:", Emoji: "🇳"},
		DefaultMaxPlayers: 3,
	},
}

// Activities returns every activity definition in catalog order.
func Activities() []*models.ActivityDefinition {
	return activityDefinitions
}

// FindByEmoji returns the activity whose selection reaction renders as the
// given glyph, or nil if no activity matches. The catalog is small, so a
// linear scan is fine.
func FindByEmoji(emoji string) *models.ActivityDefinition {
	for _, definition := range activityDefinitions {
		if definition.Reaction.Emoji == emoji {
			return definition
		}
	}
	return nil
}

// StandingReactions returns the three registration-toggle reactions in the
// order they are attached to a summary message.
func StandingReactions() []models.Reaction {
	return []models.Reaction{ReactionJoin, ReactionLeave, ReactionTentative}
}

// IsStandingReaction reports whether the glyph is one of the three
// registration-toggle reactions.
func IsStandingReaction(emoji string) bool {
	for _, reaction := range StandingReactions() {
		if reaction.Emoji == emoji {
			return true
		}
	}
	return false
}
