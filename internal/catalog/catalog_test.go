package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uxbn/hawkthorne/internal/models"
)

func TestFindByEmoji(t *testing.T) {
	definition := FindByEmoji("🇩")
	assert.NotNil(t, definition)
	assert.Equal(t, "Deep Stone Crypt", definition.Name)
	assert.Equal(t, models.ActivityCategoryRaid, definition.Category)
	assert.Equal(t, 6, definition.DefaultMaxPlayers)

	assert.Nil(t, FindByEmoji("🎲"))
	assert.Nil(t, FindByEmoji(""))
}

func TestSelectionEmojisAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, definition := range Activities() {
		previous, exists := seen[definition.Reaction.Emoji]
		assert.False(t, exists, "emoji %s used by both %s and %s",
			definition.Reaction.Emoji, previous, definition.ID)
		seen[definition.Reaction.Emoji] = definition.ID
	}
}

func TestIsStandingReaction(t *testing.T) {
	assert.True(t, IsStandingReaction(ReactionJoin.Emoji))
	assert.True(t, IsStandingReaction(ReactionLeave.Emoji))
	assert.True(t, IsStandingReaction(ReactionTentative.Emoji))

	// Activity selection emojis are not standing reactions.
	assert.False(t, IsStandingReaction("🇩"))
	assert.False(t, IsStandingReaction("🎯"))
}

func TestStandingReactionOrder(t *testing.T) {
	reactions := StandingReactions()
	assert.Len(t, reactions, 3)
	assert.Equal(t, ReactionJoin, reactions[0])
	assert.Equal(t, ReactionLeave, reactions[1])
	assert.Equal(t, ReactionTentative, reactions[2])
}
