package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/uxbn/hawkthorne/internal/catalog"
	"github.com/uxbn/hawkthorne/internal/models"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
)

// handleReactionAdd turns a standing reaction on a summary message
// into a registration change. The gesture glyph is removed afterwards
// so the standing reactions stay at a count of one; what the message
// shows comes from the re-rendered embed, not the reaction counts.
func (b *Bot) handleReactionAdd(ctx context.Context, reaction *discordgo.MessageReactionAdd) error {
	message, err := b.channel.ChannelMessage(reaction.ChannelID, reaction.MessageID)
	if err != nil {
		return fmt.Errorf("failed to fetch reacted message: %w", err)
	}

	if message.Author == nil || message.Author.ID != b.botUserID {
		return nil
	}

	emoji := reaction.Emoji.Name

	if !catalog.IsStandingReaction(emoji) {
		// Stray glyphs on our messages are just noise, clear them.
		b.notePendingRemoval(reaction.MessageID, reaction.UserID, emoji)
		return b.channel.MessageReactionRemove(reaction.ChannelID, reaction.MessageID, emoji, reaction.UserID)
	}

	eventID, ok := summaryEventID(message)
	if !ok {
		return nil
	}

	if err := b.applyStanding(ctx, eventID, reaction, emoji); err != nil {
		if errors.Is(err, eventService.ErrEventNotFound) {
			log.Printf("Reaction on message %s references missing event %d", reaction.MessageID, eventID)
			return nil
		}
		return err
	}

	if err := b.refreshSummary(ctx, reaction.ChannelID, reaction.MessageID, eventID); err != nil {
		return err
	}

	b.notePendingRemoval(reaction.MessageID, reaction.UserID, emoji)
	return b.channel.MessageReactionRemove(reaction.ChannelID, reaction.MessageID, emoji, reaction.UserID)
}

// handleReactionRemove treats a user pulling their join or tentative
// glyph off a summary as leaving the event. Removals the bot performed
// itself never reach this point.
func (b *Bot) handleReactionRemove(ctx context.Context, reaction *discordgo.MessageReactionRemove) error {
	emoji := reaction.Emoji.Name
	if emoji != catalog.ReactionJoin.Emoji && emoji != catalog.ReactionTentative.Emoji {
		return nil
	}

	message, err := b.channel.ChannelMessage(reaction.ChannelID, reaction.MessageID)
	if err != nil {
		return fmt.Errorf("failed to fetch reacted message: %w", err)
	}

	if message.Author == nil || message.Author.ID != b.botUserID {
		return nil
	}

	eventID, ok := summaryEventID(message)
	if !ok {
		return nil
	}

	// Remove events carry no member payload, so the name is fetched.
	displayName, err := b.reactorDisplayName(nil, reaction.UserID)
	if err != nil {
		return err
	}

	_, err = b.eventService.RemoveRegistration(ctx, &eventService.RemoveRegistrationInput{
		EventID:     eventID,
		ExternalID:  reaction.UserID,
		DisplayName: displayName,
	})
	if err != nil {
		if errors.Is(err, eventService.ErrEventNotFound) {
			return nil
		}
		return fmt.Errorf("failed to remove registration: %w", err)
	}

	return b.refreshSummary(ctx, reaction.ChannelID, reaction.MessageID, eventID)
}

func (b *Bot) applyStanding(ctx context.Context, eventID int64, reaction *discordgo.MessageReactionAdd, emoji string) error {
	displayName, err := b.reactorDisplayName(reaction.Member, reaction.UserID)
	if err != nil {
		return err
	}

	switch emoji {
	case catalog.ReactionJoin.Emoji:
		_, err = b.eventService.SetRegistration(ctx, &eventService.SetRegistrationInput{
			EventID:     eventID,
			ExternalID:  reaction.UserID,
			DisplayName: displayName,
			Type:        models.RegistrationTypeConfirmed,
		})
	case catalog.ReactionTentative.Emoji:
		_, err = b.eventService.SetRegistration(ctx, &eventService.SetRegistrationInput{
			EventID:     eventID,
			ExternalID:  reaction.UserID,
			DisplayName: displayName,
			Type:        models.RegistrationTypeTentative,
		})
	case catalog.ReactionLeave.Emoji:
		_, err = b.eventService.RemoveRegistration(ctx, &eventService.RemoveRegistrationInput{
			EventID:     eventID,
			ExternalID:  reaction.UserID,
			DisplayName: displayName,
		})
	}
	return err
}

// summaryEventID reads the Join ID out of a message's first embed.
func summaryEventID(message *discordgo.Message) (int64, bool) {
	if len(message.Embeds) == 0 {
		return 0, false
	}
	return eventIDFromEmbed(message.Embeds[0])
}

// reactorDisplayName resolves the name shown in attendee lists. Guild
// reactions carry the member; elsewhere the user is fetched.
func (b *Bot) reactorDisplayName(member *discordgo.Member, userID string) (string, error) {
	if member != nil {
		if member.Nick != "" {
			return member.Nick, nil
		}
		if member.User != nil && member.User.Username != "" {
			return member.User.Username, nil
		}
	}

	user, err := b.channel.User(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch reacting user %s: %w", userID, err)
	}
	return user.Username, nil
}
