package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/uxbn/hawkthorne/internal/catalog"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
	"github.com/uxbn/hawkthorne/internal/timezone"
)

// handleCreateCommand starts a create wizard for the author. The
// wizard runs on its own goroutine so a slow answer never blocks the
// gateway handler.
func (b *Bot) handleCreateCommand(_ context.Context, message *discordgo.MessageCreate, _ string) error {
	sess, err := b.sessions.Begin(message.Author, message.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to start create flow for %s: %w", message.Author.ID, err)
	}

	go func() {
		defer b.sessions.End(sess)

		if err := b.runCreateWizard(context.Background(), sess); err != nil {
			log.Printf("Create flow for %s ended: %v", sess.user.ID, err)
		}
	}()

	return nil
}

// runCreateWizard walks one user through the three prompts and
// persists the result. Every prompt reuses the same response message;
// a timed out or incomplete flow overwrites it with a terminal notice.
func (b *Bot) runCreateWizard(ctx context.Context, sess *session) error {
	if err := b.promptForActivity(ctx, sess); err != nil {
		return err
	}

	if err := b.promptForStartTime(ctx, sess); err != nil {
		return err
	}

	if err := b.promptForDescription(ctx, sess); err != nil {
		return err
	}

	return b.persistEvent(ctx, sess)
}

func (b *Bot) promptForActivity(ctx context.Context, sess *session) error {
	definitions := catalog.Activities()

	posted, err := b.channel.ChannelMessageSendEmbed(sess.channelID, activityPromptEmbed(definitions))
	if err != nil {
		return fmt.Errorf("failed to post activity prompt: %w", err)
	}
	sess.responseMessageID = posted.ID

	for _, definition := range definitions {
		if err := b.channel.MessageReactionAdd(sess.channelID, posted.ID, definition.Reaction.Emoji); err != nil {
			return fmt.Errorf("failed to add choice reaction %s: %w", definition.Reaction.Key, err)
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, b.promptTimeout)
	defer cancel()

	reaction, err := b.awaiter.AwaitReaction(waitCtx, func(r *discordgo.MessageReactionAdd) bool {
		return r.MessageID == sess.responseMessageID && r.UserID == sess.user.ID
	})
	if err != nil {
		b.finishWithNotice(sess, timeoutEmbed("You did not choose an activity."))
		return fmt.Errorf("awaiting activity choice: %w", err)
	}

	// An off-menu reaction leaves the activity unset; the flow fails at
	// the persistence step instead of re-prompting.
	sess.activity = catalog.FindByEmoji(reaction.Emoji.Name)

	if err := b.channel.MessageReactionsRemoveAll(sess.channelID, sess.responseMessageID); err != nil {
		log.Printf("Error clearing choice reactions: %v", err)
	}

	return nil
}

func (b *Bot) promptForStartTime(ctx context.Context, sess *session) error {
	if _, err := b.channel.ChannelMessageEditEmbed(sess.channelID, sess.responseMessageID, startTimePromptEmbed()); err != nil {
		return fmt.Errorf("failed to show start time prompt: %w", err)
	}

	reply, err := b.awaitReply(ctx, sess)
	if err != nil {
		b.finishWithNotice(sess, timeoutEmbed("You did not provide a valid start date."))
		return fmt.Errorf("awaiting start time: %w", err)
	}

	candidates, err := b.extractor.Extract(reply.Content, b.clock.Now())
	if err != nil {
		log.Printf("Error extracting start date from %q: %v", reply.Content, err)
	}

	// No recognizable date leaves the start date unset; the flow fails
	// at the persistence step.
	if len(candidates) > 0 {
		candidate := candidates[0]

		offset := 0
		if candidate.TimeZoneOffset != nil {
			offset = *candidate.TimeZoneOffset
		}

		name, ok := timezone.Name(offset)
		if !ok {
			name = "GMT"
			offset = 0
		}

		startDate := candidate.Date
		sess.startDate = &startDate
		sess.timeZoneOffset = offset
		sess.timeZoneName = name
	}

	b.deleteReply(sess.channelID, reply.ID)
	return nil
}

func (b *Bot) promptForDescription(ctx context.Context, sess *session) error {
	if _, err := b.channel.ChannelMessageEditEmbed(sess.channelID, sess.responseMessageID, descriptionPromptEmbed()); err != nil {
		return fmt.Errorf("failed to show description prompt: %w", err)
	}

	reply, err := b.awaitReply(ctx, sess)
	if err != nil {
		// The description is optional; a silent user still gets an
		// event.
		return nil
	}

	sess.description = reply.Content
	b.deleteReply(sess.channelID, reply.ID)
	return nil
}

func (b *Bot) persistEvent(ctx context.Context, sess *session) error {
	if !sess.complete() {
		b.finishWithNotice(sess, incompleteEmbed())
		return ErrIncompleteSession
	}

	created, err := b.eventService.CreateEvent(ctx, &eventService.CreateEventInput{
		Title:              sess.activity.Name,
		Description:        sess.description,
		StartDate:          *sess.startDate,
		TimeZoneName:       sess.timeZoneName,
		TimeZoneOffset:     sess.timeZoneOffset,
		MaxPlayers:         sess.activity.DefaultMaxPlayers,
		CreatorExternalID:  sess.user.ID,
		CreatorDisplayName: sess.user.Username,
	})
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	if err := b.refreshSummary(ctx, sess.channelID, sess.responseMessageID, created.Event.ID); err != nil {
		return err
	}

	return b.addStandingReactions(sess.channelID, sess.responseMessageID)
}

// awaitReply waits for the next message from the wizard's user in its
// channel, bounded by the prompt timeout.
func (b *Bot) awaitReply(ctx context.Context, sess *session) (*discordgo.MessageCreate, error) {
	waitCtx, cancel := context.WithTimeout(ctx, b.promptTimeout)
	defer cancel()

	return b.awaiter.AwaitMessage(waitCtx, func(m *discordgo.MessageCreate) bool {
		return m.ChannelID == sess.channelID && m.Author != nil && m.Author.ID == sess.user.ID
	})
}

// finishWithNotice overwrites the wizard's response message with a
// terminal notice. Failures here are logged, not returned, because the
// flow is already over.
func (b *Bot) finishWithNotice(sess *session, embed *discordgo.MessageEmbed) {
	if sess.responseMessageID == "" {
		return
	}

	if _, err := b.channel.ChannelMessageEditEmbed(sess.channelID, sess.responseMessageID, embed); err != nil {
		log.Printf("Error showing wizard notice: %v", err)
	}
}

// deleteReply removes the user's answer to keep the channel tidy.
func (b *Bot) deleteReply(channelID, messageID string) {
	if err := b.channel.ChannelMessageDelete(channelID, messageID); err != nil {
		log.Printf("Error deleting wizard reply: %v", err)
	}
}
