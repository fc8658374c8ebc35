package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/uxbn/hawkthorne/internal/catalog"
	"github.com/uxbn/hawkthorne/internal/common/clock"
	"github.com/uxbn/hawkthorne/internal/dateparse"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
)

const defaultCommandPrefix = "$lfg"

const defaultPromptTimeout = 60 * time.Second

type commandFunc func(ctx context.Context, message *discordgo.MessageCreate, arg string) error

// Bot wires the Discord gateway to the event service. Incoming
// messages and reactions are offered to in-flight wizards first, then
// to command dispatch or registration handling.
type Bot struct {
	session *discordgo.Session
	channel messenger

	eventService eventService.Service
	extractor    dateparse.Extractor
	clock        clock.Clock

	prefix        string
	promptTimeout time.Duration

	commands map[string]commandFunc
	awaiter  *awaiter
	sessions *sessionRegistry

	botUserID string

	// Reactions the bot removed itself still echo back as gateway
	// remove events carrying the user's ID. Entries here mark them so
	// they are not mistaken for a user leaving.
	removalMu       sync.Mutex
	pendingRemovals map[string]struct{}
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Command prefix, defaults to "$lfg"
	CommandPrefix string

	// How long each wizard prompt waits for an answer
	PromptTimeout time.Duration

	// Event service
	EventService eventService.Service

	// Start date extractor
	Extractor dateparse.Extractor

	Clock clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	if cfg.EventService == nil {
		return nil, ErrMissingEventService
	}

	if cfg.Extractor == nil {
		return nil, ErrMissingExtractor
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = defaultCommandPrefix
	}

	promptTimeout := cfg.PromptTimeout
	if promptTimeout <= 0 {
		promptTimeout = defaultPromptTimeout
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	bot := &Bot{
		session:         session,
		channel:         session,
		eventService:    cfg.EventService,
		extractor:       cfg.Extractor,
		clock:           clk,
		prefix:          prefix,
		promptTimeout:   promptTimeout,
		awaiter:         newAwaiter(),
		sessions:        newSessionRegistry(),
		pendingRemovals: make(map[string]struct{}),
	}
	bot.commands = map[string]commandFunc{
		"create": bot.handleCreateCommand,
	}

	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onMessageReactionAdd)
	session.AddHandler(bot.onMessageReactionRemove)

	return bot, nil
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if b.session.State.User != nil {
		b.botUserID = b.session.State.User.ID
	}

	log.Printf("Bot is running with prefix %q", b.prefix)
	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// -- Gateway handlers

func (b *Bot) onMessageCreate(_ *discordgo.Session, message *discordgo.MessageCreate) {
	if message.Author == nil || message.Author.Bot {
		return
	}

	if b.awaiter.OfferMessage(message) {
		return
	}

	arg, ok := parseCommand(message.Content, b.prefix)
	if !ok {
		return
	}

	ctx := context.Background()

	if handler, found := b.commands[arg]; found {
		if err := handler(ctx, message, arg); err != nil {
			log.Printf("Error handling %q command: %v", arg, err)
		}
		return
	}

	if err := b.handleLookupCommand(ctx, message, arg); err != nil {
		log.Printf("Error handling lookup command: %v", err)
	}
}

func (b *Bot) onMessageReactionAdd(_ *discordgo.Session, reaction *discordgo.MessageReactionAdd) {
	if reaction.UserID == b.botUserID {
		return
	}

	if b.awaiter.OfferReaction(reaction) {
		return
	}

	if err := b.handleReactionAdd(context.Background(), reaction); err != nil {
		log.Printf("Error handling reaction add: %v", err)
	}
}

func (b *Bot) onMessageReactionRemove(_ *discordgo.Session, reaction *discordgo.MessageReactionRemove) {
	if reaction.UserID == b.botUserID {
		return
	}

	if b.consumePendingRemoval(reaction.MessageID, reaction.UserID, reaction.Emoji.Name) {
		return
	}

	if err := b.handleReactionRemove(context.Background(), reaction); err != nil {
		log.Printf("Error handling reaction remove: %v", err)
	}
}

// parseCommand strips the prefix off a message and returns the first
// word after it. Anything not starting with the prefix is not for us.
func parseCommand(content, prefix string) (string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// -- Lookup command

func parseJoinID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

// handleLookupCommand treats any non-create argument as a Join ID and
// re-posts the event summary. A non-numeric argument never reaches the
// store.
func (b *Bot) handleLookupCommand(ctx context.Context, message *discordgo.MessageCreate, arg string) error {
	eventID, err := parseJoinID(arg)
	if err != nil {
		_, sendErr := b.channel.ChannelMessageSendEmbed(message.ChannelID, invalidJoinIDEmbed(arg))
		return sendErr
	}

	summary, err := b.eventService.GetSummary(ctx, &eventService.GetSummaryInput{
		EventID: eventID,
	})
	if err != nil {
		if errors.Is(err, eventService.ErrEventNotFound) {
			_, sendErr := b.channel.ChannelMessageSendEmbed(message.ChannelID, unknownJoinIDEmbed(eventID))
			return sendErr
		}
		return fmt.Errorf("failed to fetch event %d: %w", eventID, err)
	}

	posted, err := b.channel.ChannelMessageSendEmbed(message.ChannelID, buildSummaryEmbed(summary.Summary))
	if err != nil {
		return fmt.Errorf("failed to post event summary: %w", err)
	}

	return b.addStandingReactions(message.ChannelID, posted.ID)
}

// addStandingReactions attaches the join, leave and tentative glyphs
// to a posted summary so readers can register with one click.
func (b *Bot) addStandingReactions(channelID, messageID string) error {
	for _, reaction := range catalog.StandingReactions() {
		if err := b.channel.MessageReactionAdd(channelID, messageID, reaction.Emoji); err != nil {
			return fmt.Errorf("failed to add reaction %s: %w", reaction.Key, err)
		}
	}
	return nil
}

// refreshSummary re-renders the event into an existing message.
func (b *Bot) refreshSummary(ctx context.Context, channelID, messageID string, eventID int64) error {
	summary, err := b.eventService.GetSummary(ctx, &eventService.GetSummaryInput{
		EventID: eventID,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch event %d: %w", eventID, err)
	}

	_, err = b.channel.ChannelMessageEditEmbed(channelID, messageID, buildSummaryEmbed(summary.Summary))
	if err != nil {
		return fmt.Errorf("failed to update event summary: %w", err)
	}
	return nil
}

func (b *Bot) notePendingRemoval(messageID, userID, emoji string) {
	b.removalMu.Lock()
	defer b.removalMu.Unlock()

	b.pendingRemovals[removalKey(messageID, userID, emoji)] = struct{}{}
}

func (b *Bot) consumePendingRemoval(messageID, userID, emoji string) bool {
	b.removalMu.Lock()
	defer b.removalMu.Unlock()

	key := removalKey(messageID, userID, emoji)
	if _, ok := b.pendingRemovals[key]; !ok {
		return false
	}
	delete(b.pendingRemovals, key)
	return true
}

func removalKey(messageID, userID, emoji string) string {
	return fmt.Sprintf("%s:%s:%s", messageID, userID, emoji)
}
