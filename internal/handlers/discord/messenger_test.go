package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type embedCall struct {
	ChannelID string
	MessageID string
	Embed     *discordgo.MessageEmbed
}

type reactionCall struct {
	ChannelID string
	MessageID string
	Emoji     string
	UserID    string
}

// fakeMessenger records every REST call the bot makes and serves
// scripted messages and users back.
type fakeMessenger struct {
	mu sync.Mutex

	sends      []embedCall
	edits      []embedCall
	deletes    []string
	added      []reactionCall
	removed    []reactionCall
	removedAll []string

	messages map[string]*discordgo.Message
	users    map[string]*discordgo.User

	nextID int
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{
		messages: make(map[string]*discordgo.Message),
		users:    make(map[string]*discordgo.User),
	}
}

func (f *fakeMessenger) ChannelMessage(_, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	message, ok := f.messages[messageID]
	if !ok {
		return nil, fmt.Errorf("no such message %s", messageID)
	}
	return message, nil
}

func (f *fakeMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	messageID := fmt.Sprintf("msg-%d", f.nextID)

	f.sends = append(f.sends, embedCall{ChannelID: channelID, MessageID: messageID, Embed: embed})

	message := &discordgo.Message{
		ID:        messageID,
		ChannelID: channelID,
		Embeds:    []*discordgo.MessageEmbed{embed},
	}
	f.messages[messageID] = message
	return message, nil
}

func (f *fakeMessenger) ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.edits = append(f.edits, embedCall{ChannelID: channelID, MessageID: messageID, Embed: embed})

	if message, ok := f.messages[messageID]; ok {
		message.Embeds = []*discordgo.MessageEmbed{embed}
		return message, nil
	}

	message := &discordgo.Message{
		ID:        messageID,
		ChannelID: channelID,
		Embeds:    []*discordgo.MessageEmbed{embed},
	}
	f.messages[messageID] = message
	return message, nil
}

func (f *fakeMessenger) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, messageID)
	return nil
}

func (f *fakeMessenger) MessageReactionAdd(channelID, messageID, emojiID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.added = append(f.added, reactionCall{ChannelID: channelID, MessageID: messageID, Emoji: emojiID})
	return nil
}

func (f *fakeMessenger) MessageReactionRemove(channelID, messageID, emojiID, userID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, reactionCall{ChannelID: channelID, MessageID: messageID, Emoji: emojiID, UserID: userID})
	return nil
}

func (f *fakeMessenger) MessageReactionsRemoveAll(_, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removedAll = append(f.removedAll, messageID)
	return nil
}

func (f *fakeMessenger) User(userID string, _ ...discordgo.RequestOption) (*discordgo.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("no such user %s", userID)
	}
	return user, nil
}

func (f *fakeMessenger) putMessage(message *discordgo.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages[message.ID] = message
}

func (f *fakeMessenger) putUser(user *discordgo.User) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users[user.ID] = user
}

func (f *fakeMessenger) lastEdit() *embedCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.edits) == 0 {
		return nil
	}
	return &f.edits[len(f.edits)-1]
}

func (f *fakeMessenger) snapshot() (sends, edits []embedCall, added, removed []reactionCall) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]embedCall(nil), f.sends...),
		append([]embedCall(nil), f.edits...),
		append([]reactionCall(nil), f.added...),
		append([]reactionCall(nil), f.removed...)
}
