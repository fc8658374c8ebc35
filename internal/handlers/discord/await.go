package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type messageMatcher func(*discordgo.MessageCreate) bool

type reactionMatcher func(*discordgo.MessageReactionAdd) bool

type messageWaiter struct {
	match messageMatcher
	ch    chan *discordgo.MessageCreate
}

type reactionWaiter struct {
	match reactionMatcher
	ch    chan *discordgo.MessageReactionAdd
}

// awaiter lets a wizard goroutine block on the next gateway event that
// matches a predicate. Gateway handlers offer every incoming event to
// the awaiter first; an event claimed by a waiter is consumed and never
// reaches command dispatch or registration handling.
type awaiter struct {
	mu        sync.Mutex
	messages  []*messageWaiter
	reactions []*reactionWaiter
}

func newAwaiter() *awaiter {
	return &awaiter{}
}

// AwaitMessage blocks until a message matching the predicate arrives or
// the context expires. Expiry returns ErrPromptTimeout.
func (a *awaiter) AwaitMessage(ctx context.Context, match messageMatcher) (*discordgo.MessageCreate, error) {
	waiter := &messageWaiter{
		match: match,
		ch:    make(chan *discordgo.MessageCreate, 1),
	}

	a.mu.Lock()
	a.messages = append(a.messages, waiter)
	a.mu.Unlock()

	select {
	case message := <-waiter.ch:
		return message, nil
	case <-ctx.Done():
		a.dropMessageWaiter(waiter)
		return nil, ErrPromptTimeout
	}
}

// AwaitReaction blocks until a reaction matching the predicate arrives
// or the context expires. Expiry returns ErrPromptTimeout.
func (a *awaiter) AwaitReaction(ctx context.Context, match reactionMatcher) (*discordgo.MessageReactionAdd, error) {
	waiter := &reactionWaiter{
		match: match,
		ch:    make(chan *discordgo.MessageReactionAdd, 1),
	}

	a.mu.Lock()
	a.reactions = append(a.reactions, waiter)
	a.mu.Unlock()

	select {
	case reaction := <-waiter.ch:
		return reaction, nil
	case <-ctx.Done():
		a.dropReactionWaiter(waiter)
		return nil, ErrPromptTimeout
	}
}

// OfferMessage hands an incoming message to the oldest matching waiter.
// It reports whether the message was consumed.
func (a *awaiter) OfferMessage(message *discordgo.MessageCreate) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, waiter := range a.messages {
		if !waiter.match(message) {
			continue
		}
		a.messages = append(a.messages[:i], a.messages[i+1:]...)
		waiter.ch <- message
		return true
	}
	return false
}

// OfferReaction hands an incoming reaction to the oldest matching
// waiter. It reports whether the reaction was consumed.
func (a *awaiter) OfferReaction(reaction *discordgo.MessageReactionAdd) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, waiter := range a.reactions {
		if !waiter.match(reaction) {
			continue
		}
		a.reactions = append(a.reactions[:i], a.reactions[i+1:]...)
		waiter.ch <- reaction
		return true
	}
	return false
}

func (a *awaiter) dropMessageWaiter(waiter *messageWaiter) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, candidate := range a.messages {
		if candidate == waiter {
			a.messages = append(a.messages[:i], a.messages[i+1:]...)
			return
		}
	}
}

func (a *awaiter) dropReactionWaiter(waiter *reactionWaiter) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, candidate := range a.reactions {
		if candidate == waiter {
			a.reactions = append(a.reactions[:i], a.reactions[i+1:]...)
			return
		}
	}
}
