package discord

import "errors"

var (
	// ErrPromptTimeout is returned when a wizard prompt expires before
	// the initiating user answers it.
	ErrPromptTimeout = errors.New("prompt timed out")

	// ErrIncompleteSession is returned when a create flow reaches the
	// persistence step without an activity or start date.
	ErrIncompleteSession = errors.New("session is incomplete")

	// ErrSessionInProgress is returned when a user starts a second
	// create flow in a channel before the first finishes.
	ErrSessionInProgress = errors.New("session already in progress")

	// ErrMissingToken is returned when the bot is configured without a
	// Discord token.
	ErrMissingToken = errors.New("token is required")

	// ErrMissingEventService is returned when the bot is configured
	// without an event service.
	ErrMissingEventService = errors.New("event service is required")

	// ErrMissingExtractor is returned when the bot is configured
	// without a date extractor.
	ErrMissingExtractor = errors.New("date extractor is required")
)
