package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/uxbn/hawkthorne/internal/models"
)

// session is the scratch state of one create wizard. It is only ever
// touched by the single goroutine running that wizard.
type session struct {
	user              *discordgo.User
	channelID         string
	responseMessageID string

	activity       *models.ActivityDefinition
	startDate      *time.Time
	timeZoneOffset int
	timeZoneName   string
	description    string
}

func (s *session) complete() bool {
	return s.activity != nil && s.startDate != nil && s.timeZoneName != ""
}

// sessionRegistry tracks in-flight create wizards keyed by user and
// channel. A user gets one wizard per channel at a time; a second
// create command is rejected rather than queued.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
	}
}

func (r *sessionRegistry) Begin(user *discordgo.User, channelID string) (*session, error) {
	key := sessionKey(user.ID, channelID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[key]; ok {
		return nil, ErrSessionInProgress
	}

	sess := &session{
		user:      user,
		channelID: channelID,
	}
	r.sessions[key] = sess
	return sess, nil
}

func (r *sessionRegistry) End(sess *session) {
	key := sessionKey(sess.user.ID, sess.channelID)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, key)
}

func sessionKey(userID, channelID string) string {
	return fmt.Sprintf("%s:%s", userID, channelID)
}
