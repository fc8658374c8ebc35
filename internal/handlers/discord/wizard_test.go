package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/uxbn/hawkthorne/internal/common/clock"
	"github.com/uxbn/hawkthorne/internal/dateparse"
	"github.com/uxbn/hawkthorne/internal/models"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
	eventMocks "github.com/uxbn/hawkthorne/internal/services/event/mocks"
)

type stubExtractor struct {
	candidates []dateparse.Candidate
	err        error
}

func (e *stubExtractor) Extract(string, time.Time) ([]dateparse.Candidate, error) {
	return e.candidates, e.err
}

type wizardSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockService *eventMocks.MockService
	messenger   *fakeMessenger
	extractor   *stubExtractor
	bot         *Bot
	user        *discordgo.User
}

func (s *wizardSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = eventMocks.NewMockService(s.ctrl)
	s.messenger = newFakeMessenger()
	s.extractor = &stubExtractor{}
	s.user = &discordgo.User{ID: "user-1", Username: "guardian"}

	s.bot = newTestBot(s.messenger, s.mockService)
	s.bot.extractor = s.extractor
	s.bot.clock = clock.New()
}

func (s *wizardSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *wizardSuite) beginSession() *session {
	sess, err := s.bot.sessions.Begin(s.user, "channel-1")
	s.Require().NoError(err)
	return sess
}

// promptMessageID waits for the wizard to post its response message.
func (s *wizardSuite) promptMessageID() string {
	var messageID string
	s.Require().Eventually(func() bool {
		sends, _, _, _ := s.messenger.snapshot()
		if len(sends) == 0 {
			return false
		}
		messageID = sends[0].MessageID
		return true
	}, time.Second, time.Millisecond)
	return messageID
}

func (s *wizardSuite) offerReaction(messageID, emoji string) {
	reaction := &discordgo.MessageReactionAdd{
		MessageReaction: &discordgo.MessageReaction{
			ChannelID: "channel-1",
			MessageID: messageID,
			UserID:    s.user.ID,
			Emoji:     discordgo.Emoji{Name: emoji},
		},
	}

	s.Require().Eventually(func() bool {
		return s.bot.awaiter.OfferReaction(reaction)
	}, time.Second, time.Millisecond)
}

func (s *wizardSuite) offerReply(id, content string) {
	message := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        id,
			ChannelID: "channel-1",
			Content:   content,
			Author:    s.user,
		},
	}

	s.Require().Eventually(func() bool {
		return s.bot.awaiter.OfferMessage(message)
	}, time.Second, time.Millisecond)
}

func (s *wizardSuite) TestHappyPathCreatesEvent() {
	startDate := time.Date(2021, time.July, 4, 17, 0, 0, 0, time.UTC)
	offset := -480
	s.extractor.candidates = []dateparse.Candidate{
		{Date: startDate, TimeZoneOffset: &offset},
	}

	created := &models.Event{
		ID:         7,
		Title:      "Deep Stone Crypt",
		StartDate:  startDate,
		MaxPlayers: 6,
	}

	s.mockService.EXPECT().
		CreateEvent(gomock.Any(), &eventService.CreateEventInput{
			Title:              "Deep Stone Crypt",
			Description:        "Bring snacks",
			StartDate:          startDate,
			TimeZoneName:       "PST",
			TimeZoneOffset:     -480,
			MaxPlayers:         6,
			CreatorExternalID:  "user-1",
			CreatorDisplayName: "guardian",
		}).
		Return(&eventService.CreateEventOutput{Event: created}, nil)

	s.mockService.EXPECT().
		GetSummary(gomock.Any(), &eventService.GetSummaryInput{EventID: 7}).
		Return(&eventService.GetSummaryOutput{
			Summary: &eventService.Summary{
				Event:           created,
				CreatorName:     "guardian",
				ConfirmedGroups: []*eventService.AttendeeGroup{{Label: "1/6"}},
			},
		}, nil)

	sess := s.beginSession()

	go func() {
		messageID := s.promptMessageID()
		s.offerReaction(messageID, "🇩")
		s.offerReply("reply-1", "5:00 pm pt 7/4")
		s.offerReply("reply-2", "Bring snacks")
	}()

	err := s.bot.runCreateWizard(context.Background(), sess)
	s.Require().NoError(err)

	sends, edits, added, _ := s.messenger.snapshot()

	// One response message carries the whole flow.
	s.Require().Len(sends, 1)
	s.Equal("Which activity would you like?", sends[0].Embed.Title)

	// Activity reactions first, standing reactions last.
	s.Require().Len(added, 13)
	s.Equal("🇩", added[0].Emoji)
	s.Equal("➕", added[10].Emoji)
	s.Equal("➖", added[11].Emoji)
	s.Equal("❓", added[12].Emoji)

	// Start time prompt, description prompt, then the summary.
	s.Require().Len(edits, 3)
	s.Equal("What time should the activity start?", edits[0].Embed.Title)
	s.Equal("What should the event description be?", edits[1].Embed.Title)
	s.Equal("Deep Stone Crypt", edits[2].Embed.Title)

	// The user's replies are cleaned up.
	s.Contains(s.messenger.deletes, "reply-1")
	s.Contains(s.messenger.deletes, "reply-2")
}

func (s *wizardSuite) TestActivityTimeout() {
	// No service expectations: a timed out flow never touches the store.
	sess := s.beginSession()

	err := s.bot.runCreateWizard(context.Background(), sess)
	s.ErrorIs(err, ErrPromptTimeout)

	edit := s.messenger.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("Timed out creating event.", edit.Embed.Title)
	s.Equal("You did not choose an activity.", edit.Embed.Description)
}

func (s *wizardSuite) TestStartTimeTimeout() {
	sess := s.beginSession()

	go func() {
		messageID := s.promptMessageID()
		s.offerReaction(messageID, "🇩")
	}()

	err := s.bot.runCreateWizard(context.Background(), sess)
	s.ErrorIs(err, ErrPromptTimeout)

	edit := s.messenger.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("Timed out creating event.", edit.Embed.Title)
	s.Equal("You did not provide a valid start date.", edit.Embed.Description)
}

func (s *wizardSuite) TestUnparseableDateEndsIncomplete() {
	s.extractor.candidates = nil

	sess := s.beginSession()

	go func() {
		messageID := s.promptMessageID()
		s.offerReaction(messageID, "🇩")
		s.offerReply("reply-1", "whenever works")
		s.offerReply("reply-2", "some description")
	}()

	err := s.bot.runCreateWizard(context.Background(), sess)
	s.ErrorIs(err, ErrIncompleteSession)

	edit := s.messenger.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("Could not create event.", edit.Embed.Title)
}

func (s *wizardSuite) TestDescriptionTimeoutStillCreates() {
	startDate := time.Date(2021, time.July, 4, 17, 0, 0, 0, time.UTC)
	s.extractor.candidates = []dateparse.Candidate{{Date: startDate}}

	created := &models.Event{ID: 8, Title: "Gambit", StartDate: startDate, MaxPlayers: 4}

	s.mockService.EXPECT().
		CreateEvent(gomock.Any(), &eventService.CreateEventInput{
			Title:              "Gambit",
			StartDate:          startDate,
			TimeZoneName:       "GMT",
			MaxPlayers:         4,
			CreatorExternalID:  "user-1",
			CreatorDisplayName: "guardian",
		}).
		Return(&eventService.CreateEventOutput{Event: created}, nil)

	s.mockService.EXPECT().
		GetSummary(gomock.Any(), &eventService.GetSummaryInput{EventID: 8}).
		Return(&eventService.GetSummaryOutput{
			Summary: &eventService.Summary{
				Event:           created,
				ConfirmedGroups: []*eventService.AttendeeGroup{{Label: "1/4"}},
			},
		}, nil)

	sess := s.beginSession()

	go func() {
		messageID := s.promptMessageID()
		s.offerReaction(messageID, "🇧")
		s.offerReply("reply-1", "now")
		// No description reply; the prompt times out.
	}()

	err := s.bot.runCreateWizard(context.Background(), sess)
	s.Require().NoError(err)
}

func (s *wizardSuite) TestCreateCommandRejectsReentry() {
	s.beginSession()

	err := s.bot.handleCreateCommand(context.Background(), commandMessage("$lfg create"), "create")
	s.ErrorIs(err, ErrSessionInProgress)
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(wizardSuite))
}
