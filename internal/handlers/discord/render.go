package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/uxbn/hawkthorne/internal/models"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
)

// Embed colors
const (
	colorPrompt = 0x0099ff
	colorError  = 0xcc0000
)

// joinIDFieldName is the field the lookup command reads the event ID
// back out of. The rendered message is the only place the ID lives;
// there is no side table mapping messages to events.
const joinIDFieldName = "Join ID"

// spacerField is a visually blank line between the header fields and
// the attendee lists.
const spacerValue = "\u200b"

// whenFormat renders the start date in the zone the creator gave it in
const whenFormat = "Monday, January 2, 2006 3:04 PM MST"

// buildSummaryEmbed renders an event summary. It is a pure function of
// its input; every edit of the live message goes through here.
func buildSummaryEmbed(summary *eventService.Summary) *discordgo.MessageEmbed {
	ev := summary.Event

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "When",
			Value:  formatWhen(ev),
			Inline: false,
		},
		{
			Name:   spacerValue,
			Value:  spacerValue,
			Inline: false,
		},
		{
			Name:   joinIDFieldName,
			Value:  strconv.FormatInt(ev.ID, 10),
			Inline: true,
		},
	}

	if ev.Description != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Description",
			Value:  ev.Description,
			Inline: false,
		})
	}

	fields = append(fields, confirmedFields(summary.ConfirmedGroups)...)

	if len(summary.Tentative) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Tentative",
			Value:  attendeeList(summary.Tentative),
			Inline: false,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:     ev.Title,
		Color:     colorPrompt,
		Timestamp: ev.StartDate.Format(time.RFC3339),
		Fields:    fields,
	}

	if summary.CreatorName != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Created by %s", summary.CreatorName),
		}
	}

	return embed
}

// confirmedFields renders the capacity-bounded groups. A single group
// is shown as one "Confirmed" field; overflow groups are numbered.
func confirmedFields(groups []*eventService.AttendeeGroup) []*discordgo.MessageEmbedField {
	if len(groups) == 1 {
		return []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Confirmed (%s)", groups[0].Label),
				Value:  attendeeList(groups[0].Members),
				Inline: false,
			},
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(groups))
	for i, group := range groups {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Group %d (%s)", i+1, group.Label),
			Value:  attendeeList(group.Members),
			Inline: false,
		})
	}
	return fields
}

func attendeeList(registrations []*models.Registration) string {
	if len(registrations) == 0 {
		return "None"
	}

	names := make([]string, 0, len(registrations))
	for _, reg := range registrations {
		names = append(names, reg.DisplayName)
	}
	return strings.Join(names, "\n")
}

func formatWhen(ev *models.Event) string {
	zone := time.FixedZone(ev.TimeZoneName, ev.TimeZoneOffset*60)
	return ev.StartDate.In(zone).Format(whenFormat)
}

// eventIDFromEmbed recovers the Join ID from a rendered summary. A
// missing or non-numeric field means the message is not a summary we
// can act on, which is not an error.
func eventIDFromEmbed(embed *discordgo.MessageEmbed) (int64, bool) {
	if embed == nil {
		return 0, false
	}

	for _, field := range embed.Fields {
		if field.Name != joinIDFieldName {
			continue
		}
		id, err := strconv.ParseInt(field.Value, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// -- Prompt and notice embeds

func activityPromptEmbed(definitions []*models.ActivityDefinition) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(definitions))
	for _, definition := range definitions {
		lines = append(lines, fmt.Sprintf("%s: %s", definition.Name, definition.Reaction.Key))
	}

	return &discordgo.MessageEmbed{
		Title:       "Which activity would you like?",
		Description: strings.Join(lines, "\n"),
		Color:       colorPrompt,
	}
}

func startTimePromptEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "What time should the activity start?",
		Description: "Reply with a format like: `h:m am/pm tz m/d`\n" +
			"If starting now, reply with `now`",
		Color: colorPrompt,
	}
}

func descriptionPromptEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "What should the event description be?",
		Description: "You can add _italics_ by surrounding text with _.\n" +
			"To **bold**, use **.",
		Color: colorPrompt,
	}
}

func timeoutEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Timed out creating event.",
		Description: description,
		Color:       colorError,
	}
}

func incompleteEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Could not create event.",
		Description: "Something was missing, start over with `create`.",
		Color:       colorError,
	}
}

func invalidJoinIDEmbed(arg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Invalid join ID %s.", arg),
		Color: colorError,
	}
}

func unknownJoinIDEmbed(eventID int64) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Could not find join ID %d.", eventID),
		Color: colorError,
	}
}
