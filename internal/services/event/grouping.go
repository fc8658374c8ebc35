package event

import (
	"fmt"

	"github.com/uxbn/hawkthorne/internal/models"
)

// groupLabelFull marks a group that has reached the player cap
const groupLabelFull = "Full"

// groupConfirmed chunks confirmed registrations into capacity-bounded
// groups in join order. The first confirmed user fills the first group,
// which gives waitlist-by-arrival semantics without explicit waitlist
// state.
func groupConfirmed(confirmed []*models.Registration, maxPlayers int) []*AttendeeGroup {
	if maxPlayers <= 0 {
		return []*AttendeeGroup{
			{
				Label:   fmt.Sprintf("%d", len(confirmed)),
				Members: confirmed,
			},
		}
	}

	// While everyone fits in one group the label stays a running count,
	// even at capacity.
	if len(confirmed) <= maxPlayers {
		return []*AttendeeGroup{
			{
				Label:   fmt.Sprintf("%d/%d", len(confirmed), maxPlayers),
				Members: confirmed,
			},
		}
	}

	groups := make([]*AttendeeGroup, 0, (len(confirmed)+maxPlayers-1)/maxPlayers)
	for start := 0; start < len(confirmed); start += maxPlayers {
		end := start + maxPlayers
		if end > len(confirmed) {
			end = len(confirmed)
		}

		members := confirmed[start:end]
		label := groupLabelFull
		if len(members) < maxPlayers {
			label = fmt.Sprintf("%d/%d", len(members), maxPlayers)
		}

		groups = append(groups, &AttendeeGroup{
			Label:   label,
			Members: members,
		})
	}

	return groups
}
