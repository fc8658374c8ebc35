package event

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxbn/hawkthorne/internal/models"
)

func makeConfirmed(count int) []*models.Registration {
	base := time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)
	registrations := make([]*models.Registration, 0, count)
	for i := 0; i < count; i++ {
		registrations = append(registrations, &models.Registration{
			ID:          fmt.Sprintf("reg-%d", i+1),
			EventID:     1,
			UserID:      fmt.Sprintf("user-%d", i+1),
			DisplayName: fmt.Sprintf("U%d", i+1),
			Type:        models.RegistrationTypeConfirmed,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}
	return registrations
}

func TestGroupConfirmedNoCap(t *testing.T) {
	groups := groupConfirmed(makeConfirmed(7), 0)

	require.Len(t, groups, 1)
	assert.Equal(t, "7", groups[0].Label)
	assert.Len(t, groups[0].Members, 7)
}

func TestGroupConfirmedUnderCap(t *testing.T) {
	groups := groupConfirmed(makeConfirmed(4), 6)

	require.Len(t, groups, 1)
	assert.Equal(t, "4/6", groups[0].Label)
	assert.Len(t, groups[0].Members, 4)
}

func TestGroupConfirmedEmpty(t *testing.T) {
	groups := groupConfirmed(nil, 6)

	require.Len(t, groups, 1)
	assert.Equal(t, "0/6", groups[0].Label)
	assert.Empty(t, groups[0].Members)
}

func TestGroupConfirmedAtCap(t *testing.T) {
	groups := groupConfirmed(makeConfirmed(6), 6)

	require.Len(t, groups, 1)
	assert.Equal(t, "6/6", groups[0].Label)
}

func TestGroupConfirmedOverflow(t *testing.T) {
	// Four confirmed joins against a cap of two: the first two fill
	// group one, the rest spill in arrival order.
	groups := groupConfirmed(makeConfirmed(4), 2)

	require.Len(t, groups, 2)

	assert.Equal(t, "Full", groups[0].Label)
	assert.Equal(t, "U1", groups[0].Members[0].DisplayName)
	assert.Equal(t, "U2", groups[0].Members[1].DisplayName)

	assert.Equal(t, "Full", groups[1].Label)
	assert.Equal(t, "U3", groups[1].Members[0].DisplayName)
	assert.Equal(t, "U4", groups[1].Members[1].DisplayName)
}

func TestGroupConfirmedTrailingPartial(t *testing.T) {
	groups := groupConfirmed(makeConfirmed(3), 2)

	require.Len(t, groups, 2)
	assert.Equal(t, "Full", groups[0].Label)
	assert.Equal(t, "1/2", groups[1].Label)
	assert.Equal(t, "U3", groups[1].Members[0].DisplayName)
}

func TestGroupConfirmedChunkarithmetic(t *testing.T) {
	tests := []struct {
		confirmed int
		max       int
		groups    int
	}{
		{confirmed: 7, max: 3, groups: 3},
		{confirmed: 9, max: 3, groups: 3},
		{confirmed: 10, max: 3, groups: 4},
		{confirmed: 12, max: 6, groups: 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d players max %d", tt.confirmed, tt.max), func(t *testing.T) {
			groups := groupConfirmed(makeConfirmed(tt.confirmed), tt.max)
			require.Len(t, groups, tt.groups)

			total := 0
			for i, group := range groups {
				assert.LessOrEqual(t, len(group.Members), tt.max)
				if i < len(groups)-1 {
					assert.Len(t, group.Members, tt.max)
					assert.Equal(t, "Full", group.Label)
				}
				total += len(group.Members)
			}
			assert.Equal(t, tt.confirmed, total)
		})
	}
}
