package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_Validate(t *testing.T) {
	valid := &UserProfile{
		Sparks: []string{"Coaching"},
		Values: []string{"Freedom"},
		Dream:  "Build a coaching practice that lets me work from anywhere",
	}
	require.NoError(t, valid.Validate())
}

func TestUserProfile_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
	}{
		{
			name: "empty sparks",
			profile: UserProfile{
				Values: []string{"Freedom"},
				Dream:  "Build a coaching practice that lets me work remotely",
			},
		},
		{
			name: "empty values",
			profile: UserProfile{
				Sparks: []string{"Coaching"},
				Dream:  "Build a coaching practice that lets me work remotely",
			},
		},
		{
			name: "short dream",
			profile: UserProfile{
				Sparks: []string{"Coaching"},
				Values: []string{"Freedom"},
				Dream:  "short",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.profile.Validate())
		})
	}
}

func TestUserProfile_FirstSparkAndValue(t *testing.T) {
	p := &UserProfile{Sparks: []string{"Writing", "Design"}, Values: []string{"Creativity"}}
	assert.Equal(t, "Writing", p.FirstSpark("new opportunities"))
	assert.Equal(t, "Creativity", p.FirstValue("personal growth"))

	empty := &UserProfile{}
	assert.Equal(t, "new opportunities", empty.FirstSpark("new opportunities"))
	assert.Equal(t, "personal growth", empty.FirstValue("personal growth"))
}

func TestRequirements_AverageStartupCost(t *testing.T) {
	req := &Requirements{StartupCostRangeUSD: []float64{50, 150}}
	avg, ok := req.AverageStartupCost()
	require.True(t, ok)
	assert.Equal(t, 100.0, avg)

	var nilReq *Requirements
	_, ok = nilReq.AverageStartupCost()
	assert.False(t, ok)

	noRange := &Requirements{}
	_, ok = noRange.AverageStartupCost()
	assert.False(t, ok)
}
