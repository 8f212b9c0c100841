package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeline(pairs ...string) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, TimelineEntry{Stage: Stage(pairs[i]), Status: StageStatus(pairs[i+1])})
	}
	return out
}

func TestDeriveStageStatus(t *testing.T) {
	app := Application{Timeline: timeline("application", "completed", "interview", "scheduled")}

	assert.Equal(t, StatusCompleted, DeriveStageStatus(app, StageApplication))
	assert.Equal(t, StatusScheduled, DeriveStageStatus(app, StageInterview))
	assert.Equal(t, StatusPending, DeriveStageStatus(app, StageTest))
	assert.Equal(t, StatusPending, DeriveStageStatus(Application{}, StageResult))
}

func TestDeriveStageStatusDuplicateFirstMatchWins(t *testing.T) {
	app := Application{Timeline: timeline("result", "accepted", "result", "rejected")}

	assert.Equal(t, StatusAccepted, DeriveStageStatus(app, StageResult))
	assert.Equal(t, GeneralFinished, DeriveGeneralStatus(app))

	e, ok := Entry(app, StageResult)
	require.True(t, ok)
	assert.Equal(t, StatusAccepted, e.Status)
}

func TestDeriveGeneralStatus(t *testing.T) {
	tests := []struct {
		name string
		app  Application
		want GeneralStatus
	}{
		{
			name: "result accepted",
			app:  Application{Timeline: timeline("result", "accepted")},
			want: GeneralFinished,
		},
		{
			name: "result completed",
			app:  Application{Timeline: timeline("result", "completed")},
			want: GeneralFinished,
		},
		{
			name: "accepted result wins over earlier rejection",
			app:  Application{Timeline: timeline("interview", "rejected", "result", "accepted")},
			want: GeneralFinished,
		},
		{
			name: "any rejected stage",
			app:  Application{Timeline: timeline("application", "completed", "test", "rejected")},
			want: GeneralDiscarded,
		},
		{
			name: "raw status discarded",
			app:  Application{Status: "Discarded", Timeline: timeline("application", "completed")},
			want: GeneralDiscarded,
		},
		{
			name: "raw status descartado",
			app:  Application{Status: "DESCARTADO"},
			want: GeneralDiscarded,
		},
		{
			name: "raw rejected alone keeps process open",
			app:  Application{Status: "rejected"},
			want: GeneralInProcess,
		},
		{
			name: "in process",
			app:  Application{Status: "in_progress", Timeline: timeline("application", "completed", "interview", "scheduled")},
			want: GeneralInProcess,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGeneralStatus(tt.app)
			assert.Equal(t, tt.want, got)
			// pure: same input, same output
			assert.Equal(t, got, DeriveGeneralStatus(tt.app))
		})
	}
}

func TestStatusTag(t *testing.T) {
	assert.Equal(t, TagSuccess, StatusTag(StatusAccepted))
	assert.Equal(t, TagSuccess, StatusTag(StatusCompleted))
	assert.Equal(t, TagInfo, StatusTag(StatusScheduled))
	assert.Equal(t, TagInfo, StatusTag(StatusInProgress))
	assert.Equal(t, TagDanger, StatusTag(StatusRejected))
	assert.Equal(t, TagMuted, StatusTag(StatusPending))
	assert.Equal(t, TagMuted, StatusTag("weird"))

	assert.Equal(t, TagInfo, GeneralStatusTag(GeneralInProcess))
	assert.Equal(t, TagDanger, GeneralStatusTag(GeneralDiscarded))
}

func TestParseStage(t *testing.T) {
	s, err := ParseStage("interview")
	require.NoError(t, err)
	assert.Equal(t, StageInterview, s)
	assert.Equal(t, 3, s.Order())

	_, err = ParseStage("onboarding")
	assert.Error(t, err)

	_, err = ParseStageStatus("done")
	assert.Error(t, err)
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusScheduled.Terminal())
}
