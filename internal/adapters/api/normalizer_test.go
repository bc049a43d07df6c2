package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

func TestNormalizeRepositoriesDefaults(t *testing.T) {
	lang := "Go"
	raw := []rawRepository{
		{
			ID:              1,
			Name:            "cli",
			Language:        &lang,
			Topics:          []string{"tools", "go"},
			StargazersCount: 5,
		},
		{
			ID:   2,
			Name: "notes",
			// language, topics and license all absent
		},
	}
	raw[0].Owner.Login = "octocat"
	raw[1].Owner.Login = "octocat"

	repos := normalizeRepositories(raw)

	assert.Equal(t, "Go", repos[0].Language)
	assert.Equal(t, []string{"tools", "go"}, repos[0].Topics)

	assert.Equal(t, "", repos[1].Language)
	assert.Equal(t, []string{}, repos[1].Topics, "missing topics default to an empty slice")
	assert.Equal(t, "", repos[1].License)
}

func TestNormalizeEventsKeepsUnknownTypes(t *testing.T) {
	raw := []rawEvent{
		{ID: "1", Type: "SponsorshipEvent"},
		{ID: "2", Type: entities.EventTypePush, Payload: json.RawMessage(`{"size":3}`)},
	}

	events := normalizeEvents(raw)

	assert.Len(t, events, 2)
	assert.Equal(t, "SponsorshipEvent", events[0].Type)
	assert.Equal(t, 0, events[0].CommitCount)
	assert.Equal(t, 3, events[1].CommitCount)
}

func TestPushCommitCount(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"size field", `{"size": 4, "commits": [{}]}`, 4},
		{"falls back to commit list", `{"commits": [{}, {}]}`, 2},
		{"empty payload", ``, 0},
		{"absent fields", `{}`, 0},
		{"malformed payload", `{"size": "many"}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pushCommitCount(json.RawMessage(tc.payload)))
		})
	}
}
