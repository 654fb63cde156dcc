package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalArray(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["python", " sql ", ""]`), &list))

	assert.Equal(t, StringList{"python", "sql"}, list)
}

func TestStringList_UnmarshalDelimitedString(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"go, sql; docker\nkubernetes"`), &list))

	assert.Equal(t, StringList{"go", "sql", "docker", "kubernetes"}, list)
}

func TestStringList_UnmarshalInvalidType(t *testing.T) {
	var list StringList

	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestMatchRequest_Validate(t *testing.T) {
	req := &MatchRequest{
		Profile: ProfileInput{Skills: StringList{"python"}},
		Limit:   10,
	}

	assert.NoError(t, req.Validate())
}

func TestMatchRequest_LimitAboveMaximum(t *testing.T) {
	req := &MatchRequest{
		Profile: ProfileInput{Skills: StringList{"python"}},
		Limit:   51,
	}

	assert.Error(t, req.Validate())
}

func TestResourceRequest_RequiresSkillGaps(t *testing.T) {
	req := &ResourceRequest{Profile: ProfileInput{Skills: StringList{"python"}}}

	assert.Error(t, req.Validate())
}

func TestIngestRequest_RequiresValidURL(t *testing.T) {
	assert.Error(t, (&IngestRequest{URL: "not a url"}).Validate())
	assert.NoError(t, (&IngestRequest{URL: "https://example.com/job"}).Validate())
}

func TestRoadmap_IsEmpty(t *testing.T) {
	assert.True(t, Roadmap{}.IsEmpty())
	assert.False(t, Roadmap{Phase2Foundation: RoadmapPhase{Skills: []string{"sql"}}}.IsEmpty())
}

func TestLearningResource_RatingOrZero(t *testing.T) {
	r := 4.5
	assert.Equal(t, 4.5, LearningResource{Rating: &r}.RatingOrZero())
	assert.Equal(t, 0.0, LearningResource{}.RatingOrZero())
}
