package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushkarjay/career-advisor/internal/types"
)

func TestNormalize_RequiredBeforePreferred(t *testing.T) {
	career := types.Career{
		RequiredSkills:  []string{"Python", "SQL"},
		PreferredSkills: []string{"Docker"},
	}

	reqs := Normalize(career)

	require.Len(t, reqs, 3)
	assert.Equal(t, "python", reqs[0].Name)
	assert.Equal(t, "sql", reqs[1].Name)
	assert.Equal(t, "docker", reqs[2].Name)
	assert.True(t, reqs[0].IsRequired)
	assert.False(t, reqs[2].IsRequired)
}

func TestNormalize_Weights(t *testing.T) {
	career := types.Career{
		RequiredSkills:  []string{"python"},
		PreferredSkills: []string{"docker"},
	}

	reqs := Normalize(career)

	require.Len(t, reqs, 2)
	assert.Equal(t, 9.0, reqs[0].ImportanceLevel)
	assert.Equal(t, 7.0, reqs[0].RequiredProficiency)
	assert.Equal(t, 6.0, reqs[1].ImportanceLevel)
	assert.Equal(t, 5.0, reqs[1].RequiredProficiency)
}

func TestNormalize_SkillInBothListsRecordedAsRequired(t *testing.T) {
	career := types.Career{
		RequiredSkills:  []string{"Python"},
		PreferredSkills: []string{"python"},
	}

	reqs := Normalize(career)

	require.Len(t, reqs, 1)
	assert.True(t, reqs[0].IsRequired)
	assert.Equal(t, 9.0, reqs[0].ImportanceLevel)
}

func TestNormalize_DropsEmptyAndDuplicateEntries(t *testing.T) {
	career := types.Career{
		RequiredSkills: []string{"python", "  ", "PYTHON", ""},
	}

	reqs := Normalize(career)

	require.Len(t, reqs, 1)
	assert.Equal(t, "python", reqs[0].Name)
}

func TestNormalize_ClassifiesSkillTypes(t *testing.T) {
	career := types.Career{
		RequiredSkills: []string{"python", "communication", "english", "finance"},
	}

	reqs := Normalize(career)

	require.Len(t, reqs, 4)
	assert.Equal(t, types.SkillTypeTechnical, reqs[0].SkillType)
	assert.Equal(t, types.SkillTypeSoft, reqs[1].SkillType)
	assert.Equal(t, types.SkillTypeLanguage, reqs[2].SkillType)
	assert.Equal(t, types.SkillTypeDomain, reqs[3].SkillType)
}

func TestNormalize_EmptyCareer(t *testing.T) {
	assert.Empty(t, Normalize(types.Career{}))
}
