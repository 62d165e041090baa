package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Decode(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`42.9`, 42},
		{`"42.9"`, 42},
		{`null`, 0},
		{`"not a number"`, 0},
		{`-3`, -3},
	}
	for _, tc := range cases {
		var f FlexInt
		err := json.Unmarshal([]byte(tc.in), &f)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f.Int(), tc.in)
	}
}

func TestDecodeCandidateInput(t *testing.T) {
	in, err := DecodeCandidateInput([]byte(`{
		"resume_text": "python and sql",
		"repos": {"verified_skills": ["python"], "repo_count": "7", "fetched": true},
		"problems": {"dsa_skills": ["arrays"], "easy": 30, "medium": "15", "hard": 2.0, "fetched": true},
		"cgpa": 8.2,
		"target_role": "Backend Developer"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "python and sql", in.ResumeText)
	assert.Equal(t, 7, in.Repos.RepoCount.Int())
	assert.True(t, in.Repos.Fetched)
	assert.Equal(t, 30, in.Problems.Easy.Int())
	assert.Equal(t, 15, in.Problems.Medium.Int())
	assert.Equal(t, 2, in.Problems.Hard.Int())
	assert.Equal(t, 8.2, in.CGPA)
	assert.Equal(t, "Backend Developer", in.TargetRole)
}

func TestDecodeCandidateInput_EmptyDocument(t *testing.T) {
	in, err := DecodeCandidateInput([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, in.ResumeText)
	assert.False(t, in.Repos.Fetched)
	assert.Equal(t, 0, in.Problems.Total.Int())
}

func TestDecodeCandidateInput_Malformed(t *testing.T) {
	_, err := DecodeCandidateInput([]byte(`{broken`))
	require.Error(t, err)
}
