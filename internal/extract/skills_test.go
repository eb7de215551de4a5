package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantZero bool
		validate func(*testing.T, SkillsResult)
	}{
		{
			name:     "No heading yields empty result",
			text:     "javascript, python\n",
			wantZero: true,
		},
		{
			name:     "Empty input",
			text:     "",
			wantZero: true,
		},
		{
			name: "Comma separated skills categorized",
			text: "Skills\njavascript, python, leadership\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 3)
				assert.Equal(t, "javascript", got.Entries[0].Name)
				assert.Equal(t, "Programming Languages", got.Entries[0].Category)
				assert.Equal(t, "python", got.Entries[1].Name)
				assert.Equal(t, "Programming Languages", got.Entries[1].Category)
				assert.Equal(t, "leadership", got.Entries[2].Name)
				assert.Equal(t, "Soft Skills", got.Entries[2].Category)
				assert.InDelta(t, 0.8, got.Confidence, 1e-9)
			},
		},
		{
			name: "Unknown tokens kept uncategorized at lower confidence",
			text: "Skills\nunderwater basket weaving; python\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 2)
				assert.Equal(t, "underwater basket weaving", got.Entries[0].Name)
				assert.Empty(t, got.Entries[0].Category)
				assert.InDelta(t, 0.4, got.Entries[0].Confidence, 1e-9)
				assert.InDelta(t, 0.8, got.Entries[1].Confidence, 1e-9)
				assert.InDelta(t, 0.6, got.Confidence, 1e-9)
			},
		},
		{
			name: "Duplicates by normalized name kept once",
			text: "Skills\nPython, python\nPYTHON\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 1)
				assert.Equal(t, "Python", got.Entries[0].Name)
			},
		},
		{
			name: "Short and numeric tokens discarded",
			text: "Skills\na, 42, 2021, go\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 1)
				assert.Equal(t, "go", got.Entries[0].Name)
				assert.Equal(t, "Programming Languages", got.Entries[0].Category)
			},
		},
		{
			name: "Bullet and pipe delimiters",
			text: "Skills\n• docker | kubernetes · terraform\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 3)
				assert.Equal(t, "Cloud & DevOps", got.Entries[0].Category)
				assert.Equal(t, "Cloud & DevOps", got.Entries[1].Category)
				assert.Equal(t, "Cloud & DevOps", got.Entries[2].Category)
			},
		},
		{
			name: "Word boundary prevents substring matches",
			text: "Skills\njavascripting\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 1)
				assert.Empty(t, got.Entries[0].Category)
			},
		},
		{
			name: "Next heading ends the section",
			text: "Skills\npython\nEducation\nState University\n",
			validate: func(t *testing.T, got SkillsResult) {
				require.Len(t, got.Entries, 1)
				assert.Equal(t, "python", got.Entries[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.text)
			if tt.wantZero {
				assert.Empty(t, got.Entries)
				assert.Zero(t, got.Confidence)
				return
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestSkills_FirstSeenOrderPreserved(t *testing.T) {
	got := Skills("Skills\nzookeeper, python, airflow\n")
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "zookeeper", got.Entries[0].Name)
	assert.Equal(t, "python", got.Entries[1].Name)
	assert.Equal(t, "airflow", got.Entries[2].Name)
}

func TestKeywordInToken(t *testing.T) {
	tests := []struct {
		token   string
		keyword string
		want    bool
	}{
		{"javascript", "javascript", true},
		{"javascripting", "javascript", false},
		{"javascript", "java", false},
		{"modern c++", "c++", true},
		{"c++", "c++", true},
		{"node.js", "node.js", true},
		{"golang", "go", false},
		{"go", "go", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keywordInToken(tt.token, tt.keyword), "%s in %s", tt.keyword, tt.token)
	}
}

func TestSkills_ManyTokens(t *testing.T) {
	var names []string
	for i := 0; i < 60; i++ {
		names = append(names, "skillname"+strings.Repeat("x", i%5)+string(rune('a'+i%26)))
	}
	got := Skills("Skills\n" + strings.Join(names, ", ") + "\n")
	assert.NotEmpty(t, got.Entries)
}
