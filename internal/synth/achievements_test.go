package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievements_EmptyUsesTrack(t *testing.T) {
	s := New()
	cat := DefaultCatalog()

	assert.Equal(t, cat.TechnicalTrack(), s.Achievements("", "engineer"))
	assert.Equal(t, cat.TechnicalTrack(), s.Achievements("short", "Frontend Developer"))
	assert.Equal(t, cat.LeadershipTrack(), s.Achievements("", "Operations Manager"))
	assert.Equal(t, cat.GenericTrack(), s.Achievements("   ", "Nurse"))
	// engineer wins over manager
	assert.Equal(t, cat.TechnicalTrack(), s.Achievements("", "Engineering Manager"))
}

func TestAchievements_RewritesLines(t *testing.T) {
	s := New()
	text := "Led a team of five engineers on the payments platform\n" +
		"Shipped the mobile onboarding flow in two sprints\n" +
		"tiny\n" +
		"\n" +
		"developed internal tooling for release automation"

	got := s.Achievements(text, "Engineer")
	require.Len(t, got, 3)
	assert.Equal(t, "Led a team of five engineers on the payments platform", got[0])
	assert.Equal(t, "Successfully shipped the mobile onboarding flow in two sprints", got[1])
	assert.Equal(t, "developed internal tooling for release automation", got[2])
}

func TestAchievements_PadsWithFiller(t *testing.T) {
	s := New()
	got := s.Achievements("Handled customer escalations across three regions", "Support")
	require.Len(t, got, 3)
	assert.Equal(t, "Successfully handled customer escalations across three regions", got[0])
	assert.Equal(t, DefaultCatalog().filler[:2], got[1:])
}

func TestAchievements_OnlyFirstFiveLinesConsidered(t *testing.T) {
	s := New()
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, "Built service number "+string(rune('A'+i))+" for the platform")
	}
	got := s.Achievements(strings.Join(lines, "\n"), "Engineer")
	require.Len(t, got, 5)
	assert.Equal(t, lines[:5], got)
}

func TestAchievements_AlwaysThreeToFive(t *testing.T) {
	s := New()
	inputs := []string{
		"",
		"x",
		"a b c d e f g h i j k l m n o p q r s t u v",
		"short line\nanother\nnope",
		"1234567890123456789012345",
		strings.Repeat("Implemented something meaningful here\n", 12),
		"Über-long description with unicode characters ✓ everywhere and more",
	}
	for _, in := range inputs {
		for _, job := range []string{"", "Engineer", "Manager", "Chef"} {
			got := s.Achievements(in, job)
			assert.GreaterOrEqual(t, len(got), 3, "%q/%q", in, job)
			assert.LessOrEqual(t, len(got), 5, "%q/%q", in, job)
		}
	}
}

func TestAchievements_TrackIsCopied(t *testing.T) {
	s := New()
	got := s.Achievements("", "engineer")
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", s.Achievements("", "engineer")[0])
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "shipped it", lowerFirst("Shipped it"))
	assert.Equal(t, "élan", lowerFirst("Élan"))
	assert.Equal(t, "", lowerFirst(""))
}
