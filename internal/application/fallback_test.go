package application

import (
	"testing"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackRuleMatching(t *testing.T) {
	rule := FallbackRule{BaseToken: "Matrimoniale", CompactTokens: []string{"Piccola", "Picola"}}

	assert.True(t, rule.AppliesTo("Matrimoniale Piccola"))
	assert.True(t, rule.AppliesTo("matrimoniale picola")) // historical misspelling
	assert.True(t, rule.AppliesTo("Camera Matrimoniale PICCOLA"))
	assert.False(t, rule.AppliesTo("Matrimoniale"))
	assert.False(t, rule.AppliesTo("Singola Piccola"))

	assert.True(t, rule.matchesStandard("Matrimoniale"))
	assert.True(t, rule.matchesStandard("Camera Matrimoniale Deluxe"))
	assert.False(t, rule.matchesStandard("Matrimoniale Piccola"))
	assert.False(t, rule.matchesStandard("Tripla"))
}

func TestFallbackForFindsStandardSibling(t *testing.T) {
	compact := testCategory(1, "Matrimoniale Piccola", 2, 70)
	standard := testCategory(2, "Matrimoniale", 2, 90)
	single := testCategory(3, "Singola", 1, 50)

	fb := DefaultFallbackPolicy().FallbackFor(compact, []domain.RoomCategory{compact, standard, single})

	if assert.NotNil(t, fb) {
		assert.Equal(t, standard.ID, fb.ID)
	}
}

func TestFallbackForNoRuleNoSibling(t *testing.T) {
	policy := DefaultFallbackPolicy()

	single := testCategory(3, "Singola", 1, 50)
	assert.Nil(t, policy.FallbackFor(single, []domain.RoomCategory{single}))

	// the compact double without a standard sibling has nowhere to go
	compact := testCategory(1, "Matrimoniale Piccola", 2, 70)
	assert.Nil(t, policy.FallbackFor(compact, []domain.RoomCategory{compact, single}))
}

func TestFallbackForNeverReturnsSelf(t *testing.T) {
	// degenerate names should not make a category substitute itself
	compact := testCategory(1, "Matrimoniale Piccola", 2, 70)
	other := testCategory(2, "Matrimoniale Piccola", 2, 70)

	fb := DefaultFallbackPolicy().FallbackFor(compact, []domain.RoomCategory{compact, other})
	assert.Nil(t, fb)
}
