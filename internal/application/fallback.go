package application

import (
	"strings"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// FallbackRule substitutes a compact category variant with its standard
// sibling when the compact one cannot be sold. Both categories share the
// BaseToken in their name; the compact one additionally carries one of the
// CompactTokens. Matching is case-insensitive.
type FallbackRule struct {
	BaseToken     string   `json:"baseToken"`
	CompactTokens []string `json:"compactTokens"`
}

// AppliesTo reports whether the named category is the compact variant the
// rule substitutes for.
func (r FallbackRule) AppliesTo(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, strings.ToLower(r.BaseToken)) {
		return false
	}
	for _, tok := range r.CompactTokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// matchesStandard reports whether the named category is the standard sibling:
// it carries the base token but none of the compact tokens.
func (r FallbackRule) matchesStandard(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, strings.ToLower(r.BaseToken)) {
		return false
	}
	for _, tok := range r.CompactTokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return false
		}
	}
	return true
}

// FallbackPolicy holds the substitution rules of a property. The rules live
// in configuration rather than code so other properties can run the same
// engine with their own category names, or none at all.
type FallbackPolicy struct {
	Rules []FallbackRule `json:"rules"`
}

// DefaultFallbackPolicy returns the single substitution in production use:
// the compact double ("Matrimoniale Piccola", historically also spelled
// "Picola") falls back to the standard "Matrimoniale".
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		Rules: []FallbackRule{
			{BaseToken: "Matrimoniale", CompactTokens: []string{"Piccola", "Picola"}},
		},
	}
}

// FallbackFor returns the substitute category for cat among the property's
// categories, or nil when no rule applies or no standard sibling exists.
func (p FallbackPolicy) FallbackFor(cat domain.RoomCategory, categories []domain.RoomCategory) *domain.RoomCategory {
	for _, rule := range p.Rules {
		if !rule.AppliesTo(cat.Name) {
			continue
		}
		for i := range categories {
			if categories[i].ID == cat.ID {
				continue
			}
			if rule.matchesStandard(categories[i].Name) {
				return &categories[i]
			}
		}
	}
	return nil
}
