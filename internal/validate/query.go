package validate

import (
	"fmt"
	"strings"
)

// ElementValidation is the filtered per-element view used to render
// validation badges: diagnostics restricted to one element plus its orphan
// flag.
type ElementValidation struct {
	Type          ElementType          `json:"type"`
	ID            string               `json:"id"`
	Valid         bool                 `json:"valid"`
	InvalidRefs   []InvalidRef         `json:"invalidRefs,omitempty"`
	Compatibility []CompatibilityIssue `json:"compatibility,omitempty"`
	Orphaned      bool                 `json:"orphaned,omitempty"`
}

// ElementValidation filters the map's diagnostics down to one element.
func (u *UsageMap) ElementValidation(elemType ElementType, id string) ElementValidation {
	v := ElementValidation{Type: elemType, ID: id}
	for _, ref := range u.Results.InvalidRefs {
		if ref.Type == elemType && ref.ID == id {
			v.InvalidRefs = append(v.InvalidRefs, ref)
		}
	}
	for _, issue := range u.Results.Compatibility {
		if issue.Type == elemType && issue.ID == id {
			v.Compatibility = append(v.Compatibility, issue)
		}
	}
	for _, orphan := range u.Results.Orphans {
		if orphan.Type == elemType && orphan.ID == id {
			v.Orphaned = true
			break
		}
	}
	v.Valid = len(v.InvalidRefs) == 0 && len(v.Compatibility) == 0
	return v
}

// UsageFor returns the usage bucket for one element, or nil when the map
// has never seen it.
func (u *UsageMap) UsageFor(elemType ElementType, id string) *Usage {
	switch elemType {
	case ElementEntityKind:
		return u.EntityKinds[id]
	case ElementRelationshipKind:
		return u.RelationshipKinds[id]
	case ElementSubtype:
		return u.Subtypes[id]
	case ElementStatus:
		return u.Statuses[id]
	case ElementTag:
		return u.Tags[id]
	case ElementPressure:
		return u.Pressures[id]
	case ElementGenerator:
		return u.Generators[id]
	case ElementSystem:
		return u.Systems[id]
	}
	return nil
}

// UsageSummary renders a short human sentence for one usage bucket, or
// "Not used".
func UsageSummary(usage *Usage) string {
	if usage == nil || usage.Total() == 0 {
		return "Not used"
	}
	parts := make([]string, 0, 5)
	parts = appendCount(parts, len(usage.Generators), "generator")
	parts = appendCount(parts, len(usage.Systems), "system")
	parts = appendCount(parts, len(usage.Actions), "action")
	parts = appendCount(parts, len(usage.Eras), "era")
	parts = appendCount(parts, len(usage.Pressures), "pressure")
	return "Used by " + strings.Join(parts, ", ")
}

func appendCount(parts []string, n int, noun string) []string {
	if n == 0 {
		return parts
	}
	if n == 1 {
		return append(parts, fmt.Sprintf("1 %s", noun))
	}
	return append(parts, fmt.Sprintf("%d %ss", n, noun))
}
