package validate

import (
	"fmt"
	"strings"

	"github.com/loreweave-dev/loreweave/internal/config"
)

// Symbolic endpoint positions an action's mutations may name.
const (
	positionActor           = "actor"
	positionInstigator      = "instigator"
	positionTarget          = "target"
	positionSecondaryTarget = "secondaryTarget"
)

// checkCompatibility verifies relationship mutations against the kinds
// declared for each relationship's endpoints.
//
// Only actions get full resolution: their symbolic positions (actor,
// instigator, target, secondaryTarget) resolve statically from the
// action's own selection rules. Generator-created relationships name
// runtime variable bindings that do not exist at authoring time, so the
// scan pass only validates that the relationship kind itself is declared.
func (b *Builder) checkCompatibility() {
	for _, action := range b.project.Actions {
		b.checkActionCompatibility(action)
	}
}

func (b *Builder) checkActionCompatibility(action config.Action) {
	resolved := map[string][]string{
		positionActor:  selectionKinds(action.Actor),
		positionTarget: selectionKinds(action.Target),
	}
	if action.Instigator != nil {
		resolved[positionInstigator] = selectionKinds(action.Instigator.Selection)
	}
	if action.SecondaryTarget != nil {
		resolved[positionSecondaryTarget] = selectionKinds(*action.SecondaryTarget)
	}

	for i, mut := range action.Outcomes {
		if mut.Type != config.MutationCreateRelationship && mut.Type != config.MutationAdjustRelationship {
			continue
		}
		kind, ok := b.relationshipKinds[mut.RelationshipKind]
		if !ok {
			continue
		}
		field := NewFieldPath("outcomes").Index(i)
		b.checkEndpoint(action.ID, field, kind, "source", mut.Source, kind.SourceKinds, resolved)
		b.checkEndpoint(action.ID, field, kind, "destination", mut.Destination, kind.DestinationKinds, resolved)
	}
}

// checkEndpoint emits an issue when a symbolic endpoint resolves to a kind
// set disjoint from the declared constraint set. Unresolvable symbols and
// undeclared constraints are skipped: the check fires only when both sides
// are known.
func (b *Builder) checkEndpoint(actionID string, field FieldPath, kind config.RelationshipKind, side, symbol string, declared []string, resolved map[string][]string) {
	if len(declared) == 0 {
		return
	}
	kinds, ok := resolved[symbol]
	if !ok || len(kinds) == 0 {
		return
	}
	if kindsIntersect(kinds, declared) {
		return
	}
	b.usage.Results.Compatibility = append(b.usage.Results.Compatibility, CompatibilityIssue{
		Type:  ElementAction,
		ID:    actionID,
		Field: field.String(),
		Issue: fmt.Sprintf("relationship %q allows %s kinds [%s] but %s resolves to [%s]",
			kind.ID, side, strings.Join(declared, ", "), symbol, strings.Join(kinds, ", ")),
	})
}

// selectionKinds resolves the possible entity kinds of one selection:
// kind union kinds.
func selectionKinds(sel config.Selection) []string {
	kinds := make([]string, 0, len(sel.Kinds)+1)
	if sel.Kind != "" {
		kinds = append(kinds, sel.Kind)
	}
	for _, kind := range sel.Kinds {
		if kind == "" {
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

// kindsIntersect reports whether the resolved and declared sets share a
// kind. The wildcard on either side is compatible with anything.
func kindsIntersect(resolved, declared []string) bool {
	declaredSet := make(map[string]bool, len(declared))
	for _, kind := range declared {
		if kind == config.Wildcard {
			return true
		}
		declaredSet[kind] = true
	}
	for _, kind := range resolved {
		if kind == config.Wildcard || declaredSet[kind] {
			return true
		}
	}
	return false
}
