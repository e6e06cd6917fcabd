package validate

import (
	"sort"

	"github.com/loreweave-dev/loreweave/internal/config"
)

// Element scanners: one driver per top-level construct, invoking the leaf
// extractors over that construct's fields in fixed order with the owner
// reference attached.

func scanPressure(b *Builder, pressure config.Pressure) {
	owner := Owner{Type: ElementPressure, ID: pressure.ID}
	scanFactors(b, pressure.ID, pressure.PositiveFactors, owner.at(NewFieldPath("positiveFactors")), true)
	scanFactors(b, pressure.ID, pressure.NegativeFactors, owner.at(NewFieldPath("negativeFactors")), false)
}

func scanFactors(b *Builder, pressureID string, factors []config.FeedbackFactor, owner Owner, positive bool) {
	for i, factor := range factors {
		path := owner.Path.Index(i)
		b.RecordEntityKind(factor.EntityKind, owner.at(path.Field("entityKind")))
		b.RecordRelationshipKind(factor.RelationshipKind, owner.at(path.Field("relationshipKind")))
		b.RecordRelationshipKinds(factor.RelationshipKinds, owner.at(path.Field("relationshipKinds")))
		b.RecordTag(factor.Tag, owner.at(path.Field("tag")))
		b.RecordTags(factor.Tags, owner.at(path.Field("tags")))
		b.notePressureFeedback(pressureID, positive)
	}
}

func scanEra(b *Builder, era config.Era) {
	owner := Owner{Type: ElementEra, ID: era.ID}
	genPath := NewFieldPath("generatorWeights")
	for _, id := range sortedKeys(era.GeneratorWeights) {
		b.RecordGeneratorMember(id, owner.at(genPath.Field(id)))
	}
	sysPath := NewFieldPath("systemWeights")
	for _, id := range sortedKeys(era.SystemWeights) {
		b.RecordSystemMember(id, owner.at(sysPath.Field(id)))
	}
	extractMutations(b, era.OnEntry, owner.at(NewFieldPath("onEntry")))
	extractMutations(b, era.OnExit, owner.at(NewFieldPath("onExit")))
}

func scanGenerator(b *Builder, gen config.Generator) {
	owner := Owner{Type: ElementGenerator, ID: gen.ID}

	extractConditions(b, gen.Conditions, owner.at(NewFieldPath("conditions")))
	extractSelection(b, gen.Select, owner.at(NewFieldPath("select")))

	varsPath := NewFieldPath("variables")
	for _, name := range sortedKeys(gen.Variables) {
		extractVariableSelection(b, gen.Variables[name], owner.at(varsPath.Field(name)))
	}

	for i, tpl := range gen.Creates {
		path := NewFieldPath("creates").Index(i)
		b.RecordEntityKind(tpl.Kind, owner.at(path.Field("kind")))
		b.RecordSubtype(tpl.Subtype, owner.at(path.Field("subtype")))
		b.RecordSubtypes(tpl.Subtypes, owner.at(path.Field("subtypes")))
		b.RecordStatus(tpl.Status, owner.at(path.Field("status")))
		b.RecordTags(tpl.Tags, owner.at(path.Field("tags")))
	}

	scanRelationshipSpecs(b, gen.Relationships, owner.at(NewFieldPath("relationships")))
	extractMutations(b, gen.Mutations, owner.at(NewFieldPath("mutations")))

	for i, variant := range gen.Variants {
		path := NewFieldPath("variants").Index(i)
		extractCondition(b, variant.When, owner.at(path.Field("when")))
		applyPath := path.Field("apply")
		scanRelationshipSpecs(b, variant.Apply.Relationships, owner.at(applyPath.Field("relationships")))
		b.RecordTags(variant.Apply.Tags, owner.at(applyPath.Field("tags")))
		extractMutations(b, variant.Apply.Mutations, owner.at(applyPath.Field("mutations")))
	}
}

func scanRelationshipSpecs(b *Builder, specs []config.RelationshipSpec, owner Owner) {
	for i, spec := range specs {
		b.RecordRelationshipKind(spec.Kind, owner.at(owner.Path.Index(i).Field("kind")))
	}
}

func scanAction(b *Builder, action config.Action) {
	owner := Owner{Type: ElementAction, ID: action.ID}

	extractSelection(b, action.Actor, owner.at(NewFieldPath("actor")))
	extractConditions(b, action.ActorConditions, owner.at(NewFieldPath("actorConditions")))
	if action.Instigator != nil {
		extractVariableSelection(b, *action.Instigator, owner.at(NewFieldPath("instigator")))
	}
	extractSelection(b, action.Target, owner.at(NewFieldPath("target")))
	if action.SecondaryTarget != nil {
		extractSelection(b, *action.SecondaryTarget, owner.at(NewFieldPath("secondaryTarget")))
	}
	extractMutations(b, action.Outcomes, owner.at(NewFieldPath("outcomes")))
	if action.Probability != nil {
		path := NewFieldPath("probability").Field("pressureModifiers")
		for _, id := range sortedKeys(action.Probability.PressureModifiers) {
			b.RecordPressure(id, owner.at(path.Field(id)))
		}
	}
}

// sortedKeys returns map keys in sorted order so scans visit weight maps
// and variable maps deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
