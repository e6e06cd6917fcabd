package validate

import (
	"github.com/loreweave-dev/loreweave/internal/config"
)

// Leaf extractors: pure functions that pull typed references out of one
// syntactic form and record them through the builder. Each takes the owner
// positioned at the form's field path; descending into subfields extends
// the path, never mutates it.

func extractSelection(b *Builder, sel config.Selection, owner Owner) {
	path := owner.Path
	b.RecordEntityKind(sel.Kind, owner.at(path.Field("kind")))
	b.RecordEntityKinds(sel.Kinds, owner.at(path.Field("kinds")))
	b.RecordSubtypes(sel.Subtypes, owner.at(path.Field("subtypes")))
	b.RecordSubtypes(sel.ExcludeSubtypes, owner.at(path.Field("excludeSubtypes")))
	b.RecordStatus(sel.Status, owner.at(path.Field("status")))
	b.RecordStatuses(sel.Statuses, owner.at(path.Field("statuses")))
	b.RecordStatus(sel.NotStatus, owner.at(path.Field("notStatus")))
	b.RecordRelationshipKind(sel.RelationshipKind, owner.at(path.Field("relationshipKind")))
	for i, filter := range sel.Filters {
		extractFilter(b, filter, owner.at(path.Field("filters").Index(i)))
	}
	if sat := sel.Saturation; sat != nil {
		satPath := path.Field("saturation")
		b.RecordRelationshipKind(sat.RelationshipKind, owner.at(satPath.Field("relationshipKind")))
		b.RecordEntityKind(sat.SourceKind, owner.at(satPath.Field("sourceKind")))
	}
}

func extractVariableSelection(b *Builder, sel config.VariableSelection, owner Owner) {
	path := owner.Path
	extractSelection(b, sel.Selection, owner)
	b.RecordRelationshipKind(sel.From, owner.at(path.Field("from")))
	for i, filter := range sel.PreferFilters {
		extractFilter(b, filter, owner.at(path.Field("preferFilters").Index(i)))
	}
}

func extractFilter(b *Builder, filter config.Filter, owner Owner) {
	path := owner.Path
	switch filter.Type {
	case config.FilterHasRelationship, config.FilterLacksRelationship:
		b.RecordRelationshipKind(filter.RelationshipKind, owner.at(path.Field("relationshipKind")))
	case config.FilterHasTag, config.FilterLacksTag:
		b.RecordTag(filter.Tag, owner.at(path.Field("tag")))
		b.RecordTags(filter.Tags, owner.at(path.Field("tags")))
	case config.FilterHasStatus:
		b.RecordStatus(filter.Status, owner.at(path.Field("status")))
	case config.FilterPath:
		if filter.Path != nil {
			extractPath(b, *filter.Path, owner.at(path.Field("path")))
		}
	}
}

func extractCondition(b *Builder, cond config.Condition, owner Owner) {
	path := owner.Path
	switch cond.Type {
	case config.ConditionPressure:
		b.RecordPressure(cond.Pressure, owner.at(path.Field("pressure")))
		b.RecordPressures(cond.Pressures, owner.at(path.Field("pressures")))
	case config.ConditionPressureCompare:
		b.RecordPressure(cond.Left, owner.at(path.Field("left")))
		b.RecordPressure(cond.Right, owner.at(path.Field("right")))
	case config.ConditionEntityCount, config.ConditionEntityExists:
		b.RecordEntityKind(cond.EntityKind, owner.at(path.Field("entityKind")))
		b.RecordSubtype(cond.Subtype, owner.at(path.Field("subtype")))
	case config.ConditionRelationshipCount, config.ConditionRelationshipExists:
		b.RecordRelationshipKind(cond.RelationshipKind, owner.at(path.Field("relationshipKind")))
	case config.ConditionHasTag, config.ConditionLacksTag:
		b.RecordTag(cond.Tag, owner.at(path.Field("tag")))
	case config.ConditionStatus:
		b.RecordStatus(cond.Status, owner.at(path.Field("status")))
	case config.ConditionPath:
		if cond.Path != nil {
			extractPath(b, *cond.Path, owner.at(path.Field("path")))
		}
	case config.ConditionAllOf, config.ConditionAnyOf:
		for i, child := range cond.Conditions {
			extractCondition(b, child, owner.at(path.Field("conditions").Index(i)))
		}
	}
}

func extractConditions(b *Builder, conds []config.Condition, owner Owner) {
	for i, cond := range conds {
		extractCondition(b, cond, owner.at(owner.Path.Index(i)))
	}
}

func extractMutation(b *Builder, mut config.Mutation, owner Owner) {
	path := owner.Path
	switch mut.Type {
	case config.MutationSetTag, config.MutationRemoveTag:
		b.RecordTag(mut.Tag, owner.at(path.Field("tag")))
	case config.MutationCreateRelationship, config.MutationAdjustRelationship, config.MutationArchiveRelationship:
		b.RecordRelationshipKind(mut.RelationshipKind, owner.at(path.Field("relationshipKind")))
	case config.MutationChangeStatus:
		b.RecordStatus(mut.Status, owner.at(path.Field("status")))
	case config.MutationModifyPressure:
		b.RecordPressure(mut.Pressure, owner.at(path.Field("pressure")))
	}
}

func extractMutations(b *Builder, muts []config.Mutation, owner Owner) {
	for i, mut := range muts {
		extractMutation(b, mut, owner.at(owner.Path.Index(i)))
	}
}

func extractMetric(b *Builder, metric config.Metric, owner Owner) {
	path := owner.Path
	switch metric.Type {
	case config.MetricEntityCount:
		b.RecordEntityKind(metric.EntityKind, owner.at(path.Field("entityKind")))
	case config.MetricRelationshipCount, config.MetricConnectionCount, config.MetricSharedRelationship:
		b.RecordRelationshipKind(metric.RelationshipKind, owner.at(path.Field("relationshipKind")))
	case config.MetricTagCount:
		b.RecordTag(metric.Tag, owner.at(path.Field("tag")))
	case config.MetricRatio:
		if metric.Numerator != nil {
			extractMetric(b, *metric.Numerator, owner.at(path.Field("numerator")))
		}
		if metric.Denominator != nil {
			extractMetric(b, *metric.Denominator, owner.at(path.Field("denominator")))
		}
	case config.MetricStatusRatio:
		b.RecordEntityKind(metric.EntityKind, owner.at(path.Field("entityKind")))
		b.RecordStatus(metric.Status, owner.at(path.Field("status")))
	case config.MetricProminence:
		b.RecordRelationshipKinds(metric.Via, owner.at(path.Field("via")))
		b.RecordEntityKind(metric.TargetKind, owner.at(path.Field("targetKind")))
	}
}

func extractPath(b *Builder, assertion config.PathAssertion, owner Owner) {
	path := owner.Path
	for i, step := range assertion.Steps {
		stepPath := path.Field("steps").Index(i)
		b.RecordRelationshipKind(step.RelationshipKind, owner.at(stepPath.Field("relationshipKind")))
		b.RecordRelationshipKinds(step.RelationshipKinds, owner.at(stepPath.Field("relationshipKinds")))
		b.RecordEntityKind(step.TargetKind, owner.at(stepPath.Field("targetKind")))
		b.RecordSubtype(step.TargetSubtype, owner.at(stepPath.Field("targetSubtype")))
		b.RecordStatus(step.TargetStatus, owner.at(stepPath.Field("targetStatus")))
	}
	for i, constraint := range assertion.Where {
		wherePath := path.Field("where").Index(i)
		switch constraint.Type {
		case config.PathConstraintRelationship:
			b.RecordRelationshipKind(constraint.RelationshipKind, owner.at(wherePath.Field("relationshipKind")))
		case config.PathConstraintKind:
			b.RecordEntityKind(constraint.Kind, owner.at(wherePath.Field("kind")))
		case config.PathConstraintSubtype:
			b.RecordSubtype(constraint.Subtype, owner.at(wherePath.Field("subtype")))
		}
	}
}
