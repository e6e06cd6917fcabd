package validate

import (
	"github.com/loreweave-dev/loreweave/internal/config"
)

// SchemaUsage holds lightweight per-element reference counts for badge
// display. Unlike the full usage map it also counts seed entities, skips
// diagnostics, and walks only the fields badges care about.
type SchemaUsage struct {
	EntityKinds       map[string]int `json:"entityKinds"`
	RelationshipKinds map[string]int `json:"relationshipKinds"`
	Subtypes          map[string]int `json:"subtypes"`
	Statuses          map[string]int `json:"statuses"`
}

// ComputeSchemaUsage recomputes narrow usage counts over selections,
// creation templates, relationship specs, and seeds.
func ComputeSchemaUsage(project *config.Project) SchemaUsage {
	su := SchemaUsage{
		EntityKinds:       make(map[string]int),
		RelationshipKinds: make(map[string]int),
		Subtypes:          make(map[string]int),
		Statuses:          make(map[string]int),
	}

	for _, gen := range project.Generators {
		su.countSelection(gen.Select)
		for _, sel := range gen.Variables {
			su.countSelection(sel.Selection)
			su.countRelationshipKind(sel.From)
		}
		for _, tpl := range gen.Creates {
			su.countEntityKind(tpl.Kind)
			su.countSubtype(tpl.Subtype)
			for _, subtype := range tpl.Subtypes {
				su.countSubtype(subtype)
			}
			su.countStatus(tpl.Status)
		}
		for _, spec := range gen.Relationships {
			su.countRelationshipKind(spec.Kind)
		}
	}

	for _, sys := range project.Systems {
		su.countSelection(sys.Select)
		if sys.Kind == config.SystemCluster && sys.Cluster != nil {
			su.countSelection(sys.Cluster.Criteria)
			su.countEntityKind(sys.Cluster.MetaKind)
		}
	}

	for _, action := range project.Actions {
		su.countSelection(action.Actor)
		su.countSelection(action.Target)
		if action.Instigator != nil {
			su.countSelection(action.Instigator.Selection)
		}
		if action.SecondaryTarget != nil {
			su.countSelection(*action.SecondaryTarget)
		}
		for _, mut := range action.Outcomes {
			su.countRelationshipKind(mut.RelationshipKind)
		}
	}

	for _, seed := range project.Seeds {
		su.countEntityKind(seed.Kind)
		su.countSubtype(seed.Subtype)
		su.countStatus(seed.Status)
	}

	return su
}

func (su SchemaUsage) countSelection(sel config.Selection) {
	su.countEntityKind(sel.Kind)
	for _, kind := range sel.Kinds {
		su.countEntityKind(kind)
	}
	for _, subtype := range sel.Subtypes {
		su.countSubtype(subtype)
	}
	for _, subtype := range sel.ExcludeSubtypes {
		su.countSubtype(subtype)
	}
	su.countStatus(sel.Status)
	for _, status := range sel.Statuses {
		su.countStatus(status)
	}
	su.countStatus(sel.NotStatus)
	su.countRelationshipKind(sel.RelationshipKind)
}

func (su SchemaUsage) countEntityKind(id string) {
	if id == "" || id == config.Wildcard {
		return
	}
	su.EntityKinds[id]++
}

func (su SchemaUsage) countRelationshipKind(id string) {
	if id != "" {
		su.RelationshipKinds[id]++
	}
}

func (su SchemaUsage) countSubtype(id string) {
	if id != "" {
		su.Subtypes[id]++
	}
}

func (su SchemaUsage) countStatus(id string) {
	if id != "" {
		su.Statuses[id]++
	}
}

// ComputeTagUsage counts tag references across creation templates, variant
// apply blocks, tag mutations, selection filters, and seeds. That is the
// set the tag-usage display reads.
func ComputeTagUsage(project *config.Project) map[string]int {
	counts := make(map[string]int)
	countTag := func(tag string) {
		if tag != "" {
			counts[tag]++
		}
	}
	countFilters := func(filters []config.Filter) {
		for _, filter := range filters {
			countTag(filter.Tag)
			for _, tag := range filter.Tags {
				countTag(tag)
			}
		}
	}
	countMutations := func(muts []config.Mutation) {
		for _, mut := range muts {
			if mut.Type == config.MutationSetTag || mut.Type == config.MutationRemoveTag {
				countTag(mut.Tag)
			}
		}
	}

	for _, gen := range project.Generators {
		countFilters(gen.Select.Filters)
		for _, tpl := range gen.Creates {
			for _, tag := range tpl.Tags {
				countTag(tag)
			}
		}
		countMutations(gen.Mutations)
		for _, variant := range gen.Variants {
			for _, tag := range variant.Apply.Tags {
				countTag(tag)
			}
			countMutations(variant.Apply.Mutations)
		}
	}
	for _, sys := range project.Systems {
		countFilters(sys.Select.Filters)
		if sys.Contagion != nil {
			countTag(sys.Contagion.DescriptorTag)
			countMutations(sys.Contagion.InfectionMutations)
		}
		if sys.Threshold != nil {
			countMutations(sys.Threshold.Effects)
		}
	}
	for _, action := range project.Actions {
		countFilters(action.Actor.Filters)
		countFilters(action.Target.Filters)
		countMutations(action.Outcomes)
	}
	for _, seed := range project.Seeds {
		for _, tag := range seed.Tags {
			countTag(tag)
		}
	}
	return counts
}
