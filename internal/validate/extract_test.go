package validate

import (
	"testing"

	"github.com/loreweave-dev/loreweave/internal/config"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(&config.Project{
		Schema: testSchema(),
		Pressures: []config.Pressure{
			{ID: "unrest"},
			{ID: "prosperity"},
		},
	})
}

func TestConditionTreeRecursesThroughCombinators(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementGenerator, ID: "g", Path: NewFieldPath("conditions").Index(0)}

	extractCondition(b, config.Condition{
		Type: config.ConditionAllOf,
		Conditions: []config.Condition{
			{Type: config.ConditionPressure, Pressure: "unrest", Op: ">", Value: 3},
			{
				Type: config.ConditionAnyOf,
				Conditions: []config.Condition{
					{Type: config.ConditionPressureCompare, Left: "unrest", Right: "prosperity"},
					{Type: config.ConditionPressure, Pressures: []string{"prosperity", "missing"}},
				},
			},
		},
	}, owner)

	usage := b.Map()
	if got := len(usage.Pressures["unrest"].Generators); got != 2 {
		t.Fatalf("expected unrest recorded twice, got %d", got)
	}
	if got := len(usage.Pressures["prosperity"].Generators); got != 2 {
		t.Fatalf("expected prosperity recorded twice, got %d", got)
	}
	if len(usage.Results.InvalidRefs) != 1 {
		t.Fatalf("expected 1 invalid pressure ref, got %+v", usage.Results.InvalidRefs)
	}
	ref := usage.Results.InvalidRefs[0]
	if ref.RefID != "missing" || ref.RefType != ElementPressure {
		t.Fatalf("unexpected invalid ref: %+v", ref)
	}
	if ref.Field != "conditions[0].conditions[1].conditions[1].pressures[1]" {
		t.Fatalf("unexpected field path: %q", ref.Field)
	}
}

func TestConditionEntityAndTagVariants(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementAction, ID: "a", Path: NewFieldPath("actorConditions").Index(0)}

	extractCondition(b, config.Condition{Type: config.ConditionEntityCount, EntityKind: "npc", Subtype: "noble"}, owner)
	extractCondition(b, config.Condition{Type: config.ConditionRelationshipExists, RelationshipKind: "rivals"}, owner)
	extractCondition(b, config.Condition{Type: config.ConditionHasTag, Tag: "cursed"}, owner)
	extractCondition(b, config.Condition{Type: config.ConditionLacksTag, Tag: "blessed"}, owner)
	extractCondition(b, config.Condition{Type: config.ConditionStatus, Status: "alive"}, owner)

	usage := b.Map()
	if len(usage.EntityKinds["npc"].Actions) != 1 {
		t.Fatalf("entityCount condition did not record npc")
	}
	if len(usage.Subtypes["noble"].Actions) != 1 {
		t.Fatalf("entityCount condition did not record subtype")
	}
	if len(usage.RelationshipKinds["rivals"].Actions) != 1 {
		t.Fatalf("relationshipExists condition did not record rivals")
	}
	if len(usage.Tags["cursed"].Actions) != 1 || len(usage.Tags["blessed"].Actions) != 1 {
		t.Fatalf("tag conditions did not record tags")
	}
	if len(usage.Statuses["alive"].Actions) != 1 {
		t.Fatalf("status condition did not record status")
	}
	if len(usage.Results.InvalidRefs) != 0 {
		t.Fatalf("open-vocabulary refs must never be invalid: %+v", usage.Results.InvalidRefs)
	}
}

func TestMutationVariantsRecordTheirOneField(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementGenerator, ID: "g", Path: NewFieldPath("mutations")}

	extractMutations(b, []config.Mutation{
		{Type: config.MutationSetTag, Tag: "burned"},
		{Type: config.MutationRemoveTag, Tag: "thriving"},
		{Type: config.MutationCreateRelationship, RelationshipKind: "leads"},
		{Type: config.MutationAdjustRelationship, RelationshipKind: "rivals"},
		{Type: config.MutationArchiveRelationship, RelationshipKind: "leads"},
		{Type: config.MutationChangeStatus, Status: "dead"},
		{Type: config.MutationModifyPressure, Pressure: "unrest"},
	}, owner)

	usage := b.Map()
	if len(usage.Tags["burned"].Generators) != 1 || len(usage.Tags["thriving"].Generators) != 1 {
		t.Fatalf("tag mutations not recorded")
	}
	if len(usage.RelationshipKinds["leads"].Generators) != 2 {
		t.Fatalf("expected leads recorded by create and archive, got %d", len(usage.RelationshipKinds["leads"].Generators))
	}
	if len(usage.RelationshipKinds["rivals"].Generators) != 1 {
		t.Fatalf("adjust mutation not recorded")
	}
	if len(usage.Statuses["dead"].Generators) != 1 {
		t.Fatalf("status mutation not recorded")
	}
	if len(usage.Pressures["unrest"].Generators) != 1 {
		t.Fatalf("pressure mutation not recorded")
	}
}

func TestMetricRatioRecursion(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementSystem, ID: "s", Path: NewFieldPath("evolution").Field("metric")}

	extractMetric(b, config.Metric{
		Type:        config.MetricRatio,
		Numerator:   &config.Metric{Type: config.MetricEntityCount, EntityKind: "npc"},
		Denominator: &config.Metric{Type: config.MetricTagCount, Tag: "cursed"},
	}, owner)

	usage := b.Map()
	if len(usage.EntityKinds["npc"].Systems) != 1 {
		t.Fatalf("ratio numerator not recorded")
	}
	if len(usage.Tags["cursed"].Systems) != 1 {
		t.Fatalf("ratio denominator not recorded")
	}
	ref := usage.EntityKinds["npc"].Systems[0]
	if ref.Field != "evolution.metric.numerator.entityKind" {
		t.Fatalf("unexpected numerator field path: %q", ref.Field)
	}
}

func TestProminenceMetricWalksViaChain(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementSystem, ID: "s", Path: NewFieldPath("metric")}

	extractMetric(b, config.Metric{
		Type:       config.MetricProminence,
		Via:        []string{"leads", "rivals"},
		TargetKind: "faction",
	}, owner)

	usage := b.Map()
	if len(usage.RelationshipKinds["leads"].Systems) != 1 || len(usage.RelationshipKinds["rivals"].Systems) != 1 {
		t.Fatalf("via chain not recorded")
	}
	if len(usage.EntityKinds["faction"].Systems) != 1 {
		t.Fatalf("terminal kind not recorded")
	}
}

func TestPathAssertionStepsAndConstraints(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementAction, ID: "a", Path: NewFieldPath("target").Field("filters").Index(0).Field("path")}

	extractPath(b, config.PathAssertion{
		Steps: []config.PathStep{
			{RelationshipKind: "leads", TargetKind: "faction"},
			{RelationshipKinds: []string{"rivals", "leads"}, TargetSubtype: "noble", TargetStatus: "alive"},
		},
		Where: []config.PathConstraint{
			{Type: config.PathConstraintRelationship, From: "start", To: "step1", RelationshipKind: "rivals"},
			{Type: config.PathConstraintKind, To: "step0", Kind: "npc"},
			{Type: config.PathConstraintSubtype, To: "step1", Subtype: "commoner"},
		},
	}, owner)

	usage := b.Map()
	if len(usage.RelationshipKinds["leads"].Actions) != 2 {
		t.Fatalf("expected leads in step and alternation, got %d", len(usage.RelationshipKinds["leads"].Actions))
	}
	if len(usage.RelationshipKinds["rivals"].Actions) != 2 {
		t.Fatalf("expected rivals in alternation and where clause, got %d", len(usage.RelationshipKinds["rivals"].Actions))
	}
	if len(usage.EntityKinds["faction"].Actions) != 1 || len(usage.EntityKinds["npc"].Actions) != 1 {
		t.Fatalf("target and constraint kinds not recorded")
	}
	if len(usage.Subtypes["noble"].Actions) != 1 || len(usage.Subtypes["commoner"].Actions) != 1 {
		t.Fatalf("subtype refs not recorded")
	}
	if len(usage.Statuses["alive"].Actions) != 1 {
		t.Fatalf("target status not recorded")
	}
}

func TestSelectionSaturationAndFilters(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementGenerator, ID: "g", Path: NewFieldPath("select")}

	extractSelection(b, config.Selection{
		Kind:            "npc",
		ExcludeSubtypes: []string{"noble"},
		NotStatus:       "dead",
		Filters: []config.Filter{
			{Type: config.FilterHasRelationship, RelationshipKind: "leads"},
			{Type: config.FilterLacksTag, Tags: []string{"exiled", "cursed"}},
			{Type: config.FilterHasStatus, Status: "alive"},
		},
		Saturation: &config.Saturation{RelationshipKind: "rivals", SourceKind: "faction", Limit: 3},
	}, owner)

	usage := b.Map()
	if len(usage.EntityKinds["npc"].Generators) != 1 || len(usage.EntityKinds["faction"].Generators) != 1 {
		t.Fatalf("selection kinds not recorded")
	}
	if len(usage.RelationshipKinds["leads"].Generators) != 1 || len(usage.RelationshipKinds["rivals"].Generators) != 1 {
		t.Fatalf("filter and saturation relationship kinds not recorded")
	}
	if len(usage.Tags["exiled"].Generators) != 1 || len(usage.Tags["cursed"].Generators) != 1 {
		t.Fatalf("lacksTag tags not recorded")
	}
	sat := usage.RelationshipKinds["rivals"].Generators[0]
	if sat.Field != "select.saturation.relationshipKind" {
		t.Fatalf("unexpected saturation field path: %q", sat.Field)
	}
}

func TestVariableSelectionFromClause(t *testing.T) {
	b := newTestBuilder(t)
	owner := Owner{Type: ElementGenerator, ID: "g", Path: NewFieldPath("variables").Field("patron")}

	extractVariableSelection(b, config.VariableSelection{
		Selection: config.Selection{Kind: "npc"},
		From:      "leads",
		PreferFilters: []config.Filter{
			{Type: config.FilterHasTag, Tag: "wealthy"},
		},
	}, owner)

	usage := b.Map()
	from := usage.RelationshipKinds["leads"].Generators
	if len(from) != 1 || from[0].Field != "variables.patron.from" {
		t.Fatalf("from clause not recorded correctly: %+v", from)
	}
	if len(usage.Tags["wealthy"].Generators) != 1 {
		t.Fatalf("prefer filter tag not recorded")
	}
}

func TestSystemDispatchCoversEveryKind(t *testing.T) {
	for _, kind := range config.SystemKinds {
		if _, ok := systemScanners[kind]; !ok {
			t.Fatalf("no scanner registered for system kind %q", kind)
		}
	}
	if len(systemScanners) != len(config.SystemKinds) {
		t.Fatalf("scanner table has %d entries for %d kinds", len(systemScanners), len(config.SystemKinds))
	}
}
