package validate

import (
	"testing"

	"github.com/loreweave-dev/loreweave/internal/config"
)

func TestElementValidationFiltersToOneElement(t *testing.T) {
	project := &config.Project{
		Schema: testSchema(),
		Generators: []config.Generator{
			{ID: "raiders", Select: config.Selection{Kind: "ghost"}},
			{ID: "traders", Select: config.Selection{Kind: "wisp"}},
		},
	}

	usage := Build(project)
	v := usage.ElementValidation(ElementGenerator, "raiders")
	if v.Valid {
		t.Fatalf("generator with an invalid ref reported valid")
	}
	if len(v.InvalidRefs) != 1 || v.InvalidRefs[0].RefID != "ghost" {
		t.Fatalf("expected only raiders' own invalid ref, got %+v", v.InvalidRefs)
	}
	if !v.Orphaned {
		t.Fatalf("generator outside every era should carry the orphan flag")
	}

	clean := usage.ElementValidation(ElementGenerator, "traders")
	if len(clean.InvalidRefs) != 1 || clean.InvalidRefs[0].RefID != "wisp" {
		t.Fatalf("cross-element leakage in filtered view: %+v", clean.InvalidRefs)
	}
}

func TestOrphanFlagDoesNotAffectValidity(t *testing.T) {
	project := &config.Project{Schema: testSchema()}

	usage := Build(project)
	v := usage.ElementValidation(ElementEntityKind, "settlement")
	if !v.Orphaned {
		t.Fatalf("unreferenced kind should be orphaned")
	}
	if !v.Valid {
		t.Fatalf("orphan status alone must not make an element invalid")
	}
}

func TestUsageForCoversEveryCategory(t *testing.T) {
	project := &config.Project{
		Schema:    testSchema(),
		Pressures: []config.Pressure{{ID: "unrest"}},
		Generators: []config.Generator{
			{ID: "raiders", Select: config.Selection{Kind: "npc", Subtypes: []string{"noble"}, Status: "alive"}},
		},
		Systems: []config.System{{ID: "plague", Kind: config.SystemThreshold}},
	}

	usage := Build(project)
	cases := []struct {
		elemType ElementType
		id       string
	}{
		{ElementEntityKind, "npc"},
		{ElementRelationshipKind, "leads"},
		{ElementSubtype, "noble"},
		{ElementStatus, "alive"},
		{ElementTag, "cursed"},
		{ElementPressure, "unrest"},
		{ElementGenerator, "raiders"},
		{ElementSystem, "plague"},
	}
	for _, tc := range cases {
		if usage.UsageFor(tc.elemType, tc.id) == nil {
			t.Fatalf("UsageFor(%s, %s) returned nil for a declared element", tc.elemType, tc.id)
		}
	}
	if usage.UsageFor(ElementEntityKind, "ghost") != nil {
		t.Fatalf("UsageFor must return nil for unknown ids")
	}
	if usage.UsageFor(ElementEra, "founding") != nil {
		t.Fatalf("eras have no usage buckets")
	}
}

func TestUsageSummaryPhrasing(t *testing.T) {
	cases := []struct {
		usage *Usage
		want  string
	}{
		{nil, "Not used"},
		{&Usage{}, "Not used"},
		{&Usage{Generators: []Ref{{ID: "a"}, {ID: "b"}}, Systems: []Ref{{ID: "c"}}}, "Used by 2 generators, 1 system"},
		{&Usage{Actions: []Ref{{ID: "a"}}}, "Used by 1 action"},
		{&Usage{Eras: []Ref{{ID: "a"}}, Pressures: []Ref{{ID: "b"}, {ID: "c"}, {ID: "d"}}}, "Used by 1 era, 3 pressures"},
	}
	for _, tc := range cases {
		if got := UsageSummary(tc.usage); got != tc.want {
			t.Fatalf("UsageSummary = %q, want %q", got, tc.want)
		}
	}
}

func TestComputeSchemaUsageCountsSeeds(t *testing.T) {
	project := &config.Project{
		Schema: testSchema(),
		Generators: []config.Generator{
			{ID: "raiders", Select: config.Selection{Kind: "npc"}},
		},
		Seeds: []config.Seed{
			{ID: "king", Kind: "npc", Subtype: "noble", Status: "alive"},
			{ID: "keep", Kind: "settlement"},
		},
	}

	su := ComputeSchemaUsage(project)
	if su.EntityKinds["npc"] != 2 {
		t.Fatalf("expected npc counted by select and seed, got %d", su.EntityKinds["npc"])
	}
	if su.EntityKinds["settlement"] != 1 {
		t.Fatalf("expected settlement counted once via seed, got %d", su.EntityKinds["settlement"])
	}
	if su.Subtypes["noble"] != 1 || su.Statuses["alive"] != 1 {
		t.Fatalf("seed subtype/status not counted: %+v", su)
	}
}

func TestComputeSchemaUsageSkipsWildcard(t *testing.T) {
	project := &config.Project{
		Generators: []config.Generator{
			{ID: "wanderers", Select: config.Selection{Kind: config.Wildcard}},
		},
	}

	su := ComputeSchemaUsage(project)
	if len(su.EntityKinds) != 0 {
		t.Fatalf("wildcard must not be counted: %+v", su.EntityKinds)
	}
}

func TestComputeTagUsage(t *testing.T) {
	project := &config.Project{
		Generators: []config.Generator{
			{
				ID: "cultists",
				Select: config.Selection{Filters: []config.Filter{
					{Type: config.FilterHasTag, Tag: "devout"},
				}},
				Creates: []config.CreationTemplate{
					{Kind: "npc", Tags: []string{"devout", "hooded"}},
				},
				Mutations: []config.Mutation{
					{Type: config.MutationSetTag, Tag: "initiated"},
					{Type: config.MutationChangeStatus, Status: "devout"},
				},
				Variants: []config.Variant{
					{Apply: config.VariantApply{Tags: []string{"zealous"}}},
				},
			},
		},
		Systems: []config.System{
			{
				ID:   "fervor",
				Kind: config.SystemContagion,
				Contagion: &config.ContagionSystem{
					DescriptorTag: "devout",
					InfectionMutations: []config.Mutation{
						{Type: config.MutationSetTag, Tag: "devout"},
					},
				},
			},
		},
		Seeds: []config.Seed{
			{ID: "prophet", Kind: "npc", Tags: []string{"devout"}},
		},
	}

	counts := ComputeTagUsage(project)
	if counts["devout"] != 5 {
		t.Fatalf("expected devout counted 5 times, got %d", counts["devout"])
	}
	if counts["hooded"] != 1 || counts["initiated"] != 1 || counts["zealous"] != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	// The changeStatus mutation carries "devout" as a status; only tag
	// fields count, so the total stays at four distinct tags.
	if len(counts) != 4 {
		t.Fatalf("expected 4 distinct tags, got %+v", counts)
	}
}
