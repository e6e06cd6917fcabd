package validate

import (
	"fmt"

	"github.com/loreweave-dev/loreweave/internal/config"
)

// ElementType identifies the category an element or reference belongs to.
// Generators, systems, actions, eras, and pressures own references; the
// schema categories are what those references point at.
type ElementType string

const (
	ElementGenerator ElementType = "generator"
	ElementSystem    ElementType = "system"
	ElementAction    ElementType = "action"
	ElementEra       ElementType = "era"
	ElementPressure  ElementType = "pressure"

	ElementEntityKind       ElementType = "entityKind"
	ElementRelationshipKind ElementType = "relationshipKind"
	ElementSubtype          ElementType = "subtype"
	ElementStatus           ElementType = "status"
	ElementTag              ElementType = "tag"
)

// Owner is the element a scanner is currently walking, with the structured
// path of the field under inspection.
type Owner struct {
	Type ElementType
	ID   string
	Path FieldPath
}

// at returns a copy of the owner pointing at a different field.
func (o Owner) at(path FieldPath) Owner {
	o.Path = path
	return o
}

// Location renders the owner for display, e.g. "generator raiders: creates[0].kind".
func (o Owner) Location() string {
	if o.Path.IsEmpty() {
		return fmt.Sprintf("%s %s", o.Type, o.ID)
	}
	return fmt.Sprintf("%s %s: %s", o.Type, o.ID, o.Path)
}

// Ref is one recorded use of a schema element by an owner.
type Ref struct {
	ID    string `json:"id"`
	Field string `json:"field,omitempty"`
}

// Usage buckets the owners referencing one element, keyed by owner
// category. Bucket order is scan insertion order.
type Usage struct {
	Generators []Ref `json:"generators,omitempty"`
	Systems    []Ref `json:"systems,omitempty"`
	Actions    []Ref `json:"actions,omitempty"`
	Eras       []Ref `json:"eras,omitempty"`
	Pressures  []Ref `json:"pressures,omitempty"`
}

func (u *Usage) add(owner Owner) {
	ref := Ref{ID: owner.ID, Field: owner.Path.String()}
	switch owner.Type {
	case ElementGenerator:
		u.Generators = append(u.Generators, ref)
	case ElementSystem:
		u.Systems = append(u.Systems, ref)
	case ElementAction:
		u.Actions = append(u.Actions, ref)
	case ElementEra:
		u.Eras = append(u.Eras, ref)
	case ElementPressure:
		u.Pressures = append(u.Pressures, ref)
	}
}

// Total sums entries across all buckets.
func (u *Usage) Total() int {
	return len(u.Generators) + len(u.Systems) + len(u.Actions) + len(u.Eras) + len(u.Pressures)
}

// InvalidRef records a reference to an id absent from its registry.
type InvalidRef struct {
	Type     ElementType `json:"type"`
	ID       string      `json:"id"`
	Field    string      `json:"field,omitempty"`
	RefType  ElementType `json:"refType"`
	RefID    string      `json:"refId"`
	Location string      `json:"location"`
}

// Orphan records a declared element nothing references.
type Orphan struct {
	Type   ElementType `json:"type"`
	ID     string      `json:"id"`
	Reason string      `json:"reason"`
}

// CompatibilityIssue records a relationship mutation whose resolved
// endpoint kinds cannot satisfy the relationship kind's declared
// constraints.
type CompatibilityIssue struct {
	Type  ElementType `json:"type"`
	ID    string      `json:"id"`
	Field string      `json:"field,omitempty"`
	Issue string      `json:"issue"`
}

// Results is the diagnostics triple attached to a usage map.
type Results struct {
	InvalidRefs   []InvalidRef         `json:"invalidRefs,omitempty"`
	Orphans       []Orphan             `json:"orphans,omitempty"`
	Compatibility []CompatibilityIssue `json:"compatibility,omitempty"`
}

// UsageMap is the bidirectional usage index: per schema element, the
// owners referencing it; per generator and system, the eras including it;
// plus diagnostics. It is rebuilt from scratch on every Build call.
type UsageMap struct {
	EntityKinds       map[string]*Usage `json:"entityKinds"`
	RelationshipKinds map[string]*Usage `json:"relationshipKinds"`
	Subtypes          map[string]*Usage `json:"subtypes"`
	Statuses          map[string]*Usage `json:"statuses"`
	Tags              map[string]*Usage `json:"tags"`
	Pressures         map[string]*Usage `json:"pressures"`
	Generators        map[string]*Usage `json:"generators"`
	Systems           map[string]*Usage `json:"systems"`
	Results           Results           `json:"results"`
}

// Builder accumulates the usage map during one scan. Its recording methods
// are the only way scanners touch the index: a known id lands in the
// element's usage bucket, an unknown id in InvalidRefs, and open-vocabulary
// references (subtype, status, tag) get a bucket on first sight.
type Builder struct {
	project *config.Project

	entityKinds       map[string]config.EntityKind
	relationshipKinds map[string]config.RelationshipKind
	pressures         map[string]bool
	generators        map[string]bool
	systems           map[string]bool

	feedbackSources map[string]bool
	feedbackSinks   map[string]bool

	usage *UsageMap
}

// NewBuilder indexes the project's registries and seeds a usage bucket for
// every declared element, so zero-usage elements stay visible to the
// orphan pass and to callers enumerating the map.
func NewBuilder(project *config.Project) *Builder {
	b := &Builder{
		project:           project,
		entityKinds:       make(map[string]config.EntityKind),
		relationshipKinds: make(map[string]config.RelationshipKind),
		pressures:         make(map[string]bool),
		generators:        make(map[string]bool),
		systems:           make(map[string]bool),
		feedbackSources:   make(map[string]bool),
		feedbackSinks:     make(map[string]bool),
		usage: &UsageMap{
			EntityKinds:       make(map[string]*Usage),
			RelationshipKinds: make(map[string]*Usage),
			Subtypes:          make(map[string]*Usage),
			Statuses:          make(map[string]*Usage),
			Tags:              make(map[string]*Usage),
			Pressures:         make(map[string]*Usage),
			Generators:        make(map[string]*Usage),
			Systems:           make(map[string]*Usage),
		},
	}

	for _, kind := range project.Schema.EntityKinds {
		b.entityKinds[kind.ID] = kind
		b.usage.EntityKinds[kind.ID] = &Usage{}
		for _, subtype := range kind.Subtypes {
			if b.usage.Subtypes[subtype] == nil {
				b.usage.Subtypes[subtype] = &Usage{}
			}
		}
		for _, status := range kind.Statuses {
			if b.usage.Statuses[status] == nil {
				b.usage.Statuses[status] = &Usage{}
			}
		}
	}
	for _, kind := range project.Schema.RelationshipKinds {
		b.relationshipKinds[kind.ID] = kind
		b.usage.RelationshipKinds[kind.ID] = &Usage{}
	}
	for _, tag := range project.Schema.Tags {
		if b.usage.Tags[tag] == nil {
			b.usage.Tags[tag] = &Usage{}
		}
	}
	for _, pressure := range project.Pressures {
		b.pressures[pressure.ID] = true
		b.usage.Pressures[pressure.ID] = &Usage{}
	}
	for _, gen := range project.Generators {
		b.generators[gen.ID] = true
		b.usage.Generators[gen.ID] = &Usage{}
	}
	for _, sys := range project.Systems {
		b.systems[sys.ID] = true
		b.usage.Systems[sys.ID] = &Usage{}
	}

	return b
}

// Map returns the accumulated usage map.
func (b *Builder) Map() *UsageMap {
	return b.usage
}

func (b *Builder) invalid(owner Owner, refType ElementType, refID string) {
	b.usage.Results.InvalidRefs = append(b.usage.Results.InvalidRefs, InvalidRef{
		Type:     owner.Type,
		ID:       owner.ID,
		Field:    owner.Path.String(),
		RefType:  refType,
		RefID:    refID,
		Location: owner.Location(),
	})
}

// RecordEntityKind validates an entity-kind reference. The wildcard kind
// matches anything and is never recorded.
func (b *Builder) RecordEntityKind(id string, owner Owner) {
	if id == "" || id == config.Wildcard {
		return
	}
	if _, ok := b.entityKinds[id]; !ok {
		b.invalid(owner, ElementEntityKind, id)
		return
	}
	b.usage.EntityKinds[id].add(owner)
}

// RecordEntityKinds records one reference per list entry.
func (b *Builder) RecordEntityKinds(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordEntityKind(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordRelationshipKind validates a relationship-kind reference.
func (b *Builder) RecordRelationshipKind(id string, owner Owner) {
	if id == "" {
		return
	}
	if _, ok := b.relationshipKinds[id]; !ok {
		b.invalid(owner, ElementRelationshipKind, id)
		return
	}
	b.usage.RelationshipKinds[id].add(owner)
}

// RecordRelationshipKinds records one reference per list entry.
func (b *Builder) RecordRelationshipKinds(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordRelationshipKind(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordPressure validates a pressure reference.
func (b *Builder) RecordPressure(id string, owner Owner) {
	if id == "" {
		return
	}
	if !b.pressures[id] {
		b.invalid(owner, ElementPressure, id)
		return
	}
	b.usage.Pressures[id].add(owner)
}

// RecordPressures records one reference per list entry.
func (b *Builder) RecordPressures(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordPressure(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordSubtype records a subtype reference. Subtypes are open vocabulary;
// unseen values get a bucket instead of an invalid ref.
func (b *Builder) RecordSubtype(id string, owner Owner) {
	if id == "" {
		return
	}
	if b.usage.Subtypes[id] == nil {
		b.usage.Subtypes[id] = &Usage{}
	}
	b.usage.Subtypes[id].add(owner)
}

// RecordSubtypes records one reference per list entry.
func (b *Builder) RecordSubtypes(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordSubtype(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordStatus records a status reference. Statuses are open vocabulary.
func (b *Builder) RecordStatus(id string, owner Owner) {
	if id == "" {
		return
	}
	if b.usage.Statuses[id] == nil {
		b.usage.Statuses[id] = &Usage{}
	}
	b.usage.Statuses[id].add(owner)
}

// RecordStatuses records one reference per list entry.
func (b *Builder) RecordStatuses(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordStatus(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordTag records a tag reference. Tags are open vocabulary.
func (b *Builder) RecordTag(id string, owner Owner) {
	if id == "" {
		return
	}
	if b.usage.Tags[id] == nil {
		b.usage.Tags[id] = &Usage{}
	}
	b.usage.Tags[id].add(owner)
}

// RecordTags records one reference per list entry.
func (b *Builder) RecordTags(ids []string, owner Owner) {
	for i, id := range ids {
		b.RecordTag(id, owner.at(owner.Path.Index(i)))
	}
}

// RecordGeneratorMember validates a generator id named by an era weight
// map and records the era inclusion.
func (b *Builder) RecordGeneratorMember(id string, owner Owner) {
	if id == "" {
		return
	}
	if !b.generators[id] {
		b.invalid(owner, ElementGenerator, id)
		return
	}
	b.usage.Generators[id].add(owner)
}

// RecordSystemMember validates a system id named by an era weight map and
// records the era inclusion.
func (b *Builder) RecordSystemMember(id string, owner Owner) {
	if id == "" {
		return
	}
	if !b.systems[id] {
		b.invalid(owner, ElementSystem, id)
		return
	}
	b.usage.Systems[id].add(owner)
}

// notePressureFeedback marks a pressure as having a feedback source
// (positive factor) or sink (negative factor) for the orphan pass.
func (b *Builder) notePressureFeedback(id string, positive bool) {
	if positive {
		b.feedbackSources[id] = true
	} else {
		b.feedbackSinks[id] = true
	}
}
