package config

// FeedbackFactor names graph features that push a pressure up or down.
// A factor sets one or more of its reference fields; Weight scales its
// contribution.
type FeedbackFactor struct {
	EntityKind        string   `yaml:"entityKind,omitempty" json:"entityKind,omitempty"`
	RelationshipKind  string   `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	RelationshipKinds []string `yaml:"relationshipKinds,omitempty" json:"relationshipKinds,omitempty"`
	Tag               string   `yaml:"tag,omitempty" json:"tag,omitempty"`
	Tags              []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Weight            float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Pressure is a homeostatic scalar. Positive factors grow it, negative
// factors shrink it, and a non-zero Homeostasis target pulls it back.
// Zero Homeostasis means no target.
type Pressure struct {
	ID              string           `yaml:"id" json:"id"`
	Homeostasis     float64          `yaml:"homeostasis,omitempty" json:"homeostasis,omitempty"`
	PositiveFactors []FeedbackFactor `yaml:"positiveFactors,omitempty" json:"positiveFactors,omitempty"`
	NegativeFactors []FeedbackFactor `yaml:"negativeFactors,omitempty" json:"negativeFactors,omitempty"`
}

// Era weights which generators and systems run during one stretch of the
// timeline, with mutations applied on entry and exit.
type Era struct {
	ID               string             `yaml:"id" json:"id"`
	GeneratorWeights map[string]float64 `yaml:"generatorWeights,omitempty" json:"generatorWeights,omitempty"`
	SystemWeights    map[string]float64 `yaml:"systemWeights,omitempty" json:"systemWeights,omitempty"`
	OnEntry          []Mutation         `yaml:"onEntry,omitempty" json:"onEntry,omitempty"`
	OnExit           []Mutation         `yaml:"onExit,omitempty" json:"onExit,omitempty"`
}

// CreationTemplate shapes an entity a generator creates.
type CreationTemplate struct {
	Kind     string   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Subtype  string   `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Subtypes []string `yaml:"subtypes,omitempty" json:"subtypes,omitempty"`
	Status   string   `yaml:"status,omitempty" json:"status,omitempty"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// RelationshipSpec creates a relationship between symbolic endpoints
// (self, a variable id, or new:<index> for a just-created entity).
type RelationshipSpec struct {
	Kind        string  `yaml:"kind,omitempty" json:"kind,omitempty"`
	Source      string  `yaml:"source,omitempty" json:"source,omitempty"`
	Destination string  `yaml:"destination,omitempty" json:"destination,omitempty"`
	Strength    float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
}

// VariantApply is the block a generator variant applies when its condition
// holds.
type VariantApply struct {
	Relationships []RelationshipSpec `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	Tags          []string           `yaml:"tags,omitempty" json:"tags,omitempty"`
	Mutations     []Mutation         `yaml:"mutations,omitempty" json:"mutations,omitempty"`
}

// Variant is a conditional extension of a generator.
type Variant struct {
	When  Condition    `yaml:"when,omitempty" json:"when,omitempty"`
	Apply VariantApply `yaml:"apply,omitempty" json:"apply,omitempty"`
}

// Generator is a procedural rule that creates entities and relationships
// when its applicability conditions hold.
type Generator struct {
	ID            string                       `yaml:"id" json:"id"`
	Conditions    []Condition                  `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	Select        Selection                    `yaml:"select,omitempty" json:"select,omitempty"`
	Variables     map[string]VariableSelection `yaml:"variables,omitempty" json:"variables,omitempty"`
	Creates       []CreationTemplate           `yaml:"creates,omitempty" json:"creates,omitempty"`
	Relationships []RelationshipSpec           `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	Mutations     []Mutation                   `yaml:"mutations,omitempty" json:"mutations,omitempty"`
	Variants      []Variant                    `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// Probability gates an action: Base chance shifted by per-pressure
// modifiers.
type Probability struct {
	Base              float64            `yaml:"base,omitempty" json:"base,omitempty"`
	PressureModifiers map[string]float64 `yaml:"pressureModifiers,omitempty" json:"pressureModifiers,omitempty"`
}

// Action is a one-shot scripted event with an actor, a target, and outcome
// mutations.
type Action struct {
	ID              string             `yaml:"id" json:"id"`
	Actor           Selection          `yaml:"actor,omitempty" json:"actor,omitempty"`
	ActorConditions []Condition        `yaml:"actorConditions,omitempty" json:"actorConditions,omitempty"`
	Instigator      *VariableSelection `yaml:"instigator,omitempty" json:"instigator,omitempty"`
	Target          Selection          `yaml:"target,omitempty" json:"target,omitempty"`
	SecondaryTarget *Selection         `yaml:"secondaryTarget,omitempty" json:"secondaryTarget,omitempty"`
	Outcomes        []Mutation         `yaml:"outcomes,omitempty" json:"outcomes,omitempty"`
	Probability     *Probability       `yaml:"probability,omitempty" json:"probability,omitempty"`
}

// Seed is an initial world entity created before the first tick. Seeds are
// authored data, not rules; only the lightweight badge counts read them.
type Seed struct {
	ID      string   `yaml:"id" json:"id"`
	Kind    string   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Subtype string   `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Status  string   `yaml:"status,omitempty" json:"status,omitempty"`
	Tags    []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}
