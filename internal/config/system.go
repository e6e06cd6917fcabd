package config

// SystemKind discriminates the simulation-system union.
type SystemKind string

const (
	SystemContagion      SystemKind = "contagion"
	SystemEvolution      SystemKind = "evolution"
	SystemThreshold      SystemKind = "threshold"
	SystemCluster        SystemKind = "cluster"
	SystemTagDiffusion   SystemKind = "tagDiffusion"
	SystemPlaneDiffusion SystemKind = "planeDiffusion"
)

// SystemKinds lists every system variant, in declaration order.
var SystemKinds = []SystemKind{
	SystemContagion,
	SystemEvolution,
	SystemThreshold,
	SystemCluster,
	SystemTagDiffusion,
	SystemPlaneDiffusion,
}

// PhaseTransition moves infected entities between contagion phases when an
// optional condition holds.
type PhaseTransition struct {
	FromTag string     `yaml:"fromTag,omitempty" json:"fromTag,omitempty"`
	ToTag   string     `yaml:"toTag,omitempty" json:"toTag,omitempty"`
	When    *Condition `yaml:"when,omitempty" json:"when,omitempty"`
}

// MultiSource configures contagion that requires several simultaneously
// infected neighbors before spreading.
type MultiSource struct {
	SourceTag      string `yaml:"sourceTag,omitempty" json:"sourceTag,omitempty"`
	MinimumSources int    `yaml:"minimumSources,omitempty" json:"minimumSources,omitempty"`
}

// ContagionSystem spreads a descriptor tag along vector relationships.
type ContagionSystem struct {
	DescriptorTag      string            `yaml:"descriptorTag,omitempty" json:"descriptorTag,omitempty"`
	Vectors            []string          `yaml:"vectors,omitempty" json:"vectors,omitempty"`
	InfectionMutations []Mutation        `yaml:"infectionMutations,omitempty" json:"infectionMutations,omitempty"`
	PhaseTransitions   []PhaseTransition `yaml:"phaseTransitions,omitempty" json:"phaseTransitions,omitempty"`
	MultiSource        *MultiSource      `yaml:"multiSource,omitempty" json:"multiSource,omitempty"`
}

// EvolutionRule mutates an entity when the system metric crosses Threshold,
// optionally scoped to one subtype.
type EvolutionRule struct {
	Subtype   string     `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Threshold float64    `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Mutations []Mutation `yaml:"mutations,omitempty" json:"mutations,omitempty"`
}

// EvolutionSystem scores selected entities by a metric and applies
// per-rule mutations, with flat per-subtype bonuses.
type EvolutionSystem struct {
	SubtypeBonuses map[string]float64 `yaml:"subtypeBonuses,omitempty" json:"subtypeBonuses,omitempty"`
	Metric         *Metric            `yaml:"metric,omitempty" json:"metric,omitempty"`
	Rules          []EvolutionRule    `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// ThresholdSystem fires effect mutations when all its conditions hold,
// optionally against members of a cluster relationship.
type ThresholdSystem struct {
	Conditions              []Condition `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	Effects                 []Mutation  `yaml:"effects,omitempty" json:"effects,omitempty"`
	ClusterRelationshipKind string      `yaml:"clusterRelationshipKind,omitempty" json:"clusterRelationshipKind,omitempty"`
}

// ClusterSystem groups entities matching Criteria under a new meta entity.
type ClusterSystem struct {
	Criteria                   Selection          `yaml:"criteria,omitempty" json:"criteria,omitempty"`
	MetaKind                   string             `yaml:"metaKind,omitempty" json:"metaKind,omitempty"`
	MetaSubtype                string             `yaml:"metaSubtype,omitempty" json:"metaSubtype,omitempty"`
	MetaTags                   []string           `yaml:"metaTags,omitempty" json:"metaTags,omitempty"`
	GovernanceRelationshipKind string             `yaml:"governanceRelationshipKind,omitempty" json:"governanceRelationshipKind,omitempty"`
	PressureChanges            map[string]float64 `yaml:"pressureChanges,omitempty" json:"pressureChanges,omitempty"`
}

// TagDiffusionSystem pulls connected entities' tag sets together
// (convergence) or apart (divergence), feeding a pressure on divergence.
type TagDiffusionSystem struct {
	ConnectionKind     string   `yaml:"connectionKind,omitempty" json:"connectionKind,omitempty"`
	ConvergenceTags    []string `yaml:"convergenceTags,omitempty" json:"convergenceTags,omitempty"`
	DivergenceTags     []string `yaml:"divergenceTags,omitempty" json:"divergenceTags,omitempty"`
	DivergencePressure string   `yaml:"divergencePressure,omitempty" json:"divergencePressure,omitempty"`
}

// PlaneDiffusionSystem moves a scalar value tag from source-tagged to
// sink-tagged entities, emitting output tags along the way.
type PlaneDiffusionSystem struct {
	SourceTags []string `yaml:"sourceTags,omitempty" json:"sourceTags,omitempty"`
	SinkTags   []string `yaml:"sinkTags,omitempty" json:"sinkTags,omitempty"`
	OutputTags []string `yaml:"outputTags,omitempty" json:"outputTags,omitempty"`
	ValueTag   string   `yaml:"valueTag,omitempty" json:"valueTag,omitempty"`
}

// System is a continuously running simulation rule: a tagged union over six
// kinds, each with its own inner config layered on a common selection rule
// and pressure-change map. Exactly the inner config matching Kind is set.
type System struct {
	ID              string             `yaml:"id" json:"id"`
	Kind            SystemKind         `yaml:"kind" json:"kind"`
	Select          Selection          `yaml:"select,omitempty" json:"select,omitempty"`
	PressureChanges map[string]float64 `yaml:"pressureChanges,omitempty" json:"pressureChanges,omitempty"`

	Contagion      *ContagionSystem      `yaml:"contagion,omitempty" json:"contagion,omitempty"`
	Evolution      *EvolutionSystem      `yaml:"evolution,omitempty" json:"evolution,omitempty"`
	Threshold      *ThresholdSystem      `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Cluster        *ClusterSystem        `yaml:"cluster,omitempty" json:"cluster,omitempty"`
	TagDiffusion   *TagDiffusionSystem   `yaml:"tagDiffusion,omitempty" json:"tagDiffusion,omitempty"`
	PlaneDiffusion *PlaneDiffusionSystem `yaml:"planeDiffusion,omitempty" json:"planeDiffusion,omitempty"`
}
