package config

// MutationType discriminates the mutation union.
type MutationType string

const (
	MutationSetTag              MutationType = "setTag"
	MutationRemoveTag           MutationType = "removeTag"
	MutationCreateRelationship  MutationType = "createRelationship"
	MutationAdjustRelationship  MutationType = "adjustRelationship"
	MutationArchiveRelationship MutationType = "archiveRelationship"
	MutationChangeStatus        MutationType = "changeStatus"
	MutationModifyPressure      MutationType = "modifyPressure"
)

// MutationTypes lists every mutation variant, in declaration order.
var MutationTypes = []MutationType{
	MutationSetTag,
	MutationRemoveTag,
	MutationCreateRelationship,
	MutationAdjustRelationship,
	MutationArchiveRelationship,
	MutationChangeStatus,
	MutationModifyPressure,
}

// Mutation is one state change applied by a generator, system, action, or
// era transition. Source and Destination are symbolic positions (actor,
// instigator, target, secondaryTarget, self, or a variable id) resolved at
// runtime, not schema references.
type Mutation struct {
	Type             MutationType `yaml:"type" json:"type"`
	Tag              string       `yaml:"tag,omitempty" json:"tag,omitempty"`
	RelationshipKind string       `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Source           string       `yaml:"source,omitempty" json:"source,omitempty"`
	Destination      string       `yaml:"destination,omitempty" json:"destination,omitempty"`
	Status           string       `yaml:"status,omitempty" json:"status,omitempty"`
	Pressure         string       `yaml:"pressure,omitempty" json:"pressure,omitempty"`
	Amount           float64      `yaml:"amount,omitempty" json:"amount,omitempty"`
}
