package config

// PathConstraintType discriminates the where-clause union of a path
// assertion.
type PathConstraintType string

const (
	PathConstraintRelationship PathConstraintType = "relationshipExists"
	PathConstraintKind         PathConstraintType = "kindEquals"
	PathConstraintSubtype      PathConstraintType = "subtypeEquals"
)

// PathStep is one hop in a graph-path assertion. RelationshipKind and
// RelationshipKinds are alternatives: a single kind or an alternation list.
// The target fields optionally constrain the entity reached by the hop.
type PathStep struct {
	RelationshipKind  string   `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	RelationshipKinds []string `yaml:"relationshipKinds,omitempty" json:"relationshipKinds,omitempty"`
	TargetKind        string   `yaml:"targetKind,omitempty" json:"targetKind,omitempty"`
	TargetSubtype     string   `yaml:"targetSubtype,omitempty" json:"targetSubtype,omitempty"`
	TargetStatus      string   `yaml:"targetStatus,omitempty" json:"targetStatus,omitempty"`
}

// PathConstraint is a typed predicate over entities bound by path steps.
// From and To name step positions ("start", "step0", ...); only the fields
// relevant to Type are set.
type PathConstraint struct {
	Type             PathConstraintType `yaml:"type" json:"type"`
	From             string             `yaml:"from,omitempty" json:"from,omitempty"`
	To               string             `yaml:"to,omitempty" json:"to,omitempty"`
	RelationshipKind string             `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Kind             string             `yaml:"kind,omitempty" json:"kind,omitempty"`
	Subtype          string             `yaml:"subtype,omitempty" json:"subtype,omitempty"`
}

// PathAssertion asserts that an ordered chain of relationships exists from
// a selected entity, with optional typed constraints over the entities the
// chain binds.
type PathAssertion struct {
	Steps []PathStep       `yaml:"steps,omitempty" json:"steps,omitempty"`
	Where []PathConstraint `yaml:"where,omitempty" json:"where,omitempty"`
}
