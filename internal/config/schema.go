package config

// Wildcard matches any entity kind in selection rules. It is never a
// reference to a declared kind.
const Wildcard = "any"

// EntityKind declares one kind of simulated entity together with its
// closed subtype and status vocabularies.
type EntityKind struct {
	ID       string   `yaml:"id" json:"id"`
	Subtypes []string `yaml:"subtypes,omitempty" json:"subtypes,omitempty"`
	Statuses []string `yaml:"statuses,omitempty" json:"statuses,omitempty"`
}

// RelationshipKind declares one kind of relationship and the entity kinds
// allowed at each endpoint. Empty constraint sets mean unconstrained.
type RelationshipKind struct {
	ID               string   `yaml:"id" json:"id"`
	SourceKinds      []string `yaml:"sourceKinds,omitempty" json:"sourceKinds,omitempty"`
	DestinationKinds []string `yaml:"destinationKinds,omitempty" json:"destinationKinds,omitempty"`
}

// Schema is the registry every other configuration element references.
// Entity and relationship kinds are closed sets; tags are an open
// vocabulary that authors extend freely.
type Schema struct {
	EntityKinds       []EntityKind       `yaml:"entityKinds,omitempty" json:"entityKinds,omitempty"`
	RelationshipKinds []RelationshipKind `yaml:"relationshipKinds,omitempty" json:"relationshipKinds,omitempty"`
	Tags              []string           `yaml:"tags,omitempty" json:"tags,omitempty"`
}
