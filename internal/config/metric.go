package config

// MetricType discriminates the metric-expression union.
type MetricType string

const (
	MetricEntityCount        MetricType = "entityCount"
	MetricRelationshipCount  MetricType = "relationshipCount"
	MetricConnectionCount    MetricType = "connectionCount"
	MetricTagCount           MetricType = "tagCount"
	MetricRatio              MetricType = "ratio"
	MetricStatusRatio        MetricType = "statusRatio"
	MetricSharedRelationship MetricType = "sharedRelationship"
	MetricProminence         MetricType = "prominence"
)

// MetricTypes lists every metric variant, in declaration order.
var MetricTypes = []MetricType{
	MetricEntityCount,
	MetricRelationshipCount,
	MetricConnectionCount,
	MetricTagCount,
	MetricRatio,
	MetricStatusRatio,
	MetricSharedRelationship,
	MetricProminence,
}

// Metric is a numeric expression evaluated against the world graph.
// Ratio recurses into Numerator/Denominator. Prominence walks Via, a chain
// of relationship kinds, with an optional terminal TargetKind.
type Metric struct {
	Type             MetricType `yaml:"type" json:"type"`
	EntityKind       string     `yaml:"entityKind,omitempty" json:"entityKind,omitempty"`
	RelationshipKind string     `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Tag              string     `yaml:"tag,omitempty" json:"tag,omitempty"`
	Status           string     `yaml:"status,omitempty" json:"status,omitempty"`
	Numerator        *Metric    `yaml:"numerator,omitempty" json:"numerator,omitempty"`
	Denominator      *Metric    `yaml:"denominator,omitempty" json:"denominator,omitempty"`
	Via              []string   `yaml:"via,omitempty" json:"via,omitempty"`
	TargetKind       string     `yaml:"targetKind,omitempty" json:"targetKind,omitempty"`
}
