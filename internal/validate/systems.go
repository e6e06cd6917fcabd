package validate

import (
	"github.com/loreweave-dev/loreweave/internal/config"
)

// systemScanner walks the inner config of one system variant. The owner
// arrives positioned at the variant's field.
type systemScanner func(b *Builder, sys config.System, owner Owner)

// systemScanners maps every system kind to its scanner. Adding a kind to
// config.SystemKinds without an entry here fails the dispatch-coverage
// test.
var systemScanners = map[config.SystemKind]systemScanner{
	config.SystemContagion:      scanContagion,
	config.SystemEvolution:      scanEvolution,
	config.SystemThreshold:      scanThreshold,
	config.SystemCluster:        scanCluster,
	config.SystemTagDiffusion:   scanTagDiffusion,
	config.SystemPlaneDiffusion: scanPlaneDiffusion,
}

func scanSystem(b *Builder, sys config.System) {
	owner := Owner{Type: ElementSystem, ID: sys.ID}

	extractSelection(b, sys.Select, owner.at(NewFieldPath("select")))
	path := NewFieldPath("pressureChanges")
	for _, id := range sortedKeys(sys.PressureChanges) {
		b.RecordPressure(id, owner.at(path.Field(id)))
	}

	if scan, ok := systemScanners[sys.Kind]; ok {
		scan(b, sys, owner.at(NewFieldPath(string(sys.Kind))))
	}
}

func scanContagion(b *Builder, sys config.System, owner Owner) {
	cfg := sys.Contagion
	if cfg == nil {
		return
	}
	path := owner.Path
	b.RecordTag(cfg.DescriptorTag, owner.at(path.Field("descriptorTag")))
	b.RecordRelationshipKinds(cfg.Vectors, owner.at(path.Field("vectors")))
	extractMutations(b, cfg.InfectionMutations, owner.at(path.Field("infectionMutations")))
	for i, transition := range cfg.PhaseTransitions {
		tPath := path.Field("phaseTransitions").Index(i)
		b.RecordTag(transition.FromTag, owner.at(tPath.Field("fromTag")))
		b.RecordTag(transition.ToTag, owner.at(tPath.Field("toTag")))
		if transition.When != nil {
			extractCondition(b, *transition.When, owner.at(tPath.Field("when")))
		}
	}
	if cfg.MultiSource != nil {
		b.RecordTag(cfg.MultiSource.SourceTag, owner.at(path.Field("multiSource").Field("sourceTag")))
	}
}

func scanEvolution(b *Builder, sys config.System, owner Owner) {
	cfg := sys.Evolution
	if cfg == nil {
		return
	}
	path := owner.Path
	bonusPath := path.Field("subtypeBonuses")
	for _, subtype := range sortedKeys(cfg.SubtypeBonuses) {
		b.RecordSubtype(subtype, owner.at(bonusPath.Field(subtype)))
	}
	if cfg.Metric != nil {
		extractMetric(b, *cfg.Metric, owner.at(path.Field("metric")))
	}
	for i, rule := range cfg.Rules {
		rulePath := path.Field("rules").Index(i)
		b.RecordSubtype(rule.Subtype, owner.at(rulePath.Field("subtype")))
		extractMutations(b, rule.Mutations, owner.at(rulePath.Field("mutations")))
	}
}

func scanThreshold(b *Builder, sys config.System, owner Owner) {
	cfg := sys.Threshold
	if cfg == nil {
		return
	}
	path := owner.Path
	extractConditions(b, cfg.Conditions, owner.at(path.Field("conditions")))
	extractMutations(b, cfg.Effects, owner.at(path.Field("effects")))
	b.RecordRelationshipKind(cfg.ClusterRelationshipKind, owner.at(path.Field("clusterRelationshipKind")))
}

func scanCluster(b *Builder, sys config.System, owner Owner) {
	cfg := sys.Cluster
	if cfg == nil {
		return
	}
	path := owner.Path
	extractSelection(b, cfg.Criteria, owner.at(path.Field("criteria")))
	b.RecordEntityKind(cfg.MetaKind, owner.at(path.Field("metaKind")))
	b.RecordSubtype(cfg.MetaSubtype, owner.at(path.Field("metaSubtype")))
	b.RecordTags(cfg.MetaTags, owner.at(path.Field("metaTags")))
	b.RecordRelationshipKind(cfg.GovernanceRelationshipKind, owner.at(path.Field("governanceRelationshipKind")))
	changesPath := path.Field("pressureChanges")
	for _, id := range sortedKeys(cfg.PressureChanges) {
		b.RecordPressure(id, owner.at(changesPath.Field(id)))
	}
}

func scanTagDiffusion(b *Builder, sys config.System, owner Owner) {
	cfg := sys.TagDiffusion
	if cfg == nil {
		return
	}
	path := owner.Path
	b.RecordRelationshipKind(cfg.ConnectionKind, owner.at(path.Field("connectionKind")))
	b.RecordTags(cfg.ConvergenceTags, owner.at(path.Field("convergenceTags")))
	b.RecordTags(cfg.DivergenceTags, owner.at(path.Field("divergenceTags")))
	b.RecordPressure(cfg.DivergencePressure, owner.at(path.Field("divergencePressure")))
}

func scanPlaneDiffusion(b *Builder, sys config.System, owner Owner) {
	cfg := sys.PlaneDiffusion
	if cfg == nil {
		return
	}
	path := owner.Path
	b.RecordTags(cfg.SourceTags, owner.at(path.Field("sourceTags")))
	b.RecordTags(cfg.SinkTags, owner.at(path.Field("sinkTags")))
	b.RecordTags(cfg.OutputTags, owner.at(path.Field("outputTags")))
	b.RecordTag(cfg.ValueTag, owner.at(path.Field("valueTag")))
}
