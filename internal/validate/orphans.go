package validate

// detectOrphans runs after all scans: schema elements and pressures with
// zero usage across every bucket, generators and systems no era includes,
// and pressures that can only move monotonically. Output order is sorted
// by category then id.
func (b *Builder) detectOrphans() {
	for _, id := range sortedKeys(b.entityKinds) {
		if b.usage.EntityKinds[id].Total() == 0 {
			b.orphan(ElementEntityKind, id, "never referenced")
		}
	}
	for _, id := range sortedKeys(b.relationshipKinds) {
		if b.usage.RelationshipKinds[id].Total() == 0 {
			b.orphan(ElementRelationshipKind, id, "never referenced")
		}
	}
	for _, id := range sortedKeys(b.pressures) {
		if b.usage.Pressures[id].Total() == 0 {
			b.orphan(ElementPressure, id, "never referenced")
		}
	}
	for _, id := range sortedKeys(b.generators) {
		if len(b.usage.Generators[id].Eras) == 0 {
			b.orphan(ElementGenerator, id, "not included in any era")
		}
	}
	for _, id := range sortedKeys(b.systems) {
		if len(b.usage.Systems[id].Eras) == 0 {
			b.orphan(ElementSystem, id, "not included in any era")
		}
	}

	// A pressure with no feedback in either direction and no homeostasis
	// target can only drift monotonically and never stabilize. A design
	// smell, not a hard error.
	for _, pressure := range b.project.Pressures {
		if b.feedbackSources[pressure.ID] || b.feedbackSinks[pressure.ID] {
			continue
		}
		if pressure.Homeostasis != 0 {
			continue
		}
		b.orphan(ElementPressure, pressure.ID, "static pressure: no feedback factors and no homeostasis target")
	}
}

func (b *Builder) orphan(elemType ElementType, id, reason string) {
	b.usage.Results.Orphans = append(b.usage.Results.Orphans, Orphan{
		Type:   elemType,
		ID:     id,
		Reason: reason,
	})
}
