package validate

import "testing"

func TestFieldPathString(t *testing.T) {
	cases := []struct {
		path FieldPath
		want string
	}{
		{NewFieldPath("select"), "select"},
		{NewFieldPath("creates").Index(0).Field("kind"), "creates[0].kind"},
		{NewFieldPath("creates").Index(0).Field("tags").Index(2), "creates[0].tags[2]"},
		{NewFieldPath("variables").Field("patron").Field("from"), "variables.patron.from"},
	}
	for _, tc := range cases {
		if got := tc.path.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFieldPathExtendDoesNotAliasParent(t *testing.T) {
	base := NewFieldPath("outcomes").Index(0)
	left := base.Field("source")
	right := base.Field("destination")

	if left.String() != "outcomes[0].source" {
		t.Fatalf("left branch corrupted: %q", left.String())
	}
	if right.String() != "outcomes[0].destination" {
		t.Fatalf("right branch corrupted: %q", right.String())
	}
	if base.String() != "outcomes[0]" {
		t.Fatalf("base mutated by extension: %q", base.String())
	}
}

func TestFieldPathIsEmpty(t *testing.T) {
	var zero FieldPath
	if !zero.IsEmpty() {
		t.Fatalf("zero path should be empty")
	}
	if NewFieldPath("select").IsEmpty() {
		t.Fatalf("non-empty path reported empty")
	}
}
