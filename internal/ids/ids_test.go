package ids

import (
	"sort"
	"testing"
)

func TestNewIsSortable(t *testing.T) {
	var generated []string
	for i := 0; i < 100; i++ {
		id := New()
		if len(id) != 26 {
			t.Fatalf("unexpected id length: %q", id)
		}
		generated = append(generated, id)
	}
	if !sort.StringsAreSorted(generated) {
		t.Fatal("expected monotonic ids within a single process")
	}
	seen := make(map[string]struct{}, len(generated))
	for _, id := range generated {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
