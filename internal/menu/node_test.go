// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"testing"
)

func TestInsertSortedPlacesAtSortedPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inserts []string
		want    []string
	}{
		{
			name:    "ascending input",
			inserts: []string{"a", "b", "c"},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "descending input",
			inserts: []string{"c", "b", "a"},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "case-insensitive interleaving",
			inserts: []string{"Banana", "apple", "Cherry", "apricot"},
			want:    []string{"apple", "apricot", "Banana", "Cherry"},
		},
		{
			name:    "middle insert",
			inserts: []string{"alpha", "zeta", "Middle"},
			want:    []string{"alpha", "Middle", "zeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewGroup("root", "/tmp/root")
			for _, name := range tt.inserts {
				g.insertSorted(NewLeaf(name, "/tmp/root/"+name, nil))
			}

			children := g.Children()
			if len(children) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(children), len(tt.want))
			}
			for i, c := range children {
				if c.Name() != tt.want[i] {
					t.Errorf("child[%d] = %q, want %q", i, c.Name(), tt.want[i])
				}
			}
		})
	}
}

func TestChildMatchesCaseSensitively(t *testing.T) {
	t.Parallel()

	g := NewGroup("root", "/tmp/root")
	g.insertSorted(NewLeaf("Hello.js", "/tmp/root/Hello.js", nil))

	if g.Child("Hello.js") == nil {
		t.Error("exact name not found")
	}
	if g.Child("hello.js") != nil {
		t.Error("name matching must be case-sensitive")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := NewGroup("root", "/tmp/root")
	sub := NewGroup("Sub", "/tmp/root/Sub")
	leaf := NewLeaf("x.js", "/tmp/root/Sub/x.js", nil)
	root.insertSorted(sub)
	sub.insertSorted(leaf)

	if got := root.Resolve("Sub", "x.js"); got != Node(leaf) {
		t.Errorf("Resolve(Sub, x.js) = %v, want the leaf", got)
	}
	if got := root.Resolve("Sub"); got != Node(sub) {
		t.Errorf("Resolve(Sub) = %v, want the group", got)
	}
	if got := root.Resolve("Sub", "missing.js"); got != nil {
		t.Errorf("Resolve of missing segment = %v, want nil", got)
	}
	if got := root.Resolve(); got != nil {
		t.Errorf("Resolve with no segments = %v, want nil", got)
	}
	if got := root.Resolve("Sub", "x.js", "deeper"); got != nil {
		t.Errorf("Resolve through a leaf = %v, want nil", got)
	}
}

func TestChildrenReturnsSnapshot(t *testing.T) {
	t.Parallel()

	g := NewGroup("root", "/tmp/root")
	g.insertSorted(NewLeaf("a.js", "/tmp/root/a.js", nil))

	snapshot := g.Children()
	g.insertSorted(NewLeaf("b.js", "/tmp/root/b.js", nil))

	if len(snapshot) != 1 {
		t.Errorf("snapshot len = %d, want 1", len(snapshot))
	}
	if g.Len() != 2 {
		t.Errorf("group len = %d, want 2", g.Len())
	}
}
