package differ

import (
	"testing"

	"github.com/wonderfulspam/confdiff/pkg/document"
)

func mustParse(t *testing.T, src string) *document.Value {
	t.Helper()
	v, err := document.ParseYAML([]byte(src))
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return v
}

func TestCompare_NoChanges(t *testing.T) {
	config := mustParse(t, `
db:
  host: localhost
  port: 5432
features: [a, b]
`)

	result := Compare(config, config)

	if result.HasChanges() {
		t.Error("Expected no changes, but HasChanges is true")
	}
	if len(result.Added) != 0 || len(result.Removed) != 0 || len(result.Modified) != 0 {
		t.Errorf("Expected empty result, got %d/%d/%d", len(result.Added), len(result.Removed), len(result.Modified))
	}
	if result.Summary() != "No differences found" {
		t.Errorf("Expected 'No differences found', got '%s'", result.Summary())
	}
}

func TestCompare_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		added    map[string]string
		removed  map[string]string
		modified map[string][2]string
	}{
		{
			name:     "modified host",
			old:      `{db: {host: "x", port: 5432}}`,
			new:      `{db: {host: "y", port: 5432}}`,
			modified: map[string][2]string{"db.host": {"x", "y"}},
		},
		{
			name:  "added timeout",
			old:   `{feature: {enabled: true}}`,
			new:   `{feature: {enabled: true, timeout: 30}}`,
			added: map[string]string{"feature.timeout": "30"},
		},
		{
			name:    "removed key",
			old:     `{a: {b: 1, c: 2}}`,
			new:     `{a: {b: 1}}`,
			removed: map[string]string{"a.c": "2"},
		},
		{
			name: "identical sequences",
			old:  `{x: [1, 2, 3]}`,
			new:  `{x: [1, 2, 3]}`,
		},
		{
			name:  "empty old mapping",
			old:   `{}`,
			new:   `{k: "v"}`,
			added: map[string]string{"k": "v"},
		},
		{
			name:     "sequence compared wholesale",
			old:      `{x: [1, 2, 3]}`,
			new:      `{x: [1, 3, 2]}`,
			modified: map[string][2]string{"x": {"[1, 2, 3]", "[1, 3, 2]"}},
		},
		{
			name:     "string is not a number",
			old:      `{port: 1}`,
			new:      `{port: "1"}`,
			modified: map[string][2]string{"port": {"1", "1"}},
		},
		{
			name:     "leaf becomes mapping",
			old:      `{db: postgres}`,
			new:      `{db: {host: x}}`,
			added:    map[string]string{"db.host": "x"},
			removed:  map[string]string{"db": "postgres"},
			modified: nil,
		},
		{
			name: "non-mapping roots",
			old:  `[1, 2]`,
			new:  `scalar`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(mustParse(t, tt.old), mustParse(t, tt.new))

			checkEntries(t, "added", result.Added, tt.added, func(d ConfigDiff) *document.Value { return d.NewValue })
			checkEntries(t, "removed", result.Removed, tt.removed, func(d ConfigDiff) *document.Value { return d.OldValue })

			if len(result.Modified) != len(tt.modified) {
				t.Fatalf("Expected %d modified entries, got %d", len(tt.modified), len(result.Modified))
			}
			for _, d := range result.Modified {
				want, ok := tt.modified[d.Path]
				if !ok {
					t.Errorf("Unexpected modified path %s", d.Path)
					continue
				}
				if got := document.Render(d.OldValue); got != want[0] {
					t.Errorf("%s old value = %q, want %q", d.Path, got, want[0])
				}
				if got := document.Render(d.NewValue); got != want[1] {
					t.Errorf("%s new value = %q, want %q", d.Path, got, want[1])
				}
				if d.Type != DiffTypeModified {
					t.Errorf("Expected DiffTypeModified, got %s", d.Type)
				}
			}
		})
	}
}

func checkEntries(t *testing.T, label string, got []ConfigDiff, want map[string]string, value func(ConfigDiff) *document.Value) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d %s entries, got %d", len(want), label, len(got))
	}
	for _, d := range got {
		w, ok := want[d.Path]
		if !ok {
			t.Errorf("Unexpected %s path %s", label, d.Path)
			continue
		}
		if r := document.Render(value(d)); r != w {
			t.Errorf("%s %s = %q, want %q", label, d.Path, r, w)
		}
		if string(d.Type) != label {
			t.Errorf("Expected type %s, got %s", label, d.Type)
		}
	}
}

func TestCompare_SetsAreDisjoint(t *testing.T) {
	oldDoc := mustParse(t, `
a: 1
b: {c: 2, d: 3}
e: [1]
g: {h: {i: true}}
`)
	newDoc := mustParse(t, `
a: 2
b: {c: 2, f: 4}
e: [1]
g: {h: {i: false, j: null}}
k: new
`)

	result := Compare(oldDoc, newDoc)

	seen := map[string]DiffType{}
	for _, group := range [][]ConfigDiff{result.Added, result.Removed, result.Modified} {
		for _, d := range group {
			if prev, dup := seen[d.Path]; dup {
				t.Errorf("Path %s reported as both %s and %s", d.Path, prev, d.Type)
			}
			seen[d.Path] = d.Type
		}
	}

	if result.Total() != 6 {
		t.Errorf("Expected 6 changes, got %d: %s", result.Total(), result.Summary())
	}
	if result.Summary() != "3 added, 1 removed, 2 modified (6 total changes)" {
		t.Errorf("Unexpected summary %q", result.Summary())
	}
}

func TestCompare_ResultOrdering(t *testing.T) {
	oldDoc := mustParse(t, `{}`)
	newDoc := mustParse(t, `
zeta: 1
db:
  port: 5432
  host: x
  pool:
    size: 4
alpha: 2
`)

	result := Compare(oldDoc, newDoc)

	want := []string{"alpha", "db.host", "db.port", "db.pool.size", "zeta"}
	got := result.Paths(DiffTypeAdded)
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	lexical := CompareWith(oldDoc, newDoc, Options{Order: CompareLexical})
	wantLexical := []string{"alpha", "db.host", "db.pool.size", "db.port", "zeta"}
	gotLexical := lexical.Paths(DiffTypeAdded)
	for i := range wantLexical {
		if gotLexical[i] != wantLexical[i] {
			t.Errorf("Lexical position %d: expected %s, got %s", i, wantLexical[i], gotLexical[i])
		}
	}
}

func TestCompare_ReferencesInputValues(t *testing.T) {
	oldDoc := mustParse(t, `{a: {b: 1}}`)
	newDoc := mustParse(t, `{a: {b: 2}}`)

	result := Compare(oldDoc, newDoc)
	if len(result.Modified) != 1 {
		t.Fatalf("Expected 1 modified entry, got %d", len(result.Modified))
	}

	a, _ := oldDoc.Get("a")
	b, _ := a.Get("b")
	if result.Modified[0].OldValue != b {
		t.Error("Expected the result to point at the old document's leaf")
	}
}
