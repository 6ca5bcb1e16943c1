package taxonomy

import (
	"reflect"
	"strings"
	"testing"

	"hobbies-cli/internal/model"

	"pgregory.net/rapid"
)

func scenarioForest() []model.Node {
	return []model.Node{
		{Name: "Music", Score: 10, Items: []model.Node{
			{Name: "Guitar", Score: 5},
			{Name: "Piano", Score: 8},
		}},
		{Name: "Sports", Score: 7},
	}
}

func TestFlatten_PreOrderOverSortedView(t *testing.T) {
	got := Flatten(scenarioForest())
	want := []string{"Music", "Piano", "Guitar", "Sports"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFlatten_EmptyForest(t *testing.T) {
	got := Flatten(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: []string{}},
		{name: "whitespace query", query: "   \t", want: []string{}},
		{name: "case insensitive", query: "mu", want: []string{"Music"}},
		{name: "trimmed", query: "  PIANO ", want: []string{"Piano"}},
		{name: "flattened order", query: "i", want: []string{"Music", "Piano", "Guitar"}},
		{name: "no match", query: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(scenarioForest(), tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearch_IsFilteredFlattenProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		forest := genForest(t, 2, "n")
		q := rapid.SampledFrom([]string{"n", "N0", ".1", "2.", "x"}).Draw(t, "query")

		var want []string
		for _, name := range Flatten(forest) {
			if strings.Contains(strings.ToLower(name), strings.ToLower(q)) {
				want = append(want, name)
			}
		}
		got := Search(forest, q)
		if len(want) == 0 && len(got) == 0 {
			return
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Search(%q) = %v, want %v", q, got, want)
		}
	})
}

func TestCategoryOf(t *testing.T) {
	forest := scenarioForest()
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "Piano", want: "Music", wantOK: true},
		{name: "Music", want: "Music", wantOK: true},
		{name: "Sports", want: "Sports", wantOK: true},
		{name: "Chess", want: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := CategoryOf(forest, tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("CategoryOf(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFind_ReturnsSortedSubtree(t *testing.T) {
	n, ok := Find(scenarioForest(), "Music")
	if !ok {
		t.Fatalf("expected Music to be found")
	}
	if got := names(n.Items); !reflect.DeepEqual(got, []string{"Piano", "Guitar"}) {
		t.Fatalf("expected sorted children, got %v", got)
	}
	if _, ok := Find(scenarioForest(), "nope"); ok {
		t.Fatalf("expected unknown name to be missing")
	}
}
