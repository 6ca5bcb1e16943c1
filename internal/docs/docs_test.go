package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := Topics()
	want := []string{"keys", "overview", "storage", "taxonomy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Storage ")
	if !ok {
		t.Fatalf("expected storage topic")
	}
	if !strings.Contains(body, "selectedHobbies") {
		t.Fatalf("storage docs should name the storage key")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty topic to be missing")
	}
}

func TestRender_NoTTYStyleKeepsText(t *testing.T) {
	body, _ := Get("overview")
	out := Render(body, "notty", 60)
	if !strings.Contains(out, "Pick hobbies") {
		t.Fatalf("rendered docs lost content:\n%s", out)
	}
	if Render("   ", "notty", 60) != "" {
		t.Fatalf("expected empty render for blank markdown")
	}
}
