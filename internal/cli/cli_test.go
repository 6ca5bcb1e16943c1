package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const testTaxonomy = `
version: 1
hobbies:
  - name: Sports
    score: 7
    items:
      - { name: Tennis, score: 3 }
      - { name: Running, score: 9 }
  - name: Music
    score: 10
    items:
      - { name: Guitar, score: 5 }
      - { name: Piano, score: 8 }
  - name: Crafts
    score: 1
    items:
      - { name: Knitting, score: 7 }
      - { name: Pottery, score: 6 }
      - { name: Origami, score: 5 }
      - { name: Quilting, score: 4 }
      - { name: Weaving, score: 3 }
      - { name: Macrame, score: 2 }
`

type cliEnv struct {
	dir      string
	taxonomy string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("HOBBIES_CONFIG_DIR", t.TempDir())
	for _, k := range []string{"HOBBIES_DIR", "HOBBIES_TAXONOMY", "HOBBIES_BACKEND", "HOBBIES_FORMAT"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(testTaxonomy), 0o644); err != nil {
		t.Fatalf("write taxonomy: %v", err)
	}
	return cliEnv{dir: filepath.Join(dir, "state"), taxonomy: path}
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func (e cliEnv) args(extra ...string) []string {
	return append([]string{"--dir", e.dir, "--taxonomy", e.taxonomy}, extra...)
}

func (e cliEnv) mustRun(t *testing.T, extra ...string) any {
	t.Helper()
	args := e.args(extra...)
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: hobbies %v\nerr: %v\nstderr:\n%s", args, err, string(stderr))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s", err, string(stdout))
	}
	data, ok := env["data"]
	if !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v", env)
	}
	return data
}

func strs(v any) []string {
	out := []string{}
	for _, x := range v.([]any) {
		out = append(out, x.(string))
	}
	return out
}

func TestFlatten_UsesScoreOrderAtEveryLevel(t *testing.T) {
	e := newCLIEnv(t)
	got := strs(e.mustRun(t, "flatten"))
	want := []string{
		"Music", "Piano", "Guitar",
		"Sports", "Running", "Tennis",
		"Crafts", "Knitting", "Pottery", "Origami", "Quilting", "Weaving", "Macrame",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten = %v\nwant %v", got, want)
	}
}

func TestToggle_PersistsAcrossInvocations(t *testing.T) {
	for _, backend := range []string{"sqlite", "json"} {
		t.Run(backend, func(t *testing.T) {
			e := newCLIEnv(t)
			e.mustRun(t, "--backend", backend, "toggle", "Guitar", "Running", "Piano")
			e.mustRun(t, "--backend", backend, "toggle", "Running")

			got := strs(e.mustRun(t, "--backend", backend, "selected"))
			if want := []string{"Piano", "Guitar"}; !reflect.DeepEqual(got, want) {
				t.Fatalf("selected = %v, want %v", got, want)
			}

			e.mustRun(t, "--backend", backend, "clear")
			if got := strs(e.mustRun(t, "--backend", backend, "selected")); len(got) != 0 {
				t.Fatalf("selected after clear = %v", got)
			}
		})
	}
}

func TestToggle_UnknownNameFailsWithoutChanges(t *testing.T) {
	e := newCLIEnv(t)
	_, stderr, err := runCLI(t, e.args("toggle", "Piano", "Skydiving"))
	if err == nil {
		t.Fatalf("expected error for unknown hobby")
	}
	if !strings.Contains(string(stderr), "hobby not found: Skydiving") {
		t.Fatalf("stderr = %q", string(stderr))
	}
	if got := strs(e.mustRun(t, "selected")); len(got) != 0 {
		t.Fatalf("expected no partial toggle; selected = %v", got)
	}
}

func TestSearch_ResultsAndSuggestions(t *testing.T) {
	e := newCLIEnv(t)

	data := e.mustRun(t, "search", "  I  ").(map[string]any)
	var names []string
	for _, r := range data["results"].([]any) {
		names = append(names, r.(map[string]any)["name"].(string))
	}
	want := []string{"Music", "Piano", "Guitar", "Running", "Tennis", "Knitting", "Origami", "Quilting", "Weaving"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("results = %v\nwant %v", names, want)
	}

	data = e.mustRun(t, "search", "uitr").(map[string]any)
	if len(data["results"].([]any)) != 0 {
		t.Fatalf("expected no substring results for uitr")
	}
	if s := strs(data["suggestions"]); len(s) == 0 || s[0] != "Guitar" {
		t.Fatalf("suggestions = %v", s)
	}
}

func TestTree_PagesAndBadges(t *testing.T) {
	e := newCLIEnv(t)
	e.mustRun(t, "toggle", "Piano")

	tree := e.mustRun(t, "tree").(map[string]any)["tree"].(map[string]any)
	nodes := tree["nodes"].([]any)
	music := nodes[0].(map[string]any)
	if music["name"] != "Music" || music["color"] != "#FFB3BA" {
		t.Fatalf("first category = %v", music)
	}
	counts := music["counts"].(map[string]any)
	if counts["selected"] != float64(1) || counts["total"] != float64(2) {
		t.Fatalf("Music counts = %v", counts)
	}

	crafts := nodes[2].(map[string]any)["children"].(map[string]any)
	if crafts["hidden"] != float64(1) || len(crafts["nodes"].([]any)) != 5 {
		t.Fatalf("Crafts window = %v", crafts)
	}

	expanded := e.mustRun(t, "tree", "--expand", "Crafts").(map[string]any)["tree"].(map[string]any)
	crafts = expanded["nodes"].([]any)[2].(map[string]any)["children"].(map[string]any)
	if crafts["hidden"] != float64(0) || len(crafts["nodes"].([]any)) != 6 {
		t.Fatalf("expanded Crafts window = %v", crafts)
	}
}

func TestTree_TextFormat(t *testing.T) {
	e := newCLIEnv(t)
	e.mustRun(t, "toggle", "Piano")

	stdout, stderr, err := runCLI(t, e.args("--format", "text", "tree", "--depth", "2"))
	if err != nil {
		t.Fatalf("tree failed: %v\n%s", err, string(stderr))
	}
	out := string(stdout)
	for _, want := range []string{
		"[ ] Music (1/2) #FFB3BA",
		"  [x] Piano",
		"  ... 1 more (Crafts)",
		"selected: Piano",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestColors_BasePaletteInScoreOrder(t *testing.T) {
	e := newCLIEnv(t)
	entries := e.mustRun(t, "colors").([]any)
	var got []string
	for _, x := range entries {
		m := x.(map[string]any)
		got = append(got, m["category"].(string)+"="+m["color"].(string))
	}
	want := []string{"Music=#FFB3BA", "Sports=#FFDFBA", "Crafts=#FFFFBA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("colors = %v, want %v", got, want)
	}
}

func TestCheck_ReportsDuplicates(t *testing.T) {
	e := newCLIEnv(t)
	dup := filepath.Join(t.TempDir(), "dup.json")
	body := `[{"name":"A","score":1,"items":[{"name":"X","score":1}]},{"name":"B","score":2,"items":[{"name":"X","score":1}]}]`
	if err := os.WriteFile(dup, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data := e.mustRun(t, "--taxonomy", dup, "check").(map[string]any)
	if strs(data["duplicates"])[0] != "X" || data["maxDepth"] != float64(2) {
		t.Fatalf("check = %v", data)
	}

	_, _, err := runCLI(t, []string{"--dir", e.dir, "--taxonomy", dup, "check", "--strict"})
	if err == nil {
		t.Fatalf("expected --strict to fail on duplicates")
	}
}

func TestConfig_SetPageSizeAffectsTree(t *testing.T) {
	e := newCLIEnv(t)
	e.mustRun(t, "config", "set", "pageSize", "2")

	tree := e.mustRun(t, "tree").(map[string]any)
	if tree["pageSize"] != float64(2) {
		t.Fatalf("pageSize = %v", tree["pageSize"])
	}
	top := tree["tree"].(map[string]any)
	if top["hidden"] != float64(1) {
		t.Fatalf("expected one category behind show-more; got %v", top["hidden"])
	}

	if _, _, err := runCLI(t, e.args("config", "set", "pageSize", "zero")); err == nil {
		t.Fatalf("expected invalid pageSize to fail")
	}
}

func TestDocs_TopicsAndRaw(t *testing.T) {
	e := newCLIEnv(t)
	topics := strs(e.mustRun(t, "docs").(map[string]any)["topics"])
	if len(topics) == 0 {
		t.Fatalf("expected docs topics")
	}

	stdout, _, err := runCLI(t, e.args("docs", "storage", "--raw"))
	if err != nil {
		t.Fatalf("docs --raw: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Storage") {
		t.Fatalf("raw docs = %q", string(stdout))
	}

	if _, _, err := runCLI(t, e.args("docs", "nope")); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

func TestEDNOutput(t *testing.T) {
	e := newCLIEnv(t)
	stdout, _, err := runCLI(t, e.args("--format", "edn", "selected"))
	if err != nil {
		t.Fatalf("selected edn: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != "{:data []}" {
		t.Fatalf("edn = %q", string(stdout))
	}
}
