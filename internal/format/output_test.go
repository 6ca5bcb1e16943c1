package format

import (
	"bytes"
	"strings"
	"testing"
)

type textPayload struct {
	Names []string `json:"names"`
}

func (p textPayload) Text() string { return strings.Join(p.Names, ", ") + "\n" }

func TestWrite_Formats(t *testing.T) {
	v := map[string]any{"data": map[string]any{"selected": []string{"Piano", "Sports"}, "count": 2}}

	tests := []struct {
		format string
		pretty bool
		want   string
	}{
		{format: "json", want: `{"data":{"count":2,"selected":["Piano","Sports"]}}` + "\n"},
		{format: "", want: `{"data":{"count":2,"selected":["Piano","Sports"]}}` + "\n"},
		{format: "edn", want: `{:data {:count 2 :selected ["Piano" "Sports"]}}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, v, tt.format, tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"Music", "Piano"}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "Music\nPiano\n" {
		t.Fatalf("unexpected text list: %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, textPayload{Names: []string{"a", "b"}}, "TEXT", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "a, b\n" {
		t.Fatalf("unexpected Texter output: %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"colors": []any{"#FFB3BA"}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :colors [\n    \"#FFB3BA\"\n  ]\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEDNKeyword(t *testing.T) {
	tests := map[string]string{
		"maxDepth":      "max-depth",
		"selected":      "selected",
		"taxonomy_path": "taxonomy-path",
		" pageSize ":    "page-size",
	}
	for in, want := range tests {
		if got := ednKeyword(in); got != want {
			t.Fatalf("ednKeyword(%q) = %q, want %q", in, got, want)
		}
	}
}
