package main

import (
	"reflect"
	"testing"
)

func TestRewriteSearchShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"hobbies"},
			want: []string{"hobbies"},
		},
		{
			name: "shortcut first token",
			in:   []string{"hobbies", "/guit"},
			want: []string{"hobbies", "search", "guit"},
		},
		{
			name: "shortcut after value flag",
			in:   []string{"hobbies", "--dir", "/tmp/state", "/guit"},
			want: []string{"hobbies", "--dir", "/tmp/state", "search", "guit"},
		},
		{
			name: "shortcut after equals flag",
			in:   []string{"hobbies", "--dir=/tmp/state", "/guit"},
			want: []string{"hobbies", "--dir=/tmp/state", "search", "guit"},
		},
		{
			name: "shortcut after bool flag",
			in:   []string{"hobbies", "--pretty", "/guit"},
			want: []string{"hobbies", "--pretty", "search", "guit"},
		},
		{
			name: "shortcut after double dash",
			in:   []string{"hobbies", "--", "/guit"},
			want: []string{"hobbies", "--", "search", "guit"},
		},
		{
			name: "trailing args kept",
			in:   []string{"hobbies", "/guit", "--format", "text"},
			want: []string{"hobbies", "search", "guit", "--format", "text"},
		},
		{
			name: "bare slash is not a shortcut",
			in:   []string{"hobbies", "/"},
			want: []string{"hobbies", "/"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"hobbies", "toggle", "/etc"},
			want: []string{"hobbies", "toggle", "/etc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteSearchShortcutArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteSearchShortcutArgs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
