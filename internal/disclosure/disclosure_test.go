package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleCount_DefaultAndGrowth(t *testing.T) {
	s := New(0)
	assert.Equal(t, 5, s.VisibleCount("never-seen"))

	assert.Equal(t, 10, s.Expand("Music"))
	assert.Equal(t, 10, s.VisibleCount("Music"))
	s.Expand("Music")
	assert.Equal(t, 15, s.VisibleCount("Music"))

	assert.Equal(t, 5, s.VisibleCount(RootKey), "other paths are untouched")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		expands     int
		total       int
		wantVisible int
		wantHidden  int
	}{
		{name: "short list", total: 3, wantVisible: 3, wantHidden: 0},
		{name: "exact page", total: 5, wantVisible: 5, wantHidden: 0},
		{name: "long list", total: 12, wantVisible: 5, wantHidden: 7},
		{name: "after expand", expands: 1, total: 12, wantVisible: 10, wantHidden: 2},
		{name: "expanded past end", expands: 2, total: 12, wantVisible: 12, wantHidden: 0},
		{name: "empty", total: 0, wantVisible: 0, wantHidden: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultPageSize)
			for i := 0; i < tt.expands; i++ {
				s.Expand("k")
			}
			v, h := s.Window("k", tt.total)
			assert.Equal(t, tt.wantVisible, v)
			assert.Equal(t, tt.wantHidden, h)
		})
	}
}

func TestCustomPageSize(t *testing.T) {
	s := New(3)
	assert.Equal(t, 3, s.VisibleCount(RootKey))
	assert.Equal(t, 6, s.Expand(RootKey))
}

func TestKeys_IsACopy(t *testing.T) {
	s := New(0)
	s.Expand("a")
	keys := s.Keys()
	keys["a"] = 99
	assert.Equal(t, 10, s.VisibleCount("a"))
}

func TestPathKeys(t *testing.T) {
	assert.Equal(t, RootKey, PathKey())
	assert.Equal(t, "Music", PathKey("Music"))
	assert.Equal(t, "Music/Instruments", PathKey("Music", "Instruments"))

	assert.Equal(t, "Music", ChildKey(RootKey, "Music"))
	assert.Equal(t, "Music/Instruments", ChildKey("Music", "Instruments"))
	assert.Equal(t, PathKey("Music", "Instruments"), ChildKey(ChildKey(RootKey, "Music"), "Instruments"))
}
