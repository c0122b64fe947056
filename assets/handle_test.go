package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"images/logo.png", "images/logo.png"},
		{"./images/logo.png", "images/logo.png"},
		{"assets/images/logo.png", "images/logo.png"},
		{"/home/me/game/assets/fonts/a.ttf", "fonts/a.ttf"},
		{"/home/me/game/assets/../fonts/a.ttf", "/home/me/game/fonts/a.ttf"},
		{"/tmp/logo.png", "/tmp/logo.png"},
		{"/x/a/x.bin", "/x/a/x.bin"},
		{"/y/b/x.bin", "/y/b/x.bin"},
		{"images//logo.png", "images/logo.png"},
		{"images/./logo.png", "images/logo.png"},
		{"images/player/../logo.png", "images/logo.png"},
		{"assets//images/logo.png", "images/logo.png"},
		{"../outside.png", "../outside.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanPath(tt.in), "CleanPath(%q)", tt.in)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindImage, KindOf("a/b.PNG"))
	assert.Equal(t, KindFont, KindOf("Go Bold.ttf"))
	assert.Equal(t, KindAudio, KindOf("title.wav"))
	assert.Equal(t, KindRaw, KindOf("notes"))
}

func TestStore(t *testing.T) {
	s := NewStore()
	s.Set(KindImage, "logo", 1)
	s.Set(KindFont, "logo", 2)
	s.Set(KindImage, "", 3)
	s.Set(KindImage, "zero", 0)

	h, ok := s.Image("logo")
	assert.True(t, ok)
	assert.Equal(t, Handle(1), h)
	h, ok = s.Font("logo")
	assert.True(t, ok)
	assert.Equal(t, Handle(2), h)
	_, ok = s.Audio("logo")
	assert.False(t, ok)

	s.Set(KindImage, "bg", 4)
	assert.Equal(t, []string{"bg", "logo"}, s.Keys(KindImage))
	assert.Equal(t, 3, s.Len())

	var nilStore *Store
	_, ok = nilStore.Image("logo")
	assert.False(t, ok)
}
