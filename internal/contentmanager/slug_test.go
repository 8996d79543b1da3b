package contentmanager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "golang", "golang"},
		{"mixed case", "My Namespace", "my-namespace"},
		{"punctuation runs", "Hello,   World!!", "hello-world"},
		{"leading and trailing junk", "  --Go Tips--  ", "go-tips"},
		{"digits", "Top 10 Lists", "top-10-lists"},
		{"unicode stripped", "café & crème", "caf-cr-me"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestPageURLIdentifier(t *testing.T) {
	assert.Equal(t, "go-tips-channels", pageURLIdentifier("go-tips", "channels"))

	long := pageURLIdentifier(strings.Repeat("a", 60), "bcdefgh")
	assert.LessOrEqual(t, len(long), 64)
	assert.False(t, strings.HasSuffix(long, "-"))
}
