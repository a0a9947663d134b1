package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoObjectKey(t *testing.T) {
	key := VideoObjectKey("Paneer Tikka Masala!", "clip.MP4", "video/mp4")
	assert.True(t, strings.HasPrefix(key, "videos/paneer-tikka-masala-"), key)
	assert.True(t, strings.HasSuffix(key, ".mp4"), key)

	other := VideoObjectKey("Paneer Tikka Masala!", "clip.MP4", "video/mp4")
	assert.NotEqual(t, key, other, "keys must be unique per upload")
}

func TestVideoObjectKey_Fallbacks(t *testing.T) {
	key := VideoObjectKey("", "blob", "")
	assert.True(t, strings.HasPrefix(key, "videos/food-"), key)
	assert.False(t, strings.Contains(strings.TrimPrefix(key, "videos/"), "/"))
}
