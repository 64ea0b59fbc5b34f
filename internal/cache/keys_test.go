package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("WithoutParams", func(t *testing.T) {
		key := GenerateCacheKey("generation", "topics", "upsc")
		assert.Equal(t, "studytrack:generation:topics:upsc", key)
	})

	t.Run("WithParams", func(t *testing.T) {
		key := GenerateCacheKey("generation", "quiz", "indian-polity", "intermediate", "upsc", "5")
		assert.Equal(t, "studytrack:generation:quiz:indian-polity:intermediate_upsc_5", key)
	})
}
