package quests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareURL(t *testing.T) {
	t.Run("DefaultsToLocalhost", func(t *testing.T) {
		t.Setenv("PUBLIC_BASE_URL", "")
		assert.Equal(t, "http://localhost:8888/public/quests/tok-1", shareURL("tok-1"))
	})

	t.Run("UsesConfiguredBase", func(t *testing.T) {
		t.Setenv("PUBLIC_BASE_URL", "https://quests.example.com")
		assert.Equal(t, "https://quests.example.com/public/quests/tok-1", shareURL("tok-1"))
	})

	t.Run("TrimsTrailingSlash", func(t *testing.T) {
		t.Setenv("PUBLIC_BASE_URL", "https://quests.example.com/")
		assert.Equal(t, "https://quests.example.com/public/quests/tok-1", shareURL("tok-1"))
	})
}
