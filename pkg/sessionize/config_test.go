package sessionize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://sessionize.com/api/v2/xhudniix/view/Sessions", cfg.SessionsURL)
	assert.Equal(t, "https://sessionize.com/api/v2/xhudniix/view/Speakers", cfg.SpeakersURL)
}
