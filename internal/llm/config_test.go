package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PULSEBOARD_LLM_ENABLED", "true")
	t.Setenv("PULSEBOARD_LLM_MODEL", "mistral")
	t.Setenv("PULSEBOARD_LLM_TIMEOUT_MS", "2500")
	t.Setenv("PULSEBOARD_LLM_NARRATIVE_TIMEOUT_MS", "1234")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskNarrative))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks[TaskNarrative] = TaskConfig{TimeoutMs: 0}
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskNarrative))
}
