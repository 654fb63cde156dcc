package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel_ConfiguredTier(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestGetModel_UnknownTierFallsBackToStandard(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("experimental")))
}

func TestGetModel_FallsBackToLite(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "small-model"}}

	assert.Equal(t, "small-model", cfg.GetModel(TierAdvanced))
}

func TestGetModel_NoModelsConfigured(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{}}

	assert.Equal(t, "", cfg.GetModel(TierStandard))
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanJSONBlock(`  {"a": 1}  `))
}
