// Package llm provides centralized LLM configuration and client abstractions
// for the two hosted capabilities the engine consumes: text embedding and
// natural-language generation.
package llm

// ModelTier represents the complexity/capability level of a generation model.
type ModelTier string

const (
	// TierLite is for simple tasks: short structured output, classification.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning and structured output.
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider       Provider
	Models         map[ModelTier]string
	EmbeddingModel string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		EmbeddingModel: "text-embedding-004",
	}
}

// GetModel returns the generation model name for a given tier, falling back
// to the standard tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithEmbeddingModel returns a copy of the config using a different embedding model.
func (c *Config) WithEmbeddingModel(model string) *Config {
	out := &Config{
		Provider:       c.Provider,
		Models:         make(map[ModelTier]string, len(c.Models)),
		EmbeddingModel: model,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	return out
}
