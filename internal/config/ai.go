package config

import "strings"

// Provider names accepted in LLM_PROVIDER
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// TaskModels defines which model to use for each kind of completion
type TaskModels struct {
	// Quiz is for multiple-choice question generation (needs large output)
	Quiz string `json:"quiz"`

	// Interaction is for drug interaction analysis and drug monographs
	Interaction string `json:"interaction"`

	// Summary is for research paper summaries
	Summary string `json:"summary"`

	// Chat is for the pharmacy assistant conversation
	Chat string `json:"chat"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	Provider  string     `json:"provider"`
	APIKey    string     `json:"-"` // Never serialize
	BaseURL   string     `json:"baseUrl"`
	Models    TaskModels `json:"models"`
	TimeoutMS int        `json:"timeoutMs"`
}

// DefaultAIConfig returns the AI configuration read from the environment
func DefaultAIConfig() *AIConfig {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq))
	if provider == ProviderGemini {
		model := getEnv("GEMINI_MODEL", "gemini-2.0-flash")
		return &AIConfig{
			Provider: ProviderGemini,
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Models: TaskModels{
				Quiz:        getEnv("GEMINI_MODEL_QUIZ", model),
				Interaction: getEnv("GEMINI_MODEL_INTERACTION", model),
				Summary:     getEnv("GEMINI_MODEL_SUMMARY", model),
				Chat:        getEnv("GEMINI_MODEL_CHAT", model),
			},
			TimeoutMS: getEnvInt("AI_TIMEOUT_MS", 60000),
		}
	}

	model := getEnv("GROQ_MODEL", "llama-3.3-70b-versatile")
	return &AIConfig{
		Provider: ProviderGroq,
		APIKey:   getEnv("GROQ_API_KEY", ""),
		BaseURL:  getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Models: TaskModels{
			Quiz:        getEnv("GROQ_MODEL_QUIZ", model),
			Interaction: getEnv("GROQ_MODEL_INTERACTION", model),
			Summary:     getEnv("GROQ_MODEL_SUMMARY", model),
			Chat:        getEnv("GROQ_MODEL_CHAT", model),
		},
		TimeoutMS: getEnvInt("AI_TIMEOUT_MS", 60000),
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}
