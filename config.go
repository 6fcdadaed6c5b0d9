package doctldr

// Config holds all tool settings. It is loaded once at startup, overlaid
// with CLI flags, and passed explicitly through the call chain; nothing
// reads it as ambient state.
type Config struct {
	Default    DefaultConfig    `yaml:"default"`
	API        APIConfig        `yaml:"api"`
	Processing ProcessingConfig `yaml:"processing"`
	Output     OutputConfig     `yaml:"output"`
}

// DefaultConfig holds the summarization settings.
type DefaultConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	Format    string `yaml:"format"`
	Verbose   bool   `yaml:"verbose"`
}

// APIConfig identifies the LLM provider and the environment variable
// holding its credential.
type APIConfig struct {
	Provider string `yaml:"provider"`
	KeyEnv   string `yaml:"key_env"`
}

// ProcessingConfig controls directory traversal and file filtering.
type ProcessingConfig struct {
	IncludePatterns []string `yaml:"include_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	MaxDepth        int      `yaml:"max_depth"`
}

// OutputConfig controls output rendering.
type OutputConfig struct {
	DefaultFormat   string `yaml:"default_format"`
	IncludeMetadata bool   `yaml:"include_metadata"`
}

// NewDefaultConfig returns the built-in configuration used when no
// config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Default: DefaultConfig{
			Model:     "gpt-4",
			MaxTokens: 2048,
			Format:    "md",
		},
		API: APIConfig{
			Provider: "openai",
			KeyEnv:   "OPENAI_API_KEY",
		},
		Processing: ProcessingConfig{
			IncludePatterns: []string{"*.md", "*.rst", "*.txt", "*.html"},
			ExcludePatterns: []string{"node_modules", ".git"},
			MaxDepth:        5,
		},
		Output: OutputConfig{
			DefaultFormat:   "md",
			IncludeMetadata: true,
		},
	}
}
