package main

// CLI defines the command-line interface structure for Kong. Flags
// override values loaded from the config file.
type CLI struct {
	Dirs []string `arg:"" name:"dirs" help:"Input directories to process"`

	Output    string `short:"o" help:"Output file path (stdout if omitted)"`
	Format    string `short:"f" help:"Output format (md, json, txt)"`
	Model     string `help:"LLM model to use"`
	MaxTokens int    `name:"max-tokens" help:"Maximum tokens in summary"`
	Verbose   bool   `short:"v" help:"Enable verbose output"`
	Config    string `short:"c" type:"path" help:"Custom config file path"`
	DryRun    bool   `name:"dry-run" help:"Print files that would be processed without generating output"`
	Debug     bool   `help:"Enable debug logging"`
}
