package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; document library is data_dir/library.db"},
		{Key: "view", Default: "developer", Comment: "Default audience view: developer, recruiter, or client"},
		{Key: "output", Default: "markdown", Comment: "Default output mode: markdown, pretty, json, ndjson, or tui"},
		{Key: "style", Default: "dracula", Comment: "Glamour style used by pretty output and the preview TUI"},
		{Key: "word_wrap", Default: 80, Comment: "Word wrap column for pretty output and the preview TUI"},

		{Key: "export.dir", Default: "", Comment: "Directory README exports are written to; empty means the current directory"},
		{Key: "export.filename", Default: "README.md", Comment: "Filename used by the export command and the preview export key"},
	}
}
