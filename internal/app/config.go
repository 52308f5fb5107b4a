package app

// Config holds runtime configuration for one scrape.
type Config struct {
	// Manual location
	BaseURL string
	Version string

	// Output
	OutputPath    string
	OutputPDFPath string

	// Behavior
	Only          string
	Discover      bool
	MaxConcurrent int
	UserAgent     string
	Verbose       bool
}
