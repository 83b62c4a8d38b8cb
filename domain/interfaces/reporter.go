package interfaces

// ReportSink accepts report data from validation flows. Flows append, they
// never remove.
type ReportSink interface {
	Add(key string, value interface{})
	AddMany(values map[string]interface{})
}

// Reporter is the report bag owned by the orchestrator for one run
type Reporter interface {
	ReportSink

	Get(key string) (interface{}, bool)

	// Render writes the bag in the given format ("json" or "html") and
	// returns the written file path
	Render(format string) (string, error)

	// Generate renders every enabled format; failures are logged only
	Generate() []string
}

// ArtifactStore resolves where run artifacts are written
type ArtifactStore interface {
	ScreenshotPath(name, format string) string
	ReportPath(name string) string
	TracePath(name string) string
	WriteFile(path string, data []byte) error
}
