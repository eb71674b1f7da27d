package domain

// LaunchRequest captures operator intent originating from the CLI.
type LaunchRequest struct {
	Extraction ExtractionRequest
	Resource   string
	Render     RenderOptions
}

// LaunchResponse is the canonical response propagated back to the CLI.
// CommandLine is always the redacted rendering.
type LaunchResponse struct {
	Extraction  ExtractionResult
	CommandLine string
	Launched    bool
	Execution   *ExecutionResult
}
