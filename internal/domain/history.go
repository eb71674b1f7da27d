package domain

import "time"

// RunRecord captures one extraction and, when a resource was given, the
// launch that followed it.
type RunRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Archive     string    `json:"archive"`
	Destination string    `json:"destination"`
	Created     bool      `json:"created"`
	Resource    string    `json:"resource"`
	CommandLine string    `json:"command_line"`
	Launched    bool      `json:"launched"`
	Success     bool      `json:"success"`
	ExitCode    int       `json:"exit_code"`
	DurationMS  int64     `json:"duration_ms"`
}
