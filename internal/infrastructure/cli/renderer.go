package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/infrastructure/cli/commands"
)

// RenderResponse reports a launch that did not start a process. When a
// process ran, stdout belongs to the child and nothing is printed.
func RenderResponse(out io.Writer, resp domain.LaunchResponse) {
	if resp.Launched || resp.Extraction.Directory == "" {
		return
	}
	commands.RenderExtraction(out, resp.Extraction)
	if resp.CommandLine != "" {
		fmt.Fprintf(out, "Command was not started: %s\n", resp.CommandLine)
	}
}
