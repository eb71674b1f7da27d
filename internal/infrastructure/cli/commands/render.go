package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/jer-go/internal/domain"
)

// RenderExtraction prints the outcome of an extraction.
func RenderExtraction(out io.Writer, result domain.ExtractionResult) {
	if result.Skipped {
		fmt.Fprintf(out, "Destination %s already exists, nothing extracted (use --overwrite)\n", result.Directory)
		return
	}
	fmt.Fprintf(out, "Extracted %d entries (%s) to %s\n", result.Entries, humanize.Bytes(uint64(result.Bytes)), result.Directory)
}

// RenderRecords prints history records one per line.
func RenderRecords(out io.Writer, records []domain.RunRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s (%s) | %s | %s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			humanize.Time(rec.Timestamp),
			outcome(rec),
			rec.Archive,
			describeTarget(rec))
	}
}

func outcome(rec domain.RunRecord) string {
	switch {
	case !rec.Launched && rec.Success:
		return "extracted"
	case rec.Success:
		return "ok"
	default:
		return fmt.Sprintf("exit %d", rec.ExitCode)
	}
}

func describeTarget(rec domain.RunRecord) string {
	if rec.CommandLine != "" {
		return rec.CommandLine
	}
	if rec.Resource != "" {
		return rec.Resource
	}
	return rec.Destination
}
