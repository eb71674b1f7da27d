package domain

// ExtractionRequest describes one archive extraction. DestinationRoot
// defaults to the system temp directory and an empty ResourceFilter
// extracts every entry.
type ExtractionRequest struct {
	ArchivePath     string
	DestinationRoot string
	ResourceFilter  string
	Overwrite       bool
}

// ExtractionResult names the destination directory of an extraction.
// Skipped is set when an existing directory was returned without writes.
type ExtractionResult struct {
	Directory string
	Created   bool
	Skipped   bool
	Entries   int
	Bytes     int64
}
