package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for extracted files (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Extraction constants
const (
	// DestinationTimestampLayout formats the archive mtime in destination names.
	DestinationTimestampLayout = "20060102-150405.000"
	// JarModeSuffix marks a captured classpath that was launched with -jar.
	JarModeSuffix = ".-jar"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// RedactedValue replaces the value of a sensitive key when rendering.
const RedactedValue = "..."

// IgnoredPropertyPrefixes are system property namespaces owned by the
// runtime itself and never replayed on a rendered command line.
var IgnoredPropertyPrefixes = []string{"sun.", "java.", "jdk.", "os."}
