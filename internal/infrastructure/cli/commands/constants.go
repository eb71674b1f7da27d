package commands

// Error messages
const (
	ErrConfigLoaderUnavailable = "config loader unavailable"
	ErrHistoryStoreUnavailable = "history store unavailable (is history.enabled false?)"
	ErrNoArchive               = "no archive given and the running executable carries no embedded archive"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoHistoryRecorded  = "No history recorded yet."
	MsgHistoryCleared     = "History cleared."
)
