// Package version carries build metadata injected via -ldflags.
package version

// Values are overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/doeshing/jer-go/internal/version.Version=v0.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
