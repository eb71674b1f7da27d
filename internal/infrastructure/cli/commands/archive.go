package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/cobra"
)

// SplitArgs separates the archive argument from the program arguments that
// follow "--".
func SplitArgs(cmd *cobra.Command, args []string) (string, []string, error) {
	positional := args
	var programArgs []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional = args[:dash]
		programArgs = args[dash:]
	}
	switch len(positional) {
	case 0:
		return "", programArgs, nil
	case 1:
		return positional[0], programArgs, nil
	default:
		return "", nil, fmt.Errorf("expected at most one archive, got %d", len(positional))
	}
}

// ResolveArchive returns archive, or the running executable when it carries
// an appended zip archive.
func ResolveArchive(archive string) (string, error) {
	if archive != "" {
		return archive, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if !isZip(exe) {
		return "", errors.New(ErrNoArchive)
	}
	return exe, nil
}

func isZip(path string) bool {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	_ = r.Close()
	return true
}
