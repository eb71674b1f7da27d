package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/doeshing/jer-go/internal/app"
	"github.com/doeshing/jer-go/internal/infrastructure/cli/commands"
	"github.com/doeshing/jer-go/internal/pkg/logger"
)

func TestRootExtractsWithoutLaunchTarget(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "demo.jar")
	writeArchive(t, archive, "bin/app.sh", "#!/bin/sh\n")

	out, err := runRoot(t, dir, archive, "-d", filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !strings.Contains(out, "Extracted 1 entries") {
		t.Fatalf("unexpected output %q", out)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "out", "demo-*", "bin", "app.sh"))
	if len(matches) != 1 {
		t.Fatalf("expected extracted file, got %v", matches)
	}
}

func TestRootVersionFlag(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "-v")
	if err != nil {
		t.Fatalf("version flag failed: %v", err)
	}
	if !strings.HasPrefix(out, "jer version ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestRootRejectsTwoArchives(t *testing.T) {
	if _, err := runRoot(t, t.TempDir(), "a.jar", "b.jar"); err == nil {
		t.Fatal("expected an error for two archives")
	}
}

func TestRootDebugFlagRaisesSessionVerbosity(t *testing.T) {
	dir := t.TempDir()
	session := commands.NewSession(app.Options{
		ConfigPath:  filepath.Join(dir, "config.yaml"),
		HistoryPath: filepath.Join(dir, "history.db"),
	})
	t.Cleanup(func() { _ = session.Close() })

	root := newRootCmd(session)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--debug", "version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !session.Options.Verbose {
		t.Fatal("--debug should make the session logger verbose")
	}
}

func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	session := commands.NewSession(app.Options{
		ConfigPath:  filepath.Join(dir, "config.yaml"),
		HistoryPath: filepath.Join(dir, "history.db"),
		Logger:      logger.NewNop(),
		Environ:     func() []string { return nil },
	})
	t.Cleanup(func() { _ = session.Close() })

	root := newRootCmd(session)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeArchive(t *testing.T, path, name, content string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	w := zip.NewWriter(file)
	entry, err := w.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entry.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
