package procinfo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/jer-go/internal/domain"
)

func newTestProvider(settings domain.LaunchSettings, env []string) *JVMProvider {
	p := NewJVMProvider(settings, "/app/demo.jar", []string{"--port", "8080"}).
		WithEnviron(func() []string { return env })
	p.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	p.getwd = func() (string, error) { return "/work", nil }
	return p
}

func TestCaptureDefaults(t *testing.T) {
	p := newTestProvider(domain.LaunchSettings{}, []string{"PATH=/usr/bin", "LD_LIBRARY_PATH=/opt/lib"})

	info, err := p.Capture()
	if err != nil {
		t.Fatalf("Capture error: %v", err)
	}
	if info.Interpreter != "java" {
		t.Fatalf("Interpreter = %q, want java", info.Interpreter)
	}
	if info.Classpath != "/app/demo.jar" {
		t.Fatalf("Classpath = %q", info.Classpath)
	}
	if info.LibraryPath != "/opt/lib" {
		t.Fatalf("LibraryPath = %q", info.LibraryPath)
	}
	if diff := cmp.Diff([]string{"--port", "8080"}, info.ProgramArguments); diff != "" {
		t.Fatalf("program args mismatch (-want +got):\n%s", diff)
	}
	if info.SystemProperties["user.dir"] != "/work" {
		t.Fatalf("user.dir = %q", info.SystemProperties["user.dir"])
	}
	if info.Environment["PATH"] != "/usr/bin" {
		t.Fatalf("environment not captured: %v", info.Environment)
	}
	if info.StartupTime.IsZero() {
		t.Fatal("startup time must be set")
	}
}

func TestCaptureUsesJavaHome(t *testing.T) {
	p := newTestProvider(domain.LaunchSettings{}, []string{"JAVA_HOME=/opt/jdk"})

	info, err := p.Capture()
	if err != nil {
		t.Fatal(err)
	}
	if info.Interpreter != filepath.Join("/opt/jdk", "bin", javaBinary()) {
		t.Fatalf("Interpreter = %q", info.Interpreter)
	}
	if info.SystemProperties["java.home"] != "/opt/jdk" {
		t.Fatalf("java.home = %q", info.SystemProperties["java.home"])
	}
}

func TestCaptureConfiguredLaunch(t *testing.T) {
	settings := domain.LaunchSettings{
		JavaCommand:      "/usr/lib/jvm/bin/java",
		JVMOptions:       []string{"-Xmx512m", "-Dapp.mode=prod"},
		SystemProperties: map[string]string{"app.mode": "dev", "region": "eu"},
		BootClasspath:    "-Xbootclasspath/a:/boot.jar",
		Classpath:        "/app/lib/*",
		LibraryPath:      "/native",
	}
	p := newTestProvider(settings, []string{"JDK_JAVA_OPTIONS=-ea -Dtrace", "LD_LIBRARY_PATH=/ignored"})

	info, err := p.Capture()
	if err != nil {
		t.Fatal(err)
	}
	if info.Interpreter != "/usr/lib/jvm/bin/java" {
		t.Fatalf("Interpreter = %q", info.Interpreter)
	}
	if diff := cmp.Diff([]string{"-Xmx512m", "-Dapp.mode=prod", "-ea", "-Dtrace"}, info.InputArguments); diff != "" {
		t.Fatalf("input args mismatch (-want +got):\n%s", diff)
	}
	if info.SystemProperties["app.mode"] != "prod" {
		t.Fatalf("command line defines override config, got %q", info.SystemProperties["app.mode"])
	}
	if info.SystemProperties["region"] != "eu" {
		t.Fatalf("region = %q", info.SystemProperties["region"])
	}
	if v, ok := info.SystemProperties["trace"]; !ok || v != "" {
		t.Fatalf("trace = %q, %v", v, ok)
	}
	if info.Classpath != "/app/lib/*" || info.LibraryPath != "/native" || info.BootClasspath != "-Xbootclasspath/a:/boot.jar" {
		t.Fatalf("configured paths not applied: %+v", info)
	}
}

func TestParseEnviron(t *testing.T) {
	got := ParseEnviron([]string{"A=1", "B=x=y", "NOEQUALS", "=hidden", "A=2", "EMPTY="})
	want := map[string]string{"A": "2", "B": "x=y", "EMPTY": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseEnviron mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefines(t *testing.T) {
	got := ParseDefines([]string{"-Da=1", "-D", "-Xmx1g", "-Db", "-D=x", "-Dc=x=y"})
	want := map[string]string{"a": "1", "b": "", "c": "x=y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseDefines mismatch (-want +got):\n%s", diff)
	}
}
