package launchcmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/jer-go/internal/domain"
)

type stubProvider struct {
	info domain.ProcessInfo
	err  error
}

func (s stubProvider) Capture() (domain.ProcessInfo, error) {
	return s.info, s.err
}

func newBuilder(t *testing.T, info domain.ProcessInfo) *Builder {
	t.Helper()
	b, err := New(stubProvider{info: info})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return b
}

func demoInfo() domain.ProcessInfo {
	return domain.ProcessInfo{
		Interpreter:      "/usr/bin/java",
		InputArguments:   []string{"-Xmx512m"},
		Classpath:        "/app/demo.jar",
		ProgramArguments: []string{"--port", "8080"},
		SystemProperties: map[string]string{
			"app.mode":      "prod",
			"db.password":   "hunter2",
			"blank.value":   "  ",
			"java.version":  "21",
			"sun.arch":      "64",
			"jdk.debug":     "release",
			"os.name":       "Linux",
			"user.timezone": "UTC",
		},
		Environment: map[string]string{
			"HOME":      "/home/app",
			"API_TOKEN": "secret",
			"EMPTY":     "",
		},
	}
}

func TestRenderReplacesClasspathTarget(t *testing.T) {
	b := newBuilder(t, domain.ProcessInfo{
		Interpreter:      "java",
		InputArguments:   []string{"-Xmx512m"},
		Classpath:        "/app/demo.jar",
		ProgramArguments: []string{"serve"},
	})

	got := b.Render("/extracted/app.jar", domain.RenderOptions{})
	want := "java -Xmx512m -cp /extracted/app.jar serve"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderFallsBackToCapturedClasspath(t *testing.T) {
	b := newBuilder(t, domain.ProcessInfo{Interpreter: "java", Classpath: "/app/demo.jar"})

	if got := b.Render("  ", domain.RenderOptions{}); got != "java -cp /app/demo.jar" {
		t.Fatalf("Render() = %q", got)
	}
}

func TestRenderJarMode(t *testing.T) {
	b := newBuilder(t, domain.ProcessInfo{Interpreter: "java", Classpath: "/app/demo.jar.-jar"})

	if got := b.Render("app.jar", domain.RenderOptions{}); got != "java -jar app.jar" {
		t.Fatalf("Render() = %q", got)
	}
}

func TestRenderOrdering(t *testing.T) {
	b := newBuilder(t, domain.ProcessInfo{
		Interpreter:      "java",
		InputArguments:   []string{"-Xss1m", "-ea"},
		SystemProperties: map[string]string{"b.key": "2", "a.key": "1"},
		BootClasspath:    "-Xbootclasspath/a:/boot.jar",
		Classpath:        "/app/demo.jar",
		ProgramArguments: []string{"run"},
		Environment:      map[string]string{"Z": "z", "A": "a"},
	})

	got := b.Render("x.jar", domain.RenderOptions{IncludeEnvironment: true, IncludeSystemProperties: true})
	want := "java -Xss1m -ea -Da.key=1 -Db.key=2 -Xbootclasspath/a:/boot.jar -cp x.jar run A=a Z=z"
	if got != want {
		t.Fatalf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderOmitsOptionalSections(t *testing.T) {
	b := newBuilder(t, demoInfo())

	got := b.Render("", domain.RenderOptions{})
	if strings.Contains(got, "-D") || strings.Contains(got, "HOME=") {
		t.Fatalf("properties and environment must be opt-in, got %q", got)
	}
	if got != "/usr/bin/java -Xmx512m -cp /app/demo.jar --port 8080" {
		t.Fatalf("Render() = %q", got)
	}
}

func TestRenderFiltersRuntimeProperties(t *testing.T) {
	b := newBuilder(t, demoInfo())
	b.AddSensitive("db.password")

	for _, opts := range []domain.RenderOptions{
		{IncludeSystemProperties: true},
		{IncludeSystemProperties: true, EscapeValues: true},
		{IncludeSystemProperties: true, RedactSensitive: true},
		{IncludeSystemProperties: true, EscapeValues: true, RedactSensitive: true},
	} {
		got := b.Render("", opts)
		for _, prefix := range []string{"-Dsun.", "-Djava.", "-Djdk.", "-Dos.", "-Dblank.value"} {
			if strings.Contains(got, prefix) {
				t.Fatalf("options %+v: unexpected %s in %q", opts, prefix, got)
			}
		}
		if !strings.Contains(got, "-Duser.timezone=") {
			t.Fatalf("options %+v: expected user.timezone in %q", opts, got)
		}
	}
}

func TestRenderValueFormatting(t *testing.T) {
	tests := []struct {
		name string
		opts domain.RenderOptions
		want []string
		deny []string
	}{
		{
			name: "plain",
			opts: domain.RenderOptions{IncludeSystemProperties: true, IncludeEnvironment: true},
			want: []string{"-Dapp.mode=prod", "-Ddb.password=hunter2", "API_TOKEN=secret", "HOME=/home/app"},
			deny: []string{`"`},
		},
		{
			name: "escaped",
			opts: domain.RenderOptions{IncludeSystemProperties: true, IncludeEnvironment: true, EscapeValues: true},
			want: []string{`-Dapp.mode="prod"`, `-Ddb.password="hunter2"`, `API_TOKEN="secret"`, `HOME="/home/app"`},
		},
		{
			name: "redacted",
			opts: domain.RenderOptions{IncludeSystemProperties: true, IncludeEnvironment: true, RedactSensitive: true},
			want: []string{"-Dapp.mode=prod", "-Ddb.password=...", "API_TOKEN=...", "HOME=/home/app"},
			deny: []string{"hunter2", "secret"},
		},
		{
			name: "redacted and escaped",
			opts: domain.RenderOptions{IncludeSystemProperties: true, IncludeEnvironment: true, RedactSensitive: true, EscapeValues: true},
			want: []string{`-Dapp.mode="prod"`, "-Ddb.password=...", "API_TOKEN=...", `HOME="/home/app"`},
			deny: []string{"hunter2", "secret"},
		},
	}

	b := newBuilder(t, demoInfo())
	b.AddSensitive("db.password", "API_TOKEN")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Render("", tt.opts)
			fields := strings.Fields(got)
			for _, w := range tt.want {
				if !contains(fields, w) {
					t.Errorf("expected %q in %q", w, got)
				}
			}
			for _, d := range tt.deny {
				if strings.Contains(got, d) {
					t.Errorf("did not expect %q in %q", d, got)
				}
			}
			if !contains(fields, "EMPTY") {
				t.Errorf("blank environment values render as the bare key, got %q", got)
			}
		})
	}
}

func TestAddSensitiveIsIdempotent(t *testing.T) {
	b := newBuilder(t, demoInfo())
	b.AddSensitive("API_TOKEN")
	b.AddSensitive("API_TOKEN", "", "db.password")

	if diff := cmp.Diff([]string{"API_TOKEN", "db.password"}, b.Sensitive()); diff != "" {
		t.Fatalf("sensitive mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	info := demoInfo()
	b := newBuilder(t, info)

	info.InputArguments[0] = "-Xmx1g"
	info.Environment["HOME"] = "/elsewhere"
	snap := b.Snapshot()
	snap.ProgramArguments[0] = "--mutated"

	if diff := cmp.Diff(demoInfo(), b.Snapshot()); diff != "" {
		t.Fatalf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestNewPropagatesCaptureError(t *testing.T) {
	boom := errors.New("no runtime info")
	if _, err := New(stubProvider{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
