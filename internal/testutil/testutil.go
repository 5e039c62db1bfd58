package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteStubScript(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteStubScript writes an executable shell stub running body and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	writeExecutable(t, path, "#!/bin/sh\n"+body+"\n")
	return path
}

// WriteRecordingStub writes an executable shell stub that appends its arguments,
// space-joined, as one line of logPath. When an invocation's joined arguments equal
// failOn, the stub exits with exitCode after recording; otherwise it exits 0.
// A "-r <file>" pair fails with exit 1 when <file> is missing, like a package installer.
func WriteRecordingStub(t *testing.T, dir string, name string, logPath string, failOn string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$*" >> %s
if [ "$*" = %s ]; then exit %d; fi
prev=""
for arg in "$@"; do
  if [ "$prev" = "-r" ] && [ ! -f "$arg" ]; then
    echo "ERROR: Could not open requirements file: $arg" >&2
    exit 1
  fi
  prev="$arg"
done
exit 0
`, shellQuote(logPath), shellQuote(failOn), exitCode)
	writeExecutable(t, path, script)
	return path
}

// ReadLines returns the non-empty lines recorded at path, or nil if it does not exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

func writeExecutable(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
