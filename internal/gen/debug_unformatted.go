package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that go/format rejected to a sidecar
// file next to the intended output, so the offending line can be inspected.
// An empty outDir disables it.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// the .txt suffix keeps the toolchain from compiling it
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
