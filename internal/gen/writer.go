package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. A file with its own Dir goes
// there; otherwise it goes to outputDir. Directories are created as needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		if dir == "" {
			return fmt.Errorf("no output directory for %s", file.Filename)
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// writeDebugUnformatted dumps unformattable template output next to the
// regular output so template bugs can be inspected.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, filename+".unformatted"), content, filePerm)
}
