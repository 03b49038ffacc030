package schema

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML declaration description from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	for i := range f.Structures {
		d := &f.Structures[i]
		if !d.Kind.IsValid() {
			return nil, fmt.Errorf("structure %s: unknown kind %q", d.Name, d.Kind)
		}
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Structures {
		d := &f.Structures[i]
		if d.Kind == "" {
			d.Kind = KindStruct
		}

		if d.Package == "" {
			d.Package = f.Package
		}
	}
}

// ExpandGlob resolves doublestar patterns (e.g., "decls/**/*.yaml") to a
// sorted list of matching file paths.
func ExpandGlob(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})

	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid declaration pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}

			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}

	sort.Strings(paths)

	return paths, nil
}

// LoadGlob loads every declaration file matching the patterns.
func LoadGlob(patterns ...string) ([]*File, error) {
	paths, err := ExpandGlob(patterns...)
	if err != nil {
		return nil, err
	}

	var files []*File

	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
}
