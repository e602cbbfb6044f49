package loader

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Candidate is one regular file discovered under the tools root.
// Dir is the path of its parent directory relative to the root ("." for
// files sitting directly in the root).
type Candidate struct {
	Dir  string
	File string
}

// Walk enumerates every regular file in the subtree rooted at fsys, in
// lexical order. Eligibility filtering is applied by the caller, not here.
func Walk(fsys fs.FS) ([]Candidate, error) {
	var candidates []Candidate

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		candidates = append(candidates, Candidate{
			Dir:  path.Dir(p),
			File: d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk tools root: %w", err)
	}

	return candidates, nil
}

// Eligible reports whether a filename is a loadable tool source file.
// Double-underscore names are reserved for templates and private helpers.
func Eligible(name string) bool {
	if !strings.HasSuffix(name, ".go") {
		return false
	}
	if strings.HasPrefix(name, "__") {
		return false
	}
	if strings.HasSuffix(name, "_test.go") {
		return false
	}
	return true
}

// Identifier derives the registry identifier for a candidate: its path
// relative to the tools root with the source extension stripped.
func Identifier(c Candidate) string {
	name := strings.TrimSuffix(c.File, ".go")
	if c.Dir == "." {
		return name
	}
	return path.Join(c.Dir, name)
}
