// Package loader walks a tools tree and mounts every registered tool router
// onto the host application under a prefix derived from its file location.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

// Loader resolves discovered tool files against a registry and mounts the
// resulting routers. A prefix is mounted at most once per Loader, so running
// the same Loader over an unchanged tree is idempotent.
type Loader struct {
	registry *toolkit.Registry
	prefix   string
	logger   *slog.Logger
	mounted  map[string]string
}

// New creates a loader that mounts tools from registry under the given URL
// prefix, conventionally "/tools".
func New(registry *toolkit.Registry, prefix string, logger *slog.Logger) *Loader {
	return &Loader{
		registry: registry,
		prefix:   strings.TrimSuffix(prefix, "/"),
		logger:   logger,
		mounted:  map[string]string{},
	}
}

// Load walks fsys, resolves each eligible file against the registry, and
// mounts every constructed router onto host. Construction failures are
// isolated per tool; only a filesystem walk failure aborts the run.
func (l *Loader) Load(host chi.Router, fsys fs.FS) (*Report, error) {
	candidates, err := Walk(fsys)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	visited := map[string]bool{}

	for _, c := range candidates {
		if !Eligible(c.File) {
			continue
		}

		id := Identifier(c)
		visited[id] = true

		tool, ok := l.registry.Lookup(id)
		if !ok {
			l.logger.Info("no router found", "tool", id)
			report.add(Outcome{Identifier: id, Status: StatusNoRouter})
			continue
		}

		router, err := construct(tool)
		if err != nil {
			l.logger.Error("failed to load tool", "tool", id, "error", err)
			report.add(Outcome{Identifier: id, Status: StatusFailed, Err: err})
			continue
		}

		prefix := l.prefix + "/" + id
		if prior, conflict := l.conflict(prefix); conflict {
			l.logger.Warn("prefix conflict, keeping earlier mount",
				"tool", id, "prefix", prefix, "mounted", prior)
			report.add(Outcome{
				Identifier: id,
				Prefix:     prefix,
				Status:     StatusConflict,
				Err:        fmt.Errorf("prefix %s conflicts with tool %s", prefix, prior),
			})
			continue
		}

		host.Mount(prefix, router)
		l.mounted[prefix] = id
		l.logger.Info("loaded tool", "tool", id, "prefix", prefix)
		report.add(Outcome{Identifier: id, Prefix: prefix, Status: StatusMounted})
	}

	for _, path := range l.registry.Paths() {
		if !visited[path] {
			l.logger.Warn("registered tool has no source file", "tool", path)
		}
	}

	return report, nil
}

// conflict reports whether prefix collides with an existing mount. Nested
// prefixes count as collisions too: the host router treats a mount as owning
// its whole subtree, and mounting inside one panics.
func (l *Loader) conflict(prefix string) (string, bool) {
	for mounted, id := range l.mounted {
		if prefix == mounted ||
			strings.HasPrefix(prefix, mounted+"/") ||
			strings.HasPrefix(mounted, prefix+"/") {
			return id, true
		}
	}
	return "", false
}

// construct builds the tool's router, converting panics into errors so one
// bad tool cannot abort startup.
func construct(tool toolkit.Tool) (router chi.Router, err error) {
	defer func() {
		if r := recover(); r != nil {
			router = nil
			err = fmt.Errorf("router construction panicked: %v", r)
		}
	}()

	router, err = tool.Router()
	if err != nil {
		return nil, err
	}
	if router == nil {
		return nil, errors.New("router constructor returned nil")
	}
	return router, nil
}
