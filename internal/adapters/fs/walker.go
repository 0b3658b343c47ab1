// Package fs provides file system adapters for walking search roots.
package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

var _ ports.Walker = (*Walker)(nil)

// Classifier decides how the walker treats a path.
type Classifier interface {
	Classify(path string) domain.Outcome
}

// Walker collects bundle paths beneath search roots.
//
// Traversal is breadth first over an explicit worklist. Every directory of one
// level is listed concurrently; the next level is only started once the current
// one is drained. Symlinks are never followed, so no node is visited twice.
type Walker struct {
	checker Classifier
	logger  ports.Logger
	workers int
}

// NewWalker creates a new Walker using checker to classify every visited path.
func NewWalker(checker Classifier, logger ports.Logger) *Walker {
	return &Walker{
		checker: checker,
		logger:  logger,
		workers: defaultWorkers(),
	}
}

// WithWorkers bounds the number of directories listed concurrently.
func (w *Walker) WithWorkers(n int) *Walker {
	if n > 0 {
		w.workers = n
	}
	return w
}

// I/O bound: twice the cores, kept within [4, 32].
func defaultWorkers() int {
	return min(max(runtime.NumCPU()*2, 4), 32)
}

// Walk returns every bundle path reachable from root, sorted.
func (w *Walker) Walk(root string) []string {
	switch w.checker.Classify(root) {
	case domain.Unwanted:
		return nil
	case domain.Bundle:
		return []string{root}
	case domain.Normal:
	}

	var (
		mu    sync.Mutex
		found []string
	)

	level := []string{root}
	for len(level) > 0 {
		var next []string

		p := pool.New().WithMaxGoroutines(w.workers)
		for _, dir := range level {
			p.Go(func() {
				bundles, dirs := w.separate(dir)
				if len(bundles) == 0 && len(dirs) == 0 {
					return
				}
				mu.Lock()
				found = append(found, bundles...)
				next = append(next, dirs...)
				mu.Unlock()
			})
		}
		p.Wait()

		level = next
	}

	slices.Sort(found)
	return found
}

// WalkAll walks roots concurrently and concatenates their results in root order.
// A path reachable from more than one root is reported once, under the first.
func (w *Walker) WalkAll(roots []string) []string {
	results := make([][]string, len(roots))

	var wg conc.WaitGroup
	for i, root := range roots {
		wg.Go(func() { results[i] = w.Walk(root) })
	}
	wg.Wait()

	merged := make([]string, 0, len(results))
	seen := make(map[string]struct{})
	for _, paths := range results {
		for _, path := range paths {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			merged = append(merged, path)
		}
	}
	return merged
}

// separate lists dir and splits its children into bundles and directories to descend into.
// A listing failure is logged and yields no children.
func (w *Walker) separate(dir string) (bundles, dirs []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn(domain.ErrDirectoryReadFailed.Error(), "path", dir, "error", err)
		return nil, nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch w.checker.Classify(path) {
		case domain.Bundle:
			bundles = append(bundles, path)
		case domain.Normal:
			if entry.IsDir() {
				dirs = append(dirs, path)
			}
		case domain.Unwanted:
		}
	}
	return bundles, dirs
}
