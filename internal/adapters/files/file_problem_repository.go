package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"tsp-tour-service/internal/platform/obs"
	"tsp-tour-service/internal/ports"
)

const Extension = ".tsp"

// Filesystem implementation of the ProblemRepository port.
// Each path is either a .tsp file or a directory whose top-level *.tsp
// files are all included. Unusable paths are logged and skipped.
type FileProblemRepository struct {
	Paths []string
}

func NewFileProblemRepository(paths []string) *FileProblemRepository {
	return &FileProblemRepository{Paths: paths}
}

// Discover resolves Paths to the list of .tsp files, in argument order.
// Files inside a directory are sorted by name.
func (r *FileProblemRepository) Discover() ([]string, []string) {
	var found, skipped []string

	for _, p := range r.Paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			skipped = append(skipped, fmt.Sprintf("Path %s does not exist", p))
			continue
		case err != nil:
			skipped = append(skipped, fmt.Sprintf("Path %s: %v", p, err))
			continue
		}

		switch {
		case info.IsDir():
			matches, err := filepath.Glob(filepath.Join(p, "*"+Extension))
			if err != nil {
				skipped = append(skipped, fmt.Sprintf("Path %s: %v", p, err))
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
					found = append(found, m)
				}
			}
		case info.Mode().IsRegular() && strings.HasSuffix(p, Extension):
			found = append(found, p)
		case info.Mode().IsRegular():
			skipped = append(skipped, fmt.Sprintf("Can't open file %q: not a %s file", p, Extension))
		default:
			skipped = append(skipped, fmt.Sprintf("Path %s is neither a file nor a directory", p))
		}
	}

	return found, skipped
}

// Return the contents of every discovered problem file.
func (r *FileProblemRepository) ListProblems(ctx context.Context) (_ []ports.ProblemFile, err error) {
	defer obs.Time(ctx, "files.ListProblems")(&err)

	paths, skipped := r.Discover()
	for _, msg := range skipped {
		log.Printf("skip: %s", msg)
	}

	out := make([]ports.ProblemFile, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("list problems: %w", err)
		}

		body, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("list problems: read %q: %w", p, err)
		}
		out = append(out, ports.ProblemFile{Path: p, Body: body})
	}

	return out, nil
}
