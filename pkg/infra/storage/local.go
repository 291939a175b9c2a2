package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

type localStore struct {
	baseDir string
}

// NewLocal creates an artifact store rooted at baseDir. One directory
// per project, one file per uploaded distribution.
func NewLocal(baseDir string) (interfaces.ArtifactStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("dir", baseDir))
	}
	return &localStore{baseDir: baseDir}, nil
}

// Save stores one uploaded file under the project's directory
func (s *localStore) Save(ctx context.Context, project, filename string, r io.Reader) (int64, error) {
	project = normalizeProject(project)
	filename = filepath.Base(filename)
	if project == "" || filename == "" || filename == "." {
		return 0, goerr.New("invalid project or filename",
			goerr.V("project", project),
			goerr.V("filename", filename),
		)
	}

	dir := filepath.Join(s.baseDir, project)
	destPath := filepath.Join(dir, filename)
	if !strings.HasPrefix(destPath, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return 0, goerr.New("invalid file path detected", goerr.V("path", destPath))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, goerr.Wrap(err, "failed to create project directory", goerr.V("dir", dir))
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create file", goerr.V("path", destPath))
	}
	defer dest.Close()

	size, err := io.Copy(dest, r)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to write file", goerr.V("path", destPath))
	}

	return size, nil
}

// List returns every stored project with its files
func (s *localStore) List(ctx context.Context) ([]model.IndexEntry, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read storage directory", goerr.V("dir", s.baseDir))
	}

	var index []model.IndexEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		files, err := s.ListProject(ctx, entry.Name())
		if err != nil {
			return nil, err
		}
		index = append(index, model.IndexEntry{
			Project: entry.Name(),
			Files:   files,
		})
	}

	sort.Slice(index, func(i, j int) bool { return index[i].Project < index[j].Project })
	return index, nil
}

// ListProject returns the files stored for one project
func (s *localStore) ListProject(ctx context.Context, project string) ([]string, error) {
	dir := filepath.Join(s.baseDir, normalizeProject(project))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read project directory", goerr.V("dir", dir))
	}

	// Non-nil even when empty: nil means the project does not exist
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// normalizeProject lowers the name and folds hyphens to underscores so
// "My-Pkg" and "my_pkg" land in the same directory.
func normalizeProject(project string) string {
	return strings.ToLower(strings.ReplaceAll(project, "-", "_"))
}
