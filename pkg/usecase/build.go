package usecase

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// DefaultMetadataFile is the conventional build-metadata filename
const DefaultMetadataFile = "pyproject.toml"

type buildUseCase struct {
	metadata     interfaces.MetadataStore
	metadataFile string
}

// BuildOption is a functional option for the build use case
type BuildOption func(*buildUseCase)

// WithMetadataFile overrides the metadata filename looked up in the project directory
func WithMetadataFile(name string) BuildOption {
	return func(uc *buildUseCase) {
		uc.metadataFile = name
	}
}

// NewBuild creates a new instance of BuildUseCase
func NewBuild(metadata interfaces.MetadataStore, opts ...BuildOption) interfaces.BuildUseCase {
	uc := &buildUseCase{
		metadata:     metadata,
		metadataFile: DefaultMetadataFile,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Build produces the sdist and wheel archives in distDir
func (uc *buildUseCase) Build(ctx context.Context, projectDir, distDir string) ([]*model.Artifact, error) {
	logger := ctxlog.From(ctx)

	project, err := uc.metadata.Load(filepath.Join(projectDir, uc.metadataFile))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(distDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create dist directory", goerr.V("dir", distDir))
	}

	files, err := uc.collectFiles(projectDir, distDir)
	if err != nil {
		return nil, err
	}

	logger.Info("Building distributions",
		"project", project.Name,
		"version", project.Version,
		"file_count", len(files),
		"dist_dir", distDir,
	)

	sdist, err := uc.buildSdist(projectDir, distDir, project, files)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build sdist", goerr.V("project", project.Name))
	}

	wheel, err := uc.buildWheel(projectDir, distDir, project, files)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build wheel", goerr.V("project", project.Name))
	}

	logger.Info("Built distributions",
		"sdist", sdist.Name,
		"sdist_bytes", sdist.Size,
		"wheel", wheel.Name,
		"wheel_bytes", wheel.Size,
	)

	return []*model.Artifact{sdist, wheel}, nil
}

// collectFiles walks the project directory and returns the relative paths
// to include in the archives. VCS internals, caches and the dist output
// itself are excluded.
func (uc *buildUseCase) collectFiles(projectDir, distDir string) ([]string, error) {
	absDist, err := filepath.Abs(distDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve dist directory", goerr.V("dir", distDir))
	}

	var files []string
	err = filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			name := d.Name()
			if abs == absDist || name == "__pycache__" {
				return filepath.SkipDir
			}
			if strings.HasPrefix(name, ".") && path != projectDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(projectDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk project directory", goerr.V("dir", projectDir))
	}

	if len(files) == 0 {
		return nil, goerr.New("project directory contains no files", goerr.V("dir", projectDir))
	}

	return files, nil
}

// buildSdist writes <name>-<version>.tar.gz with all files under a
// <name>-<version>/ root, the layout source distributions use.
func (uc *buildUseCase) buildSdist(projectDir, distDir string, project *model.Project, files []string) (*model.Artifact, error) {
	root := fmt.Sprintf("%s-%s", project.NormalizedName(), project.Version)
	name := root + ".tar.gz"
	path := filepath.Join(distDir, name)

	out, err := os.Create(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sdist file", goerr.V("path", path))
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for _, rel := range files {
		src := filepath.Join(projectDir, rel)
		info, err := os.Stat(src)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to stat file", goerr.V("path", src))
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build tar header", goerr.V("path", src))
		}
		header.Name = root + "/" + filepath.ToSlash(rel)

		if err := tw.WriteHeader(header); err != nil {
			return nil, goerr.Wrap(err, "failed to write tar header", goerr.V("path", src))
		}
		if err := copyFileInto(tw, src); err != nil {
			return nil, err
		}
	}

	if err := tw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize tar stream", goerr.V("path", path))
	}
	if err := gz.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize gzip stream", goerr.V("path", path))
	}

	return artifactFor(path, name, model.ArtifactSdist)
}

// buildWheel writes <name>-<version>-py3-none-any.whl, a zip of the
// project files plus a generated dist-info directory.
func (uc *buildUseCase) buildWheel(projectDir, distDir string, project *model.Project, files []string) (*model.Artifact, error) {
	base := fmt.Sprintf("%s-%s", project.NormalizedName(), project.Version)
	name := base + "-py3-none-any.whl"
	path := filepath.Join(distDir, name)

	out, err := os.Create(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create wheel file", goerr.V("path", path))
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	for _, rel := range files {
		src := filepath.Join(projectDir, rel)
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create wheel entry", goerr.V("entry", rel))
		}
		if err := copyFileInto(w, src); err != nil {
			return nil, err
		}
	}

	distInfo := base + ".dist-info"
	metadata := fmt.Sprintf("Metadata-Version: 2.1\nName: %s\nVersion: %s\n", project.Name, project.Version)
	wheelInfo := fmt.Sprintf("Wheel-Version: 1.0\nGenerator: %s %s\nRoot-Is-Purelib: true\nTag: py3-none-any\n", types.AppName, types.Version)

	for entry, content := range map[string]string{
		distInfo + "/METADATA": metadata,
		distInfo + "/WHEEL":    wheelInfo,
	} {
		w, err := zw.Create(entry)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create dist-info entry", goerr.V("entry", entry))
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, goerr.Wrap(err, "failed to write dist-info entry", goerr.V("entry", entry))
		}
	}

	if err := zw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize wheel", goerr.V("path", path))
	}

	return artifactFor(path, name, model.ArtifactWheel)
}

func copyFileInto(w io.Writer, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", src))
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", src))
	}
	return nil
}

func artifactFor(path, name string, kind model.ArtifactKind) (*model.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat artifact", goerr.V("path", path))
	}
	return &model.Artifact{
		Path: path,
		Name: name,
		Kind: kind,
		Size: info.Size(),
	}, nil
}
