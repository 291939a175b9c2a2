package metadata

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// versionPrefix is the exact prefix of the declaration line that gets
// rewritten. Indented occurrences (e.g. pinned dependency tables) are
// intentionally not matched.
const versionPrefix = "version = "

type store struct{}

// New creates a metadata store for pyproject-style TOML files
func New() interfaces.MetadataStore {
	return &store{}
}

// pyproject covers the two places a distribution name and version live
type pyproject struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Load parses the metadata file and returns the project it describes
func (s *store) Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read metadata file", goerr.V("path", path))
	}

	var meta pyproject
	if err := toml.Unmarshal(data, &meta); err != nil {
		return nil, goerr.Wrap(err, "failed to parse metadata file", goerr.V("path", path))
	}

	project := &model.Project{
		Name:    meta.Project.Name,
		Version: meta.Project.Version,
	}
	if project.Name == "" {
		project.Name = meta.Tool.Poetry.Name
		project.Version = meta.Tool.Poetry.Version
	}
	if project.Name == "" {
		return nil, goerr.New("metadata file declares no project name", goerr.V("path", path))
	}

	return project, nil
}

// RewriteVersion overwrites the first line beginning with "version = ",
// leaving every other byte of the file untouched. A file without such a
// line is an error, not a silent no-op.
func (s *store) RewriteVersion(path string, version model.ReleaseVersion) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat metadata file", goerr.V("path", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read metadata file", goerr.V("path", path))
	}

	lines := strings.Split(string(data), "\n")
	rewritten := false
	for i, line := range lines {
		if strings.HasPrefix(line, versionPrefix) {
			lines[i] = versionPrefix + `"` + version.String() + `"`
			rewritten = true
			break
		}
	}

	if !rewritten {
		return goerr.Wrap(types.ErrVersionLineNotFound, "cannot apply version",
			goerr.V("path", path),
			goerr.V("version", version.String()),
		)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode()); err != nil {
		return goerr.Wrap(err, "failed to write metadata file", goerr.V("path", path))
	}

	return nil
}
