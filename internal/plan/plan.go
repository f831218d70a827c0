// Package plan provides loading and validation of merge plan files.
// A merge plan names a source branch, a target branch, a working copy
// directory, and the ordered list of revisions to merge.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	svnpickerrors "svnpick.dev/svnpick/internal/errors"
)

// Plan is a validated merge plan. It is built once at startup and
// never mutated afterwards.
type Plan struct {
	SourceBranch string
	TargetBranch string
	WorkingDir   string
	Revisions    []string
}

// rawPlan is the on-disk shape of a plan file. Revisions may be written
// as numbers or strings; both are normalized to strings in their
// original order.
type rawPlan struct {
	SourceBranch string        `json:"source_branch" yaml:"source_branch"`
	TargetBranch string        `json:"target_branch" yaml:"target_branch"`
	WorkingDir   string        `json:"working_dir" yaml:"working_dir"`
	Revisions    []interface{} `json:"revisions" yaml:"revisions"`
}

// Load reads and parses a merge plan from the given path. The path is
// always explicit; it is never derived from the executable location.
// JSON is the default format; files ending in .yaml or .yml are parsed
// as YAML.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, svnpickerrors.NewConfigError(svnpickerrors.ErrConfigNotFound, path, nil)
		}
		return nil, fmt.Errorf("reading plan file %s: %w", path, err)
	}

	var raw rawPlan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, svnpickerrors.NewConfigError(svnpickerrors.ErrConfigMalformed, path, err)
	}

	p := &Plan{
		SourceBranch: raw.SourceBranch,
		TargetBranch: raw.TargetBranch,
		WorkingDir:   raw.WorkingDir,
		Revisions:    make([]string, 0, len(raw.Revisions)),
	}
	for _, rev := range raw.Revisions {
		p.Revisions = append(p.Revisions, normalizeRevision(rev))
	}

	return p, nil
}

// normalizeRevision converts a raw revision entry to its opaque string
// token. JSON decodes numbers as float64; YAML decodes them as int.
// Revision tokens keep their literal form: no sorting, no dedup.
func normalizeRevision(rev interface{}) string {
	switch v := rev.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Validate checks that all required plan fields are present. It runs
// before any working copy mutation and touches neither the filesystem
// nor any subprocess.
func (p *Plan) Validate() error {
	var missing []string
	if p.SourceBranch == "" {
		missing = append(missing, "source_branch")
	}
	if p.TargetBranch == "" {
		missing = append(missing, "target_branch")
	}
	if p.WorkingDir == "" {
		missing = append(missing, "working_dir")
	}
	if len(p.Revisions) == 0 {
		missing = append(missing, "revisions")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or empty fields: %s", svnpickerrors.ErrConfigInvalid, strings.Join(missing, ", "))
	}
	return nil
}
