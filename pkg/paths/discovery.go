package paths

import (
	"path/filepath"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/spf13/afero"
)

// DiscoverConfigFiles returns the configuration files to load, in load
// order. Explicit files are returned as given (made absolute against the
// root) and must exist.
func (p *paths) DiscoverConfigFiles(fs afero.Fs, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		files := make([]string, 0, len(explicit))
		for _, f := range explicit {
			f = expandHome(f)
			if !filepath.IsAbs(f) {
				f = filepath.Join(p.root, f)
			}
			ok, err := afero.Exists(fs, f)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", f).
					WithDetail("path", f)
			}
			if !ok {
				return nil, errors.Newf(errors.ErrConfigLoad, "configuration file %s does not exist", f).
					WithDetail("path", f)
			}
			files = append(files, f)
		}
		return files, nil
	}

	for _, name := range ProjectConfigFiles {
		candidate := filepath.Join(p.root, name)
		if ok, _ := afero.Exists(fs, candidate); ok {
			return []string{candidate}, nil
		}
	}

	if ok, _ := afero.Exists(fs, p.UserConfigPath()); ok {
		return []string{p.UserConfigPath()}, nil
	}

	return nil, errors.Newf(errors.ErrConfigLoad,
		"no configuration found in %s or %s", p.root, p.configDir).
		WithDetail("root", p.root)
}
