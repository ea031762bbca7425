package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	EnvRoot      = "LINTLAYER_ROOT"
	EnvConfigDir = "LINTLAYER_CONFIG_DIR"
	EnvHome      = "HOME"
)

// Default directories and files
const (
	AppDirName     = "lintlayer"
	UserConfigFile = "config.toml"
)

// ProjectConfigFiles are tried in order in the project root
var ProjectConfigFiles = []string{".lintlayer.toml", ".lintlayer.yaml", ".lintlayer.yml"}

// Paths answers every path question the CLI asks
type Paths interface {
	Root() string
	UsedFallback() bool
	ConfigDir() string
	UserConfigPath() string
	DiscoverConfigFiles(fs afero.Fs, explicit []string) ([]string, error)
	Normalize(path string) (string, error)
}

type paths struct {
	root         string
	usedFallback bool
	configDir    string
}

// New creates a Paths instance. An empty root is discovered from
// LINTLAYER_ROOT, the git top level or the working directory.
func New(root string) (Paths, error) {
	p := &paths{}

	if root == "" {
		found, usedFallback, err := findRoot()
		if err != nil {
			return nil, err
		}
		p.root = found
		p.usedFallback = usedFallback
	} else {
		p.root = expandHome(root)
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPath, "failed to get absolute path for project root")
	}
	p.root = absRoot

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = expandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p, nil
}

// findRoot determines the project root using the following priority:
// 1. LINTLAYER_ROOT environment variable
// 2. git repository top level
// 3. current working directory (reported as a fallback)
func findRoot() (string, bool, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrInvalidPath, "failed to get current directory")
	}
	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrInvalidPath, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is left alone
	return path
}

func (p *paths) Root() string {
	return p.root
}

// UsedFallback reports whether the working directory was used as the root
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}
