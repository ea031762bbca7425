package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/lintlayer/pkg/config"
	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/logging"
	"github.com/arthur-debert/lintlayer/pkg/paths"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/ui"
	"github.com/arthur-debert/lintlayer/pkg/ui/styles"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const userStylesFile = "styles.yaml"

// app holds the global flags and the file system every command works on
type app struct {
	fs afero.Fs

	verbosity   int
	configFiles []string
	env         string
	format      string
	root        string

	paths paths.Paths
}

// session is a loaded configuration ready to answer queries
type session struct {
	paths    paths.Paths
	loader   *config.Loader
	config   *config.Config
	resolver *resolver.Resolver
}

// initPaths resolves the project root once per run and warns when the
// working directory had to be used
func (a *app) initPaths(cmd *cobra.Command) (paths.Paths, error) {
	if a.paths != nil {
		return a.paths, nil
	}
	p, err := paths.New(a.root)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackRoot, p.Root())
	}
	a.paths = p
	return p, nil
}

func (a *app) settingFlags() map[string]interface{} {
	return map[string]interface{}{
		config.FlagEnvironment: a.env,
		config.FlagFormat:      a.format,
	}
}

// newLoader discovers configuration files. extra settings are layered
// over the global flags.
func (a *app) newLoader(cmd *cobra.Command, extra map[string]interface{}) (paths.Paths, *config.Loader, error) {
	p, err := a.initPaths(cmd)
	if err != nil {
		return nil, nil, err
	}
	files, err := p.DiscoverConfigFiles(a.fs, a.configFiles)
	if err != nil {
		return nil, nil, err
	}
	flags := a.settingFlags()
	for k, v := range extra {
		flags[k] = v
	}
	return p, config.NewLoader(a.fs, files, flags), nil
}

// open loads the configuration and builds a resolver for it
func (a *app) open(cmd *cobra.Command, extra map[string]interface{}) (*session, error) {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "open")
	defer done()

	p, loader, err := a.newLoader(cmd, extra)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	r, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("root", p.Root()).
		Strs("files", loader.Files()).
		Msg("Configuration ready")
	return &session{paths: p, loader: loader, config: cfg, resolver: r}, nil
}

// renderer picks the output format from settings, falling back to the
// --format flag when no configuration was loaded
func (a *app) renderer(cmd *cobra.Command, s *session) (ui.Renderer, error) {
	name := a.format
	if s != nil && s.config != nil {
		name = s.config.Settings.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrBadFormat, name).
			WithDetail("format", name)
	}
	if format == ui.FormatAuto || format == ui.FormatTerminal {
		if err := a.loadUserStyles(cmd); err != nil {
			return nil, err
		}
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// loadUserStyles replaces the built-in styles with styles.yaml from the
// user configuration directory, if there is one
func (a *app) loadUserStyles(cmd *cobra.Command) error {
	p, err := a.initPaths(cmd)
	if err != nil {
		return err
	}
	path := filepath.Join(p.ConfigDir(), userStylesFile)
	if ok, _ := afero.Exists(a.fs, path); !ok {
		return nil
	}
	data, err := afero.ReadFile(a.fs, path)
	if err == nil {
		err = styles.LoadStylesFromData(data)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load styles from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// normalize maps command line paths to root-relative match paths
func (s *session) normalize(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		rel, err := s.paths.Normalize(arg)
		if err != nil {
			return nil, err
		}
		out[i] = rel
	}
	return out, nil
}

// ReportedError marks an error that was already rendered to the output
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// machineFormat reports whether output is meant for programs. Only the
// flag and the environment are consulted, since configuration may be the
// thing that failed to load.
func (a *app) machineFormat() bool {
	name := a.format
	if name == "" {
		name = os.Getenv(config.EnvPrefix + "FORMAT")
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return false
	}
	return format == ui.FormatJSON || format == ui.FormatYAML || format == ui.FormatTOML
}

// reporting renders failures of run in machine formats
func (a *app) reporting(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err == nil || !a.machineFormat() {
			return err
		}
		r, rerr := a.renderer(cmd, nil)
		if rerr != nil {
			return err
		}
		if rerr := r.RenderError(err); rerr != nil {
			return err
		}
		return &ReportedError{Err: err}
	}
}
