package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/lintlayer/internal/version"
	"github.com/arthur-debert/lintlayer/pkg/cobrax/topics"
	"github.com/arthur-debert/lintlayer/pkg/config"
	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/logging"
	"github.com/arthur-debert/lintlayer/pkg/paths"
	"github.com/arthur-debert/lintlayer/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "lintlayer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Str("version", version.String()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringArrayVarP(&a.configFiles, "config", "c", nil, MsgFlagConfig)
	flags.StringVarP(&a.env, "env", "e", "", MsgFlagEnv)
	flags.StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	flags.StringVar(&a.root, "root", "", MsgFlagRoot)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml", "yaml", "yml")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newIgnoredCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newPoliciesCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <file>...",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, nil)
			if err != nil {
				return err
			}
			files, err := s.normalize(args)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			for _, file := range files {
				if err := renderResolved(r, s.resolver, file); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "describe <file>",
		Short:   MsgDescribeShort,
		Long:    MsgDescribeLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, nil)
			if err != nil {
				return err
			}
			files, err := s.normalize(args)
			if err != nil {
				return err
			}
			trace, err := s.resolver.Describe(files[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			return r.RenderResult(display.NewDescribeResult(trace))
		}),
	}
}

func newIgnoredCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ignored <file>...",
		Short:   MsgIgnoredShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, nil)
			if err != nil {
				return err
			}
			files, err := s.normalize(args)
			if err != nil {
				return err
			}
			result := &display.IgnoredResult{
				Environment: s.config.Settings.Environment,
				Files:       make([]display.IgnoredFile, 0, len(files)),
			}
			for _, file := range files {
				ignored, err := s.resolver.IsIgnored(file)
				if err != nil {
					return err
				}
				result.Files = append(result.Files, display.IgnoredFile{Path: file, Ignored: ignored})
			}
			r, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		}),
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, nil)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.CheckResult{
				Sources:        s.config.Sources,
				Environment:    s.config.Settings.Environment,
				BaseRules:      len(s.resolver.Base()),
				Overrides:      s.resolver.OverrideIDs(),
				Policies:       s.resolver.Policies().Len(),
				IgnorePatterns: s.resolver.IgnorePatterns(),
			})
		}),
	}
}

func newPoliciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "policies",
		Short:   MsgPoliciesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, nil)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			return r.RenderResult(display.NewPolicyList(s.resolver.Policies()))
		}),
	}
}

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		write     bool
		commented bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent(commented)
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			p, err := a.initPaths(cmd)
			if err != nil {
				return err
			}
			target := filepath.Join(p.Root(), paths.ProjectConfigFiles[0])
			exists, err := afero.Exists(a.fs, target)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", target)
			}
			if exists && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgConfigExists, target).
					WithDetail("path", target)
			}
			if err := afero.WriteFile(a.fs, target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		GroupID:   "misc",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout()); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate man page")
			}
			return nil
		},
	}
}

// ManHeader is shared by the man command and the man page generator
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "LINTLAYER",
		Section: "1",
		Source:  "lintlayer " + version.Version,
		Manual:  "lintlayer manual",
	}
}
