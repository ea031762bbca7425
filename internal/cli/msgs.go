package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Resolve layered lint configuration per file"
	MsgResolveShort    = "Print the effective rules for files"
	MsgDescribeShort   = "Explain which overrides shaped a file's rules"
	MsgIgnoredShort    = "Report whether files are ignored in the current environment"
	MsgCheckShort      = "Validate the configuration"
	MsgPoliciesShort   = "List registered policies"
	MsgGenConfigShort  = "Generate an example configuration"
	MsgGenConfigLong   = "Print an annotated example configuration, or write it to .lintlayer.toml in the project root."
	MsgWatchShort      = "Reload the configuration when it changes"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	MsgConfigWritten = "Wrote %s"
	MsgConfigExists  = "%s already exists, use --force to overwrite"
	MsgWatching      = "Watching %s"
	MsgReloaded      = "Configuration reloaded"
	MsgReloadFailed  = "Reload failed, keeping previous configuration: %v"
	MsgFallbackRoot  = "Warning: not in a git repository, using %s as the project root\n"
	MsgVersionFormat = "lintlayer version %s\n  commit: %s\n  built:  %s\n"
	MsgErrNoCommand  = "no command specified"
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrBadFormat  = "invalid output format %q"

	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file (repeatable, applied in order)"
	MsgFlagEnv       = "Environment used to select ignore groups (overrides LINTLAYER_ENV)"
	MsgFlagFormat    = "Output format: auto, term, text, json, yaml, toml"
	MsgFlagRoot      = "Project root (default: LINTLAYER_ROOT, the git top level or the working directory)"
	MsgFlagWrite     = "Write the configuration to .lintlayer.toml instead of stdout"
	MsgFlagCommented = "Comment out every value"
	MsgFlagForce     = "Overwrite an existing file"
	MsgFlagDebounce  = "Delay before a changed configuration file is reloaded"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/describe-long.txt
	msgDescribeLongRaw string
	MsgDescribeLong    = strings.TrimSpace(msgDescribeLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")
)
