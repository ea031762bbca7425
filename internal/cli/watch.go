package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/lintlayer/pkg/config"
	"github.com/arthur-debert/lintlayer/pkg/reload"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/ui"
	"github.com/arthur-debert/lintlayer/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:     "watch [file]...",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		RunE: a.reporting(func(cmd *cobra.Command, args []string) error {
			var extra map[string]interface{}
			if cmd.Flags().Changed("debounce") {
				extra = map[string]interface{}{config.FlagWatchDebounce: debounce}
			}
			s, err := a.open(cmd, extra)
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

			holder := resolver.NewHolder(s.resolver)
			show := func() error {
				for _, file := range files {
					if err := renderResolved(r, holder.Current(), file); err != nil {
						return err
					}
				}
				return nil
			}

			w, err := reload.New(holder, s.loader.Builder(), s.loader.Files(),
				reload.WithDebounce(s.config.Settings.Watch.Debounce),
				reload.WithNotify(func(res reload.Result) {
					if res.Err != nil {
						_ = r.RenderMessage(fmt.Sprintf(MsgReloadFailed, res.Err))
						return
					}
					_ = r.RenderMessage(MsgReloaded)
					if err := show(); err != nil {
						log.Error().Err(err).Msg("Failed to resolve after reload")
					}
				}),
			)
			if err != nil {
				return err
			}

			for _, f := range s.loader.Files() {
				if err := r.RenderMessage(fmt.Sprintf(MsgWatching, f)); err != nil {
					return err
				}
			}
			if err := show(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		}),
	}

	cmd.Flags().DurationVar(&debounce, "debounce", reload.DefaultDebounce, MsgFlagDebounce)
	return cmd
}

func renderResolved(r ui.Renderer, res *resolver.Resolver, file string) error {
	rs, err := res.Resolve(file)
	if err != nil {
		return err
	}
	ignored, err := res.IsIgnored(file)
	if err != nil {
		return err
	}
	return r.RenderResult(display.NewRuleTable(file, rs, nil, ignored))
}
