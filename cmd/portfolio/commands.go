package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/civansanli/portfolio/internal/config"
	"github.com/civansanli/portfolio/internal/logging"
	"github.com/civansanli/portfolio/internal/page"
	"github.com/civansanli/portfolio/internal/profile"
	"github.com/civansanli/portfolio/internal/server"
	"github.com/civansanli/portfolio/internal/site"
)

// app carries state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	cfg       config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Render and serve a personal portfolio page",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.OutOrStdout())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}
	root.AddCommand(a.serveCmd(), a.buildCmd(), a.checkCmd())
	return root
}

func (a *app) init(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closer, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}, stdout)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logCloser = closer
	return nil
}

func (a *app) assets() page.Assets {
	assets := page.DefaultAssets()
	if len(a.cfg.Scripts) > 0 {
		assets.Scripts = a.cfg.Scripts
	}
	if len(a.cfg.Stylesheets) > 0 {
		assets.Stylesheets = a.cfg.Stylesheets
	}
	return assets
}

// loadProfile returns the profile after checking it can be rendered.
func loadProfile() (profile.Profile, error) {
	p := profile.Default()
	if err := profile.Validate(p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `Serve the portfolio over HTTP.

The page is rendered on every request. The resume is served from
<static dir>/cv.pdf and the static dir itself under /static/.

Examples:
  portfolio serve
  portfolio serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			if port == 0 {
				port = a.cfg.Port
			}

			p, err := loadProfile()
			if err != nil {
				return err
			}

			gin.SetMode(a.cfg.GinMode)
			srv, err := server.New(p, server.Options{
				StaticDir: a.cfg.StaticDir,
				Assets:    a.assets(),
				HashSalt:  a.cfg.HashSalt,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, fmt.Sprintf(":%d", port))
		},
	}
	cmd.Flags().Int("port", 0, "port to listen on (defaults to $PORT or 8080)")
	return cmd
}

func (a *app) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the portfolio as static files",
		Long: `Write the portfolio as static files.

Examples:
  portfolio build
  portfolio build --out ./public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = a.cfg.OutDir
			}

			p, err := loadProfile()
			if err != nil {
				return err
			}

			res, err := site.Build(cmd.Context(), p, site.Options{
				OutDir:    out,
				StaticDir: a.cfg.StaticDir,
				Now:       time.Now(),
				Assets:    a.assets(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d static files, resume: %t)\n", res.Index, len(res.Assets), res.Resume)
			return nil
		},
	}
	cmd.Flags().String("out", "", "output directory (defaults to $PORTFOLIO_OUT_DIR or ./dist)")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the profile and the page navigation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), profile.Default(), time.Now())
		},
	}
}

func check(w io.Writer, p profile.Profile, now time.Time) error {
	if err := profile.Validate(p); err != nil {
		return err
	}
	if broken := page.BrokenAnchors(page.Build(p, now)); len(broken) > 0 {
		return fmt.Errorf("%w: %v", site.ErrBrokenAnchors, broken)
	}
	log.Debug().Str("name", p.Name).Msg("profile ok")
	fmt.Fprintf(w, "%s: %d projects, %d skills, %d education entries, %d socials\n",
		p.Name, len(p.Projects), len(p.Skills), len(p.Education), len(p.Socials))
	return nil
}
