package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quicktick/internal/app"
	"quicktick/internal/config"
)

// cli carries state shared by the subcommands.
type cli struct {
	v   *viper.Viper
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("QUICKTICK")
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "quicktick",
		Short:        "Inspect and administer the quicktick rotation",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "config file (env QUICKTICK_CONFIG)")
	_ = c.v.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(
		c.bucketCmd(),
		c.cursorCmd(),
		c.todayCmd(),
		c.normalizeCmd(),
		c.snapshotCmd(),
		c.runsCmd(),
	)
	return root
}

// load reads the configuration once per invocation.
func (c *cli) load() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.v.GetString("config")
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg
	c.log = app.NewLogger(cfg)
	return cfg, nil
}

func newTable(w io.Writer, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	return tw
}
