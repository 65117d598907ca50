package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/willfleury/electricitymap/app"
	"github.com/willfleury/electricitymap/config"
	"github.com/willfleury/electricitymap/infra/logger"
)

var once bool

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect configured countries on a schedule and write them to the sinks",
	RunE:  collect,
}

func init() {
	collectCmd.Flags().BoolVar(&once, "once", false, "run a single collection and exit")
	rootCmd.AddCommand(collectCmd)
}

func collect(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	if !once {
		return svc.Run(ctx)
	}
	c, w, err := svc.Collector()
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.New("collect-command").Errorf("close sinks: %v", err)
		}
	}()
	rep := c.RunOnce(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "written=%d absent=%d failed=%d\n", rep.Written, rep.Absent, rep.Failed)
	if rep.Failed > 0 {
		return fmt.Errorf("%d entities failed", rep.Failed)
	}
	return nil
}
