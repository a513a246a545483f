package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"task-list-manager/config"
	"task-list-manager/internal/bootstrap"
	"task-list-manager/internal/task/delivery/tui"
	"task-list-manager/pkg/log"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Terminal task list manager",
	Long: `Manage tasks with due dates from the terminal.

Keys: a add, e edit, space toggle, d delete, 1/2/3 filter, q quit.
Tasks are stored in the same slot as the web UI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default searches ./config, ., /etc/app/)")
	flags.String("storage-driver", "", "storage backend: memory, file, sqlite, mysql")
	flags.String("storage-path", "", "directory for file storage, database file for sqlite")
	flags.String("log-file", "tasks-tui.log", "log output path")

	_ = viper.BindPFlag("storage.driver", flags.Lookup("storage-driver"))
	_ = viper.BindPFlag("storage.path", flags.Lookup("storage-path"))
	_ = viper.BindPFlag("logger.output", flags.Lookup("log-file"))
}

func run(ctx context.Context) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	output := cfg.Logger.Output
	if len(output) == 0 || (len(output) == 1 && output[0] == "stdout") {
		output = []string{"tasks-tui.log"}
	}
	logger := log.Init(log.ZapConfig{
		Level:       cfg.Logger.Level,
		Mode:        log.ModeProduction,
		Encoding:    log.EncodingJSON,
		OutputPaths: output,
	})

	core, err := bootstrap.NewCore(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize task store: %v", err)
		return err
	}
	defer core.Close()

	return tui.Run(ctx, logger, core.Board, cfg.Notification.Duration)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
