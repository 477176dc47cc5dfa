package cmd

import (
	"context"
	"os/signal"
	"syscall"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/devhub-api/internal/global"
	"github.com/Laisky/devhub-api/internal/web"
	"github.com/Laisky/devhub-api/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `REST API service for the devhub collections`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		if err := initialize(context.Background(), cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(),
			syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		global.SetupDB(ctx)
		defer global.CloseDB(context.Background())

		web.RunServer(ctx, gconfig.Shared.GetString("listen"), web.NewControllers())
	},
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
