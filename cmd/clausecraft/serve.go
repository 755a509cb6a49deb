package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the contract generation HTTP server",
		RunE:  runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Bool("debug", false, "enable gin debug mode")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.debug", cmd.Flags().Lookup("debug"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if viper.GetBool("server.debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openStorage()
	if err != nil {
		return err
	}
	defer closeStorage(db)

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// The server needs the pipeline available, so the generator is required.
	var gen *llm.Generator
	gen, err = createGenerator()
	if err != nil {
		slog.Warn("no text-generation client configured; only rules mode will work", "error", err)
		gen = nil
	}

	eng := createEngine(db, gen)
	srv := server.New(server.Config{
		Addr:            viper.GetString("server.addr"),
		ShutdownTimeout: 10 * time.Second,
	}, eng, db, db, db, slog.Default())

	return srv.Run(ctx)
}
