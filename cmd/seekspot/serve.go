// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdiddy/seekspot/internal/api"
	"github.com/pdiddy/seekspot/internal/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Serve starts the JSON API used by the web front end:

  GET    /health
  GET    /api/search?location=&preferences=&budget=&radius=&sort=&category=
  GET    /api/categories?preferences=
  GET    /api/session
  POST   /api/session/trial     {"email": "..."}
  DELETE /api/session/trial
  POST   /api/session/premium
  GET    /api/photo/<ref>

The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		searcher, _, err := newSearcher(cfg)
		if err != nil {
			return err
		}
		sess, closeSession, err := openSession(cfg)
		if err != nil {
			return err
		}
		defer closeSession()

		if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		h := api.NewHandler(searcher, sess, logger)
		if photos, ok := searcher.Provider().(provider.PhotoSource); ok {
			h.Photos = photos
		}
		return h.Serve(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.addr, \":8080\")")
	rootCmd.AddCommand(serveCmd)
}
