package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zarndearc/learners-coder-mcp/internal/config"
	"github.com/zarndearc/learners-coder-mcp/internal/httpapi"
	"github.com/zarndearc/learners-coder-mcp/internal/logging"
	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
	"github.com/zarndearc/learners-coder-mcp/internal/server"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "learners-coder",
		Short: "Learner's Coder - a coding mentor MCP server",
		Long: `Learner's Coder is an MCP server that helps people learn to build software.

It classifies what you are building, asks clarifying questions and explains
the concepts, tools and production practices involved, with code kept to
short snippets.

Add to your AI tool's MCP config for local use:

  {
    "mcpServers": {
      "learners-coder": {
        "command": "learners-coder",
        "args": ["stdio"]
      }
    }
  }

Or run "learners-coder serve" and point a connector at http://host:3000/sse/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./config.yaml or ./configs/config.yaml)")

	root.AddCommand(
		c.serveCmd(),
		c.stdioCmd(),
		c.askCmd(),
		versionCmd(),
	)
	return root
}

// init loads configuration and builds the logger.
func (c *cli) init() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFromFile(c.configPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c.logger, err = logging.New(c.cfg.Log.Level, c.cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// build creates the app and a cleanup func that always runs safely.
func (c *cli) build(ctx context.Context) (*server.App, func(), error) {
	app, err := server.Build(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, func() {}, fmt.Errorf("creating server: %w", err)
	}
	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Close(shutdownCtx); err != nil {
			c.logger.Warn("cleanup", zap.Error(err))
		}
	}
	return app, cleanup, nil
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (MCP SSE transport, legacy /mcp, health, metrics)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, cleanup, err := c.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return httpapi.Serve(ctx, app)
		},
	}
}

func (c *cli) stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			// ServeStdio handles SIGINT/SIGTERM itself.
			return mcpserver.ServeStdio(app.MCP.Server)
		},
	}
}

func (c *cli) askCmd() *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Print the mentor response for a message as JSON",
		Example: `  learners-coder ask "Build a MERN todo app"
  learners-coder ask --view full "integrate razorpay payments"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			resp := app.Assembler.Respond(strings.Join(args, " "), mentor.ParseView(view))
			app.Metrics.MentorAnswered(resp.Intent, resp.View)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVar(&view, "view", string(mentor.ViewConcepts), "response view: concepts or full")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "learners-coder v%s\n", server.Version)
		},
	}
}
