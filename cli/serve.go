package cli

import (
	"fmt"

	"github.com/aicopilotvisual/aicopilot-visual/engine/analysis"
	"github.com/aicopilotvisual/aicopilot-visual/engine/auth/quota"
	"github.com/aicopilotvisual/aicopilot-visual/engine/chat"
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server"
	llmadapter "github.com/aicopilotvisual/aicopilot-visual/engine/llm/adapter"
	"github.com/aicopilotvisual/aicopilot-visual/engine/newsletter"
	"github.com/aicopilotvisual/aicopilot-visual/engine/transcribe"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/spf13/cobra"
)

// ServeCmd starts the HTTP server with all services wired.
func ServeCmd() *cobra.Command {
	var (
		host     string
		port     int
		envFile  string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the copilot HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Runtime.LogLevel = logLevel
			}
			log := logger.NewLogger(&logger.Config{
				Level: logger.LogLevel(cfg.Runtime.LogLevel),
				JSON:  cfg.Runtime.LogJSON,
			})

			llmClient, err := llmadapter.NewLangChainAdapter(&cfg.OpenAI)
			if err != nil {
				return fmt.Errorf("failed to create LLM client: %w", err)
			}
			defer llmClient.Close()

			analysisService := analysis.NewService(llmClient, cfg.OpenAI.RequestTimeout)
			quotaManager := quota.NewManager(quota.NewMemoryStore(), cfg.Quota.FreeMessageLimit)
			srv, err := server.NewServer(server.Deps{
				Config:     cfg,
				Log:        log,
				Analysis:   analysisService,
				Transcribe: transcribe.NewService(&cfg.OpenAI),
				Newsletter: newsletter.NewService(&cfg.Mailchimp),
				Chat:       chat.NewRegistry(quotaManager, analysisService),
			})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "Host to bind the server to")
	cmd.Flags().IntVar(&port, "port", 5001, "Port to bind the server to")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to the env file to load")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}
