package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/agent"
	"brrr-bot/backend/internal/discord"
	"brrr-bot/backend/internal/store"
	"brrr-bot/backend/internal/tools"
	"brrr-bot/backend/pkg/config"
	"brrr-bot/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting BRRR bot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.DiscordBotToken == "" {
		log.Fatal("DISCORD_BOT_TOKEN is required")
	}

	// Open the database
	st, err := store.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer st.Close()
	log.Info("Database ready", zap.String("path", cfg.SQLitePath))

	// Build the tool layer
	registry := tools.NewDefaultRegistry()
	executor := tools.NewExecutor(st, registry)

	if cfg.GitHubToken != "" {
		executor.SetGitHubClient(tools.NewGitHubClient(cfg.GitHubToken))
		log.Info("GitHub tools enabled")
	} else {
		log.Info("GITHUB_TOKEN not set, GitHub tools disabled")
	}

	// Chat runs only when model credentials are configured; without them the
	// bot still serves text commands.
	var orch *agent.Orchestrator
	if cfg.ChatEnabled() {
		llm, err := adapter.NewLLMAdapter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ModelID, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			log.Fatal("Failed to create LLM adapter", zap.Error(err))
		}
		orch = agent.NewOrchestrator(st, llm, executor)
		log.Info("Chat enabled", zap.String("model", cfg.ModelID))
	} else {
		log.Warn("OPENAI_API_KEY not set, chat is disabled")
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatal("Failed to create Discord session", zap.Error(err))
	}

	executor.SetMemberDirectory(discord.NewMemberDirectory(dg))

	messageHandler := discord.NewHandler(orch, st)
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		messageHandler.HandleMessage(s, m)
	})

	// Required intents:
	// - IntentsGuilds: guild metadata
	// - IntentsGuildMessages / IntentsDirectMessages: receive messages
	// - IntentsGuildMembers: member lookup tools
	// - IntentsMessageContent: read message text for mentions and commands
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	if err := dg.Open(); err != nil {
		log.Fatal("Failed to open Discord connection", zap.Error(err))
	}
	defer dg.Close()

	log.Info("BRRR bot is running. Press CTRL-C to exit.")

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-shutdownChan

	log.Info("Shutting down BRRR bot...")
}
