package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/agent"
	"brrr-bot/backend/internal/constants"
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
	log.Info("Starting HTTP API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Open the database
	st, err := store.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer st.Close()

	// Tool layer and orchestrator, same wiring as the bot minus Discord
	executor := tools.NewExecutor(st, tools.NewDefaultRegistry())
	if cfg.GitHubToken != "" {
		executor.SetGitHubClient(tools.NewGitHubClient(cfg.GitHubToken))
	}

	var orch *agent.Orchestrator
	if cfg.ChatEnabled() {
		llm, err := adapter.NewLLMAdapter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ModelID, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			log.Fatal("Failed to create LLM adapter", zap.Error(err))
		}
		orch = agent.NewOrchestrator(st, llm, executor)
	} else {
		log.Warn("OPENAI_API_KEY not set, /api/chat is disabled")
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "chat_enabled": cfg.ChatEnabled()})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/projects", func(c *gin.Context) {
			projects, err := st.GetProjects(c.Request.Context(), c.Query("status"))
			if err != nil {
				log.Error("Failed to list projects", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"projects": projects})
		})

		api.GET("/projects/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
				return
			}

			info, err := st.GetProjectInfo(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			c.JSON(http.StatusOK, info)
		})

		api.GET("/tasks", func(c *gin.Context) {
			userID := c.Query("user_id")
			if userID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
				return
			}
			includeCompleted := c.Query("include_completed") == "true"

			tasks, err := st.GetUserTasks(c.Request.Context(), userID, includeCompleted)
			if err != nil {
				log.Error("Failed to list tasks", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"tasks": tasks})
		})

		api.GET("/ideas", func(c *gin.Context) {
			includeUsed := c.Query("include_used") == "true"

			ideas, err := st.GetIdeas(c.Request.Context(), includeUsed)
			if err != nil {
				log.Error("Failed to list ideas", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ideas"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"ideas": ideas})
		})

		api.GET("/users/:id/memories", func(c *gin.Context) {
			memories, err := st.GetAllMemories(c.Request.Context(), c.Param("id"), c.Query("guild_id"))
			if err != nil {
				log.Error("Failed to list memories", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list memories"})
				return
			}
			// The persona override is prompt plumbing, not a user-facing fact
			delete(memories, constants.PersonaMemoryKey)
			c.JSON(http.StatusOK, gin.H{"memories": memories})
		})

		// Chat without Discord, mainly for local testing
		api.POST("/chat", func(c *gin.Context) {
			if orch == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat is disabled"})
				return
			}

			var req struct {
				Message  string `json:"message" binding:"required"`
				UserID   string `json:"user_id" binding:"required"`
				GuildID  string `json:"guild_id"`
				UserName string `json:"user_name"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if req.UserName == "" {
				req.UserName = req.UserID
			}

			result, err := orch.Run(c.Request.Context(), &agent.Request{
				UserID:    req.UserID,
				GuildID:   req.GuildID,
				ChannelID: "api:" + req.UserID,
				UserName:  req.UserName,
				Content:   req.Message,
			})
			if err != nil {
				log.Error("Failed to run chat", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"run_id":         result.RunID,
				"content":        result.Reply,
				"tool_rounds":    result.ToolRounds,
				"memories_saved": result.MemoriesSaved,
			})
		})
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
