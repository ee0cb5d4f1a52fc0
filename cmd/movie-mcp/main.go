package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/moviewizard/movie-mcp/internal/impl/config"
	"github.com/moviewizard/movie-mcp/internal/impl/database"
	repositoriesMongo "github.com/moviewizard/movie-mcp/internal/impl/repositories/mongo"
	"github.com/moviewizard/movie-mcp/internal/impl/tools"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName    = "Movie Database Wizard"
	serverVersion = "1.0.0"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: movie-mcp [mongodb-uri]\n")
		fmt.Fprintf(os.Stderr, "The URI may also be set via MONGO_URI in the environment or a .env file.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Logs go to stderr only: stdout carries the MCP stdio framing.
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	logConfig.OutputPaths = []string{"stderr"}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.InitConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.LogLevel != "" {
		if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
			logConfig.Level.SetLevel(level.Level())
		} else {
			logger.Warn("Invalid LOG_LEVEL; keeping default", zap.String("log_level", cfg.LogLevel))
		}
	}

	uri := cfg.MongoURI
	if flag.NArg() > 0 {
		uri = flag.Arg(0)
	}
	if uri == "" {
		logger.Fatal("MongoDB URI required: pass it as an argument or set MONGO_URI")
	}

	db, err := database.NewMongoDB(uri, cfg.Database, logger)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	repo := repositoriesMongo.NewMongoMovieRepository(db.Collection(cfg.Collection))
	registry := tools.NewToolRegistry(repo, logger)

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)
	registry.RegisterMCP(s)

	logger.Info("Movie MCP server starting on stdio",
		zap.String("database", cfg.Database),
		zap.String("collection", cfg.Collection))

	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("MCP server terminated", zap.Error(err))
	}
}
