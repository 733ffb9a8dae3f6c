package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"docvault/internal/config"
	"docvault/internal/directory"
	"docvault/internal/domain/services/catalog"
	"docvault/internal/handler"
	"docvault/internal/middleware"
	"docvault/internal/repository/memory"
	serviceCatalog "docvault/internal/service/catalog"
	"docvault/internal/service/upload"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging: readable tint output in dev, JSON
	// elsewhere
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logHandler slog.Handler
	if cfg.Environment == "dev" {
		logHandler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		})
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// User directory: YAML file with live reload when configured,
	// built-in demo users otherwise
	var userDirectory catalog.UserDirectory
	if cfg.UsersFile != "" {
		fileDir, err := directory.NewFile(cfg.UsersFile, logger)
		if err != nil {
			log.Fatalf("Failed to load user directory: %v", err)
		}
		defer fileDir.Close()
		userDirectory = fileDir
	} else {
		userDirectory = directory.Default()
		logger.Info("using built-in user directory")
	}

	// In-memory catalog store; lives for the session, discarded on
	// shutdown
	store := memory.NewStore()
	repoConfig := &memory.RepositoryConfig{
		Store:  store,
		Logger: logger,
	}
	folderRepo := memory.NewFolderRepository(repoConfig)
	docRepo := memory.NewDocumentRepository(repoConfig)

	// Upload boundary
	uploads := upload.NewValidator(cfg.AllowedTypes, cfg.MaxUploadBytes(), logger)

	// Catalog services
	folderService := serviceCatalog.NewFolderService(folderRepo, docRepo, logger)
	docService := serviceCatalog.NewDocumentService(docRepo, folderRepo, logger)
	tagService := serviceCatalog.NewTagService(docRepo, logger)
	aclService := serviceCatalog.NewACLService(docRepo, userDirectory, logger)
	treeService := serviceCatalog.NewTreeService(folderRepo, docRepo, logger)

	// Handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	docHandler := handler.NewDocumentHandler(docService, uploads, logger)
	tagHandler := handler.NewTagHandler(tagService, logger)
	aclHandler := handler.NewACLHandler(aclService, userDirectory, logger)
	treeHandler := handler.NewTreeHandler(treeService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("GET /api/folders/available-parents", folderHandler.AvailableParents) // before {id}
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/path", folderHandler.GetPath)

	// Document routes
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)

	// Tag routes
	mux.HandleFunc("POST /api/documents/{id}/tags", tagHandler.AddTag)
	mux.HandleFunc("DELETE /api/documents/{id}/tags/{tag}", tagHandler.RemoveTag)

	// Permission routes
	mux.HandleFunc("PUT /api/documents/{id}/permissions", aclHandler.AssignPermission)
	mux.HandleFunc("GET /api/documents/{id}/permissions", aclHandler.ListPermissions)
	mux.HandleFunc("GET /api/users", aclHandler.ListUsers)

	// Tree projection
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)

	// Build middleware chain (applied in reverse order)
	// CORS → Recovery → Serialize → Routes
	var h http.Handler = mux
	h = middleware.Serialize()(h)
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
