package main

import (
	"fmt"
	"log"
	"net/http"

	"scribcraft/cmd/app"
	"scribcraft/internal/config"
	handlers "scribcraft/internal/handler"
	"scribcraft/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	if cfg.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handler.HomeHandler)
	mux.HandleFunc("/health", handler.HealthHandler)

	mux.HandleFunc("/api/auth/register", handler.Register)
	mux.HandleFunc("/api/auth/login", handler.Login)
	mux.HandleFunc("/api/auth/refresh-token", handler.RefreshToken)

	mux.HandleFunc("/api/me", handler.GetCurrentUser)
	mux.HandleFunc("/api/users", handler.ListUsers)
	mux.HandleFunc("/api/user/", handler.GetUser)

	mux.HandleFunc("/api/scribs", handler.ListScribs)
	mux.HandleFunc("/api/scribs/", handler.ScribRouter)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
