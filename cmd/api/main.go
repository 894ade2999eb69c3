package main

import (
	"fmt"
	"log"
	"net/http"
	"portfolioCPT/cmd/app"
	"portfolioCPT/internal/config"
	handlers "portfolioCPT/internal/handler"
	"portfolioCPT/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	if cfg.AdminEmail == "" {
		log.Fatal("ADMIN_EMAIL не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	r := mux.NewRouter()

	// public routes
	r.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	r.HandleFunc("/health", handler.Health).Methods("GET")

	r.HandleFunc("/api/admin/check", handler.CheckAdmin).Methods("GET")
	r.HandleFunc("/api/admin/signup", handler.Signup).Methods("POST")
	r.HandleFunc("/api/admin/send-verification", handler.SendVerification).Methods("POST")
	r.HandleFunc("/api/admin/login", handler.Login).Methods("POST")

	r.HandleFunc("/api/blogs", handler.GetPublicBlogs).Methods("GET")
	r.HandleFunc("/api/blogs/{slug}", handler.GetPublicBlog).Methods("GET")
	r.HandleFunc("/api/products", handler.GetPublicProducts).Methods("GET")
	r.HandleFunc("/api/contact", handler.Contact).Methods("POST")

	// admin routes: все, что мутирует контент, закрыто проверкой роли
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(cfg)))
	admin.Use(mux.MiddlewareFunc(middleware.AdminOnlyMiddleware))

	admin.HandleFunc("/blogs", handler.GetBlogs).Methods("GET")
	admin.HandleFunc("/blogs", handler.CreateBlog).Methods("POST")
	admin.HandleFunc("/blogs/{id}", handler.GetBlog).Methods("GET")
	admin.HandleFunc("/blogs/{id}", handler.UpdateBlog).Methods("PUT")
	admin.HandleFunc("/blogs/{id}", handler.DeleteBlog).Methods("DELETE")

	admin.HandleFunc("/products", handler.GetProducts).Methods("GET")
	admin.HandleFunc("/products", handler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", handler.GetProduct).Methods("GET")
	admin.HandleFunc("/products/{id}", handler.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", handler.DeleteProduct).Methods("DELETE")

	admin.HandleFunc("/upload", handler.UploadImage).Methods("POST")
	admin.HandleFunc("/images", handler.DeleteImage).Methods("DELETE")

	admin.HandleFunc("/account", handler.GetAccount).Methods("GET")
	admin.HandleFunc("/account/email", handler.UpdateAccountEmail).Methods("PUT")
	admin.HandleFunc("/account/password", handler.UpdateAccountPassword).Methods("PUT")

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
