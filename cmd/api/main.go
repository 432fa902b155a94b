package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestionpme/api-gestion/internal/auth"
	"github.com/gestionpme/api-gestion/internal/config"
	"github.com/gestionpme/api-gestion/internal/customer"
	"github.com/gestionpme/api-gestion/internal/material"
	"github.com/gestionpme/api-gestion/internal/sale"
	"github.com/gestionpme/api-gestion/internal/server"
	"github.com/gestionpme/api-gestion/internal/ticket"
	"github.com/gestionpme/api-gestion/internal/user"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatal("database connection", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&customer.Customer{},
		&material.Material{},
		&sale.Sale{},
		&ticket.Ticket{},
	); err != nil {
		log.Fatal("migration", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	gate := auth.NewGate(cfg.JWTEnabled, tokens)

	handler := server.New(server.Deps{
		Gate:       gate,
		JWTEnabled: cfg.JWTEnabled,
		Users:      user.NewHandler(user.NewService(db), tokens),
		Customers:  customer.NewHandler(customer.NewService(db)),
		Materials:  material.NewHandler(material.NewService(db)),
		Sales:      sale.NewHandler(sale.NewService(db)),
		Tickets:    ticket.NewHandler(ticket.NewService(db)),
		Logger:     log,
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	addr := ":" + cfg.Port
	log.Info("server listening", zap.String("addr", addr), zap.Bool("jwt_enabled", cfg.JWTEnabled))
	if err := http.ListenAndServe(addr, c.Handler(handler)); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
