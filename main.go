package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activos/config"
	"activos/database"
	"activos/logger"
	"activos/router"

	"github.com/rs/zerolog/log"
)

// @title Activos Fijos API
// @version 1.0
// @description Registro de activos fijos, depreciación mensual y formatos SUNAT 7.1 a 7.4
// @host localhost:3000
// @BasePath /

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "ruta de un archivo de configuración externo (opcional)")
	flag.StringVar(&configFile, "c", "", "ruta de configuración (abreviado)")
	flag.StringVar(&port, "port", "", "puerto de escucha, p. ej. 3000 o :3000")
	flag.StringVar(&port, "p", "", "puerto de escucha (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "muestra la versión")
	flag.BoolVar(&showVersion, "v", false, "muestra la versión (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("activos-fijos v" + version)
		return
	}

	// configuración embebida + archivo externo opcional + entorno
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	// el flag tiene prioridad sobre PORT
	if port != "" {
		cfg.Server.Port = config.NormalizePort(port)
	}

	logger.New(cfg.Log.Level, cfg.Log.Format)
	config.PrintConfig()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo inicializar la base de datos")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router.SetupRouter(cfg, db),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().
			Str("addr", cfg.Server.Port).
			Str("swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html").
			Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("error del servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("deteniendo el servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("cierre forzado del servidor")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("servidor detenido")
}
