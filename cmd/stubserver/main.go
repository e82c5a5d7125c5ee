// Servidor stub de desarrollo: expone la API del backend con estado en
// memoria para trabajar en el cliente sin el servicio real.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bugabuga/appecommerce/internal/stubserver"
	"github.com/bugabuga/appecommerce/pkg/config"
	"github.com/bugabuga/appecommerce/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	srv := stubserver.New(log)

	// Apagado ordenado con SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando stub server")
		_ = srv.Shutdown()
	}()

	if err := srv.Listen(cfg.Stub.Addr()); err != nil {
		log.Fatal().Err(err).Msg("stub server")
	}
}
