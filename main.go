package main

import (
	"Jukebox/chat"
	"Jukebox/config"
	"Jukebox/server"
	"Jukebox/state"
	"Jukebox/utils"
	"Jukebox/yt"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Strum355/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var production *bool

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Sets up Configurations for Viper
	config.InitConfig()

	// The two shared stores, constructed once and passed by handle
	store := state.NewStore()
	chatLog := chat.NewLog()

	rdb := redis.NewClient(&redis.Options{
		Addr: viper.GetString("redis.address"),
	})
	manager := yt.NewManager(rdb)

	port := viper.GetInt("server.port")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           server.NewHandler(store, chatLog, manager, port, viper.GetString("server.static")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Jukebox server stopped")
			os.Exit(1)
		}
	}()

	log.WithFields(log.Fields{
		"local": fmt.Sprintf("http://localhost:%d/jukebox.html", port),
		"share": fmt.Sprintf("http://%s:%d/jukebox.html", utils.LocalIP(), port),
	}).Info("Party jukebox is up")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	gracefulShutdown(srv, rdb)
}

// gracefulShutdown drains in-flight requests before exiting
func gracefulShutdown(srv *http.Server, rdb *redis.Client) {
	log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}

	if err := rdb.Close(); err != nil {
		log.WithError(err).Error("Redis close failed")
	}

	log.Info("Cleanly exiting")
}
