package main

import (
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"tax-engine/internal/config"
	"tax-engine/internal/handler"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	h := handler.New(log, cfg.StaticDir)

	log.Infof("Tax distribution engine starting on %s", cfg.Addr)
	if err := fasthttp.ListenAndServe(cfg.Addr, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
