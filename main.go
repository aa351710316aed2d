package main

import (
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"payroll-engine/internal/config"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/handler"
	"payroll-engine/internal/schemeregistry"
)

var log = logrus.WithField("module", "main")

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.SetupLogging()

	fallback := schemeregistry.Default()
	if cfg.SchemeFile != "" {
		fallback, err = schemeregistry.LoadFile(cfg.SchemeFile)
		if err != nil {
			log.Fatalf("scheme file: %v", err)
		}
	}
	schemes := schemeregistry.New(cfg.SchemeRegistryURL, cfg.SchemeFetchTimeout, fallback)

	h := handler.New(engine.New(schemes))

	log.WithField("default_scheme", fallback.ID).Infof("Payroll engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Serve); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
