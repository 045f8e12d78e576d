package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BourseSignal/internal/analyzer"
	"BourseSignal/internal/config"
	"BourseSignal/internal/metrics"
	"BourseSignal/internal/notifier"
	"BourseSignal/internal/recorder"
	"BourseSignal/internal/scheduler"
	"BourseSignal/internal/source"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BourseSignal starting...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init sheet source
	var src source.Source
	if cfg.Source.BaseURL != "" {
		src = source.NewAPISource(cfg.Source.BaseURL, cfg.Source.APIKey, cfg.Proxy)
	} else {
		src = source.NewCSVSource(cfg.Source.CSVDir)
	}
	log.Printf("[INFO] sheet source: %s", src.Name())

	// Init analyzer
	an := analyzer.New(src, cfg.Sheets.PriceColumn, cfg.Sheets.DateColumn)

	// Init notifier
	var nt notifier.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		nt = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Println("[WARN] telegram not configured, reports will only be logged")
		nt = notifier.NewNoopNotifier()
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init metrics
	m := metrics.New()
	if cfg.Metrics.ListenAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			log.Printf("[INFO] metrics listening on %s", cfg.Metrics.ListenAddr)
			if err := http.ListenAndServe(cfg.Metrics.ListenAddr, mux); err != nil {
				log.Printf("[ERROR] metrics server: %v", err)
			}
		}()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, an, src, rec, nt, m,
		cfg.Sheets.Excluded, time.Duration(cfg.Sheets.PauseSec)*time.Second)
	if err := sched.Register(cfg.Schedule.AnalyzeCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunAll()
	}

	log.Println("[INFO] BourseSignal is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BourseSignal stopped")
}
