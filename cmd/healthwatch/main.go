package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"healthwatch/internal/config"
	"healthwatch/internal/httpapi"
	"healthwatch/internal/logging"
	"healthwatch/internal/probe"
	"healthwatch/internal/report"
	"healthwatch/internal/scheduler"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		urls     string
		interval int
		timeout  int
		output   string
		once     bool
		listen   string
		cfgPath  string
		conc     int
	)
	flag.StringVar(&urls, "u", "", "comma-separated list of URLs to check")
	flag.StringVar(&urls, "urls", "", "comma-separated list of URLs to check")
	flag.IntVar(&interval, "i", 30, "seconds between check cycles in repeat mode")
	flag.IntVar(&interval, "interval", 30, "seconds between check cycles in repeat mode")
	flag.IntVar(&timeout, "t", 10, "per-request timeout in seconds")
	flag.IntVar(&timeout, "timeout", 10, "per-request timeout in seconds")
	flag.StringVar(&output, "o", "", "write results to this JSON file after each cycle")
	flag.StringVar(&output, "output", "", "write results to this JSON file after each cycle")
	flag.BoolVar(&once, "once", false, "run a single check cycle and exit")
	flag.StringVar(&listen, "l", "", "serve the status API on this address (e.g. :8080)")
	flag.StringVar(&listen, "listen", "", "serve the status API on this address (e.g. :8080)")
	flag.StringVar(&cfgPath, "config", "", "YAML config file")
	flag.IntVar(&conc, "concurrency", 0, "max in-flight probes per cycle (0 = unbounded)")
	flag.Parse()

	// A .env next to the binary is optional.
	_ = godotenv.Load()

	cfg := config.Default()
	if cfgPath != "" {
		if err := cfg.ApplyFile(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			return 2
		}
	}
	cfg.ApplyEnv()

	// Explicit flags win over both the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u", "urls":
			cfg.URLs = config.SplitURLList(urls)
		case "i", "interval":
			cfg.Interval = time.Duration(interval) * time.Second
		case "t", "timeout":
			cfg.Timeout = time.Duration(timeout) * time.Second
		case "o", "output":
			cfg.Output = output
		case "once":
			cfg.Once = once
		case "l", "listen":
			cfg.Listen = listen
		case "concurrency":
			cfg.Concurrency = conc
		}
	})

	if len(cfg.URLs) == 0 {
		fmt.Println("No URLs provided, using default test URLs ...")
		cfg.URLs = config.DefaultURLs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger error:", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := []scheduler.Sink{&report.ConsoleSink{Out: os.Stdout}}
	if cfg.Output != "" {
		sinks = append(sinks, &report.FileSink{Path: cfg.Output})
	}

	var srv *http.Server
	if cfg.Listen != "" {
		api := httpapi.NewServer(logger)
		sinks = append(sinks, api)
		srv = &http.Server{Addr: cfg.Listen, Handler: api.Router()}
		go func() {
			logger.Info("api_listen", zap.String("addr", cfg.Listen))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("api_serve_error", zap.Error(err))
			}
		}()
	}

	checker := probe.NewHTTPChecker(cfg.Timeout)
	runner := scheduler.NewRunner(checker, cfg.Timeout, cfg.Concurrency)
	loop := scheduler.NewLoop(logger, runner, cfg.URLs, cfg.Interval, cfg.Once, sinks...)

	printBanner(cfg)

	runErr := loop.Run(ctx)

	if srv != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(sctx)
		cancel()
	}

	// A stop signal is a normal way to end repeat mode, not a failure.
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("loop_error", zap.Error(runErr))
		return 1
	}
	return 0
}

func printBanner(cfg config.Config) {
	fmt.Println("HTTP Health Checker Starting...")
	fmt.Printf("Checking %d URLs every %d seconds\n", len(cfg.URLs), int(cfg.Interval.Seconds()))
	fmt.Printf("URLs: %s\n", strings.Join(cfg.URLs, ", "))
	if cfg.Once {
		fmt.Println("\nRunning single check...")
	} else {
		fmt.Println("\nPress Ctrl+C to stop")
	}
}
