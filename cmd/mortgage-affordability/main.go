package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/redriverhomes/mortgage-affordability/internal/config"
	"github.com/redriverhomes/mortgage-affordability/internal/server"
	"github.com/redriverhomes/mortgage-affordability/pkg/calculator"
	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
	"github.com/redriverhomes/mortgage-affordability/pkg/output"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	serve := flag.Bool("serve", false, "start the HTTP API server")
	requestFile := flag.String("request", "", "path to a YAML calculation request for one-shot mode")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Surface any regional profile misconfiguration before serving requests.
	marketData := conf.MarketData()
	for _, warning := range marketData.Validate() {
		logger.Warn("Market profile warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		runServer(logger, conf, marketData)
		return
	}

	if *requestFile == "" {
		logger.Fatal("nothing to do: pass -serve or -request <file>",
			zap.String("op", "main"),
		)
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %q", outputFormat),
			zap.String("op", "main"),
		)
	}

	data, err := os.ReadFile(*requestFile)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to read request file at %s", *requestFile),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var request calculator.Request
	if err := yaml.Unmarshal(data, &request); err != nil {
		logger.Fatal("failed to parse request file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result, err := calculator.Calculate(request, marketData)
	if err != nil {
		logger.Fatal("calculation rejected",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, result, marketData)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, result)
	}
}

func runServer(logger *zap.Logger, conf *config.Configuration, marketData market.Data) {
	handler := server.NewHandler(logger, marketData, server.Options{
		MaxBodyBytes:    conf.Server.MaxBodySizeBytes(),
		RateLimitPerMin: conf.Server.RateLimitPerMin,
		Version:         version,
	})

	srv := &http.Server{
		Addr:              conf.Server.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		received := <-sig

		logger.Info("shutting down",
			zap.String("op", "main.runServer"),
			zap.String("signal", received.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("serving affordability API",
		zap.String("op", "main.runServer"),
		zap.String("address", conf.Server.Address),
		zap.String("region", marketData.Region),
		zap.String("version", version),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("shutdown did not complete cleanly",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}
}
