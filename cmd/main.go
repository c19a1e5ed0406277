package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/richard-senior/mcp-geometry/internal/config"
	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/server"
	"github.com/richard-senior/mcp-geometry/pkg/transport"
)

func main() {
	cfg := config.DefaultConfig()

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, inform, highlight, warn, error or fatal")
	logOutput := flag.String("log-output", string(cfg.LogOutput), "Log to c(onsole), f(ile) or b(oth)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file used when logging to file")
	flag.StringVar(&cfg.ToolPrefix, "tool-prefix", cfg.ToolPrefix, "Prefix added to every tool name")
	flag.Float64Var(&cfg.Accuracy, "accuracy", cfg.Accuracy, "Default accuracy for point comparison and rounding")
	flag.Float64Var(&cfg.MaxSampleDistance, "max-distance", cfg.MaxSampleDistance, "Default spacing when pointalising paths")
	flag.IntVar(&cfg.MaxSamplePoints, "max-points", cfg.MaxSamplePoints, "Most points a single pointalise may produce")
	profileDir := flag.String("profile", "", "Write a CPU profile to this directory")
	flag.Parse()

	cfg.LogLevel = *logLevel
	if len(*logOutput) != 1 {
		fmt.Fprintln(os.Stderr, "log-output must be one of c, f or b")
		os.Exit(2)
	}
	cfg.LogOutput = rune((*logOutput)[0])

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(2)
	}
	// stdout carries the protocol, so logging must never go there
	if err := cfg.ApplyLogging(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to configure logging:", err)
		os.Exit(2)
	}

	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	}

	logger.Info("Starting", cfg.ServerName, cfg.ServerVersion)
	for i, arg := range os.Args[1:] {
		logger.Debug(fmt.Sprintf("Argument %d:", i+1), arg)
	}

	s := server.InitInstance(transport.NewStdioTransport(), cfg)

	if err := s.Start(); err != nil {
		logger.Error("Server error:", err)
		os.Exit(1)
	}

	logger.Info("MCP server shutting down")
}
