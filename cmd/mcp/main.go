package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richard-senior/mcp-geometry/internal/config"
	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/internal/processor"
	"github.com/richard-senior/mcp-geometry/pkg/tools"
)

// Runs a single tool query without the server, eg.
//
//	mcp path_tool '{"command":"length","path":{"type":"circle","radius":1}}'
func main() {
	cfg := config.DefaultConfig()

	debug := flag.Bool("debug", false, "Enable debug logging")
	inputFile := flag.String("input", "", "Input file path (if not provided, stdin will be used)")
	outputFile := flag.String("output", "", "Output file path (if not provided, stdout will be used)")
	flag.Float64Var(&cfg.Accuracy, "accuracy", cfg.Accuracy, "Default accuracy for point comparison and rounding")
	flag.Float64Var(&cfg.MaxSampleDistance, "max-distance", cfg.MaxSampleDistance, "Default spacing when pointalising paths")
	flag.IntVar(&cfg.MaxSamplePoints, "max-points", cfg.MaxSamplePoints, "Most points a single pointalise may produce")
	flag.Parse()

	cfg.LogOutput = 'c'
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", err)
	}
	if err := cfg.ApplyLogging(); err != nil {
		logger.Fatal("Failed to configure logging", err)
	}
	tools.Configure(cfg)

	logger.Info("Starting MCP CLI application")

	var input []byte
	var err error
	if *inputFile != "" {
		input, err = os.ReadFile(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read input file", err)
		}
	} else if args := flag.Args(); len(args) > 0 {
		request := processor.MCPRequest{
			Query:     strings.Join(args, " "),
			RequestID: fmt.Sprintf("cli-%d", os.Getpid()),
		}
		input, err = json.Marshal(request)
		if err != nil {
			logger.Fatal("Failed to create request from command line arguments", err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal("Failed to read from stdin", err)
		}
	}

	result, err := processor.ProcessRequest(input)
	if err != nil {
		logger.Error("Failed to process request", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, result, 0644); err != nil {
			logger.Fatal("Failed to write to output file", err)
		}
	} else {
		fmt.Println(string(result))
	}

	logger.Info("MCP CLI application completed successfully")
}
