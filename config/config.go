package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerConfig contains all of the server settings
type ServerConfig struct {
	ListenAddrIP          string
	ListenAddrPort        string
	RendererType          string //"pdfium" (pure Go) or "fitz" (CGo/MuPDF)
	RenderDPI             int
	ScratchPath           string //absolute path to the upload spool directory
	ScratchSweepMinutes   int
	MaxUploadMB           int //0 disables the body limit
	RequestTimeoutSeconds int //0 disables the per-request timeout
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// SetupServer loads configuration and returns ServerConfig and Logger
func SetupServer() (ServerConfig, *slog.Logger) {
	serverConfigLive := ServerConfig{}

	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	// Load configuration from environment variables with defaults

	// Server configuration
	serverConfigLive.ListenAddrPort = getEnv("SERVER_PORT", "8000")
	serverConfigLive.ListenAddrIP = getEnv("SERVER_ADDR", "")

	// Renderer configuration
	serverConfigLive.RendererType = strings.ToLower(getEnv("RENDERER", "pdfium"))
	serverConfigLive.RenderDPI = getEnvInt("RENDER_DPI", 150)
	if serverConfigLive.RenderDPI <= 0 {
		logger.Warn("Invalid RENDER_DPI, falling back to 150", "value", serverConfigLive.RenderDPI)
		serverConfigLive.RenderDPI = 150
	}
	logger.Info("Renderer configuration loaded", "type", serverConfigLive.RendererType, "dpi", serverConfigLive.RenderDPI)

	// Scratch directory where uploads are spooled for the renderer
	scratchDir := filepath.ToSlash(getEnv("SCRATCH_PATH", "scratch"))
	scratchDirAbs, err := filepath.Abs(scratchDir)
	if err != nil {
		logger.Error("Failed creating absolute path for scratch directory", "error", err)
	}
	serverConfigLive.ScratchPath = scratchDirAbs
	serverConfigLive.ScratchSweepMinutes = getEnvInt("SCRATCH_SWEEP_MINUTES", 10)

	// Request limits, set either to 0 to disable
	serverConfigLive.MaxUploadMB = getEnvInt("MAX_UPLOAD_MB", 50)
	serverConfigLive.RequestTimeoutSeconds = getEnvInt("REQUEST_TIMEOUT_SECONDS", 120)

	fmt.Println("\n========================================")
	fmt.Println("   pdfpages - PDF page preview service")
	fmt.Println("========================================")
	fmt.Printf("Server will start on: %s:%s\n", serverConfigLive.ListenAddrIP, serverConfigLive.ListenAddrPort)
	if serverConfigLive.ListenAddrIP == "" {
		fmt.Println("(Listening on all network interfaces)")
	}
	fmt.Println("Initializing...")

	return serverConfigLive, logger
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "debug")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelDebug
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer

	if logOutput == "stdout" {
		logWriter = os.Stdout
	} else {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "pdfpages.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stdout
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stdout
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}
