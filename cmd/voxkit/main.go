package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ekisa-team/voxkit/internal/config"
	"github.com/ekisa-team/voxkit/internal/dotenv"
	"github.com/ekisa-team/voxkit/internal/env"
	"github.com/ekisa-team/voxkit/internal/envvar"
	"github.com/ekisa-team/voxkit/internal/logger"
	"github.com/ekisa-team/voxkit/internal/speech"
	"github.com/ekisa-team/voxkit/internal/speech/elevenlabs"
)

func main() {
	var (
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "voxkit.v1.schema.json"), "Path to schema file")
		flagText       = flag.String("text", "", "Text to synthesize")
		flagFile       = flag.String("file", "", "Path to a text file to synthesize")
		flagOut        = flag.String("out", "", "Destination audio file name, relative to the cache directory")
		flagWatch      = flag.Bool("watch", false, "Stay alive and re-synthesize whenever the config changes")
		flagInitEnv    = flag.Bool("init-env", false, "Write a .env template and exit")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/voxkit.log"),
		),
	)

	if *flagInitEnv {
		if err := dotenv.WriteTemplate(".env", envvar.ElevenLabsAPIKey); err != nil {
			slog.Error("Failed to write .env template", "error", err)
			os.Exit(1)
		}
		slog.Info("The .env file has been created. Fill in the key and run voxkit again.")
		return
	}

	apiKey, err := dotenv.Bootstrap(envvar.ElevenLabsAPIKey)
	if err != nil {
		slog.Error("Missing credentials", "error", err, "hint", "run voxkit -init-env to create a .env template")
		os.Exit(1)
	}

	text := *flagText
	if text == "" && *flagFile != "" {
		data, err := os.ReadFile(*flagFile)
		if err != nil {
			slog.Error("Failed to read input file", "path", *flagFile, "error", err)
			os.Exit(1)
		}
		text = string(data)
	}
	if text == "" {
		slog.Error("Nothing to synthesize, pass -text or -file")
		os.Exit(1)
	}

	ctx := context.Background()
	client := elevenlabs.NewClient(apiKey)
	registry := speech.NewRegistry()
	defer registry.Close()

	synthesize := func(cfg *config.Config) {
		registry.Register(elevenlabs.NewService(ctx, client, elevenlabs.Config{
			VoiceName:     cfg.Service.VoiceName,
			VoiceID:       cfg.Service.VoiceID,
			Model:         cfg.Service.Model,
			OutputFormat:  cfg.Service.OutputFormat,
			VoiceSettings: cfg.Service.VoiceSettings,
			CacheDir:      config.ResolveCacheDir(cfg),
		}))

		svc, ok := registry.Get(speech.Provider(cfg.Service.Provider))
		if !ok {
			slog.Error("Unknown speech provider", "provider", cfg.Service.Provider)
			return
		}

		result, err := svc.Generate(ctx, text, &speech.GenerateOptions{Path: *flagOut})
		if err != nil {
			slog.Error("Synthesis failed", "error", err)
			return
		}

		slog.Info("Speech generated",
			"audio", filepath.Join(config.ResolveCacheDir(cfg), result.OriginalAudio))
	}

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}
		synthesize(cfg)
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	synthesize(watcher.Snapshot())

	if *flagWatch {
		slog.Info("Watching config for changes", "path", *flagConfigPath)
		select {}
	}
}
