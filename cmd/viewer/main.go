// Command viewer renders the deserted home scene: a free-flying camera, a
// single shadow-casting light, fog and two animated props.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"deserted-home/config"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "TOML config file (built-in scene when empty)")
		assets     = pflag.String("assets", "", "asset root, overrides assets.root")
		vsync      = pflag.Bool("vsync", true, "wait for vertical sync")
		logLevel   = pflag.String("log-level", "info", "debug, info, warn or error")
		watch      = pflag.Bool("watch", false, "reload object placements when the config file changes")
	)
	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Error("load config", "err", err)
			os.Exit(1)
		}
	}
	if *assets != "" {
		cfg.Assets.Root = *assets
	}
	if pflag.CommandLine.Changed("vsync") {
		cfg.Window.VSync = *vsync
	}
	if *watch && *configPath == "" {
		log.Warn("--watch needs --config; placements will not reload")
		*watch = false
	}

	v, err := newViewer(cfg, log)
	if err != nil {
		log.Error("start viewer", "err", err)
		os.Exit(1)
	}
	defer v.Destroy()

	if *watch {
		if err := v.Watch(*configPath); err != nil {
			log.Warn("config watch disabled", "err", err)
		}
	}
	v.Run()
}
