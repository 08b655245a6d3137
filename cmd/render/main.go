package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/batch"
	"mc-skin-renderer/internal/config"
	"mc-skin-renderer/internal/skin"
	"mc-skin-renderer/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	skinPath := flag.String("skin", "", "Skin texture to render")
	skinDir := flag.String("dir", "", "Directory of skin textures to render in batch")
	capePath := flag.String("cape", "", "Optional cape texture")
	variant := flag.String("variant", "", "Model variant: steve or alex (default: steve)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Turntable frames per skin (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	lit := flag.Bool("lit", false, "Apply per-face axis shading")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			slog.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		SkinPath:  *skinPath,
		SkinDir:   *skinDir,
		CapePath:  *capePath,
		OutputDir: *outputDir,
		Variant:   *variant,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Lit:       *lit,
	})

	v, err := atlas.ParseVariant(cfg.Variant)
	if err != nil {
		slog.Error("invalid variant", "err", err)
		os.Exit(1)
	}

	var cape *skin.Image
	if cfg.CapePath != "" {
		cape, err = texture.Load(cfg.CapePath)
		if err != nil {
			slog.Error("loading cape", "path", cfg.CapePath, "err", err)
			os.Exit(1)
		}
		if err := skin.ValidateCape(cape); err != nil {
			slog.Error("cape rejected", "path", cfg.CapePath, "err", err)
			os.Exit(1)
		}
	}

	paths, err := collectSkins(cfg)
	if err != nil {
		slog.Error("collecting skins", "err", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		slog.Info("no skins to render")
		return
	}

	slog.Info("rendering",
		"skins", len(paths),
		"variant", v.String(),
		"frames", cfg.Frames,
		"workers", cfg.Workers,
		"output", cfg.OutputDir)

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Cape:        cape,
		Variant:     v,
		RenderSize:  cfg.RenderSize,
		Frames:      cfg.Frames,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Lit:         cfg.Lit,
	}, paths)

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			slog.Error("render failed", "skin", r.Path, "err", r.Error)
		}
	}
	slog.Info("done",
		"rendered", success,
		"failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		slog.Warn("manifest write failed", "err", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func collectSkins(cfg config.Config) ([]string, error) {
	if cfg.SkinDir == "" {
		if cfg.SkinPath == "" {
			return nil, fmt.Errorf("no skin given: use -skin or -dir")
		}
		return []string{cfg.SkinPath}, nil
	}

	entries, err := os.ReadDir(cfg.SkinDir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif", ".tga", ".bmp":
			paths = append(paths, filepath.Join(cfg.SkinDir, e.Name()))
		}
	}
	return paths, nil
}
