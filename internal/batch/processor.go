package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/postprocess"
	"mc-skin-renderer/internal/raster"
	"mc-skin-renderer/internal/rig"
	"mc-skin-renderer/internal/skin"
	"mc-skin-renderer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string

	// Cape is an optional, already validated cape texture shared by
	// every rendered skin.
	Cape *skin.Image

	Variant     atlas.Variant
	RenderSize  int
	Frames      int
	Supersample int
	Workers     int
	Lit         bool
}

// Result holds the outcome of processing one skin file.
type Result struct {
	Path    string `json:"path"`
	Frames  int    `json:"frames"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run processes all skin files using a worker pool.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f skins/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	pathChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = processSkin(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

func processSkin(cfg Config, path string) Result {
	im, err := texture.Load(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}
	if err := skin.ValidateSkin(im); err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	r, err := rig.Build(im, cfg.Cape, cfg.Variant)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i := 0; i < cfg.Frames; i++ {
		yaw := 2 * math.Pi * float64(i) / float64(cfg.Frames)
		img := raster.RenderRig(r, raster.Options{
			Size:        cfg.RenderSize,
			Supersample: cfg.Supersample,
			Yaw:         yaw,
			Lit:         cfg.Lit,
		})
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.RenderSize)
		}

		outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s.webp", stem))
		if cfg.Frames > 1 {
			outPath = filepath.Join(cfg.OutputDir, stem, fmt.Sprintf("%d.webp", i))
		}
		if err := writeWebP(outPath, img); err != nil {
			return Result{Path: path, Error: err.Error()}
		}
	}

	return Result{Path: path, Frames: cfg.Frames, Success: true}
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// WriteManifest records the batch outcome next to the rendered frames.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
