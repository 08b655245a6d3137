// Command viewer opens an interactive window showing a skin on a
// slowly spinning character. Keys: V switches the model variant,
// O toggles the overlay layer, C toggles the cape, S toggles the cape
// sway, Space pauses the turntable.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mc-skin-renderer/internal/anim"
	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/raster"
	"mc-skin-renderer/internal/rig"
	"mc-skin-renderer/internal/texture"
)

var cli struct {
	Skin    string `arg:"" help:"Skin texture file." type:"existingfile"`
	Cape    string `help:"Optional cape texture." type:"existingfile" optional:""`
	Variant string `help:"Model variant." enum:"steve,alex" default:"steve"`
	Size    int    `help:"Viewport size in pixels." default:"512"`
	Lit     bool   `help:"Apply per-face axis shading."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("skinviewer"),
		kong.Description("Interactive 3D viewer for Minecraft-style skins."))

	v, err := atlas.ParseVariant(cli.Variant)
	if err != nil {
		slog.Error("invalid variant", "err", err)
		os.Exit(1)
	}

	char := rig.NewCharacter(v)

	sk, err := texture.Load(cli.Skin)
	if err != nil {
		slog.Error("loading skin", "path", cli.Skin, "err", err)
		os.Exit(1)
	}
	if err := char.RebuildSkin(sk); err != nil {
		slog.Error("skin rejected", "path", cli.Skin, "err", err)
		os.Exit(1)
	}

	if cli.Cape != "" {
		cape, err := texture.Load(cli.Cape)
		if err != nil {
			slog.Error("loading cape", "path", cli.Cape, "err", err)
			os.Exit(1)
		}
		if err := char.RebuildCape(cape); err != nil {
			slog.Error("cape rejected", "path", cli.Cape, "err", err)
			os.Exit(1)
		}
	}
	char.Sway().Start()

	g := &game{
		char:    char,
		spin:    anim.NewSpin(),
		size:    cli.Size,
		lit:     cli.Lit,
		overlay: true,
		cape:    true,
	}

	ebiten.SetWindowTitle("skinviewer")
	ebiten.SetWindowSize(cli.Size, cli.Size)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("viewer", "err", err)
		os.Exit(1)
	}
}

type game struct {
	char *rig.Character
	spin *anim.Spin
	size int
	lit  bool

	overlay bool
	cape    bool
}

func (g *game) Update() error {
	const dt = time.Second / 60

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		next := atlas.Steve
		if g.char.Variant() == atlas.Steve {
			next = atlas.Alex
		}
		if err := g.char.SwitchVariant(next); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.overlay = !g.overlay
		g.char.SetOverlayVisible(g.overlay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.cape = !g.cape
		g.char.SetCapeVisible(g.cape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if g.char.Sway().Running() {
			g.char.Sway().Stop()
		} else {
			g.char.Sway().Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.spin.Running() {
			g.spin.Stop()
		} else {
			g.spin.Start()
		}
	}

	g.spin.Advance(dt)
	g.char.Advance(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img := raster.RenderRig(g.char.Rig(), raster.Options{
		Size:        g.size,
		Supersample: 1,
		Yaw:         g.spin.Angle(),
		Lit:         g.lit,
	})
	screen.DrawImage(ebiten.NewImageFromImage(img), nil)
	ebitenutil.DebugPrint(screen, "V variant  O overlays  C cape  S sway  Space spin")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
