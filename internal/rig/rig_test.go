package rig

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/material"
	"mc-skin-renderer/internal/skin"
)

func uniform(w, h int, c color.NRGBA, alphaCapable bool) *skin.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return skin.New(img, alphaCapable)
}

var red = color.NRGBA{R: 255, A: 255}

func redSkin() *skin.Image   { return uniform(64, 64, red, false) }
func validCape() *skin.Image { return uniform(64, 32, red, false) }

func TestBuildRedSkin(t *testing.T) {
	r, err := Build(redSkin(), nil, atlas.Steve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for id := PartID(0); id < NodeCount; id++ {
		n := r.Node(id)
		if n.ID != id {
			t.Errorf("node %v carries ID %v", id, n.ID)
		}
	}

	for id := Head; id <= LeftPants; id++ {
		n := r.Node(id)
		if !n.Visible {
			t.Errorf("%v not visible after build", id)
		}
		part, _ := id.AtlasPart()
		isBase := part.Layer() == atlas.LayerBase
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			m := n.Faces[f]
			if m.Placeholder {
				t.Errorf("%v %v degraded to placeholder on a valid 64x64 skin", id, f)
			}
			if isBase && m.Mode != material.ModeOpaque {
				t.Errorf("%v %v: base face not opaque", id, f)
			}
			if !isBase && m.Mode == material.ModeOpaque {
				t.Errorf("%v %v: overlay face must blend", id, f)
			}
		}
	}

	if r.HasCape {
		t.Error("HasCape without a cape texture")
	}
	if r.Node(Cape).Visible {
		t.Error("cape visible without a cape texture")
	}
}

// For a valid skin, the six slices of every base part are non-empty
// and together cover exactly the area their atlas rectangles declare.
func TestBaseSliceAreas(t *testing.T) {
	sk := redSkin()
	for p := atlas.Part(0); p < atlas.PartCount; p++ {
		if p == atlas.PartCape || p.Layer() != atlas.LayerBase {
			continue
		}
		regs := atlas.Regions(p, atlas.Steve)
		total, want := 0, 0
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			sl, err := skin.Slice(sk, regs[f].Rect(1), regs[f].Rotate180)
			if err != nil {
				t.Fatalf("%v %v: %v", p, f, err)
			}
			area := sl.Width() * sl.Height()
			if area == 0 {
				t.Errorf("%v %v: empty slice", p, f)
			}
			total += area
			want += regs[f].Area()
		}
		if total != want {
			t.Errorf("%v: sliced area %d != declared area %d", p, total, want)
		}
	}
}

func TestBuildMissingSource(t *testing.T) {
	if _, err := Build(nil, nil, atlas.Steve); !errors.Is(err, skin.ErrSourceMissing) {
		t.Errorf("Build(nil) = %v, want ErrSourceMissing", err)
	}
}

// A bitmap too small for any region must still yield the full node set,
// every face degraded to its diagnostic placeholder.
func TestBuildTinySkinAllPlaceholders(t *testing.T) {
	r, err := Build(uniform(8, 8, red, false), nil, atlas.Steve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for id := Head; id <= LeftPants; id++ {
		n := r.Node(id)
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			if !n.Faces[f].Placeholder {
				t.Errorf("%v %v: expected placeholder on undersized bitmap", id, f)
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(redSkin(), validCape(), atlas.Steve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(redSkin(), validCape(), atlas.Steve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for id := PartID(0); id < NodeCount; id++ {
		na, nb := a.Node(id), b.Node(id)
		if na.Dims != nb.Dims || na.Position != nb.Position {
			t.Errorf("%v: geometry differs across identical builds", id)
		}
		if na.RenderOrder != nb.RenderOrder || na.DepthBias != nb.DepthBias {
			t.Errorf("%v: compositing differs across identical builds", id)
		}
	}
}

// Switching variant must change arms and sleeves only; the other parts
// come out byte-for-byte identical.
func TestVariantSwitchTouchesOnlyArms(t *testing.T) {
	steve, err := Build(redSkin(), nil, atlas.Steve)
	if err != nil {
		t.Fatalf("Build steve: %v", err)
	}
	alex, err := Build(redSkin(), nil, atlas.Alex)
	if err != nil {
		t.Fatalf("Build alex: %v", err)
	}

	armNodes := map[PartID]bool{RightArm: true, LeftArm: true, RightSleeve: true, LeftSleeve: true}

	for id := Head; id <= LeftPants; id++ {
		ns, na := steve.Node(id), alex.Node(id)
		if armNodes[id] {
			if ns.Dims == na.Dims {
				t.Errorf("%v: dims identical across variants", id)
			}
			if ns.Position == na.Position {
				t.Errorf("%v: position identical across variants", id)
			}
			continue
		}
		if ns.Dims != na.Dims || ns.Position != na.Position {
			t.Errorf("%v: non-arm geometry differs across variants", id)
		}
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			if !bytes.Equal(ns.Faces[f].Image.Pix, na.Faces[f].Image.Pix) {
				t.Errorf("%v %v: non-arm face pixels differ across variants", id, f)
			}
		}
	}

	if steve.Node(RightArm).Dims.W != 4 || alex.Node(RightArm).Dims.W != 3 {
		t.Errorf("arm widths = %v/%v, want 4/3",
			steve.Node(RightArm).Dims.W, alex.Node(RightArm).Dims.W)
	}
}

func TestCompositeTable(t *testing.T) {
	tests := []struct {
		id        PartID
		wantOrder int
		wantBias  float64
	}{
		{Head, 100, 0},
		{Body, 100, 0},
		{RightArm, 105, -0.001},
		{LeftLeg, 105, -0.001},
		{Hat, 200, -0.002},
		{Jacket, 200, -0.002},
		{RightSleeve, 210, -0.003},
		{LeftPants, 210, -0.003},
		{Cape, 105, -0.001},
	}
	for _, tt := range tests {
		order, bias := Composite(tt.id)
		if order != tt.wantOrder || bias != tt.wantBias {
			t.Errorf("Composite(%v) = (%d, %v), want (%d, %v)",
				tt.id, order, bias, tt.wantOrder, tt.wantBias)
		}
	}
}

// Overlay parts must always draw after their base counterpart.
func TestOverlayOrdersAfterBase(t *testing.T) {
	pairs := [][2]PartID{
		{Head, Hat}, {Body, Jacket},
		{RightArm, RightSleeve}, {LeftArm, LeftSleeve},
		{RightLeg, RightPants}, {LeftLeg, LeftPants},
	}
	for _, p := range pairs {
		baseOrder, baseBias := Composite(p[0])
		overOrder, overBias := Composite(p[1])
		if overOrder <= baseOrder {
			t.Errorf("%v order %d not after %v order %d", p[1], overOrder, p[0], baseOrder)
		}
		if overBias >= baseBias {
			t.Errorf("%v bias %v not nearer viewer than %v bias %v", p[1], overBias, p[0], baseBias)
		}
	}
}

func TestBuildCapeMaterials(t *testing.T) {
	t.Run("transparent cape", func(t *testing.T) {
		cape := uniform(64, 32, red, true)
		// Punch transparent pixels into the top third of the cloth.
		for y := 1; y < 6; y++ {
			for x := 1; x < 11; x++ {
				cape.Pix.Pix[cape.Pix.PixOffset(x, y)+3] = 0
			}
		}
		r, err := Build(redSkin(), cape, atlas.Steve)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if !r.HasCape || !r.Node(Cape).Visible {
			t.Fatal("cape missing after valid cape build")
		}
		m := r.Node(Cape).Faces[atlas.FaceFront]
		if !m.DoubleSided() || m.Opacity != 1 {
			t.Errorf("transparent cape front = %+v, want double-sided full alpha", m)
		}
	})

	t.Run("opaque cape", func(t *testing.T) {
		r, err := Build(redSkin(), validCape(), atlas.Steve)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		m := r.Node(Cape).Faces[atlas.FaceFront]
		if m.DoubleSided() {
			t.Error("opaque cape should not be double-sided")
		}
		if m.Mode != material.ModeBlended || m.Opacity != 0.9 {
			t.Errorf("opaque cape front = %+v, want blended at 0.9", m)
		}
	})
}

func TestCharacterRejectsBadSkin(t *testing.T) {
	c := NewCharacter(atlas.Steve)
	if err := c.RebuildSkin(redSkin()); err != nil {
		t.Fatalf("RebuildSkin: %v", err)
	}
	prev := c.Rig()

	err := c.RebuildSkin(uniform(60, 60, red, false))
	if !errors.Is(err, skin.ErrDimensionMismatch) {
		t.Fatalf("RebuildSkin(60x60) = %v, want ErrDimensionMismatch", err)
	}
	if c.Rig() != prev {
		t.Error("rejected texture replaced the displayed rig")
	}
}

func TestCharacterRejectsBadCape(t *testing.T) {
	c := NewCharacter(atlas.Steve)
	if err := c.RebuildSkin(redSkin()); err != nil {
		t.Fatalf("RebuildSkin: %v", err)
	}
	if err := c.RebuildCape(uniform(64, 64, red, false)); !errors.Is(err, skin.ErrDimensionMismatch) {
		t.Fatalf("RebuildCape(square) = %v, want ErrDimensionMismatch", err)
	}
	if c.Rig().HasCape {
		t.Error("rejected cape still installed")
	}
}

func TestCharacterVisibilityToggles(t *testing.T) {
	c := NewCharacter(atlas.Steve)
	if err := c.RebuildSkin(redSkin()); err != nil {
		t.Fatalf("RebuildSkin: %v", err)
	}
	if err := c.RebuildCape(validCape()); err != nil {
		t.Fatalf("RebuildCape: %v", err)
	}

	c.SetOverlayVisible(false)
	if c.Rig().Node(Hat).Visible || c.Rig().Node(LeftPants).Visible {
		t.Error("overlay still visible after SetOverlayVisible(false)")
	}
	if !c.Rig().Node(Head).Visible || !c.Rig().Node(Cape).Visible {
		t.Error("hiding overlays must not touch base parts or the cape")
	}

	c.SetCapeVisible(false)
	if c.Rig().Node(Cape).Visible {
		t.Error("cape still visible after SetCapeVisible(false)")
	}

	// Visibility must survive a rebuild.
	if err := c.SwitchVariant(atlas.Alex); err != nil {
		t.Fatalf("SwitchVariant: %v", err)
	}
	if c.Rig().Node(Hat).Visible || c.Rig().Node(Cape).Visible {
		t.Error("visibility state lost across rebuild")
	}
}

func TestCharacterSway(t *testing.T) {
	c := NewCharacter(atlas.Steve)
	if err := c.RebuildSkin(redSkin()); err != nil {
		t.Fatalf("RebuildSkin: %v", err)
	}
	if err := c.RebuildCape(validCape()); err != nil {
		t.Fatalf("RebuildCape: %v", err)
	}

	rest := c.Rig().Node(CapePivot).Rotation
	if rest[0] != CapeRestTilt {
		t.Fatalf("rest tilt = %v, want %v", rest[0], CapeRestTilt)
	}

	c.Sway().Start()
	c.Advance(800 * time.Millisecond)
	moved := c.Rig().Node(CapePivot).Rotation
	if moved == rest {
		t.Fatal("pivot did not move while sway running")
	}

	// Stopping freezes in place: no snap back to the rest pose.
	c.Sway().Stop()
	c.Advance(time.Second)
	frozen := c.Rig().Node(CapePivot).Rotation
	if frozen != moved {
		t.Errorf("pivot rotation changed after stop: %v vs %v", frozen, moved)
	}
}
