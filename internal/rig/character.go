package rig

import (
	"time"

	"mc-skin-renderer/internal/anim"
	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/skin"
)

// Character is the boundary the UI layer talks to: it validates
// incoming textures, rebuilds the rig wholesale on every change, and
// keeps the previous rig on any rejection so the displayed character is
// never blanked by bad input.
type Character struct {
	variant atlas.Variant
	skin    *skin.Image
	cape    *skin.Image

	rig *CharacterRig

	overlayVisible bool
	capeVisible    bool

	sway *anim.Sway
}

// NewCharacter returns a character with no textures yet. Overlays and
// cape start visible; the sway animation starts stopped.
func NewCharacter(v atlas.Variant) *Character {
	return &Character{
		variant:        v,
		overlayVisible: true,
		capeVisible:    true,
		sway:           anim.NewSway(),
	}
}

// Rig returns the current rig, or nil before the first successful build.
func (c *Character) Rig() *CharacterRig { return c.rig }

// Variant returns the active model variant.
func (c *Character) Variant() atlas.Variant { return c.variant }

// Sway exposes the cape animation for start/stop control.
func (c *Character) Sway() *anim.Sway { return c.sway }

// RebuildSkin validates the bitmap against the texture format contract
// and rebuilds the whole rig from it. On DimensionMismatch the previous
// texture and rig stay active and the error is returned.
func (c *Character) RebuildSkin(im *skin.Image) error {
	if err := skin.ValidateSkin(im); err != nil {
		return err
	}
	c.skin = im
	return c.rebuild()
}

// RebuildCape installs, replaces or (with nil) removes the cape.
// A bitmap failing the cape contract is rejected, keeping the previous
// cape rather than stretching the new one.
func (c *Character) RebuildCape(im *skin.Image) error {
	if im != nil {
		if err := skin.ValidateCape(im); err != nil {
			return err
		}
	}
	c.cape = im
	if c.skin == nil {
		return nil
	}
	return c.rebuild()
}

// SwitchVariant rebuilds the rig with the other body proportions. Only
// arm and arm-sleeve geometry changes; all other parts come out
// identical.
func (c *Character) SwitchVariant(v atlas.Variant) error {
	if v == c.variant {
		return nil
	}
	c.variant = v
	if c.skin == nil {
		return nil
	}
	return c.rebuild()
}

// SetOverlayVisible toggles the hat/jacket/sleeves/pants group.
func (c *Character) SetOverlayVisible(visible bool) {
	c.overlayVisible = visible
	c.applyVisibility()
}

// SetCapeVisible toggles the cape independently of the other overlays.
func (c *Character) SetCapeVisible(visible bool) {
	c.capeVisible = visible
	c.applyVisibility()
}

// Advance steps the cape sway and applies it to the pivot node.
func (c *Character) Advance(dt time.Duration) {
	c.sway.Advance(dt)
	if c.rig == nil {
		return
	}
	x, z := c.sway.Angles()
	c.rig.Node(CapePivot).Rotation = mathutil.Vec3{CapeRestTilt + x, 0, z}
}

// rebuild replaces the rig atomically: the new node set is fully built
// from one bitmap snapshot before the old one is dropped.
func (c *Character) rebuild() error {
	r, err := Build(c.skin, c.cape, c.variant)
	if err != nil {
		return err
	}
	x, z := c.sway.Angles()
	r.Node(CapePivot).Rotation = mathutil.Vec3{CapeRestTilt + x, 0, z}
	c.rig = r
	c.applyVisibility()
	return nil
}

func (c *Character) applyVisibility() {
	if c.rig == nil {
		return
	}
	for id := PartID(0); id < NodeCount; id++ {
		n := c.rig.Node(id)
		part, ok := id.AtlasPart()
		switch {
		case id == Cape || id == CapePivot:
			n.Visible = c.capeVisible && c.rig.HasCape
		case ok && part.Layer() == atlas.LayerOverlay:
			n.Visible = c.overlayVisible
		}
	}
}
