package runner

import "github.com/vovakirdan/thor-runner/internal/core"

// spriteSet holds the glyph art for every drawable. Entries are stretched
// over their entity's bounds by the surface.
type spriteSet struct {
	thor     *core.Sprite
	enemies  []*core.Sprite // Indexed by enemy variant
	coin     *core.Sprite
	platform *core.Sprite
	bird     [2]*core.Sprite // Indexed by BirdDir
	loki     *core.Sprite
	sol      *core.Sprite
	mani     *core.Sprite
}

// enemy returns the sprite for a variant, falling back to the first.
func (s *spriteSet) enemy(variant int) *core.Sprite {
	if variant < 0 || variant >= len(s.enemies) {
		variant = 0
	}
	if len(s.enemies) == 0 {
		return nil
	}
	return s.enemies[variant]
}

// glyphSprites is the art used on capable terminals.
func glyphSprites() spriteSet {
	return spriteSet{
		thor: &core.Sprite{
			Rows: []string{
				" ▄█▄ ",
				"▐█▀█▌",
				" ███╤",
				" █ █ ",
			},
			Color:    core.ColorBrightRed,
			Fallback: core.ColorRed,
		},
		enemies: []*core.Sprite{
			{Rows: []string{"▄▀▄", "███", "▌ ▐"}, Color: core.ColorGreen, Fallback: core.ColorGreen},
			{Rows: []string{" ▄▄ ", "████", "████", "▐▌▐▌"}, Color: core.ColorBrown, Fallback: core.ColorBrown},
			{Rows: []string{"▛▀▜", "█▓█", "▌ ▐"}, Color: core.ColorGray, Fallback: core.ColorGray},
		},
		coin: &core.Sprite{
			Rows:     []string{"◉"},
			Color:    core.ColorGold,
			Fallback: core.ColorGold,
		},
		platform: &core.Sprite{
			Rows:     []string{"▀▀▀▀▀▀▀▀"},
			Color:    core.ColorBrown,
			Fallback: core.ColorBrown,
		},
		bird: [2]*core.Sprite{
			{Rows: []string{"<v"}, Color: core.ColorGray, Fallback: core.ColorGray},
			{Rows: []string{"v>"}, Color: core.ColorGray, Fallback: core.ColorGray},
		},
		loki: &core.Sprite{
			Rows:     []string{"╲▄╱", "▐█▌", "▐█▌", "▌ ▐"},
			Color:    core.ColorBrightGreen,
			Fallback: core.ColorGreen,
		},
		sol: &core.Sprite{
			Rows:     []string{"\\|/", "-☼-", "/|\\"},
			Color:    core.ColorBrightYellow,
			Fallback: core.ColorYellow,
		},
		mani: &core.Sprite{
			Rows:     []string{" ◜ ", "(☾ ", " ◟ "},
			Color:    core.ColorBrightWhite,
			Fallback: core.ColorWhite,
		},
	}
}

// plainSprites has no art loaded, so every blit degrades to a flat box in
// the sprite's fallback color.
func plainSprites() spriteSet {
	full := glyphSprites()
	strip := func(s *core.Sprite) *core.Sprite {
		return &core.Sprite{Fallback: s.Fallback}
	}

	plain := spriteSet{
		thor:     strip(full.thor),
		coin:     strip(full.coin),
		platform: strip(full.platform),
		bird:     [2]*core.Sprite{strip(full.bird[0]), strip(full.bird[1])},
		loki:     strip(full.loki),
		sol:      strip(full.sol),
		mani:     strip(full.mani),
	}
	for _, e := range full.enemies {
		plain.enemies = append(plain.enemies, strip(e))
	}
	return plain
}
