package runner

import (
	"testing"

	"github.com/vovakirdan/thor-runner/internal/core"
)

func vec(x, y float64) core.Vec2 {
	return core.Vec2{X: x, Y: y}
}

func TestObstacleAdvance(t *testing.T) {
	ctx := UpdateContext{Speed: 6, DeltaMs: 16, FieldW: 800}

	tests := []struct {
		name  string
		o     Obstacle
		wantX float64
	}{
		{"enemy scrolls", Obstacle{kind: KindEnemy, Pos: vec(400, 0), W: 50}, 394},
		{"coin scrolls", Obstacle{kind: KindCoin, Pos: vec(400, 0), W: 30}, 394},
		{"platform scrolls", Obstacle{kind: KindPlatform, Pos: vec(400, 0), W: 160}, 394},
		{"antagonist scrolls", Obstacle{kind: KindAntagonist, Pos: vec(400, 0), W: 60}, 394},
		{"deity scrolls", Obstacle{kind: KindDeity, Pos: vec(400, 0), W: 70}, 394},
		{"leftward bird", Obstacle{kind: KindBird, Pos: vec(400, 0), W: 40, Dir: BirdLeftward, Flight: 3}, 394},
		{"rightward bird ignores scroll", Obstacle{kind: KindBird, Pos: vec(400, 0), W: 40, Dir: BirdRightward, Flight: 3}, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.o
			o.Advance(ctx)
			if o.Pos.X != tt.wantX {
				t.Errorf("x = %v, want %v", o.Pos.X, tt.wantX)
			}
			if o.Expired() {
				t.Error("should not expire mid-field")
			}
		})
	}
}

func TestObstacleExpiry(t *testing.T) {
	ctx := UpdateContext{Speed: 4.5, FieldW: 800}

	tests := []struct {
		name string
		o    Obstacle
		want bool
	}{
		{"exactly at -width stays", Obstacle{kind: KindEnemy, Pos: vec(-45.5, 0), W: 50}, false},
		{"past -width expires", Obstacle{kind: KindEnemy, Pos: vec(-46, 0), W: 50}, true},
		{"rightward bird off right edge", Obstacle{kind: KindBird, Pos: vec(798, 0), W: 40, Dir: BirdRightward, Flight: 3}, true},
		{"rightward bird at right edge", Obstacle{kind: KindBird, Pos: vec(797, 0), W: 40, Dir: BirdRightward, Flight: 3}, false},
		{"leftward bird off right edge is fine", Obstacle{kind: KindBird, Pos: vec(820, 0), W: 40, Dir: BirdLeftward, Flight: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.o
			o.Advance(ctx)
			if o.Expired() != tt.want {
				t.Errorf("Expired() = %v at x=%v, want %v", o.Expired(), o.Pos.X, tt.want)
			}
		})
	}
}

func TestCullKeepsOrder(t *testing.T) {
	obs := []Obstacle{
		{kind: KindCoin, Pos: vec(1, 0)},
		{kind: KindCoin, Pos: vec(2, 0), MarkedForDeletion: true},
		{kind: KindCoin, Pos: vec(3, 0)},
	}

	kept := cull(obs)
	if len(kept) != 2 || kept[0].Pos.X != 1 || kept[1].Pos.X != 3 {
		t.Errorf("cull = %+v", kept)
	}
}

func TestObstacleKindString(t *testing.T) {
	if KindAntagonist.String() != "antagonist" || Kind(99).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
