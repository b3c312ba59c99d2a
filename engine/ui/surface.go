package ui

import (
	"fmt"

	"github.com/hubastard/canopy/engine/core"
)

// FrameStats summarises one built frame.
type FrameStats struct {
	Commands int
	Widgets  int
	States   int
	Err      error // ErrUnbalancedID when scopes leaked
}

// Surface drives frames: it owns the draw list and replays it into a
// rasterizer once the tree is built.
type Surface struct {
	store *Store
	r     Rasterizer
	draw  *DrawList
}

func NewSurface(store *Store, r Rasterizer) *Surface {
	return &Surface{store: store, r: r, draw: NewDrawList(512)}
}

func (s *Surface) Store() *Store          { return s.store }
func (s *Surface) DrawList() *DrawList    { return s.draw }
func (s *Surface) Rasterizer() Rasterizer { return s.r }

// Frame builds one frame over a w x h viewport and paints it.
func (s *Surface) Frame(in *core.InputState, w, h int, build func(*Ctx)) FrameStats {
	s.store.ResetFrame()
	s.draw.Reset()

	ctx := NewCtx(s.store, in, s.draw, R(0, 0, float32(w), float32(h)))
	if s.r != nil {
		ctx.SetMeasurer(s.r)
	}
	build(ctx)

	var stats FrameStats
	if err := s.endFrame(); err != nil {
		stats.Err = err
	}
	if s.r != nil {
		stats.Commands = s.draw.Replay(s.r)
	}
	stats.Widgets = ctx.widgets
	stats.States = s.store.Len()
	return stats
}

// endFrame checks that every identity scope was closed.
func (s *Surface) endFrame() error {
	depth := s.store.depth()
	if depth == 0 {
		return nil
	}
	err := fmt.Errorf("%w: %d scopes open at end of frame", ErrUnbalancedID, depth)
	s.store.log.Error("identity stack not balanced", "depth", depth)
	s.store.ResetFrame()
	return err
}
