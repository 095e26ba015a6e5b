package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/shared/tilequery"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// relocateFromHazard moves a ghost that touched water to the nearest safe
// cell in the same frame. The caller has already applied HazardContact,
// so the body is invulnerable and relocating.
func relocateFromHazard(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	physics := components.Physics.Get(e)
	loco := components.Locomotion.Get(e)
	events := components.Events.Get(e)

	fromX := obj.X + obj.W/2
	x, y, source := relocationTarget(w, obj)
	placeAt(obj, x, y)

	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil
	physics.WasOnGround = false

	startInvulnerability(e)
	loco.RelocationTask = loco.Tasks.After(cfg.Ghost.RelocationSettle, func() {
		if !e.Valid() {
			return
		}
		l := components.Locomotion.Get(e)
		l.State = locomotion.Apply(l.State, locomotion.RelocationSettled)
		l.RelocationTask = 0
	})

	events.Emit(components.Event{Kind: components.EventHit, X: x, Y: y, SourceX: fromX})
	events.Emit(components.Event{Kind: components.EventAppeared, X: x, Y: y})
	startAppear(e)

	logger.Info("hazard relocation",
		zap.String("target", source),
		zap.Float64("from_x", fromX),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
}

// relocationTarget walks the fallback chain: nearest safe cell, then the
// level spawn, then the level's safe point, then the configured coordinate.
func relocationTarget(w donburi.World, obj *resolv.Object) (x, y float64, source string) {
	level, ok := levelOf(w)
	if !ok {
		return cfg.World.SafeX, cfg.World.SafeY, "fallback"
	}

	if layer := level.Surface; layer != nil {
		feet := dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H - 1}
		cx, cy := layer.CellAt(feet)
		cx, cy, err := level.Query.FindSafeCell(tilequery.SafeCellSearch{
			Layer:    layer,
			CX:       cx,
			CY:       cy,
			SpanRows: int(math.Ceil(obj.H / layer.CellH)),
			Radius:   cfg.Ghost.RelocationRadius,
		})
		if err == nil {
			origin := layer.CellOrigin(cx, cy)
			return origin.X + (layer.CellW-obj.W)/2, origin.Y + layer.CellH - obj.H, "cell"
		}
		logger.Debug("no safe cell near hazard", zap.Error(err))
	}

	if lvl := level.CurrentLevel; lvl != nil {
		if len(lvl.SpawnPoints) > 0 {
			return lvl.SpawnPoints[0].X, lvl.SpawnPoints[0].Y, "spawn"
		}
		if lvl.SafePoint != nil {
			return lvl.SafePoint.X, lvl.SafePoint.Y, "safe-point"
		}
	}
	return cfg.World.SafeX, cfg.World.SafeY, "fallback"
}

func placeAt(obj *resolv.Object, x, y float64) {
	obj.X = x
	obj.Y = y
	obj.Update()
}
