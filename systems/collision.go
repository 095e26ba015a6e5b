package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// maxStep bounds the per-frame displacement on each axis so a fast body
// cannot skip over a tile.
const maxStep = 15.0

// platformDropThreshold is how far below a platform's top the body's feet
// may be and still land on it.
const platformDropThreshold = 4.0

// contactEpsilon absorbs float error left by previous contact snaps.
const contactEpsilon = 0.01

// UpdateCollisions moves every player by its velocity and refreshes the
// contact flags.
func UpdateCollisions(w donburi.World) {
	dt := deltaSeconds(w)
	components.Physics.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.WasOnGround = physics.OnGround != nil
		dx := clampStep(physics.SpeedX * dt)
		dy := clampStep(physics.SpeedY * dt)

		resolveHorizontalCollision(physics, obj, dx)
		if physics.Collides {
			resolveVerticalCollision(physics, obj, dy, tags.ResolvSolid, tags.ResolvPlatform)
		} else {
			// Ladders pass through their platforms but not through walls
			// or floors.
			resolveVerticalCollision(physics, obj, dy, tags.ResolvSolid)
		}
		obj.Update()
	})
}

func clampStep(d float64) float64 {
	return math.Max(math.Min(d, maxStep), -maxStep)
}

func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	physics.BlockedLeft, physics.BlockedRight = false, false
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	wall := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), dx, 0)
	if wall == nil {
		object.X += dx
		return
	}

	if dx > 0 {
		physics.BlockedRight = true
	} else {
		physics.BlockedLeft = true
	}
	physics.SpeedX = 0
	object.X += check.ContactWithObject(wall).X()
}

// resolveVerticalCollision moves the body by dy against the surfaces with
// the given tags and refreshes the ground contact.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64, surfaces ...string) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, surfaces...)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		if ceiling := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy); ceiling != nil {
			physics.SpeedY = 0
			dy = check.ContactWithObject(ceiling).Y()
		}
		object.Y += dy
		return
	}

	if ground := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, checkDistance); ground != nil {
		physics.OnGround = ground
		physics.SpeedY = 0
		dy = check.ContactWithObject(ground).Y()
	} else if platform := landablePlatform(physics, object, check, checkDistance); platform != nil {
		physics.OnGround = platform
		physics.SpeedY = 0
		dy = check.ContactWithObject(platform).Y()
	}
	object.Y += dy
}

// nearestSolid returns the closest candidate the body would actually run
// into when moved by (dx, dy). resolv's check only shares cells, so the
// candidates are filtered to those overlapping on the other axis and lying
// ahead of the body.
func nearestSolid(object *resolv.Object, candidates []*resolv.Object, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, o := range candidates {
		var dist float64
		switch {
		case dx > 0 && overlapsY(object, o) && o.X >= object.X+object.W-contactEpsilon:
			dist = o.X - (object.X + object.W)
		case dx < 0 && overlapsY(object, o) && o.X+o.W <= object.X+contactEpsilon:
			dist = object.X - (o.X + o.W)
		case dy > 0 && overlapsX(object, o) && o.Y >= object.Y+object.H-contactEpsilon:
			dist = o.Y - (object.Y + object.H)
		case dy < 0 && overlapsX(object, o) && o.Y+o.H <= object.Y+contactEpsilon:
			dist = object.Y - (o.Y + o.H)
		default:
			continue
		}
		if dist > math.Abs(dx)+math.Abs(dy) {
			continue
		}
		if dist < bestDist {
			best, bestDist = o, dist
		}
	}
	return best
}

// landablePlatform returns a one-way platform under the body's feet when
// falling onto it from above.
func landablePlatform(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, distance float64) *resolv.Object {
	if physics.SpeedY < 0 {
		return nil
	}
	for _, p := range check.ObjectsByTags(tags.ResolvPlatform) {
		if !overlapsX(object, p) {
			continue
		}
		if object.Bottom() > p.Y+platformDropThreshold || p.Y-object.Bottom() > distance {
			continue
		}
		return p
	}
	return nil
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactEpsilon && a.X+a.W > b.X+contactEpsilon
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-contactEpsilon && a.Y+a.H > b.Y+contactEpsilon
}
