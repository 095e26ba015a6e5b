package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
)

// reduceHitboxForCrouch shrinks the body from the top so its feet stay put.
func reduceHitboxForCrouch(playerObject *resolv.Object) {
	targetHeight := cfg.Player.CrouchHeight
	if playerObject.H <= targetHeight {
		return
	}
	heightDiff := playerObject.H - targetHeight
	playerObject.H = targetHeight
	playerObject.Y += heightDiff
	playerObject.Update()
}

// tryStandUp restores full height if there is headroom, nudging sideways
// by up to StandUpPush when a ledge is directly overhead. It reports
// whether the body is now standing.
func tryStandUp(playerObject *resolv.Object, player *components.PlayerData) bool {
	normalHeight := player.StandHeight
	if playerObject.H >= normalHeight {
		return true
	}

	heightDiff := normalHeight - playerObject.H

	if !solidOverlap(playerObject, 0, -heightDiff, normalHeight) {
		restoreHitbox(playerObject, player)
		return true
	}

	// Blocked above - try pushing horizontally
	facingX := player.Direction.X
	for _, dir := range []float64{facingX, -facingX} {
		for offset := 1.0; offset <= cfg.Player.StandUpPush; offset++ {
			if !solidOverlap(playerObject, offset*dir, -heightDiff, normalHeight) {
				playerObject.X += offset * dir
				restoreHitbox(playerObject, player)
				return true
			}
		}
	}

	return false
}

// restoreHitbox returns the body to full height unconditionally.
func restoreHitbox(playerObject *resolv.Object, player *components.PlayerData) {
	if playerObject.H >= player.StandHeight {
		return
	}
	heightDiff := player.StandHeight - playerObject.H
	playerObject.H = player.StandHeight
	playerObject.Y -= heightDiff
	playerObject.Update()
}

// solidOverlap reports whether a rect of the body's width and height h,
// placed at the body's position shifted by (dx, dy), intersects a solid.
// resolv's check is a cell broadphase, so candidates are tested exactly.
func solidOverlap(obj *resolv.Object, dx, dy, h float64) bool {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return false
	}
	x, y := obj.X+dx, obj.Y+dy
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if x < o.X+o.W && x+obj.W > o.X && y < o.Y+o.H && y+h > o.Y {
			return true
		}
	}
	return false
}
