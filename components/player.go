package components

import (
	"github.com/yohamta/donburi"
)

// Pose is the animation-facing summary of what the player is doing.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
	PoseFall
	PoseCrouch
	PoseSwim
	PoseClimb
	PoseGhost
	PoseThrow
	PoseBlow
)

var poseNames = [...]string{
	PoseIdle:   "idle",
	PoseRun:    "run",
	PoseJump:   "jump",
	PoseFall:   "fall",
	PoseCrouch: "crouch",
	PoseSwim:   "swim",
	PoseClimb:  "climb",
	PoseGhost:  "ghost",
	PoseThrow:  "throw",
	PoseBlow:   "blow",
}

func (p Pose) String() string {
	if p < 0 || int(p) >= len(poseNames) {
		return "unknown"
	}
	return poseNames[p]
}

type PlayerData struct {
	Direction   Vector  // facing; X is -1 or 1
	StandHeight float64 // full collision height, restored after crouching
	SpawnX      float64
	SpawnY      float64
	Pose        Pose
}

var Player = donburi.NewComponentType[PlayerData]()
