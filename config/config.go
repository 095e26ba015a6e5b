package config

import "time"

// Config holds window-level settings for the demo.
type Config struct {
	Width  int
	Height int
}

// WorldConfig contains level-wide physics and layout values.
type WorldConfig struct {
	Gravity      float64       `yaml:"gravity"`       // px/s²
	MaxFallSpeed float64       `yaml:"max_fall_speed"` // px/s
	FixedStep    time.Duration `yaml:"fixed_step"`
	SurfaceLayer string        `yaml:"surface_layer"` // tile layer sampled by the spatial query

	// Last-resort relocation target when neither a safe cell nor a level
	// spawn is available.
	SafeX float64 `yaml:"safe_x"`
	SafeY float64 `yaml:"safe_y"`
}

// PlayerConfig contains grounded movement and body dimensions.
type PlayerConfig struct {
	RunSpeed  float64 `yaml:"run_speed"`  // px/s
	JumpSpeed float64 `yaml:"jump_speed"` // px/s, upward

	// Crouch mechanics
	CrouchHeight      float64 `yaml:"crouch_height"`       // reduced hitbox height while crouched
	CrouchSpeedFactor float64 `yaml:"crouch_speed_factor"` // multiplier on RunSpeed
	StandUpPush       float64 `yaml:"stand_up_push"`       // max sideways nudge when standing under a ledge

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// SwimConfig contains the swimming envelope and its discrete-impulse model.
type SwimConfig struct {
	GravityScale    float64       `yaml:"gravity_scale"`
	DragX           float64       `yaml:"drag_x"` // exponential rate per second
	DragY           float64       `yaml:"drag_y"`
	MaxSpeedX       float64       `yaml:"max_speed_x"`
	MaxSpeedY       float64       `yaml:"max_speed_y"`
	HorizontalSpeed float64       `yaml:"horizontal_speed"`
	Impulse         float64       `yaml:"impulse"`
	ImpulseInterval time.Duration `yaml:"impulse_interval"`
}

// ClimbConfig contains ladder movement values.
type ClimbConfig struct {
	Speed           float64 `yaml:"speed"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	Drag            float64 `yaml:"drag"`
}

// GhostConfig contains ghost-flight values and the hazard relocation rule.
type GhostConfig struct {
	GravityScale float64 `yaml:"gravity_scale"`
	DragX        float64 `yaml:"drag_x"` // decay toward zero absent horizontal input
	DragY        float64 `yaml:"drag_y"`
	MaxSpeedX    float64 `yaml:"max_speed_x"`
	MaxSpeedY    float64 `yaml:"max_speed_y"`

	HorizontalSpeed    float64 `yaml:"horizontal_speed"`
	HorizontalResponse float64 `yaml:"horizontal_response"` // rate toward target speed under input

	Impulse         float64       `yaml:"impulse"`
	ImpulseInterval time.Duration `yaml:"impulse_interval"`
	Jumps           int           `yaml:"jumps"`

	RelocationRadius int           `yaml:"relocation_radius"` // cells
	RelocationSettle time.Duration `yaml:"relocation_settle"`
}

// ActionsConfig contains cooldowns and action-lock durations.
type ActionsConfig struct {
	JumpCooldown      time.Duration `yaml:"jump_cooldown"`
	ThrowCooldown     time.Duration `yaml:"throw_cooldown"`
	ThrowLock         time.Duration `yaml:"throw_lock"`
	BlowCooldown      time.Duration `yaml:"blow_cooldown"`
	BlowLock          time.Duration `yaml:"blow_lock"`
	StationaryEpsilon float64       `yaml:"stationary_epsilon"` // |vx| below this counts as standing still
}

// InvulnConfig contains hit reaction values.
type InvulnConfig struct {
	Duration    time.Duration `yaml:"duration"`
	KnockbackX  float64       `yaml:"knockback_x"`
	KnockbackY  float64       `yaml:"knockback_y"`
	// StaggerTime is how long player input is ignored after a hit.
	StaggerTime time.Duration `yaml:"stagger_time"`
	BlinkPeriod time.Duration `yaml:"blink_period"`
	AppearTime  time.Duration `yaml:"appear_time"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 `yaml:"follow_smoothing"`           // fraction of the gap closed per frame (0.0-1.0)
	LookAheadDistanceX      float64 `yaml:"look_ahead_distance_x"`      // max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 `yaml:"look_ahead_smoothing"`       // fraction per frame (0.0-1.0)
	LookAheadSpeedThreshold float64 `yaml:"look_ahead_speed_threshold"` // px/s below which look-ahead holds
}

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

var C *Config
var World WorldConfig
var Player PlayerConfig
var Swim SwimConfig
var Climb ClimbConfig
var Ghost GhostConfig
var Actions ActionsConfig
var Invuln InvulnConfig
var Camera CameraConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}
	ResetTuning()
}

// ResetTuning restores every tuning global to its default.
func ResetTuning() {
	World = WorldConfig{
		Gravity:      980,
		MaxFallSpeed: 600,
		FixedStep:    time.Second / 60,
		SurfaceLayer: "surface",
		SafeX:        32,
		SafeY:        32,
	}

	Player = PlayerConfig{
		RunSpeed:  150,
		JumpSpeed: 360,

		CrouchHeight:      20,
		CrouchSpeedFactor: 0.5,
		StandUpPush:       12,

		CollisionWidth:  12,
		CollisionHeight: 28,
	}

	Swim = SwimConfig{
		GravityScale:    0.25,
		DragX:           4,
		DragY:           3,
		MaxSpeedX:       90,
		MaxSpeedY:       160,
		HorizontalSpeed: 70,
		Impulse:         150,
		ImpulseInterval: 300 * time.Millisecond,
	}

	Climb = ClimbConfig{
		Speed:           80,
		HorizontalSpeed: 40,
		Drag:            8,
	}

	Ghost = GhostConfig{
		GravityScale: 0.5,
		DragX:        6,
		DragY:        1,
		MaxSpeedX:    140,
		MaxSpeedY:    360,

		HorizontalSpeed:    120,
		HorizontalResponse: 5,

		Impulse:         260,
		ImpulseInterval: 250 * time.Millisecond,
		Jumps:           3,

		RelocationRadius: 8,
		RelocationSettle: 400 * time.Millisecond,
	}

	Actions = ActionsConfig{
		JumpCooldown:      100 * time.Millisecond,
		ThrowCooldown:     400 * time.Millisecond,
		ThrowLock:         250 * time.Millisecond,
		BlowCooldown:      1200 * time.Millisecond,
		BlowLock:          500 * time.Millisecond,
		StationaryEpsilon: 1,
	}

	Invuln = InvulnConfig{
		Duration:    1500 * time.Millisecond,
		KnockbackX:  180,
		KnockbackY:  120,
		StaggerTime: 250 * time.Millisecond,
		BlinkPeriod: 100 * time.Millisecond,
		AppearTime:  300 * time.Millisecond,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10,
	}
}
