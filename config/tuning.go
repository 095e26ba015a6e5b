package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the YAML layout of a tuning override document. Keys
// that are absent keep their current value.
type tuningFile struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Swim    SwimConfig    `yaml:"swim"`
	Climb   ClimbConfig   `yaml:"climb"`
	Ghost   GhostConfig   `yaml:"ghost"`
	Actions ActionsConfig `yaml:"actions"`
	Invuln  InvulnConfig  `yaml:"invulnerability"`
	Input   InputConfig   `yaml:"input"`
	Camera  CameraConfig  `yaml:"camera"`
}

// LoadTuning reads a YAML tuning file and overlays it onto the globals.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays a YAML document onto the tuning globals. Nothing is
// changed if the document fails to parse or validate.
func ApplyTuning(data []byte) error {
	f := tuningFile{
		World:   World,
		Player:  Player,
		Swim:    Swim,
		Climb:   Climb,
		Ghost:   Ghost,
		Actions: Actions,
		Invuln:  Invuln,
		Input:   Input,
		Camera:  Camera,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}

	World = f.World
	Player = f.Player
	Swim = f.Swim
	Climb = f.Climb
	Ghost = f.Ghost
	Actions = f.Actions
	Invuln = f.Invuln
	Input = f.Input
	Camera = f.Camera
	return nil
}

func (f *tuningFile) validate() error {
	switch {
	case f.Player.CollisionWidth <= 0 || f.Player.CollisionHeight <= 0:
		return fmt.Errorf("player collision size must be positive")
	case f.Player.CrouchHeight <= 0 || f.Player.CrouchHeight > f.Player.CollisionHeight:
		return fmt.Errorf("crouch height %.1f outside (0, %.1f]", f.Player.CrouchHeight, f.Player.CollisionHeight)
	case f.Ghost.Jumps < 1:
		return fmt.Errorf("ghost jumps must be at least 1, got %d", f.Ghost.Jumps)
	case f.Ghost.RelocationRadius < 1:
		return fmt.Errorf("relocation radius must be at least 1, got %d", f.Ghost.RelocationRadius)
	case f.Invuln.StaggerTime < 0 || f.Invuln.StaggerTime > f.Invuln.Duration:
		return fmt.Errorf("stagger time %s outside [0, %s]", f.Invuln.StaggerTime, f.Invuln.Duration)
	case f.World.FixedStep <= 0:
		return fmt.Errorf("fixed step must be positive")
	case f.World.SurfaceLayer == "":
		return fmt.Errorf("surface layer name is empty")
	}
	return nil
}
