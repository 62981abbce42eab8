package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// Settings holds the tunable parameters of one game session.
// Zero values are never valid; use DefaultSettings as the base.
type Settings struct {
	ArenaWidth     float64 `json:"arena_width"`
	ArenaHeight    float64 `json:"arena_height"`
	PlayerSize     float64 `json:"player_size"`
	PlayerSpeed    float64 `json:"player_speed"`
	BulletSize     float64 `json:"bullet_size"`
	BulletSpeed    float64 `json:"bullet_speed"`
	MuzzleOffset   float64 `json:"muzzle_offset"`
	EnemySize      float64 `json:"enemy_size"`
	EnemySpeed     float64 `json:"enemy_speed"`
	EnemiesPerWave int     `json:"enemies_per_wave"`
	WaveDelayMS    int     `json:"wave_delay_ms"`
	FireCooldownMS int     `json:"fire_cooldown_ms"`
	Seed           int64   `json:"seed"`
}

// DefaultSettings returns the settings built from the package constants.
func DefaultSettings() Settings {
	return Settings{
		ArenaWidth:     ArenaWidth,
		ArenaHeight:    ArenaHeight,
		PlayerSize:     PlayerSize,
		PlayerSpeed:    PlayerMoveSpeed,
		BulletSize:     BulletSize,
		BulletSpeed:    BulletSpeed,
		MuzzleOffset:   MuzzleOffset,
		EnemySize:      EnemySize,
		EnemySpeed:     EnemySpeed,
		EnemiesPerWave: EnemiesPerWaveFactor,
		WaveDelayMS:    int(WaveDelay / time.Millisecond),
		FireCooldownMS: int(FireCooldown / time.Millisecond),
	}
}

// WaveDelay returns the pause between clearing a wave and spawning the next.
func (s Settings) WaveDelay() time.Duration {
	return time.Duration(s.WaveDelayMS) * time.Millisecond
}

// FireCooldown returns the minimum simulated time between two bullets.
func (s Settings) FireCooldown() time.Duration {
	return time.Duration(s.FireCooldownMS) * time.Millisecond
}

// Validate reports the first field that cannot drive a simulation.
func (s Settings) Validate() error {
	switch {
	case s.ArenaWidth <= 0 || s.ArenaHeight <= 0:
		return fmt.Errorf("arena must be positive, got %vx%v", s.ArenaWidth, s.ArenaHeight)
	case s.PlayerSize <= 0 || s.PlayerSize > s.ArenaWidth || s.PlayerSize > s.ArenaHeight:
		return fmt.Errorf("player size %v does not fit the arena", s.PlayerSize)
	case s.BulletSize <= 0 || s.EnemySize <= 0:
		return errors.New("bullet and enemy sizes must be positive")
	case s.PlayerSpeed < 0 || s.BulletSpeed < 0 || s.EnemySpeed < 0:
		return errors.New("speeds must not be negative")
	case s.EnemiesPerWave <= 0:
		return fmt.Errorf("enemies per wave must be positive, got %d", s.EnemiesPerWave)
	case s.WaveDelayMS < 0 || s.FireCooldownMS < 0:
		return errors.New("delays must not be negative")
	}
	return nil
}

// LoadSettings reads a JSON settings file. Fields missing from the file keep
// their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	file, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	log.Printf("Loaded settings from %s", path)
	return settings, nil
}
