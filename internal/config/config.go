package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SpawnServer holds all configuration for the spawn allocation server.
type SpawnServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Allocation engine tuning
	Spawn SpawnConfig `yaml:"spawn"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// ScoreWeights are the multipliers of the composite candidate score.
// They must sum to 1 so the composite stays a convex combination.
type ScoreWeights struct {
	Density  float64 `yaml:"density"`
	Safety   float64 `yaml:"safety"`
	Resource float64 `yaml:"resource"`
	Friend   float64 `yaml:"friend"`
}

// Sum returns the total of all four weights.
func (w ScoreWeights) Sum() float64 {
	return w.Density + w.Safety + w.Resource + w.Friend
}

// SpawnConfig holds the allocation engine's tuning knobs.
type SpawnConfig struct {
	Radius           int           `yaml:"radius"`             // half-width of the spawnable world on both axes
	CandidateCount   int           `yaml:"candidate_count"`    // candidates generated per request
	FriendBiasRadius int           `yaml:"friend_bias_radius"` // max polar offset from the friend centroid
	MaxFriendLookups int           `yaml:"max_friend_lookups"` // friend IDs resolved per request
	Weights          ScoreWeights  `yaml:"weights"`
	ReservationTTL   time.Duration `yaml:"reservation_ttl"`
	PurgeInterval    time.Duration `yaml:"purge_interval"` // expired-reservation janitor period
}

// DefaultSpawnServer returns SpawnServer config with sensible defaults.
func DefaultSpawnServer() SpawnServer {
	return SpawnServer{
		BindAddress: "0.0.0.0",
		Port:        8080,
		LogLevel:    "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "spawnpoint",
			Password: "spawnpoint",
			DBName:   "spawnpoint",
			SSLMode:  "disable",
		},
		Spawn: SpawnConfig{
			Radius:           2000,
			CandidateCount:   20,
			FriendBiasRadius: 500,
			MaxFriendLookups: 5,
			Weights: ScoreWeights{
				Density:  0.3,
				Safety:   0.3,
				Resource: 0.2,
				Friend:   0.2,
			},
			ReservationTTL: 300 * time.Second,
			PurgeInterval:  60 * time.Second,
		},
	}
}

// LoadSpawnServer loads spawn server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSpawnServer(path string) (SpawnServer, error) {
	cfg := DefaultSpawnServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the engine tuning for values the allocator cannot work with.
func (c SpawnServer) Validate() error {
	s := c.Spawn
	if s.Radius <= 0 {
		return fmt.Errorf("spawn.radius must be positive, got %d", s.Radius)
	}
	if s.CandidateCount <= 0 {
		return fmt.Errorf("spawn.candidate_count must be positive, got %d", s.CandidateCount)
	}
	if s.FriendBiasRadius <= 0 {
		return fmt.Errorf("spawn.friend_bias_radius must be positive, got %d", s.FriendBiasRadius)
	}
	if s.MaxFriendLookups < 0 {
		return fmt.Errorf("spawn.max_friend_lookups must not be negative, got %d", s.MaxFriendLookups)
	}
	if sum := s.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("spawn.weights must sum to 1.0, got %v", sum)
	}
	if s.ReservationTTL <= 0 {
		return fmt.Errorf("spawn.reservation_ttl must be positive, got %v", s.ReservationTTL)
	}
	return nil
}
