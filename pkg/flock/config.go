package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config holds every tunable of the simulation. The rule factors jointly
// set the cohesion tightness, destination responsiveness and jitter energy
// of the flock; changing one shifts the balance and should be re-checked
// against the speed clamp.
type Config struct {
	// World dimensions, used for window layout and random seeding.
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population seeded at startup and on reset.
	NumBoids int `json:"numBoids"`

	// Flocking rules
	VisualRange     float64 `json:"visualRange"`     // surface-to-surface neighbor cutoff
	AvoidFactor     float64 `json:"avoidFactor"`     // separation strength
	MatchingFactor  float64 `json:"matchingFactor"`  // alignment strength
	CenteringFactor float64 `json:"centeringFactor"` // cohesion strength

	// Destination and motion
	DestinationBias float64 `json:"destinationBias"` // blend weight toward the destination
	NoiseStrength   float64 `json:"noiseStrength"`   // uniform jitter amplitude
	MaxSpeed        float64 `json:"maxSpeed"`
	MinSpeed        float64 `json:"minSpeed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:      1524,
		WorldHeight:     1024,
		NumBoids:        300,
		VisualRange:     20.0,
		AvoidFactor:     0.5,
		MatchingFactor:  0.05,
		CenteringFactor: 0.0005,
		DestinationBias: 0.005,
		NoiseStrength:   0.1,
		MaxSpeed:        6.0,
		MinSpeed:        1.0,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
