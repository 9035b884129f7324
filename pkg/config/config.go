package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds every tunable of a race. All values are in world pixels,
// ticks or points.
type Config struct {
	// Race rules
	MaxLaps               int `hcl:"max_laps,optional"`
	PointsPerLap          int `hcl:"points_per_lap,optional"`
	MinSpeed              int `hcl:"min_speed,optional"`
	MaxSpeed              int `hcl:"max_speed,optional"`
	StartSpeed            int `hcl:"start_speed,optional"`
	CollisionPenaltySpeed int `hcl:"collision_penalty_speed,optional"`
	CollisionPenaltyScore int `hcl:"collision_penalty_score,optional"`

	// Traffic behaviour
	LaneChangeDelay     int `hcl:"lane_change_delay,optional"`
	LaneChangeThreshold int `hcl:"lane_change_threshold,optional"`
	LaneChangeStep      int `hcl:"lane_change_step,optional"`
	LaneSnapThreshold   int `hcl:"lane_snap_threshold,optional"`
	LookAhead           int `hcl:"look_ahead,optional"`

	// Geometry
	CanvasWidth    int `hcl:"canvas_width,optional"`
	CanvasHeight   int `hcl:"canvas_height,optional"`
	RoadStart      int `hcl:"road_start,optional"`
	RoadEnd        int `hcl:"road_end,optional"`
	BoundaryOffset int `hcl:"boundary_offset,optional"`
	CarSize        int `hcl:"car_size,optional"`
	ObstacleSize   int `hcl:"obstacle_size,optional"`
	PlayerStartX   int `hcl:"player_start_x,optional"`
	PlayerStartY   int `hcl:"player_start_y,optional"`
	ScrollReset    int `hcl:"scroll_reset,optional"`

	// Respawn ranges
	TrafficSpawnYRange      int `hcl:"traffic_spawn_y_range,optional"`
	ObstacleSpawnYRange     int `hcl:"obstacle_spawn_y_range,optional"`
	ObstacleSpawnMinXOffset int `hcl:"obstacle_spawn_min_x_offset,optional"`
	ObstacleSpawnMaxXOffset int `hcl:"obstacle_spawn_max_x_offset,optional"`

	// NoTraffic and NoObstacles empty the stock lists when the file has no
	// traffic or obstacle blocks of its own.
	NoTraffic   bool `hcl:"no_traffic,optional"`
	NoObstacles bool `hcl:"no_obstacles,optional"`

	Scoring   *Scoring   `hcl:"scoring,block"`
	Traffic   []Traffic  `hcl:"traffic,block"`
	Obstacles []Obstacle `hcl:"obstacle,block"`
}

// Scoring holds the constants of the speed-weighted points model.
type Scoring struct {
	MultiplierBase           float64 `hcl:"multiplier_base,optional"`
	MultiplierIncrement      float64 `hcl:"multiplier_increment,optional"`
	PointsPerFrameBase       int     `hcl:"points_per_frame_base,optional"`
	PointsPerFrameMultiplier float64 `hcl:"points_per_frame_multiplier,optional"`
	PointsCarPass            int     `hcl:"points_car_pass,optional"`
	PointsObstacleAvoided    int     `hcl:"points_obstacle_avoided,optional"`
}

// Traffic describes one autonomous car of the starting roster. An empty
// Lane lets the car start on a random lane.
type Traffic struct {
	Name   string `hcl:"name,label"`
	Lane   string `hcl:"lane,optional"`
	StartY int    `hcl:"start_y,optional"`
	Speed  int    `hcl:"speed"`
	Paint  string `hcl:"paint,optional"`
}

// Obstacle describes one cone of the starting layout.
type Obstacle struct {
	Lane   string `hcl:"lane"`
	StartY int    `hcl:"start_y,optional"`
}

// Default returns the stock Pixel Racers setup: a 600x600 canvas, a three
// lane road in the middle half and three cars plus three cones.
func Default() *Config {
	return &Config{
		MaxLaps:               3,
		PointsPerLap:          500,
		MinSpeed:              2,
		MaxSpeed:              15,
		StartSpeed:            3,
		CollisionPenaltySpeed: 3,
		CollisionPenaltyScore: 20,

		LaneChangeDelay:     120,
		LaneChangeThreshold: 30,
		LaneChangeStep:      2,
		LaneSnapThreshold:   2,
		LookAhead:           150,

		CanvasWidth:    600,
		CanvasHeight:   600,
		RoadStart:      150,
		RoadEnd:        450,
		BoundaryOffset: 10,
		CarSize:        25,
		ObstacleSize:   30,
		PlayerStartX:   300,
		PlayerStartY:   550,
		ScrollReset:    50,

		TrafficSpawnYRange:      200,
		ObstacleSpawnYRange:     300,
		ObstacleSpawnMinXOffset: 50,
		ObstacleSpawnMaxXOffset: 100,

		Scoring: &Scoring{
			MultiplierBase:           1.0,
			MultiplierIncrement:      0.1,
			PointsPerFrameBase:       1,
			PointsPerFrameMultiplier: 0.05,
			PointsCarPass:            10,
			PointsObstacleAvoided:    5,
		},
		Traffic: []Traffic{
			{Name: "blue", StartY: -50, Speed: 4, Paint: "blue"},
			{Name: "green", StartY: -150, Speed: 3, Paint: "green"},
			{Name: "yellow", StartY: -250, Speed: 5, Paint: "yellow"},
		},
		Obstacles: []Obstacle{
			{Lane: "left", StartY: -100},
			{Lane: "center", StartY: -300},
			{Lane: "right", StartY: -500},
		},
	}
}

// WinScore is the score that ends the race with a win.
func (c *Config) WinScore() int {
	return c.PointsPerLap * c.MaxLaps
}

// Load reads an HCL race file on top of the defaults. A missing file is not
// an error, the defaults are returned as is.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	if err := decode(file.Body, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid race config %s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes HCL source held in memory, for embedded presets and tests.
func Parse(src []byte, filename string) (*Config, error) {
	cfg := Default()
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	if err := decode(file.Body, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid race config %s: %w", filename, err)
	}
	return cfg, nil
}

var scoringSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "scoring"}},
}

func decode(body hcl.Body, cfg *Config) error {
	// The scoring block is decoded over the current values, so a field left
	// out keeps its default and an explicit 0 stays 0.
	scoring := *cfg.Scoring
	content, rest, diags := body.PartialContent(scoringSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(content.Blocks) > 1 {
		return fmt.Errorf("failed to decode HCL: %d scoring blocks, expected at most one", len(content.Blocks))
	}
	for _, block := range content.Blocks {
		if diags := gohcl.DecodeBody(block.Body, nil, &scoring); diags.HasErrors() {
			return fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	}

	// A traffic or obstacle block in the file replaces the whole stock list.
	stockTraffic, stockObstacles := cfg.Traffic, cfg.Obstacles
	cfg.Scoring, cfg.Traffic, cfg.Obstacles = nil, nil, nil

	if diags := gohcl.DecodeBody(rest, nil, cfg); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.Scoring = &scoring

	if cfg.Traffic == nil && !cfg.NoTraffic {
		cfg.Traffic = stockTraffic
	}
	if cfg.Obstacles == nil && !cfg.NoObstacles {
		cfg.Obstacles = stockObstacles
	}
	return nil
}

// Validate reports every setting that would make the simulation misbehave,
// such as an empty speed range or a spawn window narrower than zero.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.MaxLaps > 0, "max_laps must be positive, got %d", c.MaxLaps)
	check(c.PointsPerLap > 0, "points_per_lap must be positive, got %d", c.PointsPerLap)
	check(c.MinSpeed >= 0, "min_speed must not be negative, got %d", c.MinSpeed)
	check(c.MinSpeed <= c.MaxSpeed, "min_speed %d exceeds max_speed %d", c.MinSpeed, c.MaxSpeed)
	check(c.StartSpeed >= c.MinSpeed && c.StartSpeed <= c.MaxSpeed,
		"start_speed %d outside [%d, %d]", c.StartSpeed, c.MinSpeed, c.MaxSpeed)
	check(c.CollisionPenaltySpeed >= 0, "collision_penalty_speed must not be negative")
	check(c.CollisionPenaltyScore >= 0, "collision_penalty_score must not be negative")

	check(c.LaneChangeDelay > 0, "lane_change_delay must be positive, got %d", c.LaneChangeDelay)
	check(c.LaneChangeThreshold >= 0 && c.LaneChangeThreshold <= 100,
		"lane_change_threshold must be within [0, 100], got %d", c.LaneChangeThreshold)
	check(c.LaneChangeStep > 0, "lane_change_step must be positive, got %d", c.LaneChangeStep)
	check(c.LaneSnapThreshold >= 0, "lane_snap_threshold must not be negative")
	check(c.LookAhead > 0, "look_ahead must be positive, got %d", c.LookAhead)

	check(c.CanvasWidth > 0 && c.CanvasHeight > 0, "canvas must have a positive size")
	check(c.RoadStart >= 0 && c.RoadStart < c.RoadEnd, "road [%d, %d] is empty", c.RoadStart, c.RoadEnd)
	check(c.RoadEnd <= c.CanvasWidth, "road_end %d beyond canvas width %d", c.RoadEnd, c.CanvasWidth)
	check(c.CarSize > 0, "car_size must be positive, got %d", c.CarSize)
	check(c.ObstacleSize > 0, "obstacle_size must be positive, got %d", c.ObstacleSize)
	check(c.ScrollReset > 0, "scroll_reset must be positive, got %d", c.ScrollReset)

	check(c.TrafficSpawnYRange > 0, "traffic_spawn_y_range must be positive")
	check(c.ObstacleSpawnYRange > 0, "obstacle_spawn_y_range must be positive")
	check(c.ObstacleSpawnMinXOffset >= 0, "obstacle_spawn_min_x_offset must not be negative")
	check(c.RoadEnd-c.RoadStart > c.ObstacleSpawnMaxXOffset,
		"obstacle_spawn_max_x_offset %d leaves no room on a %d wide road",
		c.ObstacleSpawnMaxXOffset, c.RoadEnd-c.RoadStart)

	check(!c.NoTraffic || len(c.Traffic) == 0, "no_traffic is set but %d traffic blocks are given", len(c.Traffic))
	check(!c.NoObstacles || len(c.Obstacles) == 0, "no_obstacles is set but %d obstacle blocks are given", len(c.Obstacles))

	for _, t := range c.Traffic {
		check(t.Speed > 0, "traffic %q must have a positive speed, got %d", t.Name, t.Speed)
	}

	return errors.Join(errs...)
}
