// Package score implements the speed-weighted points model: every award is
// scaled by a multiplier that grows with the player's speed.
package score

import (
	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
)

// Points tracks the score of one race.
type Points struct {
	rules config.Scoring

	score            int
	baseSpeed        int
	speedMultiplier  float64
	carsPassed       int
	obstaclesAvoided int
	frameCounter     int
}

// New returns a zeroed score using the given scoring constants.
func New(rules config.Scoring) *Points {
	p := &Points{rules: rules}
	p.Reset()
	return p
}

// Reset zeroes every counter and restores the base multiplier.
func (p *Points) Reset() {
	p.score = 0
	p.baseSpeed = 0
	p.speedMultiplier = p.rules.MultiplierBase
	p.carsPassed = 0
	p.obstaclesAvoided = 0
	p.frameCounter = 0
}

// UpdateSpeed recomputes the multiplier from the current player speed.
func (p *Points) UpdateSpeed(playerSpeed int) {
	p.baseSpeed = playerSpeed
	p.speedMultiplier = p.rules.MultiplierBase + float64(playerSpeed)*p.rules.MultiplierIncrement
}

// Tick awards the passive points for surviving one frame.
func (p *Points) Tick() {
	p.frameCounter++
	perFrame := float64(p.rules.PointsPerFrameBase) + p.speedMultiplier*p.rules.PointsPerFrameMultiplier
	if earned := int(perFrame); earned > 0 {
		p.score += earned
	}
}

// AddCarPass awards a traffic car leaving the screen behind the player.
func (p *Points) AddCarPass() int {
	earned := int(float64(p.rules.PointsCarPass) * p.speedMultiplier)
	p.score += earned
	p.carsPassed++
	return earned
}

// AddObstacleAvoided awards a cone scrolling off the screen.
func (p *Points) AddObstacleAvoided() int {
	earned := int(float64(p.rules.PointsObstacleAvoided) * p.speedMultiplier)
	p.score += earned
	p.obstaclesAvoided++
	return earned
}

// Penalize subtracts amount from the score without going below zero and
// returns the new score.
func (p *Points) Penalize(amount int) int {
	p.score = max(0, p.score-amount)
	return p.score
}

// Score returns the current score.
func (p *Points) Score() int { return p.score }

// BaseSpeed returns the speed the multiplier was last computed from.
func (p *Points) BaseSpeed() int { return p.baseSpeed }

// SpeedMultiplier returns the current award multiplier.
func (p *Points) SpeedMultiplier() float64 { return p.speedMultiplier }

// CarsPassed returns how many traffic cars have been passed.
func (p *Points) CarsPassed() int { return p.carsPassed }

// ObstaclesAvoided returns how many cones scrolled by.
func (p *Points) ObstaclesAvoided() int { return p.obstaclesAvoided }

// Frames returns how many scoring frames have elapsed.
func (p *Points) Frames() int { return p.frameCounter }
