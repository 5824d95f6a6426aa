// Package sim fakes the watch's battery gauge and weather report. Neither is
// connected to anything real.
package sim

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	BatteryInterval = 30 * time.Second
	WeatherInterval = 5 * time.Minute

	batteryStart = 78.0
	batteryFloor = 10.0
	batteryDrain = 0.1
)

type BatteryTier int

const (
	BatteryFull BatteryTier = iota // three-quarters icon, accent colour
	BatteryHalf
	BatteryEmpty
)

func (t BatteryTier) Icon() string {
	switch t {
	case BatteryEmpty:
		return "▁"
	case BatteryHalf:
		return "▄"
	}
	return "▆"
}

type Battery struct {
	level float64
	rng   *rand.Rand
}

func NewBattery(rng *rand.Rand) *Battery {
	return &Battery{level: batteryStart, rng: rng}
}

// Drain lowers the level by a random amount below 0.1, never under 10.
func (b *Battery) Drain() {
	b.level = max(batteryFloor, b.level-b.rng.Float64()*batteryDrain)
}

func (b *Battery) Level() float64 { return b.level }

// Percent is the floored level.
func (b *Battery) Percent() int { return int(b.level) }

func (b *Battery) Tier() BatteryTier {
	switch {
	case b.level < 20:
		return BatteryEmpty
	case b.level < 50:
		return BatteryHalf
	}
	return BatteryFull
}

func (b *Battery) String() string { return fmt.Sprintf("%d%%", b.Percent()) }

// Condition is one weather report.
type Condition struct {
	Icon         string
	TemperatureC int
	Summary      string
	Color        string
}

func (c Condition) Temperature() string { return fmt.Sprintf("%d°C", c.TemperatureC) }

var Conditions = []Condition{
	{Icon: "☀", TemperatureC: 24, Summary: "Sunny", Color: "#FFD700"},
	{Icon: "⛅", TemperatureC: 22, Summary: "Partly Cloudy", Color: "#87CEEB"},
	{Icon: "☂", TemperatureC: 18, Summary: "Rainy", Color: "#4682B4"},
	{Icon: "☁", TemperatureC: 20, Summary: "Cloudy", Color: "#708090"},
	{Icon: "❄", TemperatureC: 2, Summary: "Snow", Color: "#B0E0E6"},
}

// historyLen bounds the temperature trend kept for the weather screen.
const historyLen = 24

type Weather struct {
	rng     *rand.Rand
	current Condition
	history []float64
}

// NewWeather draws the first report immediately.
func NewWeather(rng *rand.Rand) *Weather {
	w := &Weather{rng: rng}
	w.Update()
	return w
}

// Update draws a new report at random.
func (w *Weather) Update() Condition {
	w.current = Conditions[w.rng.IntN(len(Conditions))]
	w.history = append(w.history, float64(w.current.TemperatureC))
	if len(w.history) > historyLen {
		w.history = w.history[len(w.history)-historyLen:]
	}
	return w.current
}

func (w *Weather) Current() Condition { return w.current }

// History returns recent temperatures, oldest first.
func (w *Weather) History() []float64 {
	out := make([]float64, len(w.history))
	copy(out, w.history)
	return out
}
