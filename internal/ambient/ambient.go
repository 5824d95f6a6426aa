// Package ambient generates the decorative particles and floating shapes
// drawn behind the watch. Every item expires on its own; nothing else reads
// this state.
package ambient

import (
	"math/rand/v2"
	"time"
)

const (
	ParticleInterval = 2 * time.Second
	ShapeInterval    = 8 * time.Second

	initialParticles = 20
	particleStagger  = 300 * time.Millisecond
	initialShapes    = 8
	shapeStagger     = 2 * time.Second
	expiryGrace      = 2 * time.Second
)

type ShapeKind int

const (
	Circle ShapeKind = iota
	Triangle
	Square
	Diamond
)

func (k ShapeKind) Glyph() string {
	return [...]string{"●", "▲", "■", "◆"}[k]
}

// ShapeColors are the fills shapes pick from.
var ShapeColors = []string{"#667EEA", "#764BA2", "#F093FB", "#F5576C", "#4FACFE", "#00F2FE"}

// Particle rises from the bottom edge over Duration, starting after Delay.
type Particle struct {
	X        float64 // horizontal position in [0,1)
	Size     float64
	Duration time.Duration
	Delay    time.Duration
	Born     time.Time
}

type Shape struct {
	Kind     ShapeKind
	Color    string
	X        float64
	Size     float64
	Duration time.Duration
	Born     time.Time
}

// Field holds the live particles and shapes.
type Field struct {
	rng       *rand.Rand
	particles []Particle
	shapes    []Shape
}

func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Seed schedules the opening burst: 20 particles 300 ms apart and 8 shapes
// 2 s apart, all counted from now.
func (f *Field) Seed(now time.Time) {
	for i := 0; i < initialParticles; i++ {
		f.SpawnParticle(now.Add(time.Duration(i) * particleStagger))
	}
	for i := 0; i < initialShapes; i++ {
		f.SpawnShape(now.Add(time.Duration(i) * shapeStagger))
	}
}

func (f *Field) SpawnParticle(born time.Time) Particle {
	p := Particle{
		X:        f.rng.Float64(),
		Size:     2 + f.rng.Float64()*3,
		Duration: seconds(6 + f.rng.Float64()*4),
		Delay:    seconds(f.rng.Float64() * 2),
		Born:     born,
	}
	f.particles = append(f.particles, p)
	return p
}

func (f *Field) SpawnShape(born time.Time) Shape {
	s := Shape{
		Kind:     ShapeKind(f.rng.IntN(4)),
		Color:    ShapeColors[f.rng.IntN(len(ShapeColors))],
		X:        f.rng.Float64(),
		Size:     20 + f.rng.Float64()*40,
		Duration: seconds(15 + f.rng.Float64()*10),
		Born:     born,
	}
	f.shapes = append(f.shapes, s)
	return s
}

// Prune drops items whose animation plus grace period is over.
func (f *Field) Prune(now time.Time) {
	f.particles = keep(f.particles, func(p Particle) bool {
		return now.Before(p.Born.Add(p.Duration + expiryGrace))
	})
	f.shapes = keep(f.shapes, func(s Shape) bool {
		return now.Before(s.Born.Add(s.Duration + expiryGrace))
	})
}

func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Shapes() []Shape       { return f.shapes }

// Progress returns how far an item has risen at now, in [0,1], and whether
// it is visible yet.
func Progress(born time.Time, delay, duration time.Duration, now time.Time) (float64, bool) {
	start := born.Add(delay)
	if now.Before(start) || duration <= 0 {
		return 0, false
	}
	p := float64(now.Sub(start)) / float64(duration)
	if p > 1 {
		return 1, false
	}
	return p, true
}

func keep[T any](items []T, ok func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if ok(it) {
			out = append(out, it)
		}
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
