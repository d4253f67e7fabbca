package screen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oceandefender/game"
)

var (
	waveColor   = color.RGBA{0x7F, 0xDB, 0xFF, 0xFF}
	bubbleColor = color.NRGBA{0x7F, 0xDB, 0xFF, 0x4C}
)

type wave struct {
	y         float64
	offset    float64
	amplitude float64
	frequency float64
	speed     float64
	alpha     float64
}

type bubble struct {
	x, y        float64
	radius      float64
	speed       float64
	wobble      float64
	wobbleSpeed float64
}

type fish struct {
	x, y          float64
	width, height float64
	speed         float64
	direction     float64
	tailSwing     float64
	color         color.NRGBA
}

// Backdrop is the decorative sea behind the game. It keeps moving in every state.
type Backdrop struct {
	width, height float64
	rng           game.Rand

	waves   []wave
	bubbles []bubble
	fish    []fish
}

// NewBackdrop creates the background waves, bubbles and fish
func NewBackdrop(width, height float64, rng game.Rand) *Backdrop {
	b := &Backdrop{width: width, height: height, rng: rng}

	for i := 0; i < 3; i++ {
		fi := float64(i)
		b.waves = append(b.waves, wave{
			y:         height * (0.2 + fi*0.15),
			offset:    fi * 100,
			amplitude: 10 + fi*5,
			frequency: 0.01 + fi*0.005,
			speed:     0.5 + fi*0.3,
			alpha:     0.1 + fi*0.05,
		})
	}

	for i := 0; i < 30; i++ {
		b.bubbles = append(b.bubbles, bubble{
			x:           rng.Float64() * width,
			y:           rng.Float64() * height,
			radius:      2 + rng.Float64()*5,
			speed:       0.3 + rng.Float64()*0.7,
			wobble:      rng.Float64() * 2 * math.Pi,
			wobbleSpeed: 0.02 + rng.Float64()*0.03,
		})
	}

	for i := 0; i < 5; i++ {
		f := fish{
			width:     15 + rng.Float64()*10,
			height:    8 + rng.Float64()*5,
			speed:     0.5 + rng.Float64(),
			direction: 1,
			tailSwing: rng.Float64() * 2 * math.Pi,
			color:     color.NRGBA{uint8(40 + rng.Float64()*60), uint8(170 + rng.Float64()*60), 0xD0, 0x66},
		}
		if rng.Float64() < 0.5 {
			f.direction = -1
		}
		f.x = rng.Float64() * width
		f.y = b.randomFishDepth()
		b.fish = append(b.fish, f)
	}
	return b
}

func (b *Backdrop) randomFishDepth() float64 {
	return 100 + b.rng.Float64()*(b.height-200)
}

// Update animates the backdrop by one frame
func (b *Backdrop) Update() {
	for i := range b.waves {
		b.waves[i].offset += b.waves[i].speed
	}

	for i := range b.bubbles {
		bb := &b.bubbles[i]
		bb.y -= bb.speed
		bb.wobble += bb.wobbleSpeed
		bb.x += math.Sin(bb.wobble) * 0.5
		if bb.y < -bb.radius {
			bb.y = b.height + bb.radius
			bb.x = b.rng.Float64() * b.width
		}
	}

	for i := range b.fish {
		f := &b.fish[i]
		f.x += f.speed * f.direction
		f.tailSwing += 0.2
		if f.x < -f.width || f.x > b.width+f.width {
			// Turn around and come back in at another depth
			f.direction = -f.direction
			f.y = b.randomFishDepth()
		}
	}
}

// Draw renders the backdrop
func (b *Backdrop) Draw(dst *ebiten.Image, r *Renderer) {
	for _, w := range b.waves {
		clr := withAlpha(waveColor, w.alpha)
		strokeWave(dst, b.width, 2, clr, func(x float64) float64 {
			return w.y + math.Sin((x+w.offset)*w.frequency)*w.amplitude
		})
	}

	for _, bb := range b.bubbles {
		vector.DrawFilledCircle(dst, float32(bb.x), float32(bb.y), float32(bb.radius), bubbleColor, true)
	}

	for _, f := range b.fish {
		r.drawEllipse(dst, f.x, f.y, f.width/2, f.height/2, f.color)
		tail := math.Sin(f.tailSwing) * 3
		r.drawEllipse(dst, f.x-f.direction*(f.width/2+3), f.y+tail, 3, 3, f.color)
	}
}

// strokeWave draws y = fn(x) across the screen as a polyline
func strokeWave(dst *ebiten.Image, width float64, lineWidth float32, clr color.Color, fn func(x float64) float64) {
	const step = 8.0
	prevX, prevY := 0.0, fn(0)
	for x := step; x <= width+step; x += step {
		y := fn(x)
		vector.StrokeLine(dst, float32(prevX), float32(prevY), float32(x), float32(y), lineWidth, clr, true)
		prevX, prevY = x, y
	}
}

// withAlpha turns an opaque colour into a translucent one
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(clampUnit(alpha) * 255)}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
