package screen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"oceandefender/game"
)

var (
	panelShade  = color.NRGBA{0x00, 0x1F, 0x3F, 0xA0}
	titleColor  = color.RGBA{0x7F, 0xDB, 0xFF, 0xFF}
	accentColor = color.RGBA{0xFF, 0xDC, 0x00, 0xFF}
)

// Status is frontend state shown next to the session values
type Status struct {
	Autopilot bool
	Muted     bool
	FPS       float64
}

// HUD draws the score line and the state panels
type HUD struct {
	width, height float64
	face          text.Face
	lineHeight    float64
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD(width, height float64) *HUD {
	return &HUD{
		width:      width,
		height:     height,
		face:       text.NewGoXFace(basicfont.Face7x13),
		lineHeight: 13,
	}
}

// Draw renders the status line and the panel for the current state
func (h *HUD) Draw(dst *ebiten.Image, s *game.Session, status Status) {
	h.drawStatusLine(dst, s, status)

	switch s.State() {
	case game.StateReady:
		h.drawPanel(dst, []panelLine{
			{"PRESS ENTER TO START", 3, accentColor},
			{"Left/Right or A/D to move  |  Space or click to shoot", 1, color.White},
			{"P pause  R reset  +/- speed  Tab autopilot  M mute", 1, color.White},
		})
	case game.StatePaused:
		h.drawPanel(dst, []panelLine{
			{"PAUSED", 4, accentColor},
			{"Press P to resume", 1, color.White},
		})
	case game.StateGameOver:
		h.drawPanel(dst, []panelLine{
			{"GAME OVER", 4, colornames.Tomato},
			{fmt.Sprintf("Final Score: %d", s.Score()), 2, accentColor},
			{"Thanks for protecting our ocean!", 1, color.White},
			{"Press ENTER to play again or R to reset", 1, color.White},
		})
	}
}

func (h *HUD) drawStatusLine(dst *ebiten.Image, s *game.Session, status Status) {
	left := fmt.Sprintf("Score: %d   Lives: %d   Speed: x%.1f", s.Score(), s.Lives(), s.SpeedMultiplier())
	h.drawText(dst, left, 10, 10, 1, color.White)

	right := s.StateName()
	if status.Autopilot {
		right = "AUTO  " + right
	}
	if status.Muted {
		right = "MUTE  " + right
	}
	if GetDebugState().ShowFPS {
		right = fmt.Sprintf("%.0f FPS  %s", status.FPS, right)
	}
	w, _ := text.Measure(right, h.face, h.lineHeight)
	h.drawText(dst, right, h.width-w-10, 10, 1, color.White)

	// Buff timers under the score
	p := s.Player()
	y := 10 + h.lineHeight + 4
	for _, buff := range []struct {
		kind  game.BuffKind
		timer game.BuffTimer
	}{
		{game.BuffKindShield, p.Shield},
		{game.BuffKindSpeed, p.SpeedBoost},
	} {
		if !buff.timer.Active {
			continue
		}
		bc := game.GetBuffKindConfig(buff.kind)
		frac := float64(buff.timer.Remaining()) / float64(buff.timer.Duration)
		vector.DrawFilledRect(dst, 10, float32(y), 80, 6, panelShade, false)
		vector.DrawFilledRect(dst, 10, float32(y), float32(80*frac), 6, bc.Color, false)
		h.drawText(dst, bc.Name, 96, y-3, 1, bc.Color)
		y += 12
	}
}

// DrawOpening renders the intro title, animated waves and a progress bar
func (h *HUD) DrawOpening(dst *ebiten.Image, progress float64) {
	fade := math.Min(1, progress*2)
	for i := 0; i < 5; i++ {
		fi := float64(i)
		baseY := h.height/2 + fi*40 - 80
		phase := progress*360 + fi*math.Pi/2
		strokeWave(dst, h.width, 3, withAlpha(oceanBottom, (0.3-fi*0.04)*fade), func(x float64) float64 {
			return baseY + math.Sin((x+phase)*0.02)*30
		})
	}

	h.drawCentered(dst, "OCEAN DEFENDER", h.width/2, h.height/2-40, 5, withAlpha(titleColor, fade))
	h.drawCentered(dst, "Save Our Ocean!", h.width/2, h.height/2+20, 2, withAlpha(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, fade))

	barW := h.width * 0.4
	barX := (h.width - barW) / 2
	barY := h.height/2 + 60
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barW), 6, panelShade, false)
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barW*progress), 6, titleColor, false)
	h.drawCentered(dst, "Press ENTER to skip", h.width/2, barY+24, 1, color.White)
}

type panelLine struct {
	text  string
	scale float64
	color color.Color
}

func (h *HUD) drawPanel(dst *ebiten.Image, lines []panelLine) {
	vector.DrawFilledRect(dst, 0, 0, float32(h.width), float32(h.height), color.NRGBA{0, 0, 0, 0x60}, false)

	total := 0.0
	for _, l := range lines {
		total += h.lineHeight*l.scale + 12
	}
	y := (h.height - total) / 2
	for _, l := range lines {
		lh := h.lineHeight * l.scale
		h.drawCentered(dst, l.text, h.width/2, y+lh/2, l.scale, l.color)
		y += lh + 12
	}
}

// drawText draws left aligned text with its top-left corner at x, y
func (h *HUD) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, h.face, op)
}

// drawCentered draws text centred on x, y
func (h *HUD) drawCentered(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, h.face, op)
}
