package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Commands is everything the player asked for during one frame
type Commands struct {
	Left  bool
	Right bool
	Shoot bool

	Start     bool
	Pause     bool
	Reset     bool
	SpeedUp   bool
	SpeedDown bool

	ToggleAutopilot bool
	ToggleMute      bool
	ToggleHitboxes  bool
}

// InputProvider produces the commands for the current frame
type InputProvider interface {
	Poll() Commands
}

// KeyboardInput reads the keyboard and mouse
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll implements InputProvider. Movement and shooting are held keys, the
// rest trigger once per press.
func (k *KeyboardInput) Poll() Commands {
	return Commands{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),

		Start:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Reset:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		SpeedUp:   inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd),
		SpeedDown: inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract),

		ToggleAutopilot: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		ToggleMute:      inpututil.IsKeyJustPressed(ebiten.KeyM),
		ToggleHitboxes:  inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
