package pilot

import (
	"fmt"
	"os"
)

// ExampleScript is a small pilot that chases the lowest hazard and fires when
// it is lined up. It shows the shape of the context and the decision.
const ExampleScript = `
function decide(ctx) {
  var target = null;
  for (var i = 0; i < ctx.hazards.length; i++) {
    var h = ctx.hazards[i];
    if (h.y >= ctx.player.noseY) continue;
    if (target === null || h.y > target.y) target = h;
  }

  if (target === null) {
    if (ctx.buffs.length > 0) {
      var b = ctx.buffs[0];
      return { left: b.x < ctx.player.x - 5, right: b.x > ctx.player.x + 5, shoot: false };
    }
    return { left: false, right: false, shoot: false };
  }

  var dx = target.x - ctx.player.noseX;
  return {
    left: dx < -4,
    right: dx > 4,
    shoot: ctx.player.canShoot && Math.abs(dx) < target.width / 2 + 4
  };
}
`

// LoadScript returns the example script for "example" and reads any other name from disk
func LoadScript(path string) (string, error) {
	if path == "example" {
		return ExampleScript, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}
