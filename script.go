package tumble

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Preset string  `json:"preset,omitempty"`
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	DT     float64 `json:"dt,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario script.
type scenarioScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a sequence of world actions — presets, spawns, drags, and
// play/pause/step transitions — against a Loop for deterministic headless
// runs. Scripts drive the same public API the interactive playground uses.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON scenario script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Run executes every step against the loop's world. Stepped frames use a
// synthetic clock at the script's dt (default 1/60s), so results are
// reproducible regardless of wall time.
func (s *Script) Run(loop *Loop) error {
	world := loop.World()
	clock := time.Unix(0, 0)

	for i, st := range s.steps {
		switch st.Action {
		case "preset":
			if err := LoadPreset(world, st.Preset); err != nil {
				return fmt.Errorf("script step %d: %w", i, err)
			}
		case "spawnCircle":
			radius := st.Radius
			if radius <= 0 {
				radius = 20
			}
			world.AddBody(Circle{Radius: radius}, DefaultBodyOptions(Vec2{X: st.X, Y: st.Y}))
		case "spawnBox":
			width, height := st.Width, st.Height
			if width <= 0 {
				width = 40
			}
			if height <= 0 {
				height = 40
			}
			world.AddBody(Rectangle{Width: width, Height: height}, DefaultBodyOptions(Vec2{X: st.X, Y: st.Y}))
		case "drag":
			world.DragBody(st.ID, Vec2{X: st.X, Y: st.Y})
		case "play":
			loop.Play()
		case "pause":
			loop.Pause()
		case "reset":
			loop.Reset()
		case "step":
			frames := st.Frames
			if frames <= 0 {
				frames = 1
			}
			dt := st.DT
			if dt <= 0 {
				dt = 1.0 / 60
			}
			for f := 0; f < frames; f++ {
				clock = clock.Add(time.Duration(dt * float64(time.Second)))
				loop.Tick(clock)
			}
		default:
			return fmt.Errorf("script step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}
