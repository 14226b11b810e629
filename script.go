package coolmode

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "leave": true,
	"click": true, "drag": true,
	"touchstart": true, "touchmove": true, "touchend": true,
	"wait": true, "screenshot": true,
}

// InputScript sequences injected pointer events, waits and screenshots
// across frames, for demos and automated visual checks. Attach one to a
// Stage with SetInputScript.
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "press", "x": 400, "y": 300},
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "burst"},
//	  {"action": "release", "x": 400, "y": 300}
//	]}
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// SetInputScript attaches a script to the stage. Its steps run from Update
// and Step, before input is processed. Pass nil to detach.
func (s *Stage) SetInputScript(script *InputScript) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (r *InputScript) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *InputScript) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "leave":
		s.InjectLeave()
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "touchstart":
		s.InjectTouchStart(st.X, st.Y)
	case "touchmove":
		s.InjectTouchMove(st.X, st.Y)
	case "touchend":
		s.InjectTouchEnd(st.X, st.Y)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
