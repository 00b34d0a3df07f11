package scene

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated visual runs. Attach to a Scene via SetScriptRunner.
//
// Supported actions: "pause" (toggle pause), "wait" (idle for frames),
// "screenshot" (capture with label) and "quit".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Scene via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "pause", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the scene. The runner's step
// method is called from Scene.Update before processInput each frame.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
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
	case "screenshot":
		s.Screenshot(st.Label)
	case "pause":
		s.InjectPause()
	case "quit":
		s.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
