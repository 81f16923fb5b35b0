package raymarch

// Stage double-buffers a scene. Input handling edits Back; Swap publishes the edits into the
// front scene that a frame renders from. The front scene must not be edited directly.
type Stage struct {
	back, front *Scene
}

func NewStage(s *Scene) *Stage {
	if s == nil {
		s = NewScene()
	}
	return &Stage{back: s, front: s.Clone()}
}

// Back is the scene to mutate between frames.
func (st *Stage) Back() *Scene { return st.back }

// Swap copies the back scene into the front one and returns it for rendering.
// Not safe to call while a frame is still reading the front scene.
func (st *Stage) Swap() *Scene {
	st.front.CopyFrom(st.back)
	return st.front
}
