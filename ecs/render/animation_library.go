package render

// Animation is a looping sequence of image keys.
type Animation struct {
	Frames     []string
	FrameTicks int
}

// Frame returns the key to draw at tick.
func (a Animation) Frame(tick int) string {
	if len(a.Frames) == 0 {
		return ""
	}
	per := a.FrameTicks
	if per <= 0 {
		per = 1
	}
	if tick < 0 {
		tick = 0
	}
	return a.Frames[(tick/per)%len(a.Frames)]
}

// AnimationLibrary stores animations by name.
type AnimationLibrary struct {
	clips map[string]Animation
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string]Animation)}
}

// Register adds an animation to the library.
func (l *AnimationLibrary) Register(name string, anim Animation) {
	if l == nil || name == "" || len(anim.Frames) == 0 {
		return
	}
	l.clips[name] = anim
}

// Get returns an animation by name.
func (l *AnimationLibrary) Get(name string) (Animation, bool) {
	if l == nil || name == "" {
		return Animation{}, false
	}
	clip, ok := l.clips[name]
	return clip, ok
}
