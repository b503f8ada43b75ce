package engine

// Context provides environmental information that effect runtimes need.
type Context struct {
	SampleRate float64
}
