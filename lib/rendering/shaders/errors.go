package shaders

import "fmt"

// Stage is one compilable phase of the pipeline.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// CompileError reports a failed compilation of one stage, carrying the
// full driver info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("could not compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed link of the two compiled stages.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("could not link shader program: %s", e.Log)
}
