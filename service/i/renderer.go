package i

import "github.com/beka-birhanu/vinom-mazeviz/render"

// Renderer draws one frame of a run.
type Renderer interface {
	Render(render.Frame) error
}
