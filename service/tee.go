package service

import (
	"errors"

	"github.com/beka-birhanu/vinom-mazeviz/render"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
)

type tee []i.Renderer

// Tee returns a renderer that hands every frame to each of renderers in turn.
// All of them are called even when one fails; the errors are joined.
func Tee(renderers ...i.Renderer) i.Renderer {
	return tee(renderers)
}

func (t tee) Render(f render.Frame) error {
	var errs []error
	for _, r := range t {
		if err := r.Render(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
