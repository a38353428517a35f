package focus

import (
	"context"
	"errors"
	"image"

	"github.com/dixieflatline76/Stencil/util/log"
	"golang.org/x/sync/errgroup"
)

// Combined runs a face finder and a saliency finder concurrently and prefers
// a face when one is found.
type Combined struct {
	faces    Finder
	saliency Finder
}

// Combine builds a Combined finder. Either finder may be nil.
func Combine(faces, saliency Finder) *Combined {
	return &Combined{faces: faces, saliency: saliency}
}

// Find returns the face point if any, otherwise the saliency point.
func (c *Combined) Find(ctx context.Context, img image.Image) (Point, error) {
	var facePt, salientPt Point
	var faceOK, salientOK bool

	g, gctx := errgroup.WithContext(ctx)
	run := func(f Finder, pt *Point, ok *bool, name string) {
		if f == nil {
			return
		}
		g.Go(func() error {
			p, err := f.Find(gctx, img)
			if errors.Is(err, ErrNotFound) {
				log.Debugf("focus: %s found nothing", name)
				return nil
			}
			if err != nil {
				return err
			}
			*pt, *ok = p, true
			return nil
		})
	}
	run(c.faces, &facePt, &faceOK, "face")
	run(c.saliency, &salientPt, &salientOK, "saliency")

	if err := g.Wait(); err != nil {
		return Point{}, err
	}
	switch {
	case faceOK:
		log.Debugf("focus: face at %.0f,%.0f", facePt.X, facePt.Y)
		return facePt, nil
	case salientOK:
		log.Debugf("focus: salient region at %.0f,%.0f", salientPt.X, salientPt.Y)
		return salientPt, nil
	default:
		return Point{}, ErrNotFound
	}
}
