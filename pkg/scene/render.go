package scene

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Render composites the scene: background, the image clipped to the stencil,
// then the frame. The result is reused until something changes, so callers
// must not modify it.
func (s *Scene) Render() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && s.rendered == s.version {
		return s.last
	}

	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.opts.Background), image.Point{}, draw.Src)

	if s.image != nil {
		s.drawImageLocked(dst)
	}
	draw.Draw(dst, dst.Bounds(), s.frameLayer, image.Point{}, draw.Over)

	s.last = dst
	s.rendered = s.version
	return dst
}

// maxScaledPixels bounds the cached resample. Larger results are resampled
// per render, limited to the part visible through the stencil.
const maxScaledPixels = 1 << 23

// scaledBitmap is the whole image object resampled at one scale. Pans reuse
// it; only a scale change or a new object resamples.
type scaledBitmap struct {
	id    string
	scale float64
	img   *image.NRGBA
}

// scaledLocked returns the cached resample of obj at its scale, or nil when
// it would exceed maxScaledPixels.
// CALLER MUST HOLD s.mu
func (s *Scene) scaledLocked(obj *ImageObject) *image.NRGBA {
	scale := obj.tf.Scale
	sw := int(math.Round(obj.width * scale))
	sh := int(math.Round(obj.height * scale))
	if sw <= 0 || sh <= 0 || sw*sh > maxScaledPixels {
		return nil
	}
	if s.scaled.img == nil || s.scaled.id != obj.ID || s.scaled.scale != scale {
		s.scaled = scaledBitmap{
			id:    obj.ID,
			scale: scale,
			img:   imaging.Resize(obj.img, sw, sh, s.opts.Filter),
		}
	}
	return s.scaled.img
}

// drawImageLocked draws the image object through the stencil clip.
// CALLER MUST HOLD s.mu
func (s *Scene) drawImageLocked(dst *image.RGBA) {
	obj := s.image
	scale := obj.tf.Scale
	if scale <= 0 {
		return
	}
	box := obj.BoundingBox()

	visible := image.Rect(
		int(math.Floor(math.Max(box.Left, s.frame.Left))),
		int(math.Floor(math.Max(box.Top, s.frame.Top))),
		int(math.Ceil(math.Min(box.Right(), s.frame.Right()))),
		int(math.Ceil(math.Min(box.Bottom(), s.frame.Bottom()))),
	).Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}

	if cached := s.scaledLocked(obj); cached != nil {
		origin := image.Pt(int(math.Round(box.Left)), int(math.Round(box.Top)))
		draw.DrawMask(dst, visible, cached, visible.Min.Sub(origin), s.clip, visible.Min, draw.Over)
		return
	}

	// Source pixels covering the visible area, relative to the bitmap origin.
	src := image.Rect(
		int(math.Floor((float64(visible.Min.X)-box.Left)/scale)),
		int(math.Floor((float64(visible.Min.Y)-box.Top)/scale)),
		int(math.Ceil((float64(visible.Max.X)-box.Left)/scale)),
		int(math.Ceil((float64(visible.Max.Y)-box.Top)/scale)),
	).Intersect(image.Rect(0, 0, int(obj.width), int(obj.height)))
	if src.Empty() {
		return
	}

	tw := int(math.Round(float64(src.Dx()) * scale))
	th := int(math.Round(float64(src.Dy()) * scale))
	if tw <= 0 || th <= 0 {
		return
	}
	bounds := obj.img.Bounds()
	tile := imaging.Resize(imaging.Crop(obj.img, src.Add(bounds.Min)), tw, th, s.opts.Filter)

	origin := image.Pt(
		int(math.Round(box.Left+float64(src.Min.X)*scale)),
		int(math.Round(box.Top+float64(src.Min.Y)*scale)),
	)
	draw.DrawMask(dst, visible, tile, visible.Min.Sub(origin), s.clip, visible.Min, draw.Over)
}

// roundedRectMask returns an alpha mask that is opaque inside the stencil.
func roundedRectMask(w, h int, f stencil.Frame) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(color.Alpha{A: 0xff})
	rasterx.AddRoundRect(f.Left, f.Top, f.Right(), f.Bottom(), f.CornerRadius, f.CornerRadius, 0, rasterx.RoundGap, filler)
	filler.Draw()
	return mask
}

// dashedFrame strokes the stencil outline on a transparent layer.
func dashedFrame(w, h int, f stencil.Frame, opts Options) *image.RGBA {
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.FrameWidth <= 0 {
		return layer
	}
	scanner := rasterx.NewScannerGV(w, h, layer, layer.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetColor(opts.FrameStroke)
	dasher.SetStroke(fixed.Int26_6(opts.FrameWidth*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, opts.FrameDash, 0)
	rasterx.AddRoundRect(f.Left, f.Top, f.Right(), f.Bottom(), f.CornerRadius, f.CornerRadius, 0, rasterx.RoundGap, dasher)
	dasher.Draw()
	return layer
}
