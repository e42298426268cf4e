package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/Armando-Castillo/loteria/internal/pool"
	"github.com/Armando-Castillo/loteria/internal/text"
)

// cellStyle selects the per-page-kind cell decoration. Card cells float
// the caption over the image; deck cells carry a double border and keep
// the caption in a reserved legend band below the image.
type cellStyle struct {
	border     bool
	legendBand bool
}

var (
	cardCell = cellStyle{}
	deckCell = cellStyle{border: true, legendBand: true}
)

// FitToCell scales img to fit within targetW x targetH preserving aspect
// ratio and centers it on a white background of exactly that size. The
// scaled image touches at least one edge of the target box.
func FitToCell(img image.Image, targetW, targetH int) *image.NRGBA {
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()

	scale := math.Min(float64(targetW)/float64(iw), float64(targetH)/float64(ih))
	newW := int(float64(iw) * scale)
	newH := int(float64(ih) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)
	background := imaging.New(targetW, targetH, color.White)
	return imaging.Paste(background, resized, image.Pt((targetW-newW)/2, (targetH-newH)/2))
}

// drawCell renders one asset into its grid rectangle. An unusable asset
// is an error for the caller to log; the cell stays blank and the page
// goes on.
func (r *Renderer) drawCell(dc *gg.Context, asset *pool.ImageAsset, rect image.Rectangle, style cellStyle) error {
	if asset == nil || asset.Image == nil {
		return fmt.Errorf("no image")
	}
	if asset.Width() <= 0 || asset.Height() <= 0 {
		return fmt.Errorf("image %q has empty bounds", asset.Name)
	}

	content := rect
	if style.border {
		r.drawCellBorder(dc, rect)
		inset := r.spec.DeckBorderWidth + r.spec.DeckInnerInset + r.spec.DeckInnerWidth + 4
		content = rect.Inset(inset)
	}

	imageArea := content
	if style.legendBand {
		imageArea.Max.Y -= r.spec.DeckLegendHeight
	}
	if imageArea.Dx() <= 0 || imageArea.Dy() <= 0 {
		return fmt.Errorf("cell too small for image area: %v", imageArea)
	}

	fitted := FitToCell(asset.Image, imageArea.Dx(), imageArea.Dy())
	dc.DrawImage(fitted, imageArea.Min.X, imageArea.Min.Y)

	r.drawCaption(dc, asset.Name, rect)
	return nil
}

// drawCellBorder strokes the two-tier decorative rectangle of deck cells:
// an outer border on the cell edge and a thin inner border inset from it.
func (r *Renderer) drawCellBorder(dc *gg.Context, rect image.Rectangle) {
	dc.SetRGB(0, 0, 0)

	bw := float64(r.spec.DeckBorderWidth)
	dc.SetLineWidth(bw)
	dc.DrawRectangle(
		float64(rect.Min.X)+bw/2,
		float64(rect.Min.Y)+bw/2,
		float64(rect.Dx())-bw,
		float64(rect.Dy())-bw,
	)
	dc.Stroke()

	iw := float64(r.spec.DeckInnerWidth)
	inset := float64(r.spec.DeckBorderWidth + r.spec.DeckInnerInset)
	dc.SetLineWidth(iw)
	dc.DrawRectangle(
		float64(rect.Min.X)+inset+iw/2,
		float64(rect.Min.Y)+inset+iw/2,
		float64(rect.Dx())-2*inset-iw,
		float64(rect.Dy())-2*inset-iw,
	)
	dc.Stroke()
}

// drawCaption wraps the caption against the cell width and draws the
// block with its bottom LabelPaddingBottom pixels above the cell bottom,
// each line centered and outlined for contrast over arbitrary pixels.
func (r *Renderer) drawCaption(dc *gg.Context, caption string, rect image.Rectangle) {
	if caption == "" {
		return
	}
	maxWidth := rect.Dx() - 2*r.spec.LabelSidePadding
	lines := text.Wrap(r.label, caption, maxWidth)
	if len(lines) == 0 {
		return
	}

	_, lineH := text.Measure(r.label, caption)
	blockH := len(lines)*lineH + (len(lines)-1)*r.spec.LabelLineSpacing
	top := rect.Max.Y - r.spec.LabelPaddingBottom - blockH
	ascent := r.label.Metrics().Ascent.Ceil()

	dc.SetFontFace(r.label)
	for i, line := range lines {
		w, _ := text.Measure(r.label, line)
		x := float64(rect.Min.X + (rect.Dx()-w)/2)
		y := float64(top + i*(lineH+r.spec.LabelLineSpacing) + ascent)
		r.drawOutlinedString(dc, line, x, y)
	}
}

// drawOutlinedString draws s once at every offset within the outline
// radius in black, then once at the origin in white. The result is a
// uniform dark halo that keeps the label legible on any background.
func (r *Renderer) drawOutlinedString(dc *gg.Context, s string, x, y float64) {
	ow := r.spec.OutlineWidth
	dc.SetRGB(0, 0, 0)
	for dy := -ow; dy <= ow; dy++ {
		for dx := -ow; dx <= ow; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawString(s, x+float64(dx), y+float64(dy))
		}
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawString(s, x, y)
}
