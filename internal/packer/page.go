package packer

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/yotam4h/photopacker/internal/tile"
	"github.com/yotam4h/photopacker/internal/units"
)

// renderPage rasterizes one batch onto a page canvas and writes it out.
// Per-image failures leave that slot backing-colored and are collected in
// imageErrs; only a write failure loses the page.
func (p *Packer) renderPage(job batchJob) (imageErrs []error, writeErr error) {
	pageW := units.CmToPixels(p.page.WidthCm, p.dpi)
	pageH := units.CmToPixels(p.page.HeightCm, p.dpi)
	slotW := units.CmToPixels(job.size.WidthCm, p.dpi)
	slotH := units.CmToPixels(job.size.HeightCm, p.dpi)
	margin := units.CmToPixels(p.marginCm, p.dpi)

	canvas := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(p.backing), image.Point{}, draw.Src)

	// Center the full grid on the page.
	gridW := job.plan.Cols*slotW + (job.plan.Cols-1)*margin
	gridH := job.plan.Rows*slotH + (job.plan.Rows-1)*margin
	startX := (pageW - gridW) / 2
	startY := (pageH - gridH) / 2

	for idx, path := range job.paths {
		if idx >= job.plan.Capacity() {
			break
		}
		row := idx / job.plan.Cols
		col := idx % job.plan.Cols
		x := startX + col*(slotW+margin)
		y := startY + row*(slotH+margin)

		placed, err := p.renderTile(path, slotW, slotH)
		if err != nil {
			imageErrs = append(imageErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		target := image.Rect(x, y, x+slotW, y+slotH)
		draw.Draw(canvas, target, placed, image.Point{}, draw.Src)
	}

	if err := p.writePage(canvas, job.seq); err != nil {
		return imageErrs, err
	}
	return imageErrs, nil
}

// renderTile loads one photo and produces an exactly slot-sized tile with the
// photo proportionally fit and centered.
func (p *Packer) renderTile(path string, slotW, slotH int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	fitted, err := tile.ResizeToFit(img, slotW, slotH)
	if err != nil {
		return nil, err
	}
	return tile.CenterOnBacking(fitted, slotW, slotH, p.backing), nil
}

// writePage encodes the canvas as PNG, embeds the run DPI, and persists it
// under the collages directory.
func (p *Packer) writePage(canvas image.Image, seq int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", seq, err)
	}

	data, err := withPhysChunk(buf.Bytes(), p.dpi)
	if err != nil {
		return fmt.Errorf("failed to tag page %d with resolution: %w", seq, err)
	}

	path := p.pagePath(seq)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
