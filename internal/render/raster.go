package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"progressring/internal/core/model"
	"progressring/internal/ui/style"
)

// arcStep is the largest angle covered by one outline segment, in radians.
const arcStep = math.Pi / 90

var (
	fontOnce   sync.Once
	regularTTF *opentype.Font
	fontErr    error
)

// Raster is a Canvas that paints into an image. View coordinates are
// multiplied by scale to get pixel coordinates.
type Raster struct {
	dst        draw.Image
	scale      float64
	rasterizer *vector.Rasterizer
	faces      map[float64]font.Face
	err        error
}

// NewRaster creates a raster canvas over dst.
func NewRaster(dst draw.Image, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	size := dst.Bounds().Size()
	return &Raster{
		dst:        dst,
		scale:      scale,
		rasterizer: vector.NewRasterizer(size.X, size.Y),
		faces:      make(map[float64]font.Face),
	}
}

// Err returns the first error met while drawing, such as a font failure.
func (raster *Raster) Err() error {
	return raster.err
}

// Close releases cached font faces.
func (raster *Raster) Close() error {
	for size, face := range raster.faces {
		_ = face.Close()
		delete(raster.faces, size)
	}
	return nil
}

func (raster *Raster) DrawArc(bounds model.RectF, startAngle, sweepAngle float64, useCenter bool, paint style.Paint) {
	if sweepAngle == 0 {
		return
	}
	raster.resetRasterizer()

	center := bounds.Center()
	radiusX := bounds.Width() / 2
	radiusY := bounds.Height() / 2
	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180
	fullTurn := math.Abs(sweep) >= 2*math.Pi

	if paint.Style == style.StyleStroke {
		half := paint.StrokeWidth / 2
		if paint.Cap == style.CapSquare && !fullTurn {
			extend := half / math.Max(math.Max(radiusX, radiusY), 1)
			if sweep < 0 {
				extend = -extend
			}
			start -= extend
			sweep += 2 * extend
			fullTurn = math.Abs(sweep) >= 2*math.Pi
		}
		raster.strokeOutline(center, radiusX, radiusY, half, start, sweep, fullTurn)
		if paint.Cap == style.CapRound && !fullTurn {
			raster.addDisc(pointOnOval(center, radiusX, radiusY, start), half)
			raster.addDisc(pointOnOval(center, radiusX, radiusY, start+sweep), half)
		}
	} else {
		raster.fillOutline(center, radiusX, radiusY, start, sweep, useCenter, fullTurn)
	}

	raster.rasterizer.Draw(raster.dst, raster.dst.Bounds(), raster.source(paint), raster.dst.Bounds().Min)
}

func (raster *Raster) DrawText(text string, x, y float64, paint style.Paint) {
	if text == "" || paint.TextSize <= 0 {
		return
	}
	face, err := raster.face(paint.TextSize * raster.scale)
	if err != nil {
		raster.fail(err)
		return
	}

	originX := fixed.Int26_6(math.Round(x * raster.scale * 64))
	width := font.MeasureString(face, text)
	switch paint.Align {
	case style.AlignCenter:
		originX -= width / 2
	case style.AlignRight:
		originX -= width
	}

	drawer := &font.Drawer{
		Dst:  raster.dst,
		Src:  raster.source(paint),
		Face: face,
		Dot: fixed.Point26_6{
			X: originX,
			Y: fixed.Int26_6(math.Round(y * raster.scale * 64)),
		},
	}
	drawer.DrawString(text)
}

func (raster *Raster) strokeOutline(center model.PointF, radiusX, radiusY, half, start, sweep float64, fullTurn bool) {
	outerX, outerY := radiusX+half, radiusY+half
	innerX, innerY := math.Max(radiusX-half, 0), math.Max(radiusY-half, 0)

	if fullTurn {
		raster.tracePath(center, outerX, outerY, 0, 2*math.Pi, true)
		raster.rasterizer.ClosePath()
		if innerX > 0 && innerY > 0 {
			raster.tracePath(center, innerX, innerY, 2*math.Pi, -2*math.Pi, true)
			raster.rasterizer.ClosePath()
		}
		return
	}

	raster.tracePath(center, outerX, outerY, start, sweep, true)
	raster.tracePath(center, innerX, innerY, start+sweep, -sweep, false)
	raster.rasterizer.ClosePath()
}

func (raster *Raster) fillOutline(center model.PointF, radiusX, radiusY, start, sweep float64, useCenter, fullTurn bool) {
	if fullTurn {
		raster.tracePath(center, radiusX, radiusY, 0, 2*math.Pi, true)
		raster.rasterizer.ClosePath()
		return
	}
	if useCenter {
		raster.moveTo(center)
		raster.tracePath(center, radiusX, radiusY, start, sweep, false)
	} else {
		raster.tracePath(center, radiusX, radiusY, start, sweep, true)
	}
	raster.rasterizer.ClosePath()
}

// tracePath walks the oval from start by sweep radians in small line segments.
func (raster *Raster) tracePath(center model.PointF, radiusX, radiusY, start, sweep float64, move bool) {
	steps := int(math.Ceil(math.Abs(sweep) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for index := 0; index <= steps; index++ {
		point := pointOnOval(center, radiusX, radiusY, start+sweep*float64(index)/float64(steps))
		if index == 0 && move {
			raster.moveTo(point)
			continue
		}
		raster.lineTo(point)
	}
}

func (raster *Raster) addDisc(center model.PointF, radius float64) {
	if radius <= 0 {
		return
	}
	raster.tracePath(center, radius, radius, 0, 2*math.Pi, true)
	raster.rasterizer.ClosePath()
}

func (raster *Raster) moveTo(point model.PointF) {
	raster.rasterizer.MoveTo(float32(point.X*raster.scale), float32(point.Y*raster.scale))
}

func (raster *Raster) lineTo(point model.PointF) {
	raster.rasterizer.LineTo(float32(point.X*raster.scale), float32(point.Y*raster.scale))
}

func (raster *Raster) resetRasterizer() {
	size := raster.dst.Bounds().Size()
	raster.rasterizer.Reset(size.X, size.Y)
	raster.rasterizer.DrawOp = draw.Over
}

func (raster *Raster) source(paint style.Paint) image.Image {
	if paint.Shader != nil {
		return paint.Shader.Image(raster.scale)
	}
	return image.NewUniform(color.Black)
}

func (raster *Raster) face(size float64) (font.Face, error) {
	if face, ok := raster.faces[size]; ok {
		return face, nil
	}
	fontOnce.Do(func() {
		regularTTF, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse label font: %w", fontErr)
	}
	face, err := opentype.NewFace(regularTTF, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create label face: %w", err)
	}
	raster.faces[size] = face
	return face, nil
}

func (raster *Raster) fail(err error) {
	if raster.err == nil {
		raster.err = err
	}
}

func pointOnOval(center model.PointF, radiusX, radiusY, angle float64) model.PointF {
	return model.PointF{
		X: center.X + radiusX*math.Cos(angle),
		Y: center.Y + radiusY*math.Sin(angle),
	}
}
