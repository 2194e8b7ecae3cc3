package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"scalepreview/internal/geom"
	"scalepreview/internal/render"
)

// Paint composites the preview into dst, a device-pixel image of the
// surface, limited to clip (surface coordinates). Pixels outside the
// preview are left untouched; a translucent host clears them first.
func (p *Preview) Paint(dst *image.RGBA, clip geom.Rect) {
	if p == nil || p.scale == 0 {
		return
	}
	outer := clip.Intersect(p.outer)
	if outer.Empty() {
		return
	}
	local := outer.Translated(p.outer.TopLeft().Neg())
	p.paintLayer(render.NewCanvas(p.layer, p.ratio).Clipped(local))

	shown := p.shownAnimation.Value(progressOf(p.shown))
	if shown <= 0 {
		return
	}
	target := dst.SubImage(clip.Scaled(p.ratio).Image()).(*image.RGBA)
	origin := p.outer.TopLeft().Mul(p.ratio)
	alpha := uint8(math.Round(255 * math.Min(shown, 1)))
	if shown >= 1 {
		at := image.Pt(origin.X, origin.Y)
		draw.Draw(target, p.layer.Bounds().Add(at), p.layer, image.Point{}, draw.Over)
		return
	}
	// Scale about the bottom centre of the popup while fading in.
	middle := float64(p.outer.X*p.ratio) + float64(p.outer.W*p.ratio)/2
	bottom := float64(p.outer.Bottom() * p.ratio)
	k := 0.3 + shown*0.7
	transform := f64.Aff3{
		k, 0, middle + k*(float64(origin.X)-middle),
		0, k, bottom + k*(float64(origin.Y)-bottom),
	}
	xdraw.ApproxBiLinear.Transform(target, transform, p.layer, p.layer.Bounds(), xdraw.Over, &xdraw.Options{
		SrcMask: image.NewUniform(color.Alpha{A: alpha}),
	})
}

// paintLayer draws shadow and card into the outer layer. c is in outer
// coordinates.
func (p *Preview) paintLayer(c render.Canvas) {
	c.Clear(c.Clip())
	shadow := p.shadowCache.get(p.buildShadow)
	render.PaintShadow(c, p.inner, shadow.sides, shadow.corners)

	inner := c.Clip().Intersect(p.inner)
	if inner.Empty() {
		return
	}
	local := inner.Translated(p.inner.TopLeft().Neg())
	p.paintInner(render.NewCanvas(p.canvas, p.ratio).Clipped(local))
	render.Round(p.canvas, p.cornerMasks.get(p.buildCornerMasks))
	c.DrawImage(p.inner.TopLeft(), p.canvas)
}

// paintInner draws the card: wallpaper, userpic and bubble. c is in inner
// coordinates.
func (p *Preview) paintInner(c render.Canvas) {
	p.bg.Paint(c, geom.Size{W: p.inner.W, H: p.inner.W * 3})
	p.paintUserpic(c)
	p.paintBubble(c.Translated(p.bubble.TopLeft()))
}

func (p *Preview) paintUserpic(c render.Canvas) {
	if p.userpicOriginal == nil || p.userpic.Empty() || c.Clip().Intersect(p.userpic).Empty() {
		return
	}
	c.DrawImage(p.userpic.TopLeft(), p.userpicImage.get(p.buildUserpic))
}

// paintBubble draws the message bubble with its tail and shadow. c is in
// bubble coordinates.
func (p *Preview) paintBubble(c render.Canvas) {
	assets := p.bubbleCache.get(p.buildBubble)
	palette := p.st.Palette
	bubble := geom.FromPointSize(geom.Point{}, p.bubble.Size())

	cornerShadow := p.logicalSize(assets.shadowCorner)
	c.DrawImage(geom.Pt(
		bubble.W-cornerShadow.W,
		bubble.H+p.bubbleShadow-cornerShadow.H,
	), assets.shadowCorner)
	render.FillRoundRect(c, bubble, palette.MsgInBg, assets.corners)
	tail := p.logicalSize(assets.tail)
	c.DrawImage(geom.Pt(-tail.W, bubble.H-tail.H), assets.tail)
	c.Fill(geom.R(
		-tail.W,
		bubble.H,
		tail.W+bubble.W-cornerShadow.W,
		p.bubbleShadow,
	), palette.MsgInShadow)

	if c.Clip().Intersect(p.content).Empty() {
		return
	}
	p.paintContent(c.Translated(p.content.TopLeft()).Clipped(geom.FromPointSize(geom.Point{}, p.content.Size())))
}

func (p *Preview) paintContent(c render.Canvas) {
	p.paintReply(c)

	if c.Clip().Intersect(p.message).Empty() {
		return
	}
	p.paintMessage(c.Translated(p.message.TopLeft()).Clipped(geom.FromPointSize(geom.Point{}, p.message.Size())))
}

func (p *Preview) paintReply(c render.Canvas) {
	palette := p.st.Palette
	c.FillOpacity(p.replyBar, palette.MsgInReplyBar, palette.ReplyBarAlpha)
	p.nameText.DrawLeftElided(c, p.name.X, p.name.Y, p.name.W, 1, palette.MsgInServiceFg)
	p.replyText.DrawLeftElided(c, p.reply.X, p.reply.Y, p.reply.W, 1, palette.HistoryTextInFg)
}

func (p *Preview) paintMessage(c render.Canvas) {
	p.messageText.DrawLeftElided(c, 0, 0, p.message.W, p.st.Metrics.MaxTextLines, p.st.Palette.HistoryTextInFg)
}

func (p *Preview) logicalSize(img *image.RGBA) geom.Size {
	if img == nil {
		return geom.Size{}
	}
	b := img.Bounds()
	return geom.Size{W: b.Dx() / p.ratio, H: b.Dy() / p.ratio}
}

func (p *Preview) buildUserpic() *image.RGBA {
	size := p.userpic.Size().Mul(p.ratio)
	return render.Circle(render.Scale(p.userpicOriginal, size.W, size.H))
}

func (p *Preview) buildBubble() bubbleAssets {
	radius := p.scaled(p.st.Metrics.BubbleRadius) * p.ratio
	palette := p.st.Palette
	corners := render.CornerPixmaps(radius, palette.MsgInBg)
	corners[render.BottomLeft] = nil
	return bubbleAssets{
		corners:      corners,
		tail:         p.st.BubbleTail.Instance(palette.MsgInBg, p.scale*p.ratio),
		shadowCorner: render.CornerPixmaps(radius, palette.MsgInShadow)[render.BottomRight],
	}
}

func (p *Preview) buildShadow() shadowAssets {
	var out shadowAssets
	fg := p.st.Palette.WindowShadowFg
	for i, icon := range p.st.Shadow.Sides {
		if icon != nil {
			out.sides[i] = icon.Instance(fg, p.scale*p.ratio)
		}
	}
	for i, icon := range p.st.Shadow.Corners {
		if icon != nil {
			out.corners[i] = icon.Instance(fg, p.scale*p.ratio)
		}
	}
	return out
}

func (p *Preview) buildCornerMasks() [4]*image.Alpha {
	return render.CornersMask(p.scaled(p.st.Metrics.CardRadius) * p.ratio)
}
