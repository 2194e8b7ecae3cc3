package preview

import (
	"log/slog"

	"scalepreview/internal/geom"
	"scalepreview/internal/render"
	"scalepreview/internal/style"
)

func (p *Preview) scaled(value int) int {
	return style.ConvertScale(value, p.scale)
}

func (p *Preview) scaledMargins(m geom.Margins) geom.Margins {
	return geom.Margins{
		Left:   p.scaled(m.Left),
		Top:    p.scaled(m.Top),
		Right:  p.scaled(m.Right),
		Bottom: p.scaled(m.Bottom),
	}
}

func (p *Preview) scaledFont(f style.Font) style.Font {
	return style.Font{Size: p.scaled(f.Size), Bold: f.Bold}
}

// updateToScale recomputes every rect for scale. Each rect is relative to
// its parent: outer ⊇ inner ⊇ bubble ⊇ content ⊇ name, reply, message.
func (p *Preview) updateToScale(scale int) {
	if p.scale == scale {
		return
	}
	p.scale = scale
	m := p.st.Metrics

	p.nameText.SetText(p.scaledFont(p.st.NameFont), p.st.NameText)
	p.replyText.SetText(p.scaledFont(p.st.TextFont), p.st.ReplyText)
	p.messageText.SetText(p.scaledFont(p.st.TextFont), p.st.MessageText)
	nameHeight := p.nameText.LineHeight()
	textHeight := p.messageText.LineHeight()

	replyTop := p.scaled(m.ReplyPadding.Top)
	p.replyBar = geom.R(
		p.scaled(m.ReplyBar.X),
		replyTop+p.scaled(m.ReplyBar.Y),
		p.scaled(m.ReplyBar.W),
		p.scaled(m.ReplyBar.H))
	namePosition := geom.Pt(p.scaled(m.ReplyBarSkip), replyTop)
	replyPosition := geom.Pt(p.scaled(m.ReplyBarSkip), replyTop+nameHeight)

	wantedWidth := max(
		namePosition.X+p.nameText.MaxWidth(),
		replyPosition.X+p.replyText.MaxWidth(),
		p.messageText.MaxWidth())
	minTextWidth := p.scaled(m.MinTextWidth)
	maxTextWidth := p.scaled(m.MaxTextWidth)
	messageWidth := min(max(wantedWidth, minTextWidth), maxTextWidth)
	messageHeight := min(
		p.messageText.CountHeight(maxTextWidth),
		m.MaxTextLines*textHeight)

	p.name = geom.FromPointSize(namePosition, geom.Size{W: messageWidth - namePosition.X, H: nameHeight})
	p.reply = geom.FromPointSize(replyPosition, geom.Size{W: messageWidth - replyPosition.X, H: textHeight})
	replySkip := p.replyBar.Bottom() + p.scaled(m.ReplyPadding.Bottom)
	p.message = geom.R(0, replySkip, messageWidth, messageHeight)
	content := geom.R(0, 0, messageWidth, replySkip+messageHeight)

	bubble := content.Grow(p.scaledMargins(m.MessagePadding))
	p.content = content.MovedTo(bubble.TopLeft().Neg())
	bubble = bubble.MovedTo(geom.Point{})
	p.bubbleShadow = p.scaled(m.BubbleShadow)

	hasUserpic := p.userpicOriginal != nil
	bubbleMargin := p.scaledMargins(m.BubbleMargin)
	userpicSkip := 0
	if hasUserpic {
		userpicSkip = p.scaled(m.UserpicSkip)
	}
	inner := bubble.Grow(bubbleMargin.Add(geom.Margins{Left: userpicSkip}))
	p.bubble = bubble.MovedTo(inner.TopLeft().Neg())
	inner = inner.MovedTo(geom.Point{})
	p.userpic = geom.Rect{}
	if hasUserpic {
		size := p.scaled(m.UserpicSize)
		p.userpic = geom.R(bubbleMargin.Left, p.bubble.Bottom()-size, size, size)
	}

	p.shadowExtend = p.scaledMargins(p.st.Shadow.Extend)
	outer := inner.Grow(p.shadowExtend)
	p.inner = inner.MovedTo(outer.TopLeft().Neg())

	p.update()
	p.outer = outer.MovedTo(geom.Point{})

	p.layer = render.Resize(p.layer, p.outer.Size().Mul(p.ratio))
	p.canvas = render.Resize(p.canvas, p.inner.Size().Mul(p.ratio))
	render.Wipe(p.canvas)

	p.userpicImage.invalidate()
	p.bubbleCache.invalidate()
	p.shadowCache.invalidate()
	p.cornerMasks.invalidate()
	p.update()

	p.log.Debug("scale preview layout",
		slog.Int("scale", scale),
		slog.Int("width", p.outer.W),
		slog.Int("height", p.outer.H),
		slog.Bool("userpic", hasUserpic))
}
