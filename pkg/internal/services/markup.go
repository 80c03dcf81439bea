package services

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// literalHTMLRenderer prints raw HTML found in post text as escaped text
// instead of dropping it.
type literalHTMLRenderer struct{}

func (r literalHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
}

func (r literalHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		_, _ = w.Write(util.EscapeHTML(segment.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}

func (r literalHTMLRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	if entering {
		_, _ = w.WriteString("<p>")
		for i := 0; i < n.Lines().Len(); i++ {
			line := n.Lines().At(i)
			_, _ = w.Write(util.EscapeHTML(line.Value(source)))
		}
	} else {
		if n.HasClosure() {
			_, _ = w.Write(util.EscapeHTML(n.ClosureLine.Value(source)))
		}
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

// The engine carries no per-call state and is shared by every request.
// Its priority is ahead of the default html renderer (1000), so raw HTML
// never reaches the output unescaped.
var markupEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(literalHTMLRenderer{}, 500)),
	),
)

// RenderMarkup turns stored post text into HTML.
// Markdown is honored, any HTML in the source comes out as visible text.
func RenderMarkup(raw string) (string, error) {
	var buf bytes.Buffer
	if err := markupEngine.Convert([]byte(raw), &buf); err != nil {
		return "", fmt.Errorf("markup render: %w", err)
	}
	return buf.String(), nil
}

// RenderMarkupOrPlain falls back to an escaped paragraph when rendering fails.
func RenderMarkupOrPlain(raw string) string {
	out, err := RenderMarkup(raw)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when rendering post markup, falling back to plain text...")
		return "<p>" + string(util.EscapeHTML([]byte(raw))) + "</p>"
	}
	return out
}
