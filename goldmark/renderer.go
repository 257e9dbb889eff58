// Package goldmark renders markdown to HTML with syntax-highlighted code
// blocks and heading ids that match the site-wide slugification rule, so
// in-page anchors line up with search result fragments.
package goldmark

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/docview"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultChromaStyle is the highlighting style used when none is configured.
const DefaultChromaStyle = "github"

// Renderer converts markdown to HTML. Raw HTML in the source passes
// through unmodified because the load pipeline emits video tags for
// embedded media.
type Renderer struct {
	md    goldmark.Markdown
	style string
}

var _ docview.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithChromaStyle sets the chroma highlighting style by name. Unknown
// names fall back to chroma's default style.
func WithChromaStyle(name string) Option {
	return func(r *Renderer) {
		r.style = name
	}
}

// NewRenderer returns an HTML renderer with GFM extensions enabled.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{style: DefaultChromaStyle}
	for _, opt := range opts {
		opt(r)
	}

	code := &codeBlockRenderer{
		style:     styles.Get(r.style),
		formatter: chromahtml.New(),
	}
	r.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(code, 100)),
		),
	)
	return r
}

// Render converts markdown to HTML. The title is already guaranteed to be
// present as the document's leading heading, so it is not used here.
func (r *Renderer) Render(ctx context.Context, markdown, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf, parser.WithContext(pctx)); err != nil {
		return "", docview.Errorf(docview.EINTERNAL, "markdown render failed: %v", err)
	}
	return buf.String(), nil
}

// headingIDs assigns heading ids using the site-wide slugification rule.
// Duplicate headings get a numeric suffix so anchors stay unique within a
// document.
type headingIDs struct {
	used map[string]bool
}

var _ parser.IDs = (*headingIDs)(nil)

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: make(map[string]bool)}
}

func (h *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	id := docview.SlugifyHeading(string(value))
	if id == "" {
		id = "heading"
	}
	if !h.used[id] {
		h.used[id] = true
		return []byte(id)
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !h.used[candidate] {
			h.used[candidate] = true
			return []byte(candidate)
		}
	}
}

func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = true
}

// codeBlockRenderer replaces goldmark's default code block output with
// chroma-highlighted HTML. The language hint picks the lexer when present;
// otherwise the content is analysed, falling back to plain text.
type codeBlockRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

var _ renderer.NodeRenderer = (*codeBlockRenderer)(nil)

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFenced)
	reg.Register(ast.KindCodeBlock, r.renderIndented)
}

func (r *codeBlockRenderer) renderFenced(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	if err := r.highlight(w, blockText(n, source), string(n.Language(source))); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) renderIndented(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	if err := r.highlight(w, blockText(node.(*ast.CodeBlock), source), ""); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) highlight(w util.BufWriter, code, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return docview.Errorf(docview.EINTERNAL, "code highlighting failed: %v", err)
	}
	return r.formatter.Format(w, r.style, iterator)
}

func blockText(node interface{ Lines() *text.Segments }, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
