// Package markdown implements the document rendering pipeline: a
// line-oriented scanner that turns raw Markdown text into block nodes, an
// inline formatter for emphasis and code spans, and a heading extractor
// used to build the outline.
//
// The dialect is intentionally small: ATX headings, fenced code blocks,
// blockquotes, flat list items, horizontal rules and paragraphs. Tables,
// setext headings, reference links and footnotes are not recognized.
package markdown

// BlockKind identifies the concrete type of a BlockNode.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindBlockquote
	KindListItem
	KindHorizontalRule
	KindCodeBlock
	KindParagraph
	KindBlankSpacer
)

// BlockNode is one structural unit of rendered output. Nodes are immutable
// once emitted by the scanner and appear in document order.
type BlockNode interface {
	blockKind() BlockKind
}

// Heading is an ATX heading of level 1-4. Heading text carries no inline
// formatting; markers inside it are rendered literally.
type Heading struct {
	Level int
	Text  string
}

func (Heading) blockKind() BlockKind { return KindHeading }

// Blockquote is a single "> " line with its marker stripped.
type Blockquote struct {
	Spans []InlineSpan
}

func (Blockquote) blockKind() BlockKind { return KindBlockquote }

// ListItem is one ordered or unordered list line. Indent is the raw
// character column of the list marker; it drives left padding in the view
// and is not a structural nesting level.
type ListItem struct {
	Ordered bool
	Indent  int
	Spans   []InlineSpan
}

func (ListItem) blockKind() BlockKind { return KindListItem }

// HorizontalRule is a thematic break line (***, ---, ___).
type HorizontalRule struct{}

func (HorizontalRule) blockKind() BlockKind { return KindHorizontalRule }

// CodeBlock is a closed fenced code block. Content is the fence interior
// joined by newlines, verbatim, with no inline formatting applied.
type CodeBlock struct {
	Language string
	Content  string
}

func (CodeBlock) blockKind() BlockKind { return KindCodeBlock }

// Paragraph is any non-empty line not claimed by a block construct.
type Paragraph struct {
	Spans []InlineSpan
}

func (Paragraph) blockKind() BlockKind { return KindParagraph }

// BlankSpacer is a vertical-spacing placeholder for one blank source line.
// Consecutive blank lines each emit their own spacer.
type BlankSpacer struct{}

func (BlankSpacer) blockKind() BlockKind { return KindBlankSpacer }

// Kind returns the BlockKind tag of n.
func Kind(n BlockNode) BlockKind { return n.blockKind() }
