// Package markdown renders task notes for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "taskhub/internal/strings"
)

// renderer is the narrow slice of glamour.TermRenderer used here; it exists
// so tests can substitute a failing implementation.
type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// SafeRender formats markdown for terminal output, falling back to the
// normalized input if the renderer fails or panics.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			out = fallback(width, indent, input)
		}
	}()
	return Render(width, indent, input)
}

// Render formats markdown text for terminal output.
func Render(width, indent int, input []byte) []byte {
	value, renderWidth, indentWidth, ok := normalize(width, indent, input)
	if !ok {
		return nil
	}

	rendered := value
	if r := markdownRenderer(renderWidth); r != nil {
		if formatted, err := r.Render(value); err == nil {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(indentBlock(rendered, indentWidth))
}

func fallback(width, indent int, input []byte) []byte {
	value, renderWidth, indentWidth, ok := normalize(width, indent, input)
	if !ok {
		return nil
	}
	return []byte(indentBlock(wordwrap.String(value, renderWidth), indentWidth))
}

func normalize(width, indent int, input []byte) (value string, renderWidth, indentWidth int, ok bool) {
	if len(input) == 0 {
		return "", 0, 0, false
	}
	value = internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return "", 0, 0, false
	}

	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth = width - indent
	if renderWidth < 1 {
		renderWidth = 1
	}
	return value, renderWidth, indent, true
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}

	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
