package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestFallback_WrapsLongLines(t *testing.T) {
	out := fallback(10, 0, []byte("one two three four five"))
	if !strings.Contains(string(out), "\n") {
		t.Fatalf("expected wrapped output, got %q", out)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	if out := Render(80, 0, nil); out != nil {
		t.Fatalf("expected nil for empty input, got %q", out)
	}
	if out := Render(80, 0, []byte("  \n\n ")); out != nil {
		t.Fatalf("expected nil for blank input, got %q", out)
	}
}

func TestRender_Indents(t *testing.T) {
	out := Render(40, 2, []byte("plain text"))
	if len(out) == 0 {
		t.Fatal("expected output")
	}
	if out[0] != ' ' || out[1] != ' ' {
		t.Fatalf("expected two-space indent, got %q", out)
	}
}
