package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-syllables/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "green", core.ColorGreen)
	s.DrawTextColored(0, 1, "cyan", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "plain green " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "plain green ")
	}
	if !strings.HasPrefix(lines[1], "cyan") || len(lines[1]) != 12 {
		t.Errorf("line 1 = %q, expected cyan padded to 12", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered as %q, expected plain text", got)
	}
}
