package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_ShowsAllSections(t *testing.T) {
	view := New().SetSize(120, 40).View()

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Files")
	assert.Contains(t, view, "Run")
	assert.Contains(t, view, "Editor")
	assert.Contains(t, view, "General")
}

func TestView_ShowsCoreBindings(t *testing.T) {
	view := New().SetSize(120, 40).View()

	assert.Contains(t, view, "ctrl+s")
	assert.Contains(t, view, "F5")
	assert.Contains(t, view, "ctrl+g")
	assert.Contains(t, view, "ctrl+q")
}

func TestOverlay_PlacesOnBackground(t *testing.T) {
	bg := ""
	for range 40 {
		bg += "........................................................................................................................\n"
	}
	out := New().SetSize(120, 40).Overlay(bg)
	assert.Contains(t, out, "Keybindings")
}
