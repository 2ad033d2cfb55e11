// Package view renders a live maze run to the terminal using tcell: the
// current grid, the navigator's position and facing, and the planned path
// when one exists. It is strictly a debugging aid, not part of the wire
// format.
package view

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/forcelightning/mazebot/astar"
	"github.com/forcelightning/mazebot/grid"
)

// View owns a tcell screen and redraws a maze run onto it.
type View struct {
	screen tcell.Screen

	mazeStyle tcell.Style
	pathStyle tcell.Style
	navStyle  tcell.Style
}

// New initializes a tcell screen in terminal mode.
func New() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating tcell screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing tcell screen")
	}

	v := &View{
		screen:    screen,
		mazeStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		pathStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		navStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	}
	screen.SetStyle(v.mazeStyle)
	screen.Clear()
	return v, nil
}

// Close tears down the terminal screen.
func (v *View) Close() {
	v.screen.Fini()
}

// Draw renders g with nav overlaid, and path overlaid too if non-nil, to
// the top-left corner of the screen, then flushes the frame.
func (v *View) Draw(g *grid.Grid, nav *grid.Navigator, path []int) {
	v.screen.Clear()

	rendered := g.Render()
	if len(path) > 0 {
		rendered = astar.RenderPath(rendered, g, path)
	}
	rendered = grid.InsertNavigator(rendered, g, nav)

	for row, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		for col, r := range line {
			v.screen.SetContent(col, row, r, nil, v.styleFor(r))
		}
	}

	v.screen.Show()
}

func (v *View) styleFor(r rune) tcell.Style {
	switch r {
	case '^', '>', 'v', '<':
		return v.navStyle
	case '%', 'X', 'O', '|', '-':
		return v.pathStyle
	default:
		return v.mazeStyle
	}
}

// PollQuit blocks until the user presses 'q' or Ctrl-C, then returns. Other
// key events are discarded; this is a debugging view, not an input surface.
func (v *View) PollQuit() {
	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Rune() == 'q' || ev.Key() == tcell.KeyCtrlC {
				return
			}
		}
	}
}
