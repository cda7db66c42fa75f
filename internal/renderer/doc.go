// Package renderer provides the display layer for the hecto editor.
//
// The renderer is responsible for:
//   - Projecting a line and its annotations onto screen cells
//   - Horizontal scrolling with ellipsis at cut wide graphemes
//   - Drawing the status, message and command bars
//   - Backend abstraction for terminal output
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Viewport │ Highlight  │ Statusline     │
//	│  Scrolling│ Annotated  │ Theme          │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ Memory (tests)      │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, highlight.DefaultTheme())
//	r.DrawLine(0, l, provider.Annotations(0), 0)
//	r.Finish(0, 0)
package renderer
