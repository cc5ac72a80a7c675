// Package viz renders profiles and check results for the terminal.
//
// Tables are drawn with lipgloss and plots with asciigraph:
//
//   - [RenderTable]: a stored or freshly built profile
//   - [RenderChecks]: pass/fail table of the published reference cases
//   - [RenderCompare]: potential temperature per integrator
//   - [Plot]: one profile column against pressure level
//
// Colours are dropped automatically when output is not a terminal.
package viz
