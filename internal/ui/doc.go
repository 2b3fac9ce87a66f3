// Package ui provides theme and color support for the presentation layers.
// It defines color schemes and ANSI escape code helpers shared by the CLI
// output, the comparison table and the TUI dashboard, keeping styling
// decisions out of the arithmetic and orchestration packages.
package ui
