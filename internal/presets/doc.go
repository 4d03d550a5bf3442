// Package presets loads prepared exercises from TOML files.
//
// A preset pairs a tool ID with fixed parameters so classic classroom
// examples (searching a sorted array, sorting a scrambled one, converting
// a number between bases) can be executed or streamed without the client
// assembling parameters itself.
//
// Preset File Format:
//
//	id = "sort-bubble-classic"
//	title = "Bubble Sort: Classic Example"
//	tool_id = "sort.bubble"
//
//	[params]
//	array = "64, 34, 25, 12, 22, 11, 90"
//
// Files that fail to parse or lack required fields are skipped with a
// warning; startup never fails on a bad preset.
package presets
