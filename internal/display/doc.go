// Package display formats user-facing warnings for the levelconv CLI.
//
//	warning := display.IgnoredFilesWarning("level", ".ts", []string{"types.ts"})
//	warning.Display(os.Stderr)
//
// Output is yellow when fatih/color detects a terminal and plain otherwise.
package display
