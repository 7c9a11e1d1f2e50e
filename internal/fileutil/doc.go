// Package fileutil finds level files on disk.
//
// ScanDirectory walks an input directory and returns the files whose name
// starts with a prefix and ends with one of a set of extensions. Results are
// absolute paths sorted alphabetically so conversion runs are reproducible.
// Non-fatal errors (an unreadable subdirectory, a path that cannot be made
// absolute) are collected on the result and scanning continues.
//
// Hidden directories are never descended into. Recursion is off by default:
// level sets are flat directories.
package fileutil
