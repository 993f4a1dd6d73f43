// Package render assembles table models into a generated source document.
//
// Assembly is split in two steps. NewDocument decides what to emit and
// produces an ordered list of typed blocks; a Formatter decides how the
// blocks are printed. Block order is base order, then table order, then
// field order, so identical inputs always render identical bytes.
package render
