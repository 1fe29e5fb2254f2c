// Package model defines the geometric primitives and data contracts shared
// across the fitting and reconstruction components: rectangles, font hints,
// unit descriptors supplied by extraction, and opaque preserved elements.
//
// All types are plain values with no hidden state; they are created fresh
// per translation job and flow forward through the pipeline.
package model
