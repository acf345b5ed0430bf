// Package icons defines the core icon identifiers used across the site.
//
// The catalog maps stable identifiers to accessible labels and Lucide
// sprite names so that pages communicate intent without hard-coding glyph
// strings in components.
package icons
