// Package buffer provides the document model: an ordered sequence of
// grapheme-addressed lines plus file identity and modification state.
//
// Positions are expressed as a Location of (line, grapheme). All edit
// operations treat out-of-range locations as no-ops so that commands racing
// slightly ahead of the buffer never corrupt it.
//
// # Editing
//
//	b := buffer.New(buffer.WithContent("ab\ncd"))
//	b.DeleteChar(buffer.Location{LineIndex: 0, GraphemeIndex: 2})
//	b.LineText(0) // "abcd"
//
// Deleting at the end of a line joins the following line onto it.
// Inserting a newline splits the line at the location.
//
// # Persistence
//
// Load replaces the buffer contents with a file's lines and Save writes one
// newline-terminated record per line. Both report failures as a
// *PersistenceError; a failed load leaves the buffer untouched.
package buffer
