// Package cheese converts between JPEG images and the CHEESE raw pixel container.
//
// A CHEESE container is a fixed 14-byte header (ASCII "CHEESE", big-endian uint32 width and height)
// followed by row-major RGB pixels. Alpha is dropped on the way in and restored as fully opaque on the way out.
// JPEG compression itself is delegated to a Bridge, by default the standard image/jpeg codec.
package cheese
