// Package anki exports a deck for import into Anki, either as a plain
// CSV file or as an .apkg package with its own note type.
package anki
