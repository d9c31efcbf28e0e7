// Package processor coordinates the command line actions of hanzicards:
// listing, batch import, Anki export, archiving, model listing and the
// GUI. Every change to the deck goes through the session controller so
// the CLI and the GUI share the same validation and write-through rules.
package processor
