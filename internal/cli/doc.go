// Package cli implements the interactive Canvas CLI: a small REPL over the
// account registry, the session selector, and the cached resource services.
//
// Startup routes by registry state: an empty registry lands in the add-account
// flow, several accounts without a selection land in the account chooser, and
// a selected (or single) account goes straight to the main loop.
package cli
