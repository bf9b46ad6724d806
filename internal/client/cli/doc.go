// Package cli implements the interactive College Cupid client: a REPL over
// the session manager, the profile wizard and the user feed.
package cli
