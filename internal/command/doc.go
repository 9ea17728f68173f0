// Package command coordinates the add, edit and delete actions. Each action
// is an Intent that waits for the user's confirmation; once confirmed it
// changes the local store at once and is mirrored to the remote service in
// the background.
package command
