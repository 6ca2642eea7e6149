// Package editscript computes and applies minimal line edit scripts.
//
// A script is an ordered list of Insert/Delete commands. The row of each
// command is interpreted against the lines as left by the commands before
// it, so a script is applied strictly in order.
package editscript
