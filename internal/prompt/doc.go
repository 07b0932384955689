// Package prompt reads interactive answers from the session's input stream.
package prompt
