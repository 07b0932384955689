// Package commitmsg assembles commit messages from an editor-backed
// template, stripping commented guidance lines before use.
package commitmsg
