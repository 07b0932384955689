// Package dependencies resolves default collaborator implementations for
// command builders, letting tests inject substitutes.
package dependencies
