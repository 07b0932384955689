// Package status classifies porcelain working tree output and resolves
// interactive file selections against it.
package status
