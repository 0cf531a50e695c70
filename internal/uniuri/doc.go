// Package uniuri generates cryptographically secure random strings.
// It is used for the random component of uploaded file names, with
// configurable length and character set.
package uniuri
