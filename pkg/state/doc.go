// Package state provides the formatter state attached to every Reference.
package state
