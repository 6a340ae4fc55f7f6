// Package storage persists labyrinth maps as plain text files.
package storage
