// Package utils provides small helpers shared by commands and handlers:
// query/flag value conversion and a charset-aware XML decoder for game data files.
package utils
