// Package scaffold lays the project skeleton down on disk. It walks the
// declared paths in order, asks the rule table for each file's content,
// creates missing parent directories and overwrites the file. The first
// failure stops the run; files already written stay in place.
package scaffold
