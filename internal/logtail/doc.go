// Package logtail reads the end of the decklens log file for the logs view.
//
// Read keeps a ring buffer of the last N lines so memory stays bounded by N
// regardless of file size, then Parse decodes each zerolog JSON line into an
// Entry. The standard zerolog keys (time, level, message, error) and the
// "component" field get their own Entry fields. The caller key is dropped
// and every other key lands in Fields, sorted by key. Lines that are not
// JSON are returned with only Raw set so nothing in the file is hidden.
package logtail
