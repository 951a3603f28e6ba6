// Package fsutil provides filesystem-name helpers for the appkit runtime.
// Everything here is pure string parsing; no file I/O is performed.
package fsutil

import "strings"

// Separator is the path separator the helpers parse on. Framework paths
// use forward slashes regardless of host platform.
const Separator = "/"

// Basename returns the trailing name component of path, ignoring trailing
// separators, with suffix stripped when the name ends with it (and is not
// the suffix itself). Unlike libc basename, multi-byte names are handled
// without locale dependence.
func Basename(path, suffix string) string {
	trimmed := strings.TrimRight(path, Separator)
	if trimmed == "" {
		return Separator
	}
	name := trimmed
	if idx := strings.LastIndex(trimmed, Separator); idx >= 0 {
		name = trimmed[idx+len(Separator):]
	}
	if suffix != "" && name != suffix && strings.HasSuffix(name, suffix) {
		name = name[:len(name)-len(suffix)]
	}
	return name
}

// DirSeparator returns dir with exactly one trailing separator.
func DirSeparator(dir string) string {
	return strings.TrimRight(dir, Separator) + Separator
}

// DirFromFile returns a nested shard directory path derived from the file
// name, grouping files by leading name characters:
//
//	DirFromFile("abcdef12345.jpg") == "abc/def/12/"
//
// Names shorter than one full shard fall back to a single directory.
func DirFromFile(file string) string {
	name := Basename(file, "")
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	shards := make([]string, 0, 3)
	for _, width := range []int{3, 3, 2} {
		if len(name) == 0 {
			break
		}
		if width > len(name) {
			width = len(name)
		}
		shards = append(shards, name[:width])
		name = name[width:]
	}
	if len(shards) == 0 {
		return Separator
	}
	return strings.Join(shards, Separator) + Separator
}
