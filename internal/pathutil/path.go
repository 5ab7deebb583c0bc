package pathutil

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// WorkspacePath extracts the filesystem path and its display name from a raw
// history value.
//
// History values may carry a non-path prefix (an encoded length header, or a
// URI scheme such as "vscode-remote://host"); the path starts at the first '/'.
// For URI-like values the authority is dropped as well.
func WorkspacePath(raw string) (title, path string) {
	i := strings.IndexByte(raw, '/')
	if i < 0 {
		return "", ""
	}
	path = raw[i:]
	if i > 0 && raw[i-1] == ':' && strings.HasPrefix(path, "//") {
		rest := path[2:]
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			return "", ""
		}
		path = rest[j:]
	}
	return lastSegment(path), path
}

func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// DirPath returns the display name for a directory path. ok is false when the
// path is not valid text or has no final component.
func DirPath(p string) (title, path string, ok bool) {
	if p == "" || !utf8.ValidString(p) {
		return "", "", false
	}
	name := filepath.Base(p)
	switch name {
	case ".", "..", string(filepath.Separator):
		return "", "", false
	}
	return name, p, true
}

// ExpandHome replaces a leading ~ with home. Only the first ~ is replaced,
// so "~/a~b" keeps its second tilde.
func ExpandHome(line, home string) string {
	if !strings.HasPrefix(line, "~") {
		return line
	}
	return strings.Replace(line, "~", home, 1)
}
