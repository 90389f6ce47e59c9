package constants

import "strings"

// JSONExtensions holds the file extensions loaded as JSON documents.
var JSONExtensions = map[string]struct{}{
	"json": {},
}

// ArchiveExtensions holds the archive extensions unpacked for JSON members.
// A .tar.gz path surfaces as "gz".
var ArchiveExtensions = map[string]struct{}{
	"zip": {},
	"tar": {},
	"gz":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
