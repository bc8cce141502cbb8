package claudedir

import (
	"os"
	"regexp"
	"strings"
)

// flattenChar replaces path separators when a project path is turned into
// a single directory-name token.
const flattenChar = "-"

// windowsFlattened matches a flattened Windows path: a drive letter
// followed by a doubled flatten marker (one for the colon, one for the
// root separator), e.g. "C--Users-alice-proj".
var windowsFlattened = regexp.MustCompile(`^([A-Za-z])--(.+)$`)

// Flatten converts a real project path into its directory-name token:
// every path separator becomes the flatten marker, and a Windows drive
// colon is dropped (its position is recovered by the doubled marker).
func Flatten(path string) string {
	if len(path) >= 2 && path[1] == ':' {
		rest := strings.TrimLeft(path[2:], `\/`)
		rest = strings.NewReplacer(`\`, flattenChar, "/", flattenChar).Replace(rest)
		return path[:1] + flattenChar + flattenChar + rest
	}
	return strings.ReplaceAll(path, "/", flattenChar)
}

// Unflatten reverses Flatten for the current OS. Flattening is lossy:
// a marker inside an original path segment (e.g. "my-app") is
// indistinguishable from a separator, so the result is best-effort for
// paths whose segments contain the marker.
func Unflatten(name string) string {
	return unflattenWith(name, string(os.PathSeparator))
}

// unflattenWith reverses the flattening using the given separator.
// Separated from Unflatten so the Windows scheme is exercisable on any
// host OS.
func unflattenWith(name, sep string) string {
	if m := windowsFlattened.FindStringSubmatch(name); m != nil {
		return m[1] + ":" + sep + strings.ReplaceAll(m[2], flattenChar, sep)
	}
	if strings.HasPrefix(name, flattenChar) {
		return "/" + strings.ReplaceAll(strings.TrimPrefix(name, flattenChar), flattenChar, "/")
	}
	// Opaque token: best-effort separator substitution.
	return strings.ReplaceAll(name, flattenChar, sep)
}
