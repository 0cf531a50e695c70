// Package assets tracks uploaded files referenced by site settings.
//
// Any setting whose key ends in "_image" is interpreted as holding a
// path to an uploaded file. This is a naming convention only; there is
// no foreign key between settings rows and files on disk.
package assets

import (
	"sort"
	"strings"
)

// ImageKeySuffix marks a setting key as holding an uploaded image path.
const ImageKeySuffix = "_image"

// PlanCleanup computes which previously referenced files became orphans
// when incoming replaces existing. For every image-valued key in
// incoming whose stored value is non-empty and differs from the new
// value, the stored value is resolved to an upload-relative path and
// appended to the result. First assignments never produce a candidate.
//
// The function is pure, it never touches the filesystem. Candidates are
// emitted in sorted key order of incoming.
func PlanCleanup(existing, incoming map[string]string) []string {
	keys := make([]string, 0, len(incoming))
	for key := range incoming {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var candidates []string

	for _, key := range keys {
		if !strings.HasSuffix(key, ImageKeySuffix) {
			continue
		}

		old, ok := existing[key]
		if !ok || old == "" || old == incoming[key] {
			continue
		}

		candidates = append(candidates, RelativePath(old))
	}

	return candidates
}

// RelativePath resolves a stored image value to an upload-relative path
// by stripping a leading "/uploads/" or "uploads/" prefix. Case
// sensitive, single pass. If neither prefix matches the value is
// treated as already relative; nonsense values (external urls, bare
// names) resolve to paths that no-op through the not-found tolerance
// of the deletion collaborator.
func RelativePath(value string) string {
	switch {
	case strings.HasPrefix(value, "/uploads/"):
		return strings.TrimPrefix(value, "/uploads/")
	case strings.HasPrefix(value, "uploads/"):
		return strings.TrimPrefix(value, "uploads/")
	}

	return value
}
