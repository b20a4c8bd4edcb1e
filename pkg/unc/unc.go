// Package unc parses and compares Universal Naming Convention paths of
// the form \\server\share. Both backslash and forward-slash separators
// are accepted on input; canonical output always uses backslashes.
package unc

import (
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

// isSeparator reports whether c is a path separator. Windows accepts
// both styles in UNC paths.
func isSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// Parse splits a UNC path into its server and share segments. The path
// must begin with two separators followed by a non-empty server segment,
// a separator, and a non-empty share segment. Components after the share
// segment are ignored, so \\server\share\docs\report parses the same as
// \\server\share.
//
// Empty or blank input yields an INVALID_INPUT error; anything else that
// does not follow the convention yields MALFORMED_UNC.
func Parse(path string) (server, share string, err error) {
	if strings.TrimSpace(path) == "" {
		return "", "", errors.New(errors.ErrInvalidInput, "unc path is empty")
	}
	if len(path) < 2 || !isSeparator(path[0]) || !isSeparator(path[1]) {
		return "", "", errors.Newf(errors.ErrMalformedUNC, "path %q does not start with \\\\", path)
	}

	rest := path[2:]
	i := 0
	for i < len(rest) && !isSeparator(rest[i]) {
		i++
	}
	server = rest[:i]
	if server == "" {
		return "", "", errors.Newf(errors.ErrMalformedUNC, "path %q has an empty server segment", path)
	}
	if i >= len(rest) {
		return "", "", errors.Newf(errors.ErrMalformedUNC, "path %q has no share segment", path)
	}

	rest = rest[i+1:]
	j := 0
	for j < len(rest) && !isSeparator(rest[j]) {
		j++
	}
	share = rest[:j]
	if share == "" {
		return "", "", errors.Newf(errors.ErrMalformedUNC, "path %q has an empty share segment", path)
	}

	return server, share, nil
}

// RootPath builds the canonical \\server\share form.
func RootPath(server, share string) string {
	return `\\` + server + `\` + share
}

// EqualFold reports whether two paths name the same resource, ignoring
// case, separator style, and trailing separators.
func EqualFold(a, b string) bool {
	return strings.EqualFold(normalize(a), normalize(b))
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "/", `\`)
	return strings.TrimRight(p, `\`)
}
