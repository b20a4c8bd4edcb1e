// Package paths locates the network-shortcuts container directory and
// validates names destined for it.
//
// On Windows the container is the NetHood known folder, discovered
// through the user's shell folder registry settings. Everywhere else a
// fixture directory under the XDG data home stands in, so the rest of
// the tool behaves identically across platforms.
package paths
