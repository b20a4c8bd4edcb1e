// Package testutil provides test doubles for netloc: an in-memory
// filesystem, a scripted link resolver, shell link fixture data, and a
// prebuilt container environment for command-level tests.
package testutil
