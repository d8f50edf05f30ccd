// Package mkrunkore implements the core model of mkrun: deriving a build target
// from the file a developer is editing, and the capabilities a host must provide
// to build, locate and launch that target. It uses idiomatic Go error handling
// and has no notion of a concrete editor, build tool or terminal. Those are
// provided through [Host], [Builder] and [Terminal]. The ready-to-use pipeline
// is implemented by the [mkrun] package.
//
// [mkrun]: https://pkg.go.dev/git.fractalqb.de/fractalqb/mkrun
package mkrunkore
