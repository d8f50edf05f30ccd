// Package mkrun builds and runs the CMake target that belongs to the source
// file a developer is currently editing. The target name is derived from the
// file's path: the file list/876.cc maps to the target list_876. After a
// successful build the executable is searched in the usual CMake binary
// directories of the workspace,
//
//	build
//	out/build
//	cmake-build-debug
//	cmake-build-release
//
// and run in a fresh terminal of the host.
//
// mkrun does not read CMakeLists.txt. Each source file that shall be run needs
// a target of the matching name, e.g.
//
//	add_executable(list_876 list/876.cc)
//
// Editors and command line tools plug into mkrun by implementing [Host]. The
// [termhost] package provides a host for the command line. [CMakeBuild] is a
// [Builder] that runs 'cmake --build'.
//
// Commands sent to a terminal are not checked for success. The terminal is
// handed to the user as is.
//
// [termhost]: https://pkg.go.dev/git.fractalqb.de/fractalqb/mkrun/termhost
package mkrun
