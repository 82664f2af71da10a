// SPDX-License-Identifier: MPL-2.0

// scriptdeck is a live command palette over a directory of scripts: the
// command tree mirrors the scripts directory in near-real-time, and leaves
// dispatch to pluggable interpreters chosen by file extension.
package main

func main() {
	Execute()
}
