// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing explanations for scriptdeck's error
// taxonomy. Each issue carries a Markdown message rendered with glamour when
// an explicit user action fails; errors swallowed inside synchronization
// passes never reach this package.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one issue type.
type Id int

const (
	UnsupportedScriptTypeId Id = iota + 1
	ScriptExecutionFailedId
	ScriptsDirOpenFailedId
	ConfigLoadFailedId
	WatchSetupFailedId
)

// MarkdownMsg is the renderable Markdown body of an issue.
type MarkdownMsg string

// Issue pairs an Id with its user-facing explanation.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's Markdown with the given glamour style path.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	unsupportedScriptTypeIssue = &Issue{
		id: UnsupportedScriptTypeId,
		mdMsg: `
# No interpreter for this script type!

The script's file extension has no registered interpreter, so scriptdeck
cannot run it.

## Things you can try:
- List the interpreters and extensions scriptdeck knows about:
~~~
$ scriptdeck interpreters
~~~
- Register an external interpreter in ` + "`.interpreters.toml`" + ` at your
  scripts root:
~~~toml
[[interpreter]]
name = "python"
extensions = ["py"]
command = ["python3", "{script}"]
~~~`,
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# Script execution failed!

The interpreter reported an error while running your script. The underlying
error above has the details.

## Things you can try:
- Edit the script and run it again: scriptdeck re-reads the file on every
  invocation, so no restart is needed.
- Run with verbose mode for dispatch details:
~~~
$ scriptdeck --verbose run <name>
~~~`,
	}

	scriptsDirOpenFailedIssue = &Issue{
		id: ScriptsDirOpenFailedId,
		mdMsg: `
# Could not open the scripts location!

scriptdeck asked the OS file browser to open the scripts directory and the
request failed.

## Things you can try:
- Check that a file browser is installed (xdg-open on Linux).
- Open the directory manually; its path is shown above.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file contains errors or points at an unusable scripts directory.

## Things you can try:
- Check the TOML syntax of your config file.
- Override the scripts directory explicitly:
~~~
$ scriptdeck --scripts-dir /path/to/scripts tree
~~~`,
	}

	watchSetupFailedIssue = &Issue{
		id: WatchSetupFailedId,
		mdMsg: `
# Live updates are unavailable!

The filesystem notification service could not be started. The command tree
still works: it was built from an initial scan, and you can refresh it
manually at any time (press r in the menu, or rerun the command).`,
	}

	issues = map[Id]*Issue{
		UnsupportedScriptTypeId: unsupportedScriptTypeIssue,
		ScriptExecutionFailedId: scriptExecutionFailedIssue,
		ScriptsDirOpenFailedId:  scriptsDirOpenFailedIssue,
		ConfigLoadFailedId:      configLoadFailedIssue,
		WatchSetupFailedId:      watchSetupFailedIssue,
	}
)

// Values returns all registered issues, ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return out
}

// Get returns the issue registered for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
