// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetReturnsEveryRegisteredIssue(t *testing.T) {
	ids := []Id{
		UnsupportedScriptTypeId,
		ScriptExecutionFailedId,
		ScriptsDirOpenFailedId,
		ConfigLoadFailedId,
		WatchSetupFailedId,
	}
	for _, id := range ids {
		i := Get(id)
		if i == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestValuesOrderedById(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() len = %d, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() out of order at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestRenderUsesRenderer(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotMd, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotMd, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(UnsupportedScriptTypeId).Render("dark")
	if err != nil || out != "rendered" {
		t.Fatalf("Render = %q, %v", out, err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.Contains(gotMd, "interpreter") {
		t.Errorf("rendered markdown does not mention interpreters: %q", gotMd)
	}
}
