// SPDX-License-Identifier: MPL-2.0

package script

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestJSInterpreterPrintAndBindings(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	js := NewJSInterpreter(&out)

	b := Bindings{Config: map[string]any{"name": "deck"}, Machine: "box", UI: "term"}
	src := []byte(`print("config name:", config.name); print("machine:", machine);`)
	if err := js.Eval(context.Background(), src, "/tmp/info.js", b); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "config name: deck") {
		t.Errorf("config binding not visible: %q", got)
	}
	if !strings.Contains(got, "machine: box") {
		t.Errorf("machine binding not visible: %q", got)
	}
}

func TestJSInterpreterPropagatesThrownErrors(t *testing.T) {
	t.Parallel()

	js := NewJSInterpreter(&bytes.Buffer{})
	err := js.Eval(context.Background(), []byte(`throw new Error("nope")`), "/tmp/t.js", Bindings{})
	if err == nil {
		t.Fatal("expected the thrown error to propagate")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("err = %v, want the script's message", err)
	}
}

func TestJSInterpreterSyntaxError(t *testing.T) {
	t.Parallel()

	js := NewJSInterpreter(&bytes.Buffer{})
	if err := js.Eval(context.Background(), []byte(`function {`), "/tmp/bad.js", Bindings{}); err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestJSInterpreterFreshVMPerEval(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	js := NewJSInterpreter(&out)

	if err := js.Eval(context.Background(), []byte(`var leaked = 1;`), "/tmp/a.js", Bindings{}); err != nil {
		t.Fatal(err)
	}
	err := js.Eval(context.Background(), []byte(`print(typeof leaked);`), "/tmp/b.js", Bindings{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "undefined") {
		t.Errorf("state leaked between evaluations: %q", out.String())
	}
}
