package cli

import (
	"reflect"
	"testing"
)

func TestParseScriptArgs(t *testing.T) {
	t.Run("valid pairs", func(t *testing.T) {
		got, err := parseScriptArgs([]string{"test=node --test", "lint=eslint ."})
		if err != nil {
			t.Fatalf("parseScriptArgs() error: %v", err)
		}
		want := map[string]string{"test": "node --test", "lint": "eslint ."}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseScriptArgs() = %v, want %v", got, want)
		}
	})

	t.Run("command may contain equals signs", func(t *testing.T) {
		got, err := parseScriptArgs([]string{"build=webpack --mode=production"})
		if err != nil {
			t.Fatalf("parseScriptArgs() error: %v", err)
		}
		if got["build"] != "webpack --mode=production" {
			t.Errorf("build = %q, want full command", got["build"])
		}
	})

	t.Run("missing separator is rejected", func(t *testing.T) {
		if _, err := parseScriptArgs([]string{"justaname"}); err == nil {
			t.Error("expected error for value without =")
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		if _, err := parseScriptArgs([]string{"=command"}); err == nil {
			t.Error("expected error for empty script name")
		}
	})
}

func TestScriptConfirmPolicy(t *testing.T) {
	t.Run("force approves everything", func(t *testing.T) {
		confirm := scriptConfirmPolicy(true, false)
		ok, err := confirm("anything")
		if err != nil || !ok {
			t.Errorf("force policy = (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("skip-existing declines everything", func(t *testing.T) {
		confirm := scriptConfirmPolicy(false, true)
		ok, err := confirm("anything")
		if err != nil || ok {
			t.Errorf("skip-existing policy = (%v, %v), want (false, nil)", ok, err)
		}
	})
}
