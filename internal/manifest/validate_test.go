package manifest

import "testing"

func TestValidate(t *testing.T) {
	t.Run("well-formed manifest", func(t *testing.T) {
		result, err := Validate([]byte(`{
			"name": "my-app",
			"version": "1.0.0",
			"scripts": {"test": "jest"},
			"dependencies": {"left-pad": "^1.3.0"},
			"license": "MIT"
		}`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if !result.Valid {
			t.Errorf("Validate() invalid, issues: %v", result.Issues)
		}
	})

	t.Run("invalid name pattern", func(t *testing.T) {
		result, err := Validate([]byte(`{"name": "Not A Valid Name"}`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Error("Validate() valid, want issues for bad name")
		}
		if len(result.Issues) == 0 {
			t.Error("expected at least one issue")
		}
	})

	t.Run("non-string script value", func(t *testing.T) {
		result, err := Validate([]byte(`{"name": "ok", "scripts": {"test": 42}}`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Error("Validate() valid, want issues for non-string script")
		}
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		if _, err := Validate([]byte(`{broken`)); err == nil {
			t.Fatal("Validate() expected error for malformed JSON")
		}
	})
}
