package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/plugkit/plugboard/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// pass asserts the validator passes for the given data/rules.
func pass(t *testing.T, label string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Fails() {
			t.Errorf("expected PASS, got FAIL — errors: %+v", v.Errors().Bag)
		}
	})
}

// fail asserts the validator fails with an error on the given field.
func fail(t *testing.T, label, field string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Passes() {
			t.Errorf("expected FAIL on field %q, but validator PASSED", field)
		}
		if v.Errors().First(field) == "" {
			t.Errorf("expected error on field %q, but none found. Errors: %+v", field, v.Errors().Bag)
		}
	})
}

// ── required ─────────────────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	r := validation.Rules{"device": "required"}

	pass(t, "non-empty value", map[string]string{"device": "fan"}, r)
	fail(t, "empty string", "device", map[string]string{"device": ""}, r)
	fail(t, "whitespace only", "device", map[string]string{"device": "   "}, r)
	fail(t, "missing key", "device", map[string]string{}, r)
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"device": ""}, validation.Rules{"device": "required"})
	_ = v.Fails()
	msg := v.Errors().First("device")
	expected := "The device field is required."
	if msg != expected {
		t.Errorf("message: got %q want %q", msg, expected)
	}
}

// ── in / not_in ──────────────────────────────────────────────────────────────

func TestValidation_In(t *testing.T) {
	r := validation.Rules{"device": "in:fan,light,tv"}

	pass(t, "first option", map[string]string{"device": "fan"}, r)
	pass(t, "last option", map[string]string{"device": "tv"}, r)
	fail(t, "unknown option", "device", map[string]string{"device": "toaster"}, r)
}

func TestValidation_In_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"device": "toaster"},
		validation.Rules{"device": "in:fan,light,tv"})
	_ = v.Fails()
	expected := "The selected device is invalid."
	if got := v.Errors().First("device"); got != expected {
		t.Errorf("message: got %q want %q", got, expected)
	}
}

func TestValidation_NotIn(t *testing.T) {
	r := validation.Rules{"name": "not_in:admin,root"}

	pass(t, "allowed name", map[string]string{"name": "alice"}, r)
	fail(t, "reserved name", "name", map[string]string{"name": "admin"}, r)
}

// ── min / max / between ──────────────────────────────────────────────────────

func TestValidation_Min(t *testing.T) {
	r := validation.Rules{"name": "min:3"}

	pass(t, "exactly 3", map[string]string{"name": "abc"}, r)
	pass(t, "more than 3", map[string]string{"name": "abcde"}, r)
	fail(t, "less than 3", "name", map[string]string{"name": "ab"}, r)
}

func TestValidation_Max(t *testing.T) {
	r := validation.Rules{"bio": "max:5"}

	pass(t, "under limit", map[string]string{"bio": "abc"}, r)
	pass(t, "at limit", map[string]string{"bio": "abcde"}, r)
	fail(t, "over limit", "bio", map[string]string{"bio": "abcdef"}, r)
}

func TestValidation_Between(t *testing.T) {
	r := validation.Rules{"code": "between:2,4"}

	pass(t, "in range", map[string]string{"code": "abc"}, r)
	fail(t, "too short", "code", map[string]string{"code": "a"}, r)
	fail(t, "too long", "code", map[string]string{"code": "abcde"}, r)
}

// ── boolean / alpha_dash / regex ─────────────────────────────────────────────

func TestValidation_Boolean(t *testing.T) {
	r := validation.Rules{"on": "boolean"}

	for _, v := range []string{"true", "false", "1", "0", "yes", "NO"} {
		pass(t, "accepts "+v, map[string]string{"on": v}, r)
	}
	fail(t, "rejects maybe", "on", map[string]string{"on": "maybe"}, r)
}

func TestValidation_AlphaDash(t *testing.T) {
	r := validation.Rules{"slug": "alpha_dash"}

	pass(t, "slug chars", map[string]string{"slug": "plug-board_1"}, r)
	fail(t, "spaces", "slug", map[string]string{"slug": "plug board"}, r)
}

func TestValidation_Regex(t *testing.T) {
	r := validation.Rules{"id": `regex:^[0-9]+$`}

	pass(t, "digits", map[string]string{"id": "123"}, r)
	fail(t, "letters", "id", map[string]string{"id": "abc"}, r)
}

// ── control rules ────────────────────────────────────────────────────────────

func TestValidation_Sometimes_SkipsAbsentField(t *testing.T) {
	r := validation.Rules{"device": "sometimes|in:fan,light,tv"}

	pass(t, "absent field skips in-rule", map[string]string{}, r)
	fail(t, "present field still validated", "device", map[string]string{"device": "toaster"}, r)
}

// ── pipe chains and bail behaviour ───────────────────────────────────────────

func TestValidation_ChainStopsOnFirstFailure(t *testing.T) {
	v := validation.Make(map[string]string{"device": ""},
		validation.Rules{"device": "required|in:fan,light,tv"})
	_ = v.Fails()

	// Only the required error should be recorded — bail on first failure
	if got := len(v.Errors().Bag["device"]); got != 1 {
		t.Errorf("errors on device: got %d, want 1 (bail)", got)
	}
}

// ── error bag JSON shape ─────────────────────────────────────────────────────

func TestValidation_ErrorsJSONShape(t *testing.T) {
	v := validation.Make(map[string]string{"device": "toaster"},
		validation.Rules{"device": "in:fan,light,tv"})
	_ = v.Fails()

	b, err := json.Marshal(v.Errors())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"errors":{"device":["The selected device is invalid."]}}`
	if string(b) != want {
		t.Errorf("JSON: got %s want %s", b, want)
	}
}
