package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRecoverJSON_PlainObject(t *testing.T) {
	raw, err := RecoverJSON(`{"title":"Orman","content":"Bir varmış...","theme":"Dostluk"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal recovered JSON: %v", err)
	}
	if out["title"] != "Orman" {
		t.Errorf("expected title 'Orman', got %q", out["title"])
	}
}

func TestRecoverJSON_CodeFenced(t *testing.T) {
	text := "```json\n{\"title\":\"Orman\",\"content\":\"metin\",\"theme\":\"Dostluk\"}\n```"
	raw, err := RecoverJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"title":"Orman","content":"metin","theme":"Dostluk"}` {
		t.Errorf("unexpected candidate: %s", raw)
	}
}

func TestRecoverJSON_SurroundedByProse(t *testing.T) {
	text := "Sure! Here is the story you asked for:\n\n" +
		`{"title":"Kedi","content":"Pamuk bir kediydi.","theme":"Sevgi"}` +
		"\n\nHope the little one enjoys it!"
	raw, err := RecoverJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Theme   string `json:"theme"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal recovered JSON: %v", err)
	}
	if out.Theme != "Sevgi" {
		t.Errorf("expected theme 'Sevgi', got %q", out.Theme)
	}
}

func TestRecoverJSON_FencedAndProse(t *testing.T) {
	text := "Here you go:\n```json\n{\"a\":1}\n```\nDone."
	raw, err := RecoverJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a":1}` {
		t.Errorf("unexpected candidate: %s", raw)
	}
}

func TestRecoverJSON_NestedBraces(t *testing.T) {
	text := `prefix {"outer":{"inner":"value"}} suffix`
	raw, err := RecoverJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"outer":{"inner":"value"}}` {
		t.Errorf("unexpected candidate: %s", raw)
	}
}

func TestRecoverJSON_NoObject(t *testing.T) {
	_, err := RecoverJSON("the model refused and wrote an apology instead")
	if err == nil {
		t.Fatal("expected error")
	}
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %T", err)
	}
}

func TestRecoverJSON_TruncatedObject(t *testing.T) {
	_, err := RecoverJSON(`{"title":"Orman","content":"kes`)
	if err == nil {
		t.Fatal("expected error for truncated object")
	}
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %T", err)
	}
}

func TestRecoverJSON_EmptyInput(t *testing.T) {
	_, err := RecoverJSON("")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
