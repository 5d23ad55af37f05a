package rest

import "testing"

func TestParamsEncodeOmitsEmptyValues(t *testing.T) {
	params := Params{
		"page":      1,
		"page_size": 10,
		"q":         "",
		"category":  nil,
		"status":    0,
		"metric":    "gems",
	}

	values := params.Encode()

	if _, ok := values["q"]; ok {
		t.Error("Empty string value should be omitted")
	}
	if _, ok := values["category"]; ok {
		t.Error("Nil value should be omitted")
	}
	if got := values.Get("page"); got != "1" {
		t.Errorf("page = %q, want %q", got, "1")
	}
	if got := values.Get("page_size"); got != "10" {
		t.Errorf("page_size = %q, want %q", got, "10")
	}
	if got := values.Get("status"); got != "0" {
		t.Errorf("status = %q, want %q (zero is a meaningful filter)", got, "0")
	}
	if got := values.Get("metric"); got != "gems" {
		t.Errorf("metric = %q, want %q", got, "gems")
	}
}

func TestParamsEncodeStringCoercion(t *testing.T) {
	values := Params{
		"flag":  true,
		"ratio": 2.5,
		"id":    int64(42),
	}.Encode()

	if got := values.Get("flag"); got != "true" {
		t.Errorf("flag = %q, want %q", got, "true")
	}
	if got := values.Get("ratio"); got != "2.5" {
		t.Errorf("ratio = %q, want %q", got, "2.5")
	}
	if got := values.Get("id"); got != "42" {
		t.Errorf("id = %q, want %q", got, "42")
	}
}

func TestParamsEncodeEmptySet(t *testing.T) {
	if got := (Params{}).Encode().Encode(); got != "" {
		t.Errorf("Encode() = %q, want empty query", got)
	}
	if got := Params(nil).Encode().Encode(); got != "" {
		t.Errorf("Encode() on nil = %q, want empty query", got)
	}
}
