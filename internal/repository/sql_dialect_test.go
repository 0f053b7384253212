package repository

import (
	"strings"
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("postgresql"); got != "ILIKE" {
		t.Fatalf("postgresql operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite operator want LIKE got %s", got)
	}
	if got := likeOperatorByDialect(""); got != "LIKE" {
		t.Fatalf("default operator want LIKE got %s", got)
	}
}

func TestEscapeLikePattern(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		"50%":     `50\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
		`%_\`:    `\%\_\\`,
	}
	for input, want := range cases {
		if got := escapeLikePattern(input); got != want {
			t.Fatalf("escape %q want %q got %q", input, want, got)
		}
	}
}

func TestBuildNameLikeCondition(t *testing.T) {
	condition, args := buildNameLikeCondition(nil, []string{"name", "sku"}, "50%")
	if !strings.Contains(condition, "name LIKE ? ESCAPE '\\'") {
		t.Fatalf("condition should contain escaped name LIKE, got %s", condition)
	}
	if !strings.Contains(condition, " OR ") {
		t.Fatalf("condition should join columns with OR, got %s", condition)
	}
	if len(args) != 2 {
		t.Fatalf("arg count want 2 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != `%50\%%` {
			t.Fatalf("args[%d] want %q got %v", idx, `%50\%%`, arg)
		}
	}
}

func TestBuildNameLikeConditionSkipsBlankColumns(t *testing.T) {
	condition, args := buildNameLikeCondition(nil, []string{"name", " ", ""}, "term")
	if strings.Contains(condition, " OR ") {
		t.Fatalf("blank columns should be dropped, got %s", condition)
	}
	if len(args) != 1 {
		t.Fatalf("arg count want 1 got %d", len(args))
	}
}
