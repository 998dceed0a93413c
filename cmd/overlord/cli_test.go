package main

import (
	"errors"
	"testing"

	"overlord/internal/villain"
)

func TestParseCommandRejectsSingleToken(t *testing.T) {
	rootCmd.SetArgs([]string{"parse", "Cher"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("single-token identity accepted")
	}
	var parseErr *villain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("unexpected error type: %T", err)
	}
}

func TestParseCommandAcceptsFullName(t *testing.T) {
	rootCmd.SetArgs([]string{"parse", "Lex Luthor"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
