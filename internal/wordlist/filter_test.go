package wordlist

import (
	"reflect"
	"testing"
)

func TestIsValidWord(t *testing.T) {
	for _, word := range []string{"hello", "Zaphod", "a"} {
		if !IsValidWord(word) {
			t.Fatalf("expected %q to be valid", word)
		}
	}
	for _, word := range []string{"", "123", "egg!", "résumé", "co-op", "two words", " ", "don’t"} {
		if IsValidWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter([]string{"bacon", "123", "", "egg!", "sausage"})
	want := []string{"bacon", "sausage"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
}

func TestSplitLinesStripsCarriageReturn(t *testing.T) {
	got := SplitLines("bacon\r\negg\n")
	want := []string{"bacon", "egg", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitLines = %q, want %q", got, want)
	}
}
