// Package wordlist loads word lists and chooses secret words from them.
package wordlist

import "fmt"

// Kind identifies where candidate words come from.
type Kind int

const (
	// KindBuiltIn selects the fixed list compiled into the binary.
	KindBuiltIn Kind = iota
	// KindFile selects a plain-text word file.
	KindFile
)

// Source configures where candidate words are loaded from.
type Source struct {
	Kind Kind
	Path string
}

// BuiltIn returns the source backed by the built-in word list.
func BuiltIn() Source {
	return Source{Kind: KindBuiltIn}
}

// FromFile returns a source that reads words from path.
func FromFile(path string) Source {
	return Source{Kind: KindFile, Path: path}
}

// String describes the source for logs and error messages.
func (s Source) String() string {
	switch s.Kind {
	case KindBuiltIn:
		return "built-in"
	case KindFile:
		return fmt.Sprintf("file %s", s.Path)
	default:
		return fmt.Sprintf("unknown source %d", int(s.Kind))
	}
}

var builtInWords = []string{"bacon", "egg", "sausage", "klingon"}

// BuiltInWords returns a copy of the built-in word list.
func BuiltInWords() []string {
	return append([]string(nil), builtInWords...)
}
