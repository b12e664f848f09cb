package wordlist

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyWordList is returned when a source has no valid words after filtering.
var ErrEmptyWordList = errors.New("word list has no valid words")

// SourceError reports a word file that could not be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read word list %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Rand is the randomness used to pick a secret. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// LoadWords returns the filtered candidate words for src.
func LoadWords(src Source) ([]string, error) {
	switch src.Kind {
	case KindBuiltIn:
		return BuiltInWords(), nil
	case KindFile:
		text, err := readFile(src.Path)
		if err != nil {
			return nil, &SourceError{Path: src.Path, Err: err}
		}
		return Filter(SplitLines(text)), nil
	default:
		return nil, fmt.Errorf("unknown word source kind %d", int(src.Kind))
	}
}

// ChooseSecret loads the words for src and picks one uniformly at random.
func ChooseSecret(src Source, rnd Rand) (string, error) {
	words, err := LoadWords(src)
	if err != nil {
		return "", err
	}
	return Pick(words, rnd)
}

// Pick selects a uniformly random word from words.
func Pick(words []string, rnd Rand) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	return words[rnd.Intn(len(words))], nil
}

func readFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
