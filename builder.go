package wordfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MaxTokenSize is the longest single token CountWords accepts.
const MaxTokenSize = 1 << 20

// WordCount is a candidate word and its number of occurrences in a corpus.
type WordCount struct {
	Word  string
	Count int
}

// OmitPrefixes drops every word that starts with an earlier word in sorted
// order, keeping the survivors in their original input order. What remains can
// be split greedily without ambiguity.
//
// Words are compared bytewise (UTF-8 order), which differs from UTF-16 code
// unit order for runes above U+FFFF versus U+E000..U+FFFF. An empty word is a
// prefix of every word, so a kept "" removes everything sorted after it.
func OmitPrefixes(words []string) []string {
	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return words[order[a]] < words[order[b]]
	})

	keep := make([]bool, len(words))
	last, haveLast := "", false
	for _, i := range order {
		w := words[i]
		if haveLast && strings.HasPrefix(w, last) {
			continue
		}
		keep[i] = true
		last, haveLast = w, true
	}

	out := make([]string, 0, len(words))
	for i, w := range words {
		if keep[i] {
			out = append(out, w)
		}
	}
	return out
}

// SquareShuffle deterministically reorders items by laying them out row-major
// in a ceil(sqrt(n)) square grid and reading it back column by column.
func SquareShuffle[T any](items []T) []T {
	a := int(math.Ceil(math.Sqrt(float64(len(items)))))
	out := make([]T, 0, len(items))
	for col := 0; col < a; col++ {
		for row := 0; row < a; row++ {
			if i := row*a + col; i < len(items) {
				out = append(out, items[i])
			}
		}
	}
	return out
}

// NormalizeWord folds w to NFC lower case and strips everything that is not a letter.
func NormalizeWord(w string) string {
	w = cases.Lower(language.Und).String(norm.NFC.String(w))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, w)
}

// CountWords tokenizes r on white space and counts each normalized word.
// The result is in first-seen order. A single token may be up to MaxTokenSize bytes.
func CountWords(r io.Reader) ([]WordCount, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	pos := make(map[string]int)
	var counts []WordCount
	for scanner.Scan() {
		w := NormalizeWord(scanner.Text())
		if w == "" {
			continue
		}
		if i, ok := pos[w]; ok {
			counts[i].Count++
			continue
		}
		pos[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return counts, nil
}

// RankWords orders words by descending count, breaking ties alphabetically.
func RankWords(counts []WordCount) []string {
	sorted := make([]WordCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Count != sorted[b].Count {
			return sorted[a].Count > sorted[b].Count
		}
		return sorted[a].Word < sorted[b].Word
	})

	words := make([]string, len(sorted))
	for i, wc := range sorted {
		words[i] = wc.Word
	}
	return words
}

// BuildWordList turns word counts into a vocabulary word list: rank by count,
// drop prefixes, keep the first size words, then SquareShuffle them so index
// order no longer follows frequency.
//
// A size <= 0 keeps the largest power of two that is available.
func BuildWordList(counts []WordCount, size int) ([]string, error) {
	ranked := OmitPrefixes(RankWords(counts))
	if len(ranked) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if size <= 0 {
		size = 1 << floorLog2(len(ranked))
	}
	if size > len(ranked) {
		return nil, fmt.Errorf("need %d prefix-free words, corpus has %d", size, len(ranked))
	}
	return SquareShuffle(ranked[:size]), nil
}
