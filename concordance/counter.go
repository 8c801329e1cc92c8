// Package concordance counts word frequencies in text using a chained
// hashmap.Table.
package concordance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/chainmap/hashmap"
	"github.com/tuannh982/chainmap/utils/collections"
)

const DefaultCapacity = 64

type Config struct {
	Capacity  int
	Hash      hashmap.HashFunc
	StopWords collections.Set[string]
	Logger    *log.Entry
}

type WordCount struct {
	Word  string
	Count int
}

type Counter struct {
	words *hashmap.Table[int]
	stop  collections.Set[string]
	total int
	log   *log.Entry
}

func NewCounter(cfg Config) *Counter {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = log.WithFields(log.Fields{"component": "concordance"})
	}
	return &Counter{
		words: hashmap.NewWithConfig(cfg.Capacity, hashmap.Config[int]{
			Hash:   cfg.Hash,
			Logger: cfg.Logger,
		}),
		stop: cfg.StopWords,
		log:  cfg.Logger,
	}
}

// Add counts one occurrence of word, case-insensitively. Stop words are
// ignored.
func (c *Counter) Add(word string) error {
	word = strings.ToLower(word)
	if word == "" || (c.stop != nil && c.stop.Contains(word)) {
		return nil
	}
	n, _ := c.words.Get(word)
	if err := c.words.Put(word, n+1); err != nil {
		return fmt.Errorf("count %q: %w", word, err)
	}
	c.total++
	return nil
}

// Scan counts every word read from r and returns how many were counted.
func (c *Counter) Scan(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanWords)
	before := c.total
	for scanner.Scan() {
		if err := c.Add(scanner.Text()); err != nil {
			return c.total - before, err
		}
	}
	if err := scanner.Err(); err != nil {
		return c.total - before, fmt.Errorf("scan words: %w", err)
	}
	c.log.WithFields(log.Fields{
		"counted": c.total - before,
		"table":   c.words.String(),
	}).Debug("scan done")
	return c.total - before, nil
}

func (c *Counter) Count(word string) int {
	n, _ := c.words.Get(strings.ToLower(word))
	return n
}

// Words returns the number of distinct words.
func (c *Counter) Words() int {
	return c.words.Size()
}

// Total returns the number of words counted, repeats included.
func (c *Counter) Total() int {
	return c.total
}

// Top returns the n most frequent words, ties broken alphabetically. n <= 0
// returns every word.
func (c *Counter) Top(n int) []WordCount {
	arr := make([]WordCount, 0, c.words.Size())
	c.words.Each(func(word string, count int) bool {
		arr = append(arr, WordCount{Word: word, Count: count})
		return true
	})
	slices.SortFunc(arr, func(a, b WordCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Word < b.Word
	})
	if n > 0 && n < len(arr) {
		arr = arr[:n]
	}
	return arr
}

// Dump writes word:count lines in table order.
func (c *Counter) Dump(w io.Writer) error {
	return c.words.DumpKeyValues(w, hashmap.PrintKey, hashmap.PrintValue[int])
}

// DumpBuckets writes the table bucket by bucket.
func (c *Counter) DumpBuckets(w io.Writer) error {
	return c.words.Dump(w, hashmap.PrintKey, hashmap.PrintValue[int])
}

func (c *Counter) Stats() string {
	return c.words.String()
}

func (c *Counter) Close() {
	c.words.Close()
}

// LoadStopWords reads a word list in the format accepted by Scan.
func LoadStopWords(r io.Reader) (collections.Set[string], error) {
	set := collections.NewHashSet(DefaultCapacity)
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanWords)
	for scanner.Scan() {
		err := set.Add(strings.ToLower(scanner.Text()))
		if err != nil && !errors.Is(err, collections.ErrValueExisted) {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stop words: %w", err)
	}
	return set, nil
}
