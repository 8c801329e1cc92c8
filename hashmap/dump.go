package hashmap

import (
	"bufio"
	"fmt"
	"io"
)

type KeyPrinter func(w io.Writer, key string)

type ValuePrinter[V any] func(w io.Writer, value V)

func PrintKey(w io.Writer, key string) {
	_, _ = io.WriteString(w, key)
}

func PrintValue[V any](w io.Writer, value V) {
	_, _ = fmt.Fprint(w, value)
}

// Dump writes every non-empty bucket followed by its chain:
//
//	Bucket Index 3 -> Key:a| Value: 1 -> Key:q| Value: 7 ->
func (t *Table[V]) Dump(w io.Writer, kp KeyPrinter, vp ValuePrinter[V]) error {
	t.mustOpen()
	bw := bufio.NewWriter(w)
	for i, head := range t.buckets {
		if head == nil {
			continue
		}
		_, _ = fmt.Fprintf(bw, "Bucket Index %d ->", i)
		for cur := head; cur != nil; cur = cur.next {
			_, _ = bw.WriteString(" Key:")
			kp(bw, cur.key)
			_, _ = bw.WriteString("| Value: ")
			vp(bw, cur.value)
			_, _ = bw.WriteString(" ->")
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpKeyValues writes one key:value line per entry.
func (t *Table[V]) DumpKeyValues(w io.Writer, kp KeyPrinter, vp ValuePrinter[V]) error {
	t.mustOpen()
	bw := bufio.NewWriter(w)
	t.Each(func(key string, value V) bool {
		kp(bw, key)
		_ = bw.WriteByte(':')
		vp(bw, value)
		_ = bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}
