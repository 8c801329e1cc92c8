package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/chainmap/concordance"
	"github.com/tuannh982/chainmap/hashmap"
)

type options struct {
	capacity  int
	hash      string
	stopWords string
	top       int
	buckets   bool
}

func main() {
	opts := options{}
	flag.IntVar(&opts.capacity, "capacity", concordance.DefaultCapacity, "initial number of buckets")
	flag.StringVar(&opts.hash, "hash", "sum", "bucket hash function: sum or xxhash")
	flag.StringVar(&opts.stopWords, "stopwords", "", "file listing words to ignore")
	flag.IntVar(&opts.top, "top", 0, "print only the n most frequent words")
	flag.BoolVar(&opts.buckets, "buckets", false, "print the table bucket by bucket")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	out := bufio.NewWriter(os.Stdout)
	err := run(opts, flag.Args(), os.Stdin, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		log.WithError(err).Fatal("concordance failed")
	}
}

func hashFunc(name string) (hashmap.HashFunc, error) {
	switch name {
	case "sum":
		return hashmap.StringHash, nil
	case "xxhash":
		return hashmap.XXHash, nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}

func run(opts options, files []string, stdin io.Reader, out io.Writer) error {
	hash, err := hashFunc(opts.hash)
	if err != nil {
		return err
	}
	cfg := concordance.Config{
		Capacity: opts.capacity,
		Hash:     hash,
	}
	if opts.stopWords != "" {
		f, err := os.Open(opts.stopWords)
		if err != nil {
			return err
		}
		cfg.StopWords, err = concordance.LoadStopWords(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.stopWords, err)
		}
	}
	counter := concordance.NewCounter(cfg)
	defer counter.Close()

	if len(files) == 0 {
		if _, err := counter.Scan(stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	}
	for _, name := range files {
		if err := scanFile(counter, name); err != nil {
			return err
		}
	}

	switch {
	case opts.buckets:
		err = counter.DumpBuckets(out)
	case opts.top > 0:
		for _, wc := range counter.Top(opts.top) {
			if _, err = fmt.Fprintf(out, "%s:%d\n", wc.Word, wc.Count); err != nil {
				break
			}
		}
	default:
		err = counter.Dump(out)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"words": counter.Total(),
		"table": counter.Stats(),
	}).Info("done")
	return nil
}

func scanFile(counter *concordance.Counter, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := counter.Scan(f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.WithFields(log.Fields{"file": name, "words": n}).Debug("file counted")
	return nil
}
