// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package batch

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/optable/bytesize/errors"
	"github.com/optable/bytesize/unit"
)

// Entry is a single size string read from an input stream, paired with its
// 1-based line number so failures can be bound back to their source.
type Entry struct {
	Line int
	Text string
}

// EntryReader yields size entries from some input. Returns io.EOF when no
// entries are left. The implementer is not required to provide any
// concurrency guarantees.
type EntryReader interface {
	Next() (Entry, error)
}

// NewLineEntryReader reads newline-delimited size strings, one entry per
// line. Entries are trimmed of surrounding whitespace and blank lines are
// skipped, but skipped lines still count toward line numbers.
//
// The implementation uses bufio.Scanner underneath: it supports `\r?\n`
// delimiters and fails with bufio.ErrTooLong on lines larger than the
// buffer.
func NewLineEntryReader(r io.Reader) EntryReader {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, unit.Mebibyte)
	scanner.Buffer(buf, 0)

	line := 0
	return entryReaderFn(func() (Entry, error) {
		for {
			if !scanner.Scan() {
				err := scanner.Err()
				// We reached EOF
				if err == nil {
					err = io.EOF
				}
				return Entry{}, err
			}
			line++
			text := strings.TrimSpace(scanner.Text())
			if len(text) == 0 {
				continue
			}
			return Entry{Line: line, Text: text}, nil
		}
	})
}

// SliceEntryReader wraps already-collected size strings in an EntryReader.
// Line numbers are the slice positions, 1-based.
func SliceEntryReader(texts []string) EntryReader {
	pos := 0
	return entryReaderFn(func() (Entry, error) {
		if pos == len(texts) {
			return Entry{}, io.EOF
		}
		entry := Entry{Line: pos + 1, Text: texts[pos]}
		pos++
		return entry, nil
	})
}

// ReadAllEntries consumes all entries from the reader and returns them in a
// slice. If an error is encountered (except io.EOF) returns it immediately
// with a nil slice.
func ReadAllEntries(r EntryReader) ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := r.Next()
		if err == io.EOF {
			return entries, nil
		} else if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// ConvertAll parses every entry and converts it to the target unit,
// preserving input order in the result. The work is fanned out over at most
// workers goroutines, each handling a contiguous chunk of entries.
//
// Every failing entry is reported, wrapped in an errors.LineError and
// aggregated with errors.NewErrors, so a single bad line does not hide the
// others.
func ConvertAll(r EntryReader, target unit.Unit, workers int) ([]unit.Size, error) {
	entries, err := ReadAllEntries(r)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	sizes := make([]unit.Size, len(entries))
	failures := make([]error, len(entries))

	chunk := (len(entries) + workers - 1) / workers
	var group errgroup.Group
	for start := 0; start < len(entries); start += chunk {
		end := start + chunk
		if end > len(entries) {
			end = len(entries)
		}

		start, end := start, end
		group.Go(func() error {
			for i := start; i < end; i++ {
				size, err := unit.Parse(entries[i].Text)
				if err == nil {
					size, err = size.Convert(target)
				}
				if err != nil {
					failures[i] = errors.NewLineError(entries[i].Line, err)
					continue
				}
				sizes[i] = size
			}
			return nil
		})
	}

	// Workers only record failures, Wait cannot return an error here.
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := errors.NewErrors(failures...); err != nil {
		return nil, err
	}
	return sizes, nil
}

type entryReaderFn func() (Entry, error)

func (f entryReaderFn) Next() (Entry, error) {
	return f()
}
