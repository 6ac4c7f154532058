// Package textio provides file adapters for seeding and serializing
// pipelines: plain text lines, CSV records, and JSON documents. Reads
// materialize the whole file into a pipeline; writes serialize the current
// image. No transformation logic lives here.
package textio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lguimbarda/iterflow/pipe"
)

// LineOption configures line reading.
type LineOption func(*lineConfig)

type lineConfig struct {
	trim bool
}

// WithTrim strips leading and trailing whitespace from each line.
func WithTrim(trim bool) LineOption {
	return func(c *lineConfig) {
		c.trim = trim
	}
}

// ReadLines seeds a pipeline with the lines of the file at path.
func ReadLines(path string, opts ...LineOption) *pipe.Pipe[string] {
	const op = "textio.ReadLines"
	cfg := lineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	file, err := os.Open(path)
	if err != nil {
		return pipe.Abort[string](op, err)
	}
	defer file.Close()
	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if cfg.trim {
			line = strings.TrimSpace(line)
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return pipe.Abort[string](op, err)
	}
	return pipe.Next(op, out)
}

// WriteLines serializes the image to path, one line per element rendered
// with fmt.
func WriteLines[T any](p *pipe.Pipe[T], path string) error {
	if err := p.Err(); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	for _, v := range p.Image() {
		if _, err := fmt.Fprintf(w, "%v\n", v); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReaderOption configures a CSV reader.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	comma      rune
	comment    rune
	skipHeader bool
	lazyQuotes bool
}

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(c *readerConfig) {
		c.comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(c *readerConfig) {
		c.comment = comment
	}
}

// WithSkipHeader drops the first record.
func WithSkipHeader(skip bool) ReaderOption {
	return func(c *readerConfig) {
		c.skipHeader = skip
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(c *readerConfig) {
		c.lazyQuotes = lazy
	}
}

// ReadCSV seeds a pipeline with the records of the CSV file at path, one
// string slice per row.
func ReadCSV(path string, opts ...ReaderOption) *pipe.Pipe[[]string] {
	const op = "textio.ReadCSV"
	cfg := readerConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	file, err := os.Open(path)
	if err != nil {
		return pipe.Abort[[]string](op, err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = cfg.comma
	reader.Comment = cfg.comment
	reader.LazyQuotes = cfg.lazyQuotes
	records, err := reader.ReadAll()
	if err != nil {
		return pipe.Abort[[]string](op, err)
	}
	if cfg.skipHeader && len(records) > 0 {
		records = records[1:]
	}
	return pipe.Next(op, records)
}

// WriteCSV serializes a pipeline of records to path. An optional header
// row is written first.
func WriteCSV(p *pipe.Pipe[[]string], path string, header ...string) error {
	if err := p.Err(); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := csv.NewWriter(file)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.WriteAll(p.Image()); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ReadJSON seeds a pipeline with the elements of the JSON array in the
// file at path.
func ReadJSON[T any](path string) *pipe.Pipe[T] {
	const op = "textio.ReadJSON"
	data, err := os.ReadFile(path)
	if err != nil {
		return pipe.Abort[T](op, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return pipe.Abort[T](op, err)
	}
	return pipe.Next(op, out)
}

// WriteOption configures JSON writing.
type WriteOption func(*writeConfig)

type writeConfig struct {
	indent string
}

// WithIndent pretty-prints with the given indentation string.
func WithIndent(indent string) WriteOption {
	return func(c *writeConfig) {
		c.indent = indent
	}
}

// WriteJSON serializes the image to path as a JSON array.
func WriteJSON[T any](p *pipe.Pipe[T], path string, opts ...WriteOption) error {
	if err := p.Err(); err != nil {
		return err
	}
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	items := p.Image()
	if items == nil {
		items = []T{}
	}
	var data []byte
	var err error
	if cfg.indent != "" {
		data, err = json.MarshalIndent(items, "", cfg.indent)
	} else {
		data, err = json.Marshal(items)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteJSONMap serializes a mapping pipeline to path as a JSON object.
// Keys follow Go's JSON object ordering, sorted for map types.
func WriteJSONMap[K comparable, V any](mp *pipe.MapPipe[K, V], path string, opts ...WriteOption) error {
	m, err := mp.ToMap()
	if err != nil {
		return err
	}
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var data []byte
	if cfg.indent != "" {
		data, err = json.MarshalIndent(m, "", cfg.indent)
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
