package fingering

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/jsphweid/chapette/util"
	"github.com/pkg/errors"
)

//go:embed trumpet.json
var trumpetJSON []byte

// Table maps canonical pitch keys to valve fingerings. It is never mutated
// after construction, so one Table can be shared by concurrent annotations.
type Table struct {
	entries map[string]string
}

// New copies entries into a new Table.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Lookup is an exact, case-sensitive match on key.
func (t *Table) Lookup(key string) (string, bool) {
	f, ok := t.entries[key]
	return f, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Keys() []string {
	return util.GetSortedKeys(t.entries)
}

// Entries returns a copy of the table contents.
func (t *Table) Entries() map[string]string {
	res := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		res[k] = v
	}
	return res
}

// Load reads a table from a JSON object of key -> fingering.
func Load(r io.Reader) (*Table, error) {
	var entries map[string]string
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "could not decode fingering table")
	}
	return New(entries), nil
}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open fingering table %v", path)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded Bb trumpet table, parsed once per process.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(bytes.NewReader(trumpetJSON))
		if err != nil {
			panic("Embedded fingering table is broken: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
