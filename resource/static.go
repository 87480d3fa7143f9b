package resource

// Table is the immutable static resource set, built once at startup and
// never mutated, so it needs no synchronization.
type Table struct {
	entries map[string][]byte
}

func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string][]byte, len(entries))}
	for path, content := range entries {
		t.entries[path] = []byte(content)
	}
	return t
}

// DefaultTable returns the built-in static resources.
func DefaultTable() *Table {
	return NewTable(map[string]string{
		"/static/foo": "Foo",
		"/static/bar": "Bar",
		"/static/baz": "Baz",
	})
}

func (t *Table) Get(path string) ([]byte, bool) {
	content, found := t.entries[path]
	return content, found
}
