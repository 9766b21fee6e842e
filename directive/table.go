package directive

import "sort"

// Table holds directive lists for members that are addressed by a stable key
// instead of carrying a List themselves. Schemas key it by schema coordinate
// (Type, Type.field, Type.field(arg:), Enum.VALUE).
//
// The zero value is not usable; create tables with NewTable.
type Table struct {
	lists map[string]*List
}

func NewTable() *Table {
	return &Table{lists: make(map[string]*List)}
}

// AddDirective appends a usage to the list stored under key.
func (t *Table) AddDirective(key, name string, args ...Argument) error {
	usage, err := NewUsage(name, args...)
	if err != nil {
		return err
	}
	t.list(key).usages = append(t.list(key).usages, usage)
	return nil
}

// Attach appends already validated usages under key.
func (t *Table) Attach(key string, usages ...Usage) {
	if len(usages) == 0 {
		return
	}
	list := t.list(key)
	for _, usage := range usages {
		list.usages = append(list.usages, usage.clone())
	}
}

// Directives returns a copy of the usages stored under key.
func (t *Table) Directives(key string) []Usage {
	if t == nil {
		return nil
	}
	list, ok := t.lists[key]
	if !ok {
		return nil
	}
	return list.Directives()
}

// Keys returns every key with at least one usage, sorted.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.lists))
	for key, list := range t.lists {
		if list.Len() > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Holder returns a Holder view of the list stored under key.
func (t *Table) Holder(key string) Holder {
	return t.list(key)
}

func (t *Table) list(key string) *List {
	list, ok := t.lists[key]
	if !ok {
		list = &List{}
		t.lists[key] = list
	}
	return list
}
