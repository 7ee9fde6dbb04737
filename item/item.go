// Package item holds the item definitions the protocol layer consults when
// turning wire slots into item stacks.
package item

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// MaxStackSizeLimit is the largest stack size any item may declare.
const MaxStackSizeLimit = 99

var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrDuplicateName = errors.New("duplicate item name")
	ErrStackSize     = errors.New("max stack size out of range")
	ErrUnknownItem   = errors.New("unknown item")
)

// Descriptor describes one item type.
type Descriptor struct {
	ID           uint16 `yaml:"id"`
	Name         string `yaml:"name"`
	MaxStackSize uint8  `yaml:"max_stack_size"`
}

// Stack is a number of items of one type.
type Stack struct {
	Item  Descriptor
	Count uint8
}

// Registry resolves numeric item ids.
type Registry interface {
	LookupItem(id uint16) (Descriptor, bool)
}

// Table is an immutable Registry. It is safe for concurrent use.
type Table struct {
	byID   map[uint16]Descriptor
	byName map[string]Descriptor
}

// NewTable validates descs and indexes them. All problems are reported
// together.
func NewTable(descs []Descriptor) (*Table, error) {
	t := &Table{
		byID:   make(map[uint16]Descriptor, len(descs)),
		byName: make(map[string]Descriptor, len(descs)),
	}

	var errs *multierror.Error
	for _, d := range descs {
		if d.MaxStackSize == 0 || d.MaxStackSize > MaxStackSizeLimit {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s has %d", ErrStackSize, d.Name, d.MaxStackSize))
			continue
		}
		if prev, ok := t.byID[d.ID]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %d used by %s and %s", ErrDuplicateID, d.ID, prev.Name, d.Name))
			continue
		}
		if _, ok := t.byName[d.Name]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name))
			continue
		}
		t.byID[d.ID] = d
		t.byName[d.Name] = d
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return t, nil
}

type tableFile struct {
	Items []Descriptor `yaml:"items"`
}

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the descriptors of the small table shipped with the
// package. Servers with real item data should use LoadTable.
func Builtin() []Descriptor {
	descs, err := parseDescriptors(builtinYAML)
	if err != nil {
		panic("item: builtin table: " + err.Error())
	}
	return descs
}

// LoadTable reads a YAML document of the form
//
//	items:
//	  - id: 1
//	    name: minecraft:stone
//	    max_stack_size: 64
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items %s: %w", path, err)
	}

	descs, err := parseDescriptors(data)
	if err != nil {
		return nil, fmt.Errorf("parsing items %s: %w", path, err)
	}

	t, err := NewTable(descs)
	if err != nil {
		return nil, fmt.Errorf("items %s: %w", path, err)
	}
	return t, nil
}

func parseDescriptors(data []byte) ([]Descriptor, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Items, nil
}

func (t *Table) LookupItem(id uint16) (Descriptor, bool) {
	d, ok := t.byID[id]
	return d, ok
}

func (t *Table) ByName(name string) (Descriptor, bool) {
	d, ok := t.byName[name]
	return d, ok
}

func (t *Table) Len() int {
	return len(t.byID)
}
