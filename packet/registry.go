package packet

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Entry declares that a packet type travels in Direction during Phase under
// Code. A type may have several entries, one per (direction, phase) pair.
type Entry struct {
	Direction Direction
	Phase     Phase
	Code      int32
	New       func() Packet
}

type route struct {
	dir   Direction
	phase Phase
	code  int32
}

type typeRoute struct {
	typ   reflect.Type
	dir   Direction
	phase Phase
}

// Registry maps packet codes to packet types and back. Within one
// (direction, phase) pair the mapping is a bijection. A Registry never
// changes after NewRegistry returns and needs no locking.
type Registry struct {
	byCode map[route]Entry
	byType map[typeRoute]int32
}

// NewRegistry builds a Registry from a declarative list, rejecting any
// entry that would break the bijection.
func NewRegistry(entries []Entry) (*Registry, error) {
	reg := &Registry{
		byCode: make(map[route]Entry, len(entries)),
		byType: make(map[typeRoute]int32, len(entries)),
	}

	var errs *multierror.Error
	for _, e := range entries {
		if e.New == nil {
			errs = multierror.Append(errs, fmt.Errorf("%s %s 0x%02X: nil constructor", e.Phase, e.Direction, e.Code))
			continue
		}
		if e.Code < 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s %s: negative code %d", e.Phase, e.Direction, e.Code))
			continue
		}

		typ := packetType(e.New())
		rk := route{e.Direction, e.Phase, e.Code}
		tk := typeRoute{typ, e.Direction, e.Phase}

		if prev, ok := reg.byCode[rk]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s %s 0x%02X used by %s and %s", ErrDuplicatePacketCode,
				e.Phase, e.Direction, e.Code, packetType(prev.New()).Name(), typ.Name()))
			continue
		}
		if prev, ok := reg.byType[tk]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s has codes 0x%02X and 0x%02X in %s %s", ErrDuplicatePacketType,
				typ.Name(), prev, e.Code, e.Phase, e.Direction))
			continue
		}

		reg.byCode[rk] = e
		reg.byType[tk] = e.Code
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return reg, nil
}

// NewProtocolRegistry builds the registry for ProtocolVersion.
func NewProtocolRegistry() (*Registry, error) {
	return NewRegistry(ProtocolEntries())
}

// CodeFor returns the code p is sent under in dir and phase.
func (r *Registry) CodeFor(p Packet, dir Direction, phase Phase) (int32, bool) {
	code, ok := r.byType[typeRoute{packetType(p), dir, phase}]
	return code, ok
}

// TypeFor returns the entry registered for code in dir and phase.
func (r *Registry) TypeFor(dir Direction, phase Phase, code int32) (Entry, bool) {
	e, ok := r.byCode[route{dir, phase, code}]
	return e, ok
}

// Entries lists the entries of one (direction, phase) pair ordered by code.
func (r *Registry) Entries(dir Direction, phase Phase) []Entry {
	var out []Entry
	for k, e := range r.byCode {
		if k.dir == dir && k.phase == phase {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return int(a.Code - b.Code)
	})
	return out
}

// Len is the total number of entries.
func (r *Registry) Len() int {
	return len(r.byCode)
}

// packetType is the struct type behind p, so that T and *T share a key.
func packetType(p Packet) reflect.Type {
	t := reflect.TypeOf(p)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// PacketName is the Go type name of p, for diagnostics.
func PacketName(p Packet) string {
	if t := packetType(p); t != nil {
		return t.Name()
	}
	return "<nil>"
}
