package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgnsk/sentinel"
)

var demoScript = []string{
	"head:1",
	"tail:2",
	"tail:3",
	"unlink:0",
	"unlink:2",
	"head:4",
	"release:3",
	"unlink:1",
}

type opKind string

const (
	opHead    opKind = "head"
	opTail    opKind = "tail"
	opUnlink  opKind = "unlink"
	opRelease opKind = "release"
	opClear   opKind = "clear"
)

type op struct {
	kind  opKind
	value string
	id    int
}

func (o op) String() string {
	switch o.kind {
	case opHead, opTail:
		return string(o.kind) + ":" + o.value
	case opUnlink, opRelease:
		return string(o.kind) + ":" + strconv.Itoa(o.id)
	default:
		return string(o.kind)
	}
}

func parseOp(s string) (op, error) {
	name, arg, hasArg := strings.Cut(s, ":")

	switch kind := opKind(name); kind {
	case opHead, opTail:
		if !hasArg {
			return op{}, fmt.Errorf("invalid operation '%s': missing value", s)
		}
		return op{kind: kind, value: arg}, nil

	case opUnlink, opRelease:
		id, err := strconv.Atoi(arg)
		if err != nil || id < 0 {
			return op{}, fmt.Errorf("invalid operation '%s': expected a handle id", s)
		}
		return op{kind: kind, id: id}, nil

	case opClear:
		if hasArg {
			return op{}, fmt.Errorf("invalid operation '%s': unexpected argument", s)
		}
		return op{kind: kind}, nil

	default:
		return op{}, fmt.Errorf("invalid operation '%s'", s)
	}
}

// script replays operations on a list. Handles are addressed by insertion order.
type script struct {
	list    sentinel.List[string]
	handles []*sentinel.Handle[string]
}

func (s *script) apply(o op) (result string, err error) {
	switch o.kind {
	case opHead:
		s.handles = append(s.handles, s.list.PushHead(o.value))
		return fmt.Sprintf("#%d", len(s.handles)-1), nil

	case opTail:
		s.handles = append(s.handles, s.list.PushTail(o.value))
		return fmt.Sprintf("#%d", len(s.handles)-1), nil

	case opUnlink:
		h, err := s.handle(o.id)
		if err != nil {
			return "", err
		}
		return h.Unlink()

	case opRelease:
		h, err := s.handle(o.id)
		if err != nil {
			return "", err
		}
		h.Release()
		return "", nil

	case opClear:
		s.list.Clear()
		return "", nil

	default:
		panic("sentinel: unknown operation " + string(o.kind))
	}
}

func (s *script) handle(id int) (*sentinel.Handle[string], error) {
	if id >= len(s.handles) {
		return nil, fmt.Errorf("unknown handle #%d", id)
	}
	return s.handles[id], nil
}

func run(w io.Writer, args []string, verbose bool) error {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		o, err := parseOp(arg)
		if err != nil {
			return err
		}
		ops = append(ops, o)
	}

	var s script

	for _, o := range ops {
		result, err := s.apply(o)
		if err != nil {
			return fmt.Errorf("%s: %w", o, err)
		}

		if err := s.list.Validate(); err != nil {
			return fmt.Errorf("%s: %w", o, err)
		}

		if verbose {
			fmt.Fprintf(w, "%-12s %-4s %s\n", o, result, s.list.String())
		}
	}

	if !verbose {
		return s.list.Dump(w)
	}

	return nil
}
