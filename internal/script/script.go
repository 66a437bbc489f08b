// Package script replays a YAML list of buffer operations. ringctl uses it to
// drive a Buffer from a file.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	ringbuffer "github.com/luhtfiimanal/go-ringbuffer"
)

// Operation names.
const (
	OpPushBack  = "push_back"
	OpPushFront = "push_front"
	OpPopBack   = "pop_back"
	OpPopFront  = "pop_front"
	OpInsert    = "insert"
	OpInsertN   = "insert_n"
	OpErase     = "erase"
	OpResize    = "resize"
	OpReserve   = "reserve"
	OpShrink    = "shrink"
	OpClear     = "clear"
	OpPrint     = "print"
)

var (
	ErrUnknownOp = errors.New("script: unknown op")
	ErrEmpty     = errors.New("script: buffer is empty")
)

// Step is one operation. Which fields matter depends on Op:
//
//	push_back, push_front  value, or values for several
//	insert                 index, value or values
//	insert_n               index, count, value
//	erase                  index
//	resize                 count, value for new slots
//	reserve                count
type Step struct {
	Op     string  `yaml:"op"`
	Index  int     `yaml:"index,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Value  int64   `yaml:"value,omitempty"`
	Values []int64 `yaml:"values,omitempty"`
}

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Load reads a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, errors.Wrap(err, "read script")
	}
	return Parse(data)
}

// Parse decodes a script and checks that every op is known.
func Parse(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(&s); err != nil {
		return Script{}, errors.Wrap(err, "decode script")
	}
	for i, st := range s.Steps {
		if !known(st.Op) {
			return Script{}, errors.Wrapf(ErrUnknownOp, "step %d: %q", i, st.Op)
		}
	}
	return s, nil
}

func known(op string) bool {
	switch op {
	case OpPushBack, OpPushFront, OpPopBack, OpPopFront, OpInsert, OpInsertN,
		OpErase, OpResize, OpReserve, OpShrink, OpClear, OpPrint:
		return true
	}
	return false
}

// Runner applies steps to a buffer. print steps and popped values are
// written to Out.
type Runner struct {
	Buf *ringbuffer.Buffer[int64]
	Out io.Writer
	Log *zap.Logger
}

// Run applies every step in order and stops at the first failure.
func (r *Runner) Run(s Script) error {
	if r.Log == nil {
		r.Log = zap.NewNop()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	for i, st := range s.Steps {
		if err := r.Apply(st); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, st.Op)
		}
		r.Log.Debug("step applied",
			zap.Int("step", i),
			zap.String("op", st.Op),
			zap.Int("len", r.Buf.Len()),
			zap.Int("capacity", r.Buf.Cap()))
	}
	return nil
}

// Apply runs a single step.
func (r *Runner) Apply(st Step) error {
	b := r.Buf
	switch st.Op {
	case OpPushBack:
		for _, v := range st.values() {
			if _, err := b.PushBack(v); err != nil {
				return err
			}
		}
	case OpPushFront:
		for _, v := range st.values() {
			if _, err := b.PushFront(v); err != nil {
				return err
			}
		}
	case OpPopBack, OpPopFront:
		if b.Empty() {
			return ErrEmpty
		}
		var v int64
		if st.Op == OpPopBack {
			v = b.PopBack()
		} else {
			v = b.PopFront()
		}
		fmt.Fprintf(r.Out, "%s: %d\n", st.Op, v)
	case OpInsert:
		_, err := b.InsertAt(st.Index, st.values()...)
		return err
	case OpInsertN:
		if st.Index < 0 || st.Index > b.Len() {
			return errors.Wrapf(ringbuffer.ErrOutOfRange, "index %d, len %d", st.Index, b.Len())
		}
		_, err := b.InsertN(b.CursorAt(st.Index).ReadOnly(), st.Count, st.Value)
		return err
	case OpErase:
		return b.EraseAt(st.Index)
	case OpResize:
		return b.ResizeWith(st.Count, st.Value)
	case OpReserve:
		return b.Reserve(st.Count)
	case OpShrink:
		return b.ShrinkToFit()
	case OpClear:
		b.Clear()
	case OpPrint:
		fmt.Fprintln(r.Out, b.Slice())
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", st.Op)
	}
	return nil
}

func (st Step) values() []int64 {
	if len(st.Values) > 0 {
		return st.Values
	}
	return []int64{st.Value}
}
