package typedispatch

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Process routes value to the processor registered for its dynamic type
// (exact match first, then ancestor scan) and calls it.
//
// With no matching processor, Process returns nil unless the store was
// created with WithStrict(true), in which case it returns an error wrapping
// ErrNoProcessor. A trailing error return from the processor is propagated.
//
// Processors may take the value alone or a leading context.Context:
// func(T), func(T) error, func(context.Context, T), func(context.Context, T) error.
func (s *Store) Process(ctx context.Context, value any) error {
	ctx, span := s.spans.StartProcessSpan(ctx, keyString(reflect.TypeOf(value)))
	start := time.Now()
	err := s.process(ctx, value)
	s.spans.EndSpanWithError(span, err)
	s.metrics.RecordProcess(ctx, time.Since(start), err)
	return err
}

func (s *Store) process(ctx context.Context, value any) error {
	proc, ok := s.Processor(reflect.TypeOf(value))
	if !ok {
		if s.strict {
			return fmt.Errorf("process %T: %w", value, ErrNoProcessor)
		}
		return nil
	}
	return callProcessor(ctx, proc, value)
}

// callProcessor invokes a registered processor with value.
func callProcessor(ctx context.Context, proc Processor, value any) error {
	fv := reflect.ValueOf(proc)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return fmt.Errorf("processor %T: %w", proc, ErrNotAFunc)
	}

	var args []reflect.Value
	switch {
	case ft.NumIn() == 1:
		av, err := argValue(value, ft.In(0))
		if err != nil {
			return fmt.Errorf("processor %s: %w", ft, err)
		}
		args = []reflect.Value{av}
	case ft.NumIn() == 2 && ft.In(0) == contextType:
		av, err := argValue(value, ft.In(1))
		if err != nil {
			return fmt.Errorf("processor %s: %w", ft, err)
		}
		args = []reflect.Value{reflect.ValueOf(ctx), av}
	default:
		return fmt.Errorf("processor %s: unsupported signature", ft)
	}

	_, err := splitResult(fv.Call(args))
	return err
}

// argValue converts value into a reflect.Value usable as an argument of
// type t. Handles nil values destined for interface or pointer parameters.
// A value that cannot be assigned to t is reported here rather than left
// to panic inside reflect.Call; an interface-keyed binding can legally
// match a call site whose concrete parameter type the value does not
// satisfy.
func argValue(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	vt := reflect.TypeOf(value)
	if !vt.AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%s value for %s parameter: %w", vt, t, ErrNotAssignable)
	}
	return reflect.ValueOf(value), nil
}
