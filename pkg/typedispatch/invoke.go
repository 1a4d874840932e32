package typedispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// Invoke calls fn with every parameter resolved from the store's providers.
// Parameters of type context.Context receive ctx directly; each remaining
// parameter is resolved with the same exact-then-ancestor lookup as
// Provide. A parameter with no matching provider fails with an
// *UnresolvedError before fn is called.
//
// Return handling: a trailing error return from fn is propagated. When the
// store was created with WithProcessOutput(true), fn's first non-error
// return value is fed through Process afterward.
func (s *Store) Invoke(ctx context.Context, fn any) error {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		return fmt.Errorf("invoke %T: %w", fn, ErrNotAFunc)
	}

	ctx, span := s.spans.StartInvokeSpan(ctx, ft.String())
	start := time.Now()
	err := s.invoke(ctx, reflect.ValueOf(fn), ft)
	s.spans.EndSpanWithError(span, err)
	s.metrics.RecordInvoke(ctx, time.Since(start), err)
	return err
}

func (s *Store) invoke(ctx context.Context, fv reflect.Value, ft reflect.Type) error {
	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		param := ft.In(i)
		if param == contextType {
			args[i] = reflect.ValueOf(ctx)
			continue
		}
		v, err := s.Provide(ctx, param)
		if errors.Is(err, ErrNoProvider) {
			return &UnresolvedError{Index: i, Type: param}
		}
		if err != nil {
			return fmt.Errorf("invoke: resolve parameter %d (%s): %w", i, param, err)
		}
		av, err := argValue(v, param)
		if err != nil {
			return fmt.Errorf("invoke: parameter %d: %w", i, err)
		}
		args[i] = av
	}

	result, err := splitResult(fv.Call(args))
	if err != nil {
		return err
	}
	if s.processOutput && result != nil {
		return s.Process(ctx, result)
	}
	return nil
}
