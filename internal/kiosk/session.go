package kiosk

import (
	"context"

	"github.com/communiteer/welcomehub/internal/form"
)

// state is the part of a form snapshot the kiosk renders.
type state struct {
	Status         form.Status
	Error          string
	SuccessVisible bool
	SuccessMessage string
}

// session hides the form's value type from the UI.
type session interface {
	Value(key string) string
	Update(key, value string) error
	Submit(ctx context.Context) error
	Reset()
	Close()
	State() state
	Subscribe(onChange, onClose func())
}

type binding[T any] struct {
	form  *form.Controller[T]
	field func(values T, key string) string
}

func (b binding[T]) Value(key string) string {
	return b.field(b.form.Snapshot().Values, key)
}

func (b binding[T]) Update(key, value string) error {
	return b.form.UpdateField(key, value)
}

func (b binding[T]) Submit(ctx context.Context) error {
	return b.form.Submit(ctx)
}

func (b binding[T]) Reset() { b.form.Reset() }

func (b binding[T]) Close() { b.form.Close() }

func (b binding[T]) State() state {
	s := b.form.Snapshot()
	return state{
		Status:         s.Status,
		Error:          s.Error,
		SuccessVisible: s.SuccessVisible,
		SuccessMessage: s.SuccessMessage,
	}
}

func (b binding[T]) Subscribe(onChange, onClose func()) {
	b.form.OnChange(func(form.Snapshot[T]) { onChange() })
	b.form.OnClose(onClose)
}

func bind[T any](c *form.Controller[T], spec form.Spec[T]) session {
	return binding[T]{form: c, field: spec.Field}
}
