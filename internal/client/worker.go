package client

import "context"

// Result resultado de una llamada en segundo plano.
type Result[T any] struct {
	Value T
	Err   error
}

// Go ejecuta fn en una goroutine nueva y entrega el resultado por el canal devuelto,
// que recibe exactamente un valor y se cierra. El bucle principal sigue atendiendo
// mientras tanto. Sin cola ni deduplicación: cada llamada lanza su propia goroutine.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
