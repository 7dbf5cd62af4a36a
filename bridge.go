package cheese

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Bridge is the compressed image capability the codec delegates to.
//
// Decode must return a 4-channel buffer. Encode receives a 4-channel buffer.
// Implementations should honor ctx, a conversion stops waiting once ctx is done.
type Bridge interface {
	Decode(ctx context.Context, data []byte) (*PixelBuffer, error)
	Encode(ctx context.Context, p *PixelBuffer) ([]byte, error)
}

type outcome[T any] struct {
	val T
	err error
}

// await runs fn in its own goroutine and suspends until fn reports back,
// ctx is done or the timeout elapses. The result channel is buffered so a late
// fn never blocks after the caller gave up.
func await[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan outcome[T], 1)

	go func() {
		var o outcome[T]

		defer func() {
			if r := recover(); r != nil {
				o.err = fmt.Errorf("panic: %v", r)
			}
			done <- o
		}()

		o.val, o.err = fn(ctx)
	}()

	select {
	case o := <-done:
		return o.val, o.err
	case <-ctx.Done():
		// A result that landed together with the deadline still wins.
		select {
		case o := <-done:
			return o.val, o.err
		default:
		}

		var zero T

		return zero, ctx.Err()
	}
}

// decodeImage asks the bridge for pixels and checks what came back.
func decodeImage(ctx context.Context, opt Options, data []byte) (*PixelBuffer, error) {
	p, err := await(ctx, opt.Timeout, func(ctx context.Context) (*PixelBuffer, error) {
		return opt.Bridge.Decode(ctx, data)
	})
	if err != nil {
		return nil, classify(err, ErrImageDecode)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: bridge returned no pixels", ErrImageDecode)
	}
	if p.Channels != rgbaChannels {
		return nil, fmt.Errorf("%w: bridge returned %d channels, expected %d", ErrImageDecode, p.Channels, rgbaChannels)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if err := checkPixels(uint64(p.Width), uint64(p.Height), opt.MaxPixels); err != nil {
		return nil, err
	}

	return p, nil
}

// encodeImage asks the bridge to compress an RGBA buffer.
func encodeImage(ctx context.Context, opt Options, p *PixelBuffer) ([]byte, error) {
	out, err := await(ctx, opt.Timeout, func(ctx context.Context) ([]byte, error) {
		return opt.Bridge.Encode(ctx, p)
	})
	if err != nil {
		return nil, classify(err, ErrImageEncode)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: bridge returned no data", ErrImageEncode)
	}

	return out, nil
}

// classify makes sure a bridge failure matches kind, keeping limit violations as they are.
func classify(err error, kind error) error {
	if errors.Is(err, kind) || errors.Is(err, ErrDimensionOverflow) {
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}
