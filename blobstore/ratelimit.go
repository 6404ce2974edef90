// SPDX-License-Identifier: MIT

package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited throttles another BlobStore. Every call waits for one token
// from the operation limiter; Get and Put additionally wait for one token
// per transferred byte from the byte limiter. A nil limiter disables that
// dimension.
type RateLimited struct {
	inner BlobStore
	ops   *rate.Limiter
	bytes *rate.Limiter
}

// NewRateLimited wraps inner. opsPerSec and bytesPerSec ≤ 0 mean unlimited.
// The byte limiter bursts up to one second worth of bytes.
func NewRateLimited(inner BlobStore, opsPerSec float64, bytesPerSec int) *RateLimited {
	r := &RateLimited{inner: inner}
	if opsPerSec > 0 {
		r.ops = rate.NewLimiter(rate.Limit(opsPerSec), max(1, int(opsPerSec)))
	}
	if bytesPerSec > 0 {
		r.bytes = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}

	return r
}

func (r *RateLimited) waitOp(ctx context.Context) error {
	if r.ops == nil {
		return nil
	}

	return r.ops.Wait(ctx)
}

// waitBytes spends n byte tokens in burst-sized chunks; WaitN rejects
// requests larger than the burst.
func (r *RateLimited) waitBytes(ctx context.Context, n int) error {
	if r.bytes == nil {
		return nil
	}
	burst := r.bytes.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := r.bytes.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}

	return nil
}

// Get implements BlobStore.
func (r *RateLimited) Get(ctx context.Context, name string) ([]byte, error) {
	if err := r.waitOp(ctx); err != nil {
		return nil, err
	}
	data, err := r.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.waitBytes(ctx, len(data)); err != nil {
		return nil, err
	}

	return data, nil
}

// Put implements BlobStore.
func (r *RateLimited) Put(ctx context.Context, name string, data []byte) error {
	if err := r.waitOp(ctx); err != nil {
		return err
	}
	if err := r.waitBytes(ctx, len(data)); err != nil {
		return err
	}

	return r.inner.Put(ctx, name, data)
}

// Delete implements BlobStore.
func (r *RateLimited) Delete(ctx context.Context, name string) error {
	if err := r.waitOp(ctx); err != nil {
		return err
	}

	return r.inner.Delete(ctx, name)
}

// List implements BlobStore.
func (r *RateLimited) List(ctx context.Context, prefix string) ([]string, error) {
	if err := r.waitOp(ctx); err != nil {
		return nil, err
	}

	return r.inner.List(ctx, prefix)
}
