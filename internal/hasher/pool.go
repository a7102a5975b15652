// Package hasher runs bcrypt on a bounded set of workers so that slow
// password hashing never starves the request handlers.
package hasher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the password does not match the hash.
var ErrMismatch = errors.New("password mismatch")

// ErrClosed is returned once Shutdown has been called.
var ErrClosed = errors.New("hasher pool closed")

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) error
}

type Config struct {
	Cost          int
	MaxConcurrent int
	Logger        *logrus.Logger
}

// Pool is a Hasher that runs at most MaxConcurrent bcrypt computations at once.
type Pool struct {
	cfg Config

	sem    chan struct{}
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewPool(cfg Config) *Pool {
	if cfg.Cost == 0 {
		cfg.Cost = bcrypt.DefaultCost
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Pool{
		cfg: cfg,
		sem: make(chan struct{}, cfg.MaxConcurrent),
	}
}

func (p *Pool) Hash(ctx context.Context, password string) (string, error) {
	var hash []byte
	err := p.run(ctx, func() error {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), p.cfg.Cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (p *Pool) Compare(ctx context.Context, hash, password string) error {
	return p.run(ctx, func() error {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	})
}

// run waits for a free slot, then executes fn on its own goroutine. The
// caller stops waiting when ctx is done; fn itself always runs to completion
// so the slot is released exactly once.
func (p *Pool) run(ctx context.Context, fn func() error) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrClosed
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	select {
	case <-ctx.Done():
		p.wg.Done()
		return ctx.Err()
	case p.sem <- struct{}{}:
	}

	done := make(chan error, 1)
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		p.cfg.Logger.Debug("hash abandoned by caller")
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Shutdown rejects new work and waits for running computations to finish.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
	p.cfg.Logger.Info("hasher pool stopped")
}

var _ Hasher = (*Pool)(nil)
