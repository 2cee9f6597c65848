package platform

import (
	"context"
	"fmt"
)

// Stub is a placeholder for platforms that are not implemented yet.
// The UI lists them so the platform selector matches the roadmap, but
// every operation fails with a not-implemented error.
type Stub struct {
	name string
}

// NewStub creates a stub platform with the given name.
func NewStub(name string) *Stub {
	return &Stub{name: name}
}

// Name returns the platform name.
func (s *Stub) Name() string {
	return s.name
}

func (s *Stub) notImplemented() error {
	return fmt.Errorf("%s integration not implemented", s.name)
}

// Submit always fails.
func (s *Stub) Submit(ctx context.Context, target, title, content string, kind Kind) (string, error) {
	return "", s.notImplemented()
}

// Fetch always fails.
func (s *Stub) Fetch(ctx context.Context, postID string) (*Post, error) {
	return nil, s.notImplemented()
}

// Edit always fails.
func (s *Stub) Edit(ctx context.Context, postID, body string) error {
	return s.notImplemented()
}

// Remove always fails.
func (s *Stub) Remove(ctx context.Context, postID string) error {
	return s.notImplemented()
}

// Recent always fails.
func (s *Stub) Recent(ctx context.Context, limit int) ([]PostRef, error) {
	return nil, s.notImplemented()
}
