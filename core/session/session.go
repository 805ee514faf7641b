// Package session tracks the single active identity for the process
// lifetime. There is no password, no token and no expiry: the identifier is
// treated as a trusted claim coming from the role picker.
package session

import (
	"strconv"
	"sync"

	"github.com/trezcool/chuo/core/directory"
)

type Service struct {
	dirSvc *directory.Service

	mu      sync.Mutex
	current *directory.User
}

func NewService(dirSvc *directory.Service) *Service {
	return &Service{dirSvc: dirSvc}
}

// Login resolves the identifier (user id or email) and activates that user
// if their role matches the claim. An unknown identifier or a role mismatch
// is a silent no-op reported as false.
func (svc *Service) Login(identifier string, role directory.Role) bool {
	usr, err := svc.lookup(identifier)
	if err != nil || usr.Role != role {
		return false
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.current = &usr
	return true
}

// Logout clears the active identity unconditionally.
func (svc *Service) Logout() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.current = nil
}

// Current returns the active user, if any.
func (svc *Service) Current() (directory.User, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.current == nil {
		return directory.User{}, false
	}
	return *svc.current, true
}

func (svc *Service) lookup(identifier string) (directory.User, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		return svc.dirSvc.GetUser(id)
	}
	return svc.dirSvc.GetUserByEmail(identifier)
}
