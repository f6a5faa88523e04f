// Package session decides which account is active and where the app should
// route the user, based on registry state.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/secrets"
)

// State classifies the registry for routing purposes.
type State int

const (
	// StateNoAccounts: registry is empty.
	StateNoAccounts State = iota
	// StateSingleAccount: exactly one account, no explicit selection yet.
	StateSingleAccount
	// StateNoSelection: several accounts, none selected.
	StateNoSelection
	// StateSelected: a valid selection exists.
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateNoAccounts:
		return "no accounts"
	case StateSingleAccount:
		return "single account"
	case StateNoSelection:
		return "no selection"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Route is the destination the UI should present for a given state.
type Route int

const (
	// RouteLogin: onboarding / add-account entry point.
	RouteLogin Route = iota
	// RouteChooser: explicit account chooser.
	RouteChooser
	// RouteMain: the main application.
	RouteMain
)

var (
	// ErrNoAccounts is returned by Open when the registry is empty.
	ErrNoAccounts = errors.New("no accounts registered")

	// ErrNoSelection is returned by Open when several accounts exist but
	// none is selected.
	ErrNoSelection = errors.New("no account selected")
)

// Session is an activated account joined with its credential: everything a
// remote client needs.
type Session struct {
	Account accounts.Account
	Token   string
}

// Selector derives session state from the registry and opens sessions by
// joining the selected account with its secret-store credential.
type Selector struct {
	registry *accounts.Registry
	secrets  secrets.Store
}

func NewSelector(registry *accounts.Registry, secretStore secrets.Store) *Selector {
	return &Selector{registry: registry, secrets: secretStore}
}

// Resolve classifies the current registry state and names the route for it.
func (s *Selector) Resolve() (State, Route) {
	if _, _, ok := s.registry.Current(); ok {
		return StateSelected, RouteMain
	}

	switch s.registry.Len() {
	case 0:
		return StateNoAccounts, RouteLogin
	case 1:
		return StateSingleAccount, RouteMain
	default:
		return StateNoSelection, RouteChooser
	}
}

// Open returns the active session. A single unselected account is
// auto-selected (and the selection persisted); several unselected accounts
// require an explicit choice first.
func (s *Selector) Open(ctx context.Context) (*Session, error) {
	state, _ := s.Resolve()

	switch state {
	case StateNoAccounts:
		return nil, ErrNoAccounts
	case StateNoSelection:
		return nil, ErrNoSelection
	case StateSingleAccount:
		if err := s.registry.SetCurrent(ctx, 0); err != nil {
			return nil, err
		}
	}

	acc, _, ok := s.registry.Current()
	if !ok {
		return nil, ErrNoSelection
	}

	token, err := s.secrets.Get(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credential for %s: %w", acc.ID, err)
	}

	return &Session{Account: acc, Token: token}, nil
}
