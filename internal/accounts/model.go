// Package accounts implements the account registry: the ordered list of
// authenticated identities and the current selection. Registry state is
// persisted on every mutation; credentials are delegated to the secret store
// and never appear in registry rows.
package accounts

// Account is one authenticated identity against one Canvas domain.
// The credential is not part of this struct; it is stored in the secret
// store under the account id.
type Account struct {
	ID     string
	Domain string
	Name   string
	Email  string
	Avatar string
}
