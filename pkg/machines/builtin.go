package machines

import "github.com/aretw0/spool/pkg/registry"

// Builtin returns a registry populated with the bundled machines.
func Builtin() *registry.Registry {
	reg := registry.New()
	// Registration can only fail for unnamed machines; the bundled ones
	// are always named.
	_ = reg.Register(BinaryIncrement())
	_ = reg.Register(Palindrome())
	return reg
}
