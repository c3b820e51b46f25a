package storage

const (
	// PrefixProduction and PrefixSandbox are the two parallel namespaces
	// sharing one physical medium. All gateway traffic goes through exactly
	// one of them.
	PrefixProduction = "sellit_"
	PrefixSandbox    = "sellit_test_"

	// sandboxFlagKey is the fixed physical key holding the sandbox switch.
	// It lives under the production prefix and is read raw, never through
	// the gateway, so both namespaces resolve it identically.
	sandboxFlagKey = PrefixProduction + "config_testmode"
)

// Namespacer resolves the active key prefix from the sandbox flag stored in
// the medium itself. Toggling the flag does not migrate any data; it only
// switches which parallel dataset subsequent reads see.
type Namespacer struct {
	backend Backend
}

func NewNamespacer(b Backend) *Namespacer {
	return &Namespacer{backend: b}
}

// Sandbox reports whether sandbox mode is on. A missing or unreadable flag
// counts as off.
func (n *Namespacer) Sandbox() bool {
	v, ok, err := n.backend.Get(sandboxFlagKey)
	if err != nil || !ok {
		return false
	}
	return v == "true"
}

// SetSandbox persists the sandbox switch.
func (n *Namespacer) SetSandbox(on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return n.backend.Set(sandboxFlagKey, v)
}

// Prefix returns the active namespace prefix, resolved on every call.
func (n *Namespacer) Prefix() string {
	if n.Sandbox() {
		return PrefixSandbox
	}
	return PrefixProduction
}
