package construct

// A Construct maps one validated configuration block to a set of declared
// resources. Declaration is synchronous and performs no I/O; everything that
// talks to AWS happens later, driven by the deployer.
type Construct interface {
	// Kind is the construct's type discriminator as written in configuration.
	Kind() string
	// References returns the named post-deploy values this construct exports
	// for other constructs or the deployer to consume.
	References() map[string]ReferenceHandle
	// OutputBindings returns the references worth surfacing to a human after
	// a deploy.
	OutputBindings() []OutputBinding
}

// ReferenceHandle names a stack output that only exists once the stack has
// been provisioned. It carries no value; resolve it with stackoutput.Resolver.
type ReferenceHandle struct {
	Stack  string
	Output string
}

// OutputBinding pairs a reference with a human-facing label.
type OutputBinding struct {
	Name   string
	Handle ReferenceHandle
}

// NetworkContext is the shared network placement published by a network
// construct and consumed by any construct that needs private placement.
// It is passed explicitly into construct factories; there is no package-level
// registration. Written once per deployment pass, read many times.
type NetworkContext struct {
	SecurityGroupID  string
	PrivateSubnetIDs []string
}

// Scope carries the per-stack inputs every construct factory receives.
// Network is nil until a network construct has been declared.
type Scope struct {
	StackID string
	Network *NetworkContext
}

// NetworkProvider is implemented by constructs that publish a NetworkContext.
type NetworkProvider interface {
	NetworkContext() NetworkContext
}
