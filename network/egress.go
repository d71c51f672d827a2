package network

// EgressRule permits outbound traffic matching a protocol, port range and
// destination CIDR.
type EgressRule struct {
	Protocol string
	FromPort int
	ToPort   int
	CIDR     string
}

// EgressPolicy is the set of egress rules attached to the network's security
// group. It is an explicit policy so callers can tighten it; the default is
// AllowAllOutbound.
type EgressPolicy struct {
	Rules []EgressRule
}

// AllowAllOutbound permits all outbound IPv4 traffic on all ports. Compute
// attached to the group can reach any external endpoint, e.g. third-party
// APIs. Deliberately permissive; override with WithEgressPolicy to restrict.
func AllowAllOutbound() EgressPolicy {
	return EgressPolicy{
		Rules: []EgressRule{
			{
				Protocol: "-1",
				FromPort: 0,
				ToPort:   65535,
				CIDR:     "0.0.0.0/0",
			},
		},
	}
}
