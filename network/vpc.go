package network

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/semsphy/lift/construct"
	"github.com/semsphy/lift/naming"
	"github.com/semsphy/lift/schema"
)

// Kind is the configuration type discriminator for this construct.
const Kind = "vpc"

// AZCount is fixed. Two zones are enough for the private placement this
// network exists to provide, and each additional zone costs a NAT gateway.
const AZCount = 2

// Schema accepts no fields beyond the type discriminator, which the provider
// strips before validation.
var Schema = schema.Schema{}

// Descriptor is the resolved network specification. Built once at declaration
// time and immutable afterward.
type Descriptor struct {
	AvailabilityZones int
	SecurityGroup     SecurityGroup
	PrivateSubnetIDs  []string
}

// SecurityGroup is the single group scoped to the network.
type SecurityGroup struct {
	Name   string
	Egress EgressPolicy
}

// Vpc declares a network spanning AZCount availability zones with one
// security group and one private subnet per zone. It publishes a
// NetworkContext so later constructs can attach without explicit wiring.
type Vpc struct {
	id         string
	descriptor Descriptor
	context    construct.NetworkContext
}

// Option overrides one of the network's fixed policies.
type Option func(*options)

type options struct {
	egress EgressPolicy
}

// WithEgressPolicy replaces the default allow-all-outbound policy.
func WithEgressPolicy(p EgressPolicy) Option {
	return func(o *options) {
		o.egress = p
	}
}

// New declares a network construct from a validated configuration block.
func New(scope construct.Scope, id string, raw map[string]interface{}, opts ...Option) (*Vpc, error) {
	if _, err := Schema.Validate(raw); err != nil {
		return nil, err
	}
	if scope.Network != nil {
		return nil, errors.Errorf("a network is already declared for stack %q, at most one vpc construct is allowed", scope.StackID)
	}

	o := options{egress: AllowAllOutbound()}
	for _, opt := range opts {
		opt(&o)
	}

	logical := naming.LogicalName(id)
	subnets := make([]string, AZCount)
	for i := range subnets {
		subnets[i] = fmt.Sprintf("%sPrivateSubnet%c", logical, 'A'+i)
	}

	d := Descriptor{
		AvailabilityZones: AZCount,
		SecurityGroup: SecurityGroup{
			Name:   logical + "SecurityGroup",
			Egress: o.egress,
		},
		PrivateSubnetIDs: subnets,
	}

	return &Vpc{
		id:         id,
		descriptor: d,
		context: construct.NetworkContext{
			SecurityGroupID:  d.SecurityGroup.Name,
			PrivateSubnetIDs: subnets,
		},
	}, nil
}

// Factory adapts New to the registry signature.
func Factory(scope construct.Scope, id string, raw map[string]interface{}) (construct.Construct, error) {
	return New(scope, id, raw)
}

func (v *Vpc) Kind() string {
	return Kind
}

// References is empty: downstream constructs read the shared NetworkContext
// instead of resolving stack outputs.
func (v *Vpc) References() map[string]construct.ReferenceHandle {
	return map[string]construct.ReferenceHandle{}
}

func (v *Vpc) OutputBindings() []construct.OutputBinding {
	return nil
}

// NetworkContext publishes this network's placement for other constructs.
func (v *Vpc) NetworkContext() construct.NetworkContext {
	return v.context
}

// Descriptor returns the resolved network specification.
func (v *Vpc) Descriptor() Descriptor {
	return v.descriptor
}
