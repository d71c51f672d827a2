package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semsphy/lift/construct"
	"github.com/semsphy/lift/schema"
)

func TestNewDeclaresTwoZoneNetwork(t *testing.T) {
	vpc, err := New(construct.Scope{StackID: "dev"}, "vpc", nil)
	require.NoError(t, err)

	d := vpc.Descriptor()
	assert.Equal(t, 2, d.AvailabilityZones)
	assert.Equal(t, []string{"VpcPrivateSubnetA", "VpcPrivateSubnetB"}, d.PrivateSubnetIDs)
	assert.Equal(t, "VpcSecurityGroup", d.SecurityGroup.Name)
}

func TestNewPublishesNetworkContext(t *testing.T) {
	vpc, err := New(construct.Scope{StackID: "dev"}, "vpc", nil)
	require.NoError(t, err)

	ctx := vpc.NetworkContext()
	assert.Equal(t, vpc.Descriptor().SecurityGroup.Name, ctx.SecurityGroupID)
	assert.Equal(t, vpc.Descriptor().PrivateSubnetIDs, ctx.PrivateSubnetIDs)

	var _ construct.NetworkProvider = vpc
}

func TestNewRejectsConfigurationFields(t *testing.T) {
	_, err := New(construct.Scope{StackID: "dev"}, "vpc", map[string]interface{}{
		"cidr": "10.0.0.0/16",
	})
	require.Error(t, err)
	verr, ok := err.(*schema.ValidationError)
	require.True(t, ok, "expected *schema.ValidationError, got %T", err)
	assert.Equal(t, "cidr", verr.Field)
}

func TestNewRejectsSecondNetwork(t *testing.T) {
	first, err := New(construct.Scope{StackID: "dev"}, "vpc", nil)
	require.NoError(t, err)

	ctx := first.NetworkContext()
	_, err = New(construct.Scope{StackID: "dev", Network: &ctx}, "vpc2", nil)
	assert.Error(t, err)
}

func TestDefaultEgressAllowsAllOutbound(t *testing.T) {
	vpc, err := New(construct.Scope{StackID: "dev"}, "vpc", nil)
	require.NoError(t, err)

	rules := vpc.Descriptor().SecurityGroup.Egress.Rules
	require.Len(t, rules, 1)
	assert.Equal(t, "-1", rules[0].Protocol)
	assert.Equal(t, "0.0.0.0/0", rules[0].CIDR)
}

func TestWithEgressPolicy(t *testing.T) {
	restricted := EgressPolicy{Rules: []EgressRule{
		{Protocol: "tcp", FromPort: 443, ToPort: 443, CIDR: "0.0.0.0/0"},
	}}

	vpc, err := New(construct.Scope{StackID: "dev"}, "vpc", nil, WithEgressPolicy(restricted))
	require.NoError(t, err)

	rules := vpc.Descriptor().SecurityGroup.Egress.Rules
	require.Len(t, rules, 1)
	assert.Equal(t, 443, rules[0].FromPort)
}
