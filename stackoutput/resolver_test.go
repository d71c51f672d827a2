package stackoutput

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semsphy/lift/construct"
)

// DummyStacksDescriber is used to prevent calls to AWS - returns canned results.
type DummyStacksDescriber struct {
	Stacks []*cloudformation.Stack
	Err    error
}

func (d DummyStacksDescriber) DescribeStacks(in *cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return &cloudformation.DescribeStacksOutput{Stacks: d.Stacks}, nil
}

func deployedStack() []*cloudformation.Stack {
	return []*cloudformation.Stack{
		{
			StackName: aws.String("myapp-dev"),
			Outputs: []*cloudformation.Output{
				{
					OutputKey:   aws.String("DbHost"),
					OutputValue: aws.String("db.abc123.us-east-1.rds.amazonaws.com"),
				},
			},
		},
	}
}

func TestResolveFound(t *testing.T) {
	r := NewResolverFromService(DummyStacksDescriber{Stacks: deployedStack()})

	value, found, err := r.Resolve(construct.ReferenceHandle{Stack: "myapp-dev", Output: "DbHost"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "db.abc123.us-east-1.rds.amazonaws.com", value)
}

func TestResolvePending(t *testing.T) {
	r := NewResolverFromService(DummyStacksDescriber{Stacks: deployedStack()})

	// output not published yet: pending, not an error
	value, found, err := r.Resolve(construct.ReferenceHandle{Stack: "myapp-dev", Output: "DbPort"})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", value)
}

func TestResolveStackNotFound(t *testing.T) {
	r := NewResolverFromService(DummyStacksDescriber{})

	_, _, err := r.Resolve(construct.ReferenceHandle{Stack: "missing", Output: "DbHost"})
	assert.Error(t, err)
}

func TestResolveServiceError(t *testing.T) {
	r := NewResolverFromService(DummyStacksDescriber{Err: errors.New("throttled")})

	_, _, err := r.Resolve(construct.ReferenceHandle{Stack: "myapp-dev", Output: "DbHost"})
	assert.Error(t, err)
}
