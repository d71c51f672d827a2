package stackoutput

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"

	"github.com/semsphy/lift/construct"
)

// StacksDescriber is the one CloudFormation call reference resolution needs.
// Narrowed from the full service interface for testability.
type StacksDescriber interface {
	DescribeStacks(input *cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
}

// Resolver looks up reference handles against provisioned stacks. It is a
// single-shot lookup: a value that is not there yet is reported as pending,
// and retrying is the caller's business.
type Resolver struct {
	cfn StacksDescriber
}

func NewResolver(session *session.Session) Resolver {
	return Resolver{cfn: cloudformation.New(session)}
}

func NewResolverFromService(cfn StacksDescriber) Resolver {
	return Resolver{cfn: cfn}
}

// Resolve returns the value behind a reference handle. found is false when
// the stack exists but has not published the output yet; that is a pending
// state, not an error. A missing stack is an error: the deployer should have
// created it before anyone resolves references against it.
func (r Resolver) Resolve(h construct.ReferenceHandle) (value string, found bool, err error) {
	resp, err := r.cfn.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(h.Stack),
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to describe stack %q", h.Stack)
	}
	if len(resp.Stacks) == 0 {
		return "", false, errors.Errorf("stack %q not found", h.Stack)
	}

	for _, output := range resp.Stacks[0].Outputs {
		if aws.StringValue(output.OutputKey) == h.Output {
			return aws.StringValue(output.OutputValue), true, nil
		}
	}
	return "", false, nil
}
