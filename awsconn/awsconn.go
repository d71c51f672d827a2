package awsconn

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
)

// NewSessionFromRegion creates an AWS session from an AWS region and a debug flag
func NewSessionFromRegion(region string, debug bool) (*session.Session, error) {
	awsConfig := aws.NewConfig().
		WithRegion(region).
		WithCredentialsChainVerboseErrors(true)

	if debug {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebug)
	}

	session, err := newSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish aws session")
	}
	return session, nil
}

// newSession returns an AWS session which supports source_profile and assume role with MFA
func newSession(config *aws.Config) (*session.Session, error) {
	return session.NewSessionWithOptions(session.Options{
		Config: *config,
		// required for AWS_SDK_LOAD_CONFIG
		SharedConfigState: session.SharedConfigEnable,
		// required by MFA
		AssumeRoleTokenProvider: stscreds.StdinTokenProvider,
	})
}
