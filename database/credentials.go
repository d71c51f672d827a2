package database

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/pkg/errors"
)

// MasterUsername is fixed; per-user accounts are created inside the database
// after provisioning, not through this construct.
const MasterUsername = "admin"

// Credentials is how a database sources its master credentials. Two
// strategies exist: Plaintext takes the password straight from configuration,
// ManagedSecret defers to AWS Secrets Manager. Neither is hardwired into the
// construct so deployments can switch without changing the config surface.
type Credentials interface {
	MasterUsername() string
	MasterPassword() (string, error)
}

// Plaintext carries the password given in configuration. The schema enforces
// the 8 character minimum before a Plaintext value is ever built.
type Plaintext struct {
	Password string
}

func (Plaintext) MasterUsername() string {
	return MasterUsername
}

func (p Plaintext) MasterPassword() (string, error) {
	return p.Password, nil
}

// SecretsGetter is the one Secrets Manager call ManagedSecret needs.
type SecretsGetter interface {
	GetSecretValue(*secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error)
}

// ManagedSecret sources the master password from a Secrets Manager secret.
type ManagedSecret struct {
	SecretID string
	Service  SecretsGetter
}

func (ManagedSecret) MasterUsername() string {
	return MasterUsername
}

func (m ManagedSecret) MasterPassword() (string, error) {
	resp, err := m.Service.GetSecretValue(&secretsmanager.GetSecretValueInput{
		SecretId: aws.String(m.SecretID),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to read secret %q", m.SecretID)
	}
	if resp.SecretString == nil {
		return "", errors.Errorf("secret %q holds no string value", m.SecretID)
	}
	return aws.StringValue(resp.SecretString), nil
}
