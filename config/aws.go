package config

import (
	"encoding/base64"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// GetSecret fetches a config payload from AWS Secrets Manager.
func GetSecret(secretName, region string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return "", err
	}
	svc := secretsmanager.New(sess)
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}
	if result.SecretString != nil {
		return *result.SecretString, nil
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		return "", err
	}
	return string(decoded[:n]), nil
}
