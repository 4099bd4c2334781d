package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/chapette/constants"
	"github.com/jsphweid/chapette/fingering"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func NewClient(endpoint string, region string) (dynamodbiface.DynamoDBAPI, error) {
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(session), nil
}

// GetFingerings reads every {PK: instrument, Pitch, Fingering} item of
// tableName. Items missing either attribute are skipped.
func GetFingerings(client dynamodbiface.DynamoDBAPI, tableName string, instrument string) (map[string]string, error) {
	res := make(map[string]string)
	input := &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(instrument)},
		},
		Limit: aws.Int64(constants.DynamoPageSize),
	}

	err := client.QueryPages(input, func(page *dynamodb.QueryOutput, lastPage bool) bool {
		for _, item := range page.Items {
			p, f := item["Pitch"], item["Fingering"]
			if p == nil || p.S == nil || f == nil || f.S == nil {
				logrus.Warnf("skipping malformed fingering item for %v: %v", instrument, item)
				continue
			}
			res[*p.S] = *f.S
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not query fingerings for %v", instrument)
	}
	return res, nil
}

func GetTable(client dynamodbiface.DynamoDBAPI, tableName string, instrument string) (*fingering.Table, error) {
	entries, err := GetFingerings(client, tableName, instrument)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"table":      tableName,
		"instrument": instrument,
		"entries":    len(entries),
	}).Info("loaded fingerings from DynamoDB")
	return fingering.New(entries), nil
}
