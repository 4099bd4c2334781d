package cmd

import (
	"github.com/jsphweid/chapette/constants"
	"github.com/jsphweid/chapette/db"
	"github.com/jsphweid/chapette/fingering"
	"github.com/sirupsen/logrus"
)

// loadTable picks the fingering table from the flags: DynamoDB first, then a
// file, then the embedded table.
func loadTable() (*fingering.Table, error) {
	switch {
	case dynamoTable != "":
		client, err := db.NewClient(constants.GetDynamoEndpoint(), constants.GetDynamoRegion())
		if err != nil {
			return nil, err
		}
		return db.GetTable(client, dynamoTable, instrument)
	case fingeringsPath != "":
		table, err := fingering.LoadFile(fingeringsPath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("loaded %v fingerings from %v", table.Len(), fingeringsPath)
		return table, nil
	}
	return fingering.Default(), nil
}
