package models

import "time"

// ProjectionRecord is a calculated projection as stored in MongoDB.
type ProjectionRecord struct {
	ID           string           `bson:"_id" json:"id"`
	Input        ProjectionInput  `bson:"input" json:"input"`
	Result       ProjectionResult `bson:"result" json:"result"`
	CalculatedAt time.Time        `bson:"calculated_at" json:"calculatedAt"`
}
