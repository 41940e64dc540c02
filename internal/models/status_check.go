package models

import "time"

// StatusCheck is a health-probe log entry
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
