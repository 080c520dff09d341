package model

import (
	"time"

	"github.com/lib/pq"
)

// Client represents a paying account that owns zero or more stations.
// StationIDs is a read-only projection of stations.client_id; it is computed
// by the store on every read and never written back.
type Client struct {
	ID                  int           `db:"id"                     json:"id"`
	Name                string        `db:"name"                   json:"name"`
	Email               string        `db:"email"                  json:"email"`
	Company             string        `db:"company"                json:"company"`
	Website             *string       `db:"website"                json:"website"`
	Logo                *string       `db:"logo"                   json:"logo"`
	StationIDs          pq.Int64Array `db:"station_ids"            json:"stationIds"`
	Status              string        `db:"status"                 json:"status"`
	APIKey              *string       `db:"api_key"                json:"apiKey"`
	APIKeyLastGenerated *time.Time    `db:"api_key_last_generated" json:"apiKeyLastGenerated"`
	CreatedAt           time.Time     `db:"created_at"             json:"createdAt"`
	UpdatedAt           time.Time     `db:"updated_at"             json:"updatedAt"`
}
