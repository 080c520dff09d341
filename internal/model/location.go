package model

import "time"

// Location is a physical studio/site referenced by stations.
type Location struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Code      string    `db:"code"       json:"code"`
	Country   string    `db:"country"    json:"country"`
	City      string    `db:"city"       json:"city"`
	Timezone  string    `db:"timezone"   json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
