package model

import "time"

// Voice is a catalog entry for a synthesized voice profile. Voices have no
// relationships to other entities.
type Voice struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	VoiceID   string    `db:"voice_id"   json:"voiceId"`
	Gender    string    `db:"gender"     json:"gender"`
	Language  string    `db:"language"   json:"language"`
	Accent    *string   `db:"accent"     json:"accent"`
	Age       *int      `db:"age"        json:"age"`
	Category  string    `db:"category"   json:"category"`
	Country   string    `db:"country"    json:"country"`
	Status    string    `db:"status"     json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
