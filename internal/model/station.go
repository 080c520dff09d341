package model

import "time"

// Station is a radio station with playout credentials and AI prompt
// configuration. It belongs to exactly one Location and one Client.
type Station struct {
	ID            int       `db:"id"             json:"id"`
	Name          string    `db:"name"           json:"name"`
	LocationID    int       `db:"location_id"    json:"locationId"`
	Website       *string   `db:"website"        json:"website"`
	Status        string    `db:"status"         json:"status"`
	OmniplayerURL *string   `db:"omniplayer_url" json:"omniplayerUrl"`
	ClientID      int       `db:"client_id"      json:"clientId"`
	ClientSecret  string    `db:"client_secret"  json:"clientSecret"`
	Username      string    `db:"username"       json:"username"`
	Password      string    `db:"password"       json:"password"`
	StationPrompts
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// StationPrompts holds the free-text prompts that drive AI-generated
// announcements: one system prompt, seven hourly time slots, and the
// news/weather/traffic bulletins.
type StationPrompts struct {
	SystemPrompt   *string `db:"system_prompt"    json:"systemPrompt"`
	HourlyPrompt0  *string `db:"hourly_prompt_0"  json:"hourlyPrompt0"`
	HourlyPrompt10 *string `db:"hourly_prompt_10" json:"hourlyPrompt10"`
	HourlyPrompt20 *string `db:"hourly_prompt_20" json:"hourlyPrompt20"`
	HourlyPrompt30 *string `db:"hourly_prompt_30" json:"hourlyPrompt30"`
	HourlyPrompt40 *string `db:"hourly_prompt_40" json:"hourlyPrompt40"`
	HourlyPrompt50 *string `db:"hourly_prompt_50" json:"hourlyPrompt50"`
	HourlyPrompt55 *string `db:"hourly_prompt_55" json:"hourlyPrompt55"`
	NewsPrompt     *string `db:"news_prompt"      json:"newsPrompt"`
	WeatherPrompt  *string `db:"weather_prompt"   json:"weatherPrompt"`
	TrafficPrompt  *string `db:"traffic_prompt"   json:"trafficPrompt"`
}

// StationPromptSet is the prompts-only view returned by the prompts routes.
type StationPromptSet struct {
	ID int `db:"id" json:"id"`
	StationPrompts
}
