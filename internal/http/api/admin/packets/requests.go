package packets

import "github.com/aircast-fm/aircast/internal/model"

// CreateClientRequest carries a new paying account. StationIDs is accepted
// for wire compatibility with older dashboards but never stored: the list is
// always derived from stations.client_id.
type CreateClientRequest struct {
	Name       string  `json:"name"    binding:"required,min=2"`
	Email      string  `json:"email"   binding:"required,email"`
	Company    string  `json:"company" binding:"required,min=2"`
	Website    string  `json:"website" binding:"omitempty,url"`
	Logo       string  `json:"logo"    binding:"omitempty,url"`
	Status     string  `json:"status"  binding:"omitempty,oneof=active inactive"`
	StationIDs []int64 `json:"stationIds"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"    binding:"omitempty,min=2"`
	Email   *string `json:"email"   binding:"omitempty,email"`
	Company *string `json:"company" binding:"omitempty,min=2"`
	Website *string `json:"website" binding:"omitempty,url"`
	Logo    *string `json:"logo"    binding:"omitempty,url"`
	Status  *string `json:"status"  binding:"omitempty,oneof=active inactive"`
}

type CreateLocationRequest struct {
	Name     string `json:"name"     binding:"required,min=2"`
	Code     string `json:"code"     binding:"required,len=2"`
	Country  string `json:"country"  binding:"required,min=2"`
	City     string `json:"city"     binding:"required,min=2"`
	Timezone string `json:"timezone" binding:"required,timezone"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2"`
	Code     *string `json:"code"     binding:"omitempty,len=2"`
	Country  *string `json:"country"  binding:"omitempty,min=2"`
	City     *string `json:"city"     binding:"omitempty,min=2"`
	Timezone *string `json:"timezone" binding:"omitempty,timezone"`
}

type CreateStationRequest struct {
	Name          string `json:"name"          binding:"required,min=2"`
	LocationID    int    `json:"locationId"    binding:"required"`
	Website       string `json:"website"       binding:"omitempty,url"`
	Status        string `json:"status"        binding:"omitempty,oneof=active inactive"`
	OmniplayerURL string `json:"omniplayerUrl" binding:"omitempty,url"`
	ClientID      int    `json:"clientId"      binding:"required"`
	ClientSecret  string `json:"clientSecret"  binding:"required"`
	Username      string `json:"username"      binding:"required"`
	Password      string `json:"password"      binding:"required"`
	model.StationPrompts
}

type UpdateStationRequest struct {
	Name          *string `json:"name"          binding:"omitempty,min=2"`
	LocationID    *int    `json:"locationId"`
	Website       *string `json:"website"       binding:"omitempty,url"`
	Status        *string `json:"status"        binding:"omitempty,oneof=active inactive"`
	OmniplayerURL *string `json:"omniplayerUrl" binding:"omitempty,url"`
	ClientID      *int    `json:"clientId"`
	ClientSecret  *string `json:"clientSecret"`
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	model.StationPrompts
}

type CreateVoiceRequest struct {
	Name     string  `json:"name"     binding:"required,min=2"`
	VoiceID  string  `json:"voiceId"  binding:"required"`
	Gender   string  `json:"gender"   binding:"required"`
	Language string  `json:"language" binding:"required"`
	Accent   *string `json:"accent"`
	Age      *int    `json:"age"      binding:"omitempty,gte=0"`
	Category string  `json:"category" binding:"required"`
	Country  string  `json:"country"  binding:"required"`
	Status   string  `json:"status"   binding:"omitempty,oneof=active inactive"`
}

type UpdateVoiceRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2"`
	VoiceID  *string `json:"voiceId"`
	Gender   *string `json:"gender"`
	Language *string `json:"language"`
	Accent   *string `json:"accent"`
	Age      *int    `json:"age"      binding:"omitempty,gte=0"`
	Category *string `json:"category"`
	Country  *string `json:"country"`
	Status   *string `json:"status"   binding:"omitempty,oneof=active inactive"`
}

// UpdatePromptsRequest carries the prompts-only partial update; omitted
// fields keep their prior values.
type UpdatePromptsRequest struct {
	ID int `json:"id" binding:"required"`
	model.StationPrompts
}
