package endpoints_test

import (
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/endpoints"
	"github.com/aircast-fm/aircast/internal/model"
	"github.com/aircast-fm/aircast/internal/notify"
)

// fakeStore is an in-memory db.Store with the same contract as the postgres
// implementation: name-ordered lists, NotFound/Conflict/InvalidReference
// signals, and the derived stationIds projection.
type fakeStore struct {
	nextID    int
	clients   map[int]model.Client
	locations map[int]model.Location
	stations  map[int]model.Station
	voices    map[int]model.Voice
	users     map[int]model.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:    1,
		clients:   map[int]model.Client{},
		locations: map[int]model.Location{},
		stations:  map[int]model.Station{},
		voices:    map[int]model.Voice{},
		users:     map[int]model.User{},
	}
}

func (f *fakeStore) allocID() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) stationIDsFor(clientID int) []int64 {
	ids := []int64{}
	for _, s := range f.stations {
		if s.ClientID == clientID {
			ids = append(ids, int64(s.ID))
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *fakeStore) ListClients() ([]model.Client, error) {
	out := []model.Client{}
	for _, c := range f.clients {
		c.StationIDs = f.stationIDsFor(c.ID)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) GetClientByID(id int) (model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return model.Client{}, db.ErrNotFound
	}
	c.StationIDs = f.stationIDsFor(c.ID)
	return c, nil
}

func (f *fakeStore) GetClientByAPIKey(apiKey string) (model.Client, error) {
	for _, c := range f.clients {
		if c.APIKey != nil && *c.APIKey == apiKey {
			c.StationIDs = f.stationIDsFor(c.ID)
			return c, nil
		}
	}
	return model.Client{}, db.ErrNotFound
}

func (f *fakeStore) CreateClient(name, email, company string, website, logo *string, status string) (model.Client, error) {
	now := time.Now()
	c := model.Client{
		ID:         f.allocID(),
		Name:       name,
		Email:      email,
		Company:    company,
		Website:    website,
		Logo:       logo,
		StationIDs: []int64{},
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.clients[c.ID] = c
	return c, nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func keepIfPresent(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func (f *fakeStore) UpdateClient(id int, name, email, company, website, logo, status *string) (model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return model.Client{}, db.ErrNotFound
	}
	setIfPresent(&c.Name, name)
	setIfPresent(&c.Email, email)
	setIfPresent(&c.Company, company)
	keepIfPresent(&c.Website, website)
	keepIfPresent(&c.Logo, logo)
	setIfPresent(&c.Status, status)
	c.UpdatedAt = time.Now()
	f.clients[id] = c
	c.StationIDs = f.stationIDsFor(id)
	return c, nil
}

func (f *fakeStore) DeleteClient(id int) error {
	if _, ok := f.clients[id]; !ok {
		return db.ErrNotFound
	}
	for _, s := range f.stations {
		if s.ClientID == id {
			return db.ErrInvalidReference
		}
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeStore) SetClientAPIKey(id int, apiKey string, generatedAt time.Time) (model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return model.Client{}, db.ErrNotFound
	}
	for otherID, other := range f.clients {
		if otherID != id && other.APIKey != nil && *other.APIKey == apiKey {
			return model.Client{}, db.ErrConflict
		}
	}
	c.APIKey = &apiKey
	c.APIKeyLastGenerated = &generatedAt
	c.UpdatedAt = time.Now()
	f.clients[id] = c
	c.StationIDs = f.stationIDsFor(id)
	return c, nil
}

func (f *fakeStore) ListLocations() ([]model.Location, error) {
	out := []model.Location{}
	for _, l := range f.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) GetLocationByID(id int) (model.Location, error) {
	l, ok := f.locations[id]
	if !ok {
		return model.Location{}, db.ErrNotFound
	}
	return l, nil
}

func (f *fakeStore) CreateLocation(name, code, country, city, timezone string) (model.Location, error) {
	for _, l := range f.locations {
		if l.Code == code {
			return model.Location{}, db.ErrConflict
		}
	}
	l := model.Location{
		ID:        f.allocID(),
		Name:      name,
		Code:      code,
		Country:   country,
		City:      city,
		Timezone:  timezone,
		CreatedAt: time.Now(),
	}
	f.locations[l.ID] = l
	return l, nil
}

func (f *fakeStore) UpdateLocation(id int, name, code, country, city, timezone *string) (model.Location, error) {
	l, ok := f.locations[id]
	if !ok {
		return model.Location{}, db.ErrNotFound
	}
	if code != nil {
		for otherID, other := range f.locations {
			if otherID != id && other.Code == *code {
				return model.Location{}, db.ErrConflict
			}
		}
	}
	setIfPresent(&l.Name, name)
	setIfPresent(&l.Code, code)
	setIfPresent(&l.Country, country)
	setIfPresent(&l.City, city)
	setIfPresent(&l.Timezone, timezone)
	f.locations[id] = l
	return l, nil
}

func (f *fakeStore) DeleteLocation(id int) error {
	if _, ok := f.locations[id]; !ok {
		return db.ErrNotFound
	}
	for _, s := range f.stations {
		if s.LocationID == id {
			return db.ErrInvalidReference
		}
	}
	delete(f.locations, id)
	return nil
}

func (f *fakeStore) ListStations(filter db.StationFilter) ([]model.Station, error) {
	out := []model.Station{}
	for _, s := range f.stations {
		if filter.LocationID != nil && s.LocationID != *filter.LocationID {
			continue
		}
		if filter.ClientID != nil && s.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) GetStationByID(id int) (model.Station, error) {
	s, ok := f.stations[id]
	if !ok {
		return model.Station{}, db.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) CreateStation(in db.NewStation) (model.Station, error) {
	if _, ok := f.locations[in.LocationID]; !ok {
		return model.Station{}, db.ErrInvalidReference
	}
	if _, ok := f.clients[in.ClientID]; !ok {
		return model.Station{}, db.ErrInvalidReference
	}
	now := time.Now()
	s := model.Station{
		ID:             f.allocID(),
		Name:           in.Name,
		LocationID:     in.LocationID,
		Website:        in.Website,
		Status:         in.Status,
		OmniplayerURL:  in.OmniplayerURL,
		ClientID:       in.ClientID,
		ClientSecret:   in.ClientSecret,
		Username:       in.Username,
		Password:       in.Password,
		StationPrompts: in.Prompts,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.stations[s.ID] = s
	return s, nil
}

func mergePrompts(dst *model.StationPrompts, src model.StationPrompts) {
	keepIfPresent(&dst.SystemPrompt, src.SystemPrompt)
	keepIfPresent(&dst.HourlyPrompt0, src.HourlyPrompt0)
	keepIfPresent(&dst.HourlyPrompt10, src.HourlyPrompt10)
	keepIfPresent(&dst.HourlyPrompt20, src.HourlyPrompt20)
	keepIfPresent(&dst.HourlyPrompt30, src.HourlyPrompt30)
	keepIfPresent(&dst.HourlyPrompt40, src.HourlyPrompt40)
	keepIfPresent(&dst.HourlyPrompt50, src.HourlyPrompt50)
	keepIfPresent(&dst.HourlyPrompt55, src.HourlyPrompt55)
	keepIfPresent(&dst.NewsPrompt, src.NewsPrompt)
	keepIfPresent(&dst.WeatherPrompt, src.WeatherPrompt)
	keepIfPresent(&dst.TrafficPrompt, src.TrafficPrompt)
}

func (f *fakeStore) UpdateStation(id int, in db.StationUpdate) (model.Station, error) {
	s, ok := f.stations[id]
	if !ok {
		return model.Station{}, db.ErrNotFound
	}
	if in.LocationID != nil {
		if _, ok := f.locations[*in.LocationID]; !ok {
			return model.Station{}, db.ErrInvalidReference
		}
		s.LocationID = *in.LocationID
	}
	if in.ClientID != nil {
		if _, ok := f.clients[*in.ClientID]; !ok {
			return model.Station{}, db.ErrInvalidReference
		}
		s.ClientID = *in.ClientID
	}
	setIfPresent(&s.Name, in.Name)
	keepIfPresent(&s.Website, in.Website)
	setIfPresent(&s.Status, in.Status)
	keepIfPresent(&s.OmniplayerURL, in.OmniplayerURL)
	setIfPresent(&s.ClientSecret, in.ClientSecret)
	setIfPresent(&s.Username, in.Username)
	setIfPresent(&s.Password, in.Password)
	mergePrompts(&s.StationPrompts, in.Prompts)
	s.UpdatedAt = time.Now()
	f.stations[id] = s
	return s, nil
}

func (f *fakeStore) DeleteStation(id int) error {
	if _, ok := f.stations[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.stations, id)
	return nil
}

func (f *fakeStore) ListStationPrompts(stationID *int) ([]model.StationPromptSet, error) {
	out := []model.StationPromptSet{}
	if stationID != nil {
		if s, ok := f.stations[*stationID]; ok {
			out = append(out, model.StationPromptSet{ID: s.ID, StationPrompts: s.StationPrompts})
		}
		return out, nil
	}
	stations, _ := f.ListStations(db.StationFilter{})
	for _, s := range stations {
		out = append(out, model.StationPromptSet{ID: s.ID, StationPrompts: s.StationPrompts})
	}
	return out, nil
}

func (f *fakeStore) UpdateStationPrompts(id int, prompts model.StationPrompts) (model.StationPromptSet, error) {
	s, ok := f.stations[id]
	if !ok {
		return model.StationPromptSet{}, db.ErrNotFound
	}
	mergePrompts(&s.StationPrompts, prompts)
	s.UpdatedAt = time.Now()
	f.stations[id] = s
	return model.StationPromptSet{ID: s.ID, StationPrompts: s.StationPrompts}, nil
}

func (f *fakeStore) ListVoices() ([]model.Voice, error) {
	out := []model.Voice{}
	for _, v := range f.voices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) GetVoiceByID(id int) (model.Voice, error) {
	v, ok := f.voices[id]
	if !ok {
		return model.Voice{}, db.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) CreateVoice(in db.NewVoice) (model.Voice, error) {
	v := model.Voice{
		ID:        f.allocID(),
		Name:      in.Name,
		VoiceID:   in.VoiceID,
		Gender:    in.Gender,
		Language:  in.Language,
		Accent:    in.Accent,
		Age:       in.Age,
		Category:  in.Category,
		Country:   in.Country,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}
	f.voices[v.ID] = v
	return v, nil
}

func (f *fakeStore) UpdateVoice(id int, in db.VoiceUpdate) (model.Voice, error) {
	v, ok := f.voices[id]
	if !ok {
		return model.Voice{}, db.ErrNotFound
	}
	setIfPresent(&v.Name, in.Name)
	setIfPresent(&v.VoiceID, in.VoiceID)
	setIfPresent(&v.Gender, in.Gender)
	setIfPresent(&v.Language, in.Language)
	keepIfPresent(&v.Accent, in.Accent)
	if in.Age != nil {
		v.Age = in.Age
	}
	setIfPresent(&v.Category, in.Category)
	setIfPresent(&v.Country, in.Country)
	setIfPresent(&v.Status, in.Status)
	f.voices[id] = v
	return v, nil
}

func (f *fakeStore) DeleteVoice(id int) error {
	if _, ok := f.voices[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.voices, id)
	return nil
}

func (f *fakeStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	u := model.User{
		ID:             f.allocID(),
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetUserByID(id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	out := u
	return &out, nil
}

func (f *fakeStore) TruncateAll() error {
	f.clients = map[int]model.Client{}
	f.locations = map[int]model.Location{}
	f.stations = map[int]model.Station{}
	f.voices = map[int]model.Voice{}
	return nil
}

var _ db.Store = (*fakeStore)(nil)

// recordingPublisher captures prompt fanout calls.
type recordingPublisher struct {
	stationIDs []int
}

func (r *recordingPublisher) PromptsUpdated(stationID int, _ any) error {
	r.stationIDs = append(r.stationIDs, stationID)
	return nil
}

var _ notify.Publisher = (*recordingPublisher)(nil)

// seedStation inserts a location (id 1), a client (id 2) and one station
// (id 3) belonging to both.
func seedStation(t *testing.T, store *fakeStore) model.Station {
	t.Helper()

	loc, err := store.CreateLocation("Amsterdam Studio", "NL", "Netherlands", "Amsterdam", "Europe/Amsterdam")
	require.NoError(t, err)

	client, err := store.CreateClient("Radio Group", "ops@radiogroup.com", "Radio Group BV", nil, nil, "active")
	require.NoError(t, err)

	system := "You are a cheerful radio host."
	station, err := store.CreateStation(db.NewStation{
		Name:         "Radio Demo",
		LocationID:   loc.ID,
		Status:       "active",
		ClientID:     client.ID,
		ClientSecret: "demo_secret",
		Username:     "demo_user",
		Password:     "demo_pass",
		Prompts:      model.StationPrompts{SystemPrompt: &system},
	})
	require.NoError(t, err)
	return station
}

// setupRouter mounts the admin modules behind a middleware that injects a
// logged-in user, standing in for the session gate.
func setupRouter(store db.Store, publisher notify.Publisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	fakeSession := func(c *gin.Context) {
		c.Set("currentUser", &model.User{ID: 1, Email: "admin@aircast.fm"})
		c.Next()
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/admin",
		Middleware: []gin.HandlerFunc{fakeSession},
	},
		endpoints.ClientModule(store),
		endpoints.LocationModule(store),
		endpoints.StationModule(store),
		endpoints.VoiceModule(store),
		endpoints.PromptModule(store, publisher),
	)

	return r
}
