// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/recommend"
	"github.com/tomtom215/gamescout/internal/search"
	"github.com/tomtom215/gamescout/internal/stats"
)

func game(rank int, title string, year int, score float64, genres ...string) catalog.Game {
	slots := make([]string, catalog.MaxGenres)
	copy(slots, genres)
	return catalog.Game{
		Rank:    rank,
		Title:   title,
		Release: time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC),
		Genres:  slots,
		Score:   score,
	}
}

func defaultGames() []catalog.Game {
	return []catalog.Game{
		game(1, "Alpha", 2015, 8.5, "RPG", "Action"),
		game(2, "Beta", 2018, 9.0, "Action"),
		game(3, "Gamma", 2016, 7.0, "RPG"),
		game(4, "Delta Quest", 2020, 6.0, "RPG", "Puzzle"),
	}
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.QueryEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *events.QueryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) published() []*events.QueryEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*events.QueryEvent(nil), p.events...)
}

// fakePopular serves fixed statistics.
type fakePopular struct {
	popular *stats.Popular
	err     error
	gotN    int
}

func (f *fakePopular) Popular(_ context.Context, n int) (*stats.Popular, error) {
	f.gotN = n
	return f.popular, f.err
}

type fakeBreaker string

func (b fakeBreaker) BreakerState() string { return string(b) }

type testEnv struct {
	handler   *Handler
	publisher *recordingPublisher
	stats     *fakePopular
	router    http.Handler
}

func setupTestEnv(t *testing.T, games []catalog.Game) *testEnv {
	t.Helper()

	cat, err := catalog.New(games)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.NewEngine() error = %v", err)
	}
	svc, err := search.NewService(cat, search.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("search.NewService() error = %v", err)
	}

	pub := &recordingPublisher{}
	pop := &fakePopular{popular: &stats.Popular{
		Titles: []stats.Count{{Key: "Alpha", Count: 3}},
		Genres: []stats.Count{{Key: "RPG", Count: 2}},
		Totals: map[string]uint64{"recommend": 3, "search": 2},
	}}

	h, err := NewHandler(Dependencies{
		Catalog:   cat,
		Engine:    engine,
		Search:    svc,
		Stats:     pop,
		Publisher: pub,
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitDisabled = true

	return &testEnv{
		handler:   h,
		publisher: pub,
		stats:     pop,
		router:    NewRouter(h, cfg).SetupChi(),
	}
}

// envelope mirrors APIResponse with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func doGet[T any](t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope[T]) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: invalid JSON body %q: %v", target, rec.Body.String(), err)
	}
	return rec, env
}

func TestNewHandler_RequiresCollaborators(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(defaultGames())
	if err != nil {
		t.Fatal(err)
	}
	engine, err := recommend.NewEngine(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	svc, err := search.NewService(cat, search.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		deps Dependencies
	}{
		{"missing catalog", Dependencies{Engine: engine, Search: svc}},
		{"missing engine", Dependencies{Catalog: cat, Search: svc}},
		{"missing search", Dependencies{Catalog: cat, Engine: engine}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHandler(tt.deps); err == nil {
				t.Error("expected error")
			}
		})
	}

	h, err := NewHandler(Dependencies{Catalog: cat, Engine: engine, Search: svc})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if h.topN != defaultPopularLimit {
		t.Errorf("topN = %d, want %d", h.topN, defaultPopularLimit)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	rec, live := doGet[map[string]interface{}](t, env.router, "/api/v1/health/live")
	if rec.Code != http.StatusOK || !live.Success || live.Data["alive"] != true {
		t.Errorf("live: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec, ready := doGet[HealthStatus](t, env.router, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: status = %d", rec.Code)
	}
	if ready.Data.Games != 4 || ready.Data.Genres != 3 || ready.Data.Features != 3 {
		t.Errorf("ready data = %+v", ready.Data)
	}
	if !ready.Data.Events || !ready.Data.Stats {
		t.Errorf("ready should report events and stats enabled: %+v", ready.Data)
	}
	if ready.Data.Breaker != "" {
		t.Errorf("breaker = %q without a sink, want empty", ready.Data.Breaker)
	}
	if ready.Data.Engine.Games != 4 || ready.Data.Engine.Features != 3 {
		t.Errorf("engine stats = %+v", ready.Data.Engine)
	}
}

func TestHealthReady_ReportsBreakerAndEngineStats(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	h, err := NewHandler(Dependencies{
		Catalog: env.handler.catalog,
		Engine:  env.handler.engine,
		Search:  env.handler.search,
		Breaker: fakeBreaker("half-open"),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(h, cfg).SetupChi()

	for i := 0; i < 2; i++ {
		if rec, _ := doGet[any](t, router, "/api/v1/recommendations?title=Alpha&k=2"); rec.Code != http.StatusOK {
			t.Fatalf("recommendations: status = %d", rec.Code)
		}
	}

	rec, ready := doGet[HealthStatus](t, router, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: status = %d", rec.Code)
	}
	if ready.Data.Breaker != "half-open" {
		t.Errorf("breaker = %q, want half-open", ready.Data.Breaker)
	}
	if ready.Data.Events || ready.Data.Stats {
		t.Errorf("events and stats should be disabled: %+v", ready.Data)
	}
	got := ready.Data.Engine
	if got.Requests != 2 || got.CacheHits != 1 || got.CacheMisses != 1 || got.CacheEntries != 1 {
		t.Errorf("engine stats = %+v, want 2 requests, 1 hit, 1 miss, 1 entry", got)
	}
}

func TestHealthReady_TooSmallCatalog(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, []catalog.Game{game(1, "Solo", 2020, 8, "RPG")})

	rec, body := doGet[any](t, env.router, "/api/v1/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body.Error == nil || body.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v", body.Error)
	}
}

func TestGames(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	rec, body := doGet[GamesResponse](t, env.router, "/api/v1/games")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Data.Total != 4 || len(body.Data.Games) != 4 {
		t.Fatalf("total = %d, games = %d", body.Data.Total, len(body.Data.Games))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma", "Delta Quest"} {
		if body.Data.Games[i].Title != want {
			t.Errorf("games[%d] = %q, want %q", i, body.Data.Games[i].Title, want)
		}
	}

	first := body.Data.Games[0]
	if first.Release != "15/03/2015" || first.Year != 2015 {
		t.Errorf("release = %q year = %d", first.Release, first.Year)
	}
	if first.ScoreDisplay != "8.5" {
		t.Errorf("score_display = %q, want 8.5", first.ScoreDisplay)
	}
	if len(first.Genres) != 2 || first.Genres[0] != "RPG" || first.Genres[1] != "Action" {
		t.Errorf("genres = %v, want [RPG Action]", first.Genres)
	}
	if first.Genre1 != "RPG" || first.Genre2 != "Action" || first.Genre3 != "" {
		t.Errorf("slots = %q %q %q, want RPG Action \"\"", first.Genre1, first.Genre2, first.Genre3)
	}
}

func TestGames_KeepsGenreSlots(t *testing.T) {
	t.Parallel()
	games := defaultGames()
	games[1] = game(2, "Beta", 2018, 9.0, "", "RPG", "RPG")
	env := setupTestEnv(t, games)

	_, body := doGet[GameView](t, env.router, "/api/v1/games/2")
	got := body.Data
	if got.Genre1 != "" || got.Genre2 != "RPG" || got.Genre3 != "RPG" {
		t.Errorf("slots = %q %q %q, want \"\" RPG RPG", got.Genre1, got.Genre2, got.Genre3)
	}
	if len(got.Genres) != 1 || got.Genres[0] != "RPG" {
		t.Errorf("genres = %v, want [RPG]", got.Genres)
	}
}

func TestGameByRank(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantError string
		wantTitle string
	}{
		{"found", "/api/v1/games/2", http.StatusOK, "", "Beta"},
		{"unknown rank", "/api/v1/games/99", http.StatusNotFound, ErrCodeNotFound, ""},
		{"malformed rank", "/api/v1/games/abc", http.StatusBadRequest, ErrCodeValidationFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet[GameView](t, env.router, tt.path)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantError != "" {
				if body.Error == nil || body.Error.Code != tt.wantError {
					t.Errorf("error = %+v, want code %s", body.Error, tt.wantError)
				}
				return
			}
			if body.Data.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", body.Data.Title, tt.wantTitle)
			}
		})
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	rec, body := doGet[TitlesResponse](t, env.router, "/api/v1/titles")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := []string{"Alpha", "Beta", "Delta Quest", "Gamma"}
	if body.Data.Count != len(want) || len(body.Data.Titles) != len(want) {
		t.Fatalf("titles = %v, want %v", body.Data.Titles, want)
	}
	for i := range want {
		if body.Data.Titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, body.Data.Titles[i], want[i])
		}
	}
}

func TestGenres(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	_, body := doGet[GenresResponse](t, env.router, "/api/v1/genres")
	want := []string{"Action", "Puzzle", "RPG"}
	if body.Data.Count != len(want) {
		t.Fatalf("count = %d, want %d", body.Data.Count, len(want))
	}
	for i := range want {
		if body.Data.Genres[i] != want[i] {
			t.Errorf("genres[%d] = %q, want %q", i, body.Data.Genres[i], want[i])
		}
	}
}

func TestRecommendations_ByTitle(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames()[:3])

	rec, body := doGet[RecommendationsResponse](t, env.router, "/api/v1/recommendations?title=Alpha")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	data := body.Data
	if data.Reference.Title != "Alpha" || data.ReferenceIndex != 0 {
		t.Errorf("reference = %q at %d", data.Reference.Title, data.ReferenceIndex)
	}
	if data.K != 10 {
		t.Errorf("k = %d, want default 10", data.K)
	}
	if len(data.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(data.Items))
	}

	// Equal similarity; the higher score ranks first.
	wantTitles := []string{"Beta", "Gamma"}
	for i, item := range data.Items {
		if item.Game.Title != wantTitles[i] {
			t.Errorf("items[%d] = %q, want %q", i, item.Game.Title, wantTitles[i])
		}
		if item.Similarity != "71%" {
			t.Errorf("items[%d].similarity = %q, want 71%%", i, item.Similarity)
		}
		if item.Position != i+1 {
			t.Errorf("items[%d].position = %d", i, item.Position)
		}
	}
	if data.Items[0].Game.Genre1 != "Action" || data.Items[0].Game.Genre2 != "" {
		t.Errorf("items[0] slots = %q %q, want Action \"\"", data.Items[0].Game.Genre1, data.Items[0].Game.Genre2)
	}
	if data.Reference.Genre1 != "RPG" || data.Reference.Genre2 != "Action" || data.Reference.Genre3 != "" {
		t.Errorf("reference slots = %q %q %q", data.Reference.Genre1, data.Reference.Genre2, data.Reference.Genre3)
	}

	published := env.publisher.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	ev := published[0]
	if ev.Kind != events.KindRecommend || ev.Title != "Alpha" || ev.K != 10 || ev.Results != 2 {
		t.Errorf("event = %+v", ev)
	}
	if ev.RequestID == "" || ev.RequestID != body.Meta.RequestID {
		t.Errorf("event request_id = %q, response request_id = %q", ev.RequestID, body.Meta.RequestID)
	}
}

func TestRecommendations_KLimitsResults(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	_, body := doGet[RecommendationsResponse](t, env.router, "/api/v1/recommendations?title=Alpha&k=1")
	if len(body.Data.Items) != 1 || body.Data.K != 1 {
		t.Fatalf("k=1 returned %d items (k=%d)", len(body.Data.Items), body.Data.K)
	}
	// Delta Quest shares RPG with Alpha: 1/(sqrt2*sqrt2) = 50%; Beta is 71%.
	if body.Data.Items[0].Game.Title != "Beta" {
		t.Errorf("top item = %q, want Beta", body.Data.Items[0].Game.Title)
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	dupes := append(defaultGames(), game(5, "Alpha", 2021, 5.0, "Puzzle"))

	tests := []struct {
		name     string
		games    []catalog.Game
		path     string
		wantCode int
		wantErr  string
	}{
		{"missing title", defaultGames(), "/api/v1/recommendations", http.StatusBadRequest, ErrCodeValidationFailed},
		{"blank title", defaultGames(), "/api/v1/recommendations?title=%20%20", http.StatusBadRequest, ErrCodeValidationFailed},
		{"malformed k", defaultGames(), "/api/v1/recommendations?title=Alpha&k=ten", http.StatusBadRequest, ErrCodeValidationFailed},
		{"unknown title", defaultGames(), "/api/v1/recommendations?title=Omega", http.StatusNotFound, ErrCodeNotFound},
		{"case differs", defaultGames(), "/api/v1/recommendations?title=alpha", http.StatusNotFound, ErrCodeNotFound},
		{"ambiguous title", dupes, "/api/v1/recommendations?title=Alpha", http.StatusConflict, ErrCodeAmbiguousMatch},
		{"single game catalog", []catalog.Game{game(1, "Solo", 2020, 8, "RPG")}, "/api/v1/recommendations?title=Solo", http.StatusUnprocessableEntity, ErrCodeInsufficientData},
		{"index out of range", defaultGames(), "/api/v1/recommendations/index/10", http.StatusNotFound, ErrCodeNotFound},
		{"negative index", defaultGames(), "/api/v1/recommendations/index/-1", http.StatusNotFound, ErrCodeNotFound},
		{"malformed index", defaultGames(), "/api/v1/recommendations/index/x", http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, tt.games)

			rec, body := doGet[any](t, env.router, tt.path)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if body.Success {
				t.Error("success = true on error")
			}
			if body.Error == nil || body.Error.Code != tt.wantErr {
				t.Fatalf("error = %+v, want code %s", body.Error, tt.wantErr)
			}
			if body.Error.RequestID == "" {
				t.Error("error.request_id is empty")
			}
			if n := len(env.publisher.published()); n != 0 {
				t.Errorf("published %d events for a failed request", n)
			}
		})
	}
}

func TestRecommendations_ByIndex(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	rec, body := doGet[RecommendationsResponse](t, env.router, "/api/v1/recommendations/index/2?k=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	if body.Data.Reference.Title != "Gamma" {
		t.Errorf("reference = %q, want Gamma", body.Data.Reference.Title)
	}
	if len(body.Data.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(body.Data.Items))
	}
	// Gamma (RPG) vs Alpha (RPG, Action) and Delta Quest (RPG, Puzzle): both 71%, Alpha scores higher.
	if body.Data.Items[0].Game.Title != "Alpha" || body.Data.Items[1].Game.Title != "Delta Quest" {
		t.Errorf("items = %q, %q", body.Data.Items[0].Game.Title, body.Data.Items[1].Game.Title)
	}
}

func TestRecommendations_PublishFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())
	env.publisher.err = errors.New("bus closed")

	rec, body := doGet[RecommendationsResponse](t, env.router, "/api/v1/recommendations?title=Beta")
	if rec.Code != http.StatusOK || !body.Success {
		t.Fatalf("status = %d, success = %v", rec.Code, body.Success)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{"no filters returns catalog order", "", []string{"Alpha", "Beta", "Gamma", "Delta Quest"}},
		{"keyword is case-insensitive", "?q=QUEST", []string{"Delta Quest"}},
		{"repeated genres are a conjunction", "?genre=RPG&genre=Action", []string{"Alpha"}},
		{"comma-separated genres", "?genres=RPG,Puzzle", []string{"Delta Quest"}},
		{"year range inclusive", "?min_year=2016&max_year=2018", []string{"Beta", "Gamma"}},
		{"score range inclusive", "?min_score=8.5&max_score=9", []string{"Alpha", "Beta"}},
		{"decimal comma score", "?min_score=8,5", []string{"Alpha", "Beta"}},
		{"no matches", "?q=zzz", []string{}},
		{"unknown genre matches nothing", "?genre=Racing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, defaultGames())

			rec, body := doGet[SearchResponse](t, env.router, "/api/v1/search"+tt.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
			}
			if body.Data.Total != len(tt.wantTitles) || len(body.Data.Games) != len(tt.wantTitles) {
				t.Fatalf("total = %d, games = %d, want %d", body.Data.Total, len(body.Data.Games), len(tt.wantTitles))
			}
			if body.Data.Games == nil {
				t.Error("games must be an empty array, not null")
			}
			for i, want := range tt.wantTitles {
				if body.Data.Games[i].Title != want {
					t.Errorf("games[%d] = %q, want %q", i, body.Data.Games[i].Title, want)
				}
			}

			published := env.publisher.published()
			if len(published) != 1 || published[0].Kind != events.KindSearch {
				t.Fatalf("published = %+v", published)
			}
			if published[0].Results != len(tt.wantTitles) {
				t.Errorf("event results = %d, want %d", published[0].Results, len(tt.wantTitles))
			}
		})
	}
}

func TestSearch_DefaultBounds(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	_, body := doGet[SearchResponse](t, env.router, "/api/v1/search")
	c := body.Data.Criteria
	if c.MinYear != 2015 || c.MaxYear != 2020 {
		t.Errorf("year bounds = [%d, %d], want [2015, 2020]", c.MinYear, c.MaxYear)
	}
	if c.MinScore != 6.0 || c.MaxScore != 9.0 {
		t.Errorf("score bounds = [%v, %v], want [6, 9]", c.MinScore, c.MaxScore)
	}
}

func TestSearchDefaults(t *testing.T) {
	t.Parallel()
	env := setupTestEnv(t, defaultGames())

	rec, body := doGet[search.Criteria](t, env.router, "/api/v1/search/defaults")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	c := body.Data
	if c.MinYear != 2015 || c.MaxYear != 2020 || c.MinScore != 6.0 || c.MaxScore != 9.0 {
		t.Errorf("defaults = %+v, want years [2015, 2020] and scores [6, 9]", c)
	}
	if c.Keyword != "" || len(c.Genres) != 0 {
		t.Errorf("defaults carry keyword %q genres %v, want none", c.Keyword, c.Genres)
	}
	if len(env.publisher.published()) != 0 {
		t.Error("defaults lookup published an event")
	}
}

func TestSearch_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"malformed year", "?min_year=soon"},
		{"malformed score", "?max_score=high"},
		{"inverted years", "?min_year=2020&max_year=2010"},
		{"inverted scores", "?min_score=9&max_score=1"},
		{"too many genres", "?genre=A&genre=B&genre=C&genre=D"},
		{"duplicate genres", "?genre=RPG&genre=RPG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, defaultGames())

			rec, body := doGet[any](t, env.router, "/api/v1/search"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
			if body.Error == nil || body.Error.Code != ErrCodeValidationFailed {
				t.Errorf("error = %+v", body.Error)
			}
			if n := len(env.publisher.published()); n != 0 {
				t.Errorf("published %d events for an invalid search", n)
			}
		})
	}
}

func TestPopularStats(t *testing.T) {
	t.Parallel()

	t.Run("default limit", func(t *testing.T) {
		env := setupTestEnv(t, defaultGames())

		rec, body := doGet[stats.Popular](t, env.router, "/api/v1/stats/popular")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if env.stats.gotN != defaultPopularLimit {
			t.Errorf("limit passed = %d, want %d", env.stats.gotN, defaultPopularLimit)
		}
		if len(body.Data.Titles) != 1 || body.Data.Titles[0].Key != "Alpha" {
			t.Errorf("titles = %+v", body.Data.Titles)
		}
		if body.Data.Totals["search"] != 2 {
			t.Errorf("totals = %+v", body.Data.Totals)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		env := setupTestEnv(t, defaultGames())
		doGet[stats.Popular](t, env.router, "/api/v1/stats/popular?limit=3")
		if env.stats.gotN != 3 {
			t.Errorf("limit passed = %d, want 3", env.stats.gotN)
		}
	})

	for _, limit := range []string{"0", "101", "many"} {
		t.Run("invalid limit "+limit, func(t *testing.T) {
			env := setupTestEnv(t, defaultGames())
			rec, _ := doGet[any](t, env.router, "/api/v1/stats/popular?limit="+limit)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	t.Run("store failure", func(t *testing.T) {
		env := setupTestEnv(t, defaultGames())
		env.stats.err = stats.ErrClosed
		rec, body := doGet[any](t, env.router, "/api/v1/stats/popular")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if body.Error.Message == stats.ErrClosed.Error() {
			t.Error("internal error text leaked to client")
		}
	})

	t.Run("stats disabled", func(t *testing.T) {
		env := setupTestEnv(t, defaultGames())
		env.handler.stats = nil
		rec, _ := doGet[any](t, env.router, "/api/v1/stats/popular")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})
}
