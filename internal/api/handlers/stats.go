package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/musicapi-dashboard/backend/internal/api/request"
	"github.com/musicapi-dashboard/backend/internal/api/response"
	"github.com/musicapi-dashboard/backend/internal/cache"
	"github.com/musicapi-dashboard/backend/internal/graphs"
	"github.com/musicapi-dashboard/backend/internal/middleware"
	"github.com/musicapi-dashboard/backend/internal/models"
	"github.com/musicapi-dashboard/backend/internal/probe"
	"github.com/musicapi-dashboard/backend/internal/repository"
)

// StatsHandler serves the consolidated dashboard snapshot
type StatsHandler struct {
	userRepo   UserStore
	mediaRepo  MediaStore
	alertRepo  AlertStore
	statsCache *cache.StatsCache
	catbox     *probe.CatboxProber
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(
	userRepo UserStore,
	mediaRepo MediaStore,
	alertRepo AlertStore,
	statsCache *cache.StatsCache,
	catbox *probe.CatboxProber,
) *StatsHandler {
	return &StatsHandler{
		userRepo:   userRepo,
		mediaRepo:  mediaRepo,
		alertRepo:  alertRepo,
		statsCache: statsCache,
		catbox:     catbox,
	}
}

// UserData is the caller's own slice of the snapshot
type UserData struct {
	Hits     int64  `json:"hits"`
	Today    int64  `json:"today"`
	Limit    int64  `json:"limit"`
	Active   bool   `json:"active"`
	Plan     string `json:"plan"`
	Username string `json:"username"`
}

// GlobalData aggregates over the whole store
type GlobalData struct {
	TotalSongs    int64                     `json:"total_songs"`
	TotalRequests int64                     `json:"total_requests"`
	Leaderboard   []models.LeaderboardEntry `json:"leaderboard"`
}

// GraphsData carries the synthetic chart series
type GraphsData struct {
	Monthly []int64 `json:"monthly"`
	Today   []int64 `json:"today"`
}

// SystemData reports service and upstream health
type SystemData struct {
	APISpeed      float64 `json:"api_speed"`
	ServerStatus  string  `json:"server_status"`
	CatboxStatus  string  `json:"catbox_status"`
	CatboxLatency int64   `json:"catbox_latency"`
	Alert         *string `json:"alert"`
}

// StatsResponse is the full dashboard snapshot
type StatsResponse struct {
	Status     int        `json:"status"`
	UserData   UserData   `json:"user_data"`
	GlobalData GlobalData `json:"global_data"`
	Graphs     GraphsData `json:"graphs"`
	System     SystemData `json:"system"`
}

// GetStats handles GET /api/user/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := request.GetQueryString(r, "key", "")
	user, err := h.userRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.InvalidKey(w)
			return
		}
		response.InternalError(w, "Failed to load user")
		return
	}

	global, err := h.globalStats(r)
	if err != nil {
		response.InternalError(w, "Failed to load global stats")
		return
	}

	alertMsg, err := h.activeAlert(r)
	if err != nil {
		response.InternalError(w, "Failed to load alert")
		return
	}

	catboxStatus, catboxLatency := h.catbox.Probe(ctx)

	resp := StatsResponse{
		Status: 200,
		UserData: UserData{
			Hits:     user.TotalUsage,
			Today:    user.UsedToday,
			Limit:    user.DailyLimit,
			Active:   user.Active,
			Plan:     user.Plan,
			Username: user.Username,
		},
		GlobalData: GlobalData{
			TotalSongs:    global.TotalSongs,
			TotalRequests: global.TotalRequests,
			Leaderboard:   global.Leaderboard,
		},
		Graphs: GraphsData{
			Monthly: graphs.Monthly(user.TotalUsage),
			Today:   graphs.Today(user.UsedToday, time.Now().Hour()),
		},
		System: SystemData{
			APISpeed:      middleware.GetElapsedMs(ctx),
			ServerStatus:  probe.StatusOnline,
			CatboxStatus:  catboxStatus,
			CatboxLatency: catboxLatency,
			Alert:         alertMsg,
		},
	}

	response.OK(w, resp)
}

// globalStats returns the store-wide aggregates, served from the short
// TTL cache when possible.
func (h *StatsHandler) globalStats(r *http.Request) (*cache.GlobalStats, error) {
	ctx := r.Context()

	if cached, ok := h.statsCache.Get(ctx); ok {
		return cached, nil
	}

	totalSongs, err := h.mediaRepo.SongCount(ctx)
	if err != nil {
		return nil, err
	}

	totalRequests, err := h.userRepo.TotalUsage(ctx)
	if err != nil {
		return nil, err
	}

	topUsers, err := h.userRepo.TopUsers(ctx, 5)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]models.LeaderboardEntry, 0, len(topUsers))
	for _, u := range topUsers {
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			Name: u.DisplayName(),
			Hits: u.TotalUsage,
		})
	}

	stats := &cache.GlobalStats{
		TotalSongs:    totalSongs,
		TotalRequests: totalRequests,
		Leaderboard:   leaderboard,
	}
	h.statsCache.Put(ctx, stats)

	return stats, nil
}

// activeAlert returns the alert message when one is set and active.
func (h *StatsHandler) activeAlert(r *http.Request) (*string, error) {
	alert, err := h.alertRepo.Get(r.Context())
	if err != nil {
		return nil, err
	}
	if alert == nil || !alert.Active {
		return nil, nil
	}
	msg := alert.Message
	return &msg, nil
}
