// ABOUTME: Resource handlers for the stub backend
// ABOUTME: Mutations edit the fixture slices in place so re-fetches observe changes

package stub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium-console/internal/api"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	users := append([]api.User(nil), s.users...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	notFound(w, "user", id)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update api.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if update.Username != "" {
			s.users[i].Username = update.Username
		}
		if update.Email != "" {
			s.users[i].Email = update.Email
		}
		if update.Role != "" {
			s.users[i].Role = update.Role
		}
		writeJSON(w, http.StatusOK, s.users[i])
		return
	}
	notFound(w, "user", id)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			writeStatus(w)
			return
		}
	}
	notFound(w, "user", id)
}

func (s *Server) handleSetBanned(banned bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.mu.Lock()
		defer s.mu.Unlock()

		for i := range s.users {
			if s.users[i].ID == id {
				s.users[i].Banned = banned
				writeStatus(w)
				return
			}
		}
		notFound(w, "user", id)
	}
}

func (s *Server) handleBlockedUsers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	blocked := []api.User{}
	for _, u := range s.users {
		if s.blocks[id][u.ID] {
			blocked = append(blocked, u)
		}
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (s *Server) handleUserReports(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := []api.Report{}
	for _, rep := range s.reports {
		if rep.ReporterID == id || rep.ReportedID == id {
			reports = append(reports, rep)
		}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handlePendingCreators(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := []api.CreatorApplication{}
	for _, c := range s.creators {
		if c.Status == "pending" {
			pending = append(pending, c)
		}
	}
	writeJSON(w, http.StatusOK, pending)
}

func (s *Server) handleApproveCreator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Approved bool   `json:"approved"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.creators {
		if s.creators[i].ID != id {
			continue
		}
		if req.Approved {
			s.creators[i].Status = "approved"
			// Promote the underlying user
			for j := range s.users {
				if s.users[j].ID == s.creators[i].UserID {
					s.users[j].Role = "creator"
				}
			}
		} else {
			s.creators[i].Status = "rejected"
		}
		writeStatus(w)
		return
	}
	notFound(w, "creator application", id)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reports := append([]api.Report(nil), s.reports...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rep := range s.reports {
		if rep.ID == id {
			writeJSON(w, http.StatusOK, rep)
			return
		}
	}
	notFound(w, "report", id)
}

func (s *Server) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status api.ReportStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid report status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = req.Status
			writeJSON(w, http.StatusOK, s.reports[i])
			return
		}
	}
	notFound(w, "report", id)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			writeStatus(w)
			return
		}
	}
	notFound(w, "report", id)
}

func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	announcements := append([]api.Announcement(nil), s.announcements...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, announcements)
}

func (s *Server) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var input api.AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	now := time.Now().UTC()
	announcement := api.Announcement{
		ID:        "a-" + uuid.New().String(),
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.announcements = append(s.announcements, announcement)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, announcement)
}

func (s *Server) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input api.AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID != id {
			continue
		}
		s.announcements[i].Title = input.Title
		s.announcements[i].Body = input.Body
		s.announcements[i].Published = input.Published
		s.announcements[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, s.announcements[i])
		return
	}
	notFound(w, "announcement", id)
}

func (s *Server) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			writeStatus(w)
			return
		}
	}
	notFound(w, "announcement", id)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := api.DashboardStats{
		TotalUsers:        len(s.users),
		ReportsByCategory: make(map[string]int),
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	signups := make(map[string]int)

	for _, u := range s.users {
		if u.Banned {
			stats.BannedUsers++
		} else {
			stats.ActiveUsers++
		}
		if u.Role == "creator" {
			stats.TotalCreators++
		}
		if u.CreatedAt.After(weekAgo) {
			signups[u.CreatedAt.Format("2006-01-02")]++
		}
	}
	for _, c := range s.creators {
		if c.Status == "pending" {
			stats.PendingCreators++
		}
	}
	for _, rep := range s.reports {
		stats.TotalReports++
		if rep.Status == api.ReportPending {
			stats.PendingReports++
		}
		stats.ReportsByCategory[rep.Category]++
	}
	for date, count := range signups {
		stats.SignupsByDay = append(stats.SignupsByDay, api.TimePoint{Date: date, Count: count})
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := api.UserStats{Total: len(s.users)}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, u := range s.users {
		if u.Banned {
			stats.Banned++
		} else {
			stats.Active++
		}
		if u.CreatedAt.After(weekAgo) {
			stats.NewThisWeek++
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleReportStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := api.ReportStats{Total: len(s.reports)}
	for _, rep := range s.reports {
		switch rep.Status {
		case api.ReportPending:
			stats.Pending++
		case api.ReportResolved:
			stats.Resolved++
		case api.ReportDismissed:
			stats.Dismissed++
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	plans := append([]api.SubscriptionPlan(nil), s.plans...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var input api.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	plan := api.SubscriptionPlan{
		ID:         "p-" + uuid.New().String(),
		Name:       input.Name,
		Tier:       input.Tier,
		PriceCents: input.PriceCents,
		Interval:   input.Interval,
		Active:     input.Active,
	}

	s.mu.Lock()
	s.plans = append(s.plans, plan)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input api.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID != id {
			continue
		}
		s.plans[i].Name = input.Name
		s.plans[i].Tier = input.Tier
		s.plans[i].PriceCents = input.PriceCents
		s.plans[i].Interval = input.Interval
		s.plans[i].Active = input.Active
		writeJSON(w, http.StatusOK, s.plans[i])
		return
	}
	notFound(w, "plan", id)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			writeStatus(w)
			return
		}
	}
	notFound(w, "plan", id)
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	subs := append([]api.UserSubscription(nil), s.subscriptions...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subscriptions {
		if s.subscriptions[i].ID != id {
			continue
		}
		if s.subscriptions[i].Status == "cancelled" {
			writeError(w, http.StatusConflict, "subscription already cancelled")
			return
		}
		now := time.Now().UTC()
		s.subscriptions[i].Status = "cancelled"
		s.subscriptions[i].CancelledAt = &now
		writeStatus(w)
		return
	}
	notFound(w, "subscription", id)
}

func (s *Server) handleBlock(block bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BlockerID string `json:"blocker_id"`
			BlockedID string `json:"blocked_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.BlockerID == "" || req.BlockedID == "" {
			writeError(w, http.StatusBadRequest, "blocker_id and blocked_id are required")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if block {
			if s.blocks[req.BlockerID] == nil {
				s.blocks[req.BlockerID] = make(map[string]bool)
			}
			s.blocks[req.BlockerID][req.BlockedID] = true
		} else {
			delete(s.blocks[req.BlockerID], req.BlockedID)
		}
		writeStatus(w)
	}
}

func (s *Server) handleBlockStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	targetID := r.URL.Query().Get("target_user_id")
	if userID == "" || targetID == "" {
		writeError(w, http.StatusBadRequest, "user_id and target_user_id are required")
		return
	}

	s.mu.Lock()
	blocked := s.blocks[userID][targetID]
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.BlockStatus{Blocked: blocked})
}
