package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"
	"maua-esports-backend/internal/repository"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// Rank thresholds in hours; reaching rankThresholds[i] grants rank i
var rankThresholds = [...]float64{1, 10, 15, 25, 35, 50, 60, 70, 80}

var rankNames = [...]string{
	"Iniciante (Branco)",
	"Novato (Bronze)",
	"Intermediário (Prata)",
	"Avançado (Ouro)",
	"Experiente (Azul)",
	"Veterano (Esmeralda)",
	"Elite (Roxo)",
	"Mestre (Vermelho)",
	"Lenda (Diamante)",
}

// Unranked is the rank of players below the first threshold
const Unranked = -1

const msPerHour = 1000 * 60 * 60

// RankFor returns the rank index for hours, from -1 to 8
func RankFor(hours float64) int {
	rank := Unranked
	for i, threshold := range rankThresholds {
		if hours >= threshold {
			rank = i
		}
	}
	return rank
}

// RankName returns the display name of a rank
func RankName(rank int) string {
	if rank < 0 || rank >= len(rankNames) {
		return "Sem rank"
	}
	return rankNames[rank]
}

// RankProgress returns how far hours fill the current rank band, from 0 to 100
func RankProgress(hours float64) float64 {
	rank := RankFor(hours)
	switch {
	case rank == Unranked:
		return 0
	case rank == len(rankThresholds)-1:
		return 100
	}
	// rank 0 fills from zero hours
	low := 0.0
	if rank > 0 {
		low = rankThresholds[rank]
	}
	high := rankThresholds[rank+1]
	return clamp((hours-low)/(high-low)*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PlayerHours is one player's semester summary
type PlayerHours struct {
	DiscordID    string             `json:"discordId"`
	Name         string             `json:"nome"`
	Email        string             `json:"email,omitempty"`
	TotalHours   float64            `json:"totalHoras"`
	Rank         int                `json:"rank"`
	RankName     string             `json:"rankNome"`
	Progress     float64            `json:"progresso"`
	MainTeam     string             `json:"timePrincipal"`
	HoursPerTeam map[string]float64 `json:"horasPorTime"`
}

// ModalityHours groups the players whose main team is the modality
type ModalityHours struct {
	ID      string        `json:"id"`
	Name    string        `json:"nome"`
	Tag     string        `json:"tag"`
	Players []PlayerHours `json:"jogadores"`
}

// HoursReport is the response of the PAE hours endpoint
type HoursReport struct {
	Semester      string          `json:"semestre"`
	SemesterStart time.Time       `json:"inicioSemestre"`
	Modalities    []ModalityHours `json:"modalidades"`
}

// TrainingSource provides the sessions and modalities to aggregate
type TrainingSource interface {
	ListTrains(ctx context.Context) ([]Train, error)
	ListModalities(ctx context.Context) (map[string]Modality, error)
}

// PAEService computes semester training hours per player
type PAEService struct {
	source   TrainingSource
	userRepo repository.UserRepositoryInterface
	clock    clockwork.Clock
	loc      *time.Location
}

// Ensure PAEService implements PAEServiceInterface
var _ PAEServiceInterface = (*PAEService)(nil)

// NewPAEService creates a new PAE hours service
func NewPAEService(source TrainingSource, userRepo repository.UserRepositoryInterface, clock clockwork.Clock, loc *time.Location) *PAEService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PAEService{
		source:   source,
		userRepo: userRepo,
		clock:    clock,
		loc:      loc,
	}
}

// GetHours aggregates the current semester. A viewer with role Jogador only sees
// their own hours; an empty viewerEmail returns every player.
func (s *PAEService) GetHours(ctx context.Context, viewerEmail string) (*HoursReport, error) {
	onlyDiscordID, restricted, err := s.viewerScope(viewerEmail)
	if err != nil {
		return nil, err
	}

	trains, err := s.source.ListTrains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", err)
	}
	mods, err := s.source.ListModalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modalities: %w", err)
	}

	start := SemesterStart(s.clock.Now(), s.loc)
	totals := aggregateHours(trains, mods, start, onlyDiscordID, restricted)

	names, err := s.displayNames(totals)
	if err != nil {
		return nil, err
	}

	report := &HoursReport{
		Semester:      SemesterLabel(start),
		SemesterStart: start,
		Modalities:    bucketByMainTeam(totals, mods, names),
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"semester": report.Semester,
		"trains":   len(trains),
		"players":  len(totals),
	}).Debug("Aggregated PAE hours")
	return report, nil
}

// viewerScope resolves which discord id a Jogador viewer is restricted to
func (s *PAEService) viewerScope(viewerEmail string) (string, bool, error) {
	viewerEmail = normalizeEmail(viewerEmail)
	if viewerEmail == "" {
		return "", false, nil
	}
	viewer, err := s.userRepo.GetByEmail(viewerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, apperrors.ErrUserNotFound
		}
		return "", false, fmt.Errorf("failed to get viewer: %w", err)
	}
	if viewer.Role != models.UserRolePlayer {
		return "", false, nil
	}
	if viewer.DiscordID == nil {
		return "", true, nil
	}
	return *viewer.DiscordID, true, nil
}

// playerTotals accumulates one player's hours in session order
type playerTotals struct {
	discordID string
	total     float64
	perTeam   map[string]float64
	order     []string
}

func aggregateHours(trains []Train, mods map[string]Modality, start time.Time, onlyDiscordID string, restricted bool) []*playerTotals {
	startMs := float64(start.UnixMilli())
	byPlayer := make(map[string]*playerTotals)
	var players []*playerTotals

	for _, train := range trains {
		if train.Status != TrainStatusEnded || len(train.AttendedPlayers) == 0 || train.StartTimestamp < startMs {
			continue
		}
		if _, ok := mods[train.ModalityID]; !ok {
			continue
		}
		for _, a := range train.AttendedPlayers {
			if a.PlayerID == "" || a.EntranceTimestamp == nil || a.ExitTimestamp == nil {
				continue
			}
			if *a.ExitTimestamp < *a.EntranceTimestamp {
				continue
			}
			if restricted && a.PlayerID != onlyDiscordID {
				continue
			}

			p, ok := byPlayer[a.PlayerID]
			if !ok {
				p = &playerTotals{discordID: a.PlayerID, perTeam: make(map[string]float64)}
				byPlayer[a.PlayerID] = p
				players = append(players, p)
			}
			if _, seen := p.perTeam[train.ModalityID]; !seen {
				p.order = append(p.order, train.ModalityID)
			}
			hours := (*a.ExitTimestamp - *a.EntranceTimestamp) / msPerHour
			p.perTeam[train.ModalityID] += hours
			p.total += hours
		}
	}
	return players
}

// mainTeam returns the modality with the most hours; the first one seen wins ties
func (p *playerTotals) mainTeam() string {
	best := ""
	bestHours := -1.0
	for _, id := range p.order {
		if h := p.perTeam[id]; h > bestHours {
			best, bestHours = id, h
		}
	}
	return best
}

// displayNames maps discord ids to the RA of the linked user
func (s *PAEService) displayNames(players []*playerTotals) (map[string]models.User, error) {
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.discordID)
	}
	users := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	linked, err := s.userRepo.GetByDiscordIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by discord ids: %w", err)
	}
	for _, u := range linked {
		if u.DiscordID != nil {
			users[*u.DiscordID] = u
		}
	}
	return users, nil
}

func bucketByMainTeam(players []*playerTotals, mods map[string]Modality, users map[string]models.User) []ModalityHours {
	buckets := make(map[string][]PlayerHours)
	for _, p := range players {
		if p.total <= 0 {
			continue
		}
		main := p.mainTeam()
		entry := PlayerHours{
			DiscordID:    p.discordID,
			Name:         p.discordID,
			TotalHours:   p.total,
			Rank:         RankFor(p.total),
			RankName:     RankName(RankFor(p.total)),
			Progress:     RankProgress(p.total),
			MainTeam:     mods[main].Name,
			HoursPerTeam: make(map[string]float64, len(p.perTeam)),
		}
		if u, ok := users[p.discordID]; ok {
			entry.Email = u.Email
			entry.Name = strings.SplitN(u.Email, "@", 2)[0]
		}
		for id, h := range p.perTeam {
			entry.HoursPerTeam[mods[id].Name] += h
		}
		buckets[main] = append(buckets[main], entry)
	}

	result := make([]ModalityHours, 0, len(buckets))
	for _, m := range sortedModalities(mods) {
		list, ok := buckets[m.ID]
		if !ok {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].TotalHours != list[j].TotalHours {
				return list[i].TotalHours > list[j].TotalHours
			}
			return list[i].Name < list[j].Name
		})
		result = append(result, ModalityHours{ID: m.ID, Name: m.Name, Tag: m.Tag, Players: list})
	}
	return result
}
