package query

import (
	"slices"
	"sort"
	"time"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/helpers"
)

const (
	activeWindowDays   = 30
	newWindowDays      = 7
	recentActivitySize = 10
)

// StudentStats summarises the whole student collection
type StudentStats struct {
	Total           int                              `json:"total"`
	Active          int                              `json:"active"`
	NewThisWeek     int                              `json:"newThisWeek"`
	StatusBreakdown map[models.ApplicationStatus]int `json:"statusBreakdown"`
}

// CommunicationStats summarises the whole communications log
type CommunicationStats struct {
	Total          int                              `json:"total"`
	ByType         map[models.CommunicationType]int `json:"byType"`
	ByDirection    map[models.Direction]int         `json:"byDirection"`
	RecentActivity []models.Communication           `json:"recentActivity"`
}

// AggregateStudentStats counts over every student regardless of any active
// filter. StatusBreakdown only holds statuses that occur.
func AggregateStudentStats(students []models.Student, now time.Time) StudentStats {
	stats := StudentStats{
		Total:           len(students),
		StatusBreakdown: make(map[models.ApplicationStatus]int),
	}
	for _, s := range students {
		if helpers.WithinDays(now, s.LastActive, activeWindowDays) {
			stats.Active++
		}
		if helpers.WithinDays(now, s.CreatedAt, newWindowDays) {
			stats.NewThisWeek++
		}
		stats.StatusBreakdown[s.ApplicationStatus]++
	}
	return stats
}

// AggregateCommunicationStats counts over every communication. ByType and
// ByDirection report every variant, zero included.
func AggregateCommunicationStats(comms []models.Communication) CommunicationStats {
	stats := CommunicationStats{
		Total:       len(comms),
		ByType:      make(map[models.CommunicationType]int),
		ByDirection: make(map[models.Direction]int),
	}
	for _, t := range models.AllCommunicationTypes() {
		stats.ByType[t] = 0
	}
	for _, d := range models.AllDirections() {
		stats.ByDirection[d] = 0
	}
	for _, c := range comms {
		stats.ByType[c.Type]++
		stats.ByDirection[c.Direction]++
	}

	recent := slices.Clone(comms)
	slices.SortStableFunc(recent, func(a, b models.Communication) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(recent) > recentActivitySize {
		recent = recent[:recentActivitySize]
	}
	if recent == nil {
		recent = []models.Communication{}
	}
	stats.RecentActivity = recent
	return stats
}

// StaffMembers lists the distinct staff names found in comms, sorted
func StaffMembers(comms []models.Communication) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, c := range comms {
		if c.StaffMember == "" {
			continue
		}
		if _, ok := seen[c.StaffMember]; ok {
			continue
		}
		seen[c.StaffMember] = struct{}{}
		names = append(names, c.StaffMember)
	}
	sort.Strings(names)
	return names
}

// Countries lists the distinct countries found in students, sorted
func Countries(students []models.Student) []string {
	seen := make(map[string]struct{})
	countries := []string{}
	for _, s := range students {
		if s.Country == "" {
			continue
		}
		if _, ok := seen[s.Country]; ok {
			continue
		}
		seen[s.Country] = struct{}{}
		countries = append(countries, s.Country)
	}
	sort.Strings(countries)
	return countries
}
