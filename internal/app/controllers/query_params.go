package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/query"
	"github.com/yigit/admissions-crm/internal/pkg/helpers"
)

// studentQueryFromRequest reads the student list query string. Unknown
// values are passed through and ignored by the query engine.
func studentQueryFromRequest(c *gin.Context) query.StudentQuery {
	page, size := helpers.ParsePaginationParams(c)
	return query.StudentQuery{
		Search:     c.Query("search"),
		Status:     models.ApplicationStatus(c.Query("status")),
		Country:    c.Query("country"),
		Grade:      models.SchoolYear(c.Query("grade")),
		LastActive: query.LastActiveFilter(c.Query("lastActiveFilter")),
		SortBy:     query.ParseStudentSort(c.Query("sortBy")),
		SortOrder:  query.ParseOrder(c.Query("sortOrder")),
		Page:       page,
		PageSize:   size,
	}
}

// communicationQueryFromRequest reads the communications list query string
func communicationQueryFromRequest(c *gin.Context) query.CommunicationQuery {
	page, size := helpers.ParsePaginationParams(c)
	return query.CommunicationQuery{
		Search:      c.Query("search"),
		StudentID:   c.Query("studentId"),
		Type:        models.CommunicationType(c.Query("type")),
		Direction:   models.Direction(c.Query("direction")),
		StaffMember: c.Query("staffMember"),
		SortBy:      query.ParseCommunicationSort(c.Query("sortBy")),
		SortOrder:   query.ParseOrder(c.Query("sortOrder")),
		Page:        page,
		PageSize:    size,
	}
}
