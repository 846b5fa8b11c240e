package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/models/dto"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/app/services"
	"github.com/yigit/admissions-crm/internal/middleware"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func daysAgo(d int) time.Time { return fixedNow.Add(-time.Duration(d) * 24 * time.Hour) }

func init() {
	gin.SetMode(gin.TestMode)
}

func student(id, name, country string, status models.ApplicationStatus, lastActiveDays int) models.Student {
	sat := 650
	return models.Student{
		ID:                id,
		Name:              name,
		Email:             strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@email.com",
		Phone:             "+1-555-123-4567",
		Country:           country,
		Grade:             models.Senior,
		GPA:               3.7,
		SATEnglish:        &sat,
		SATMath:           &sat,
		FieldOfStudy:      "Engineering",
		TuitionBudget:     50000,
		PreferredRegions:  []models.Region{models.RegionNortheast},
		ApplicationStatus: status,
		CreatedAt:         daysAgo(90),
		LastActive:        daysAgo(lastActiveDays),
		Colleges:          []models.College{},
	}
}

type testServer struct {
	router *gin.Engine
	store  *repositories.MemoryStore
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := repositories.NewMemoryStore()
	store.Load(repositories.Dataset{
		Students: []models.Student{
			student("s1", "John Smith", "United States", models.StatusApplying, 2),
			student("s2", "Ava Chen", "Canada", models.StatusExploring, 10),
			student("s3", "Liam Patel", "India", models.StatusSubmitted, 40),
		},
		Communications: []models.Communication{
			{ID: "m1", StudentID: "s1", Type: models.CommEmail, Direction: models.Outbound, Content: "Welcome aboard", StaffMember: "Mike Chen", Timestamp: daysAgo(5)},
			{ID: "m2", StudentID: "s2", Type: models.CommCall, Direction: models.Inbound, Content: "Deadline question", StaffMember: "Emily Rodriguez", Timestamp: daysAgo(1)},
		},
		Notes: []models.Note{
			{ID: "n1", StudentID: "s1", Content: "Strong essays", Author: "Mike Chen", Timestamp: daysAgo(4)},
		},
		Activities: []models.Activity{
			{ID: "a1", StudentID: "s1", Type: models.ActivityLogin, Description: "Logged in", Timestamp: daysAgo(2)},
		},
	})
	repos := repositories.NewRepositories(store, repositories.NewMemoryKVStore())

	hash, err := auth.HashPasswordWithCost("password", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repos.Staff.Create(context.Background(), &models.StaffUser{
		ID: "1", Email: "admin@example.com", Password: hash, Name: "Sarah Johnson", Role: models.RoleAdmin,
	}))

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "admissions-crm",
	})
	log := zerolog.Nop()
	authService := services.NewAuthService(repos, jwtService, nil, clock, log)
	authCtrl := NewAuthController(authService, log)
	studentCtrl := NewStudentController(services.NewStudentService(repos, nil, nil, clock, log), clock, log)
	commCtrl := NewCommunicationController(services.NewCommunicationService(repos, nil, nil, clock, log), clock, log)
	noteCtrl := NewNoteController(services.NewNoteService(repos, nil, nil, clock, log), clock, log)
	activityCtrl := NewActivityController(services.NewActivityService(repos, nil, nil, clock, log), clock, log)

	r := gin.New()
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/auth/refresh", authCtrl.RefreshToken)

	api := r.Group("/", middleware.NewAuthMiddleware(authService).JWTAuth())
	api.POST("/auth/logout", authCtrl.Logout)
	api.GET("/auth/me", authCtrl.GetCurrentUser)
	api.GET("/auth/session", authCtrl.GetSession)
	api.PUT("/auth/profile", authCtrl.UpdateProfile)

	api.GET("/students", studentCtrl.GetStudents)
	api.GET("/students/stats", studentCtrl.GetStudentStats)
	api.GET("/students/countries", studentCtrl.GetCountries)
	api.POST("/students", studentCtrl.CreateStudent)
	api.GET("/students/:id", studentCtrl.GetStudent)
	api.PUT("/students/:id", studentCtrl.UpdateStudent)
	api.DELETE("/students/:id", studentCtrl.DeleteStudent)
	api.GET("/students/:id/timeline", studentCtrl.GetStudentTimeline)
	api.GET("/students/:id/notes", noteCtrl.GetStudentNotes)
	api.POST("/students/:id/notes", noteCtrl.CreateNote)
	api.GET("/students/:id/activities", activityCtrl.GetStudentActivities)
	api.POST("/students/:id/activities", activityCtrl.RecordActivity)
	api.PUT("/notes/:id", noteCtrl.UpdateNote)
	api.DELETE("/notes/:id", noteCtrl.DeleteNote)

	api.GET("/communications", commCtrl.GetCommunications)
	api.GET("/communications/stats", commCtrl.GetCommunicationStats)
	api.GET("/communications/staff", commCtrl.GetStaffMembers)
	api.POST("/communications", commCtrl.CreateCommunication)
	api.GET("/communications/:id", commCtrl.GetCommunication)
	api.PUT("/communications/:id", commCtrl.UpdateCommunication)
	api.DELETE("/communications/:id", commCtrl.DeleteCommunication)

	ts := &testServer{router: r, store: store}
	resp := ts.do(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Data dto.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	ts.token = body.Data.Token.AccessToken
	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the data field of a success envelope into out
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.True(t, envelope.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

type studentPage struct {
	Data       []models.Student `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

func TestAuthController(t *testing.T) {
	ts := newTestServer(t)

	t.Run("me", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/auth/me", "")
		require.Equal(t, http.StatusOK, w.Code)
		var user models.StaffUser
		decode(t, w, &user)
		assert.Equal(t, "Sarah Johnson", user.Name)
	})

	t.Run("session", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/auth/session", "")
		require.Equal(t, http.StatusOK, w.Code)
		var session dto.SessionResponse
		decode(t, w, &session)
		assert.True(t, session.Valid)
	})

	t.Run("profile update", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/auth/profile", `{"name":"Sarah J. Johnson"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var user models.StaffUser
		decode(t, w, &user)
		assert.Equal(t, "Sarah J. Johnson", user.Name)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("profile rejects bad email", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/auth/profile", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
	})

	t.Run("wrong password", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"not-the-password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidCredentials, errorCode(t, w))
	})

	t.Run("short password is a validation error", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
	})

	t.Run("malformed login", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", `{"email":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
	})

	t.Run("logout ends the session", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/logout", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = ts.do(t, http.MethodGet, "/students", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthController_Refresh(t *testing.T) {
	ts := newTestServer(t)

	login := ts.do(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, login.Code)
	var first dto.AuthResponse
	decode(t, login, &first)
	ts.token = first.Token.AccessToken

	body := `{"refreshToken":"` + first.Token.RefreshToken + `"}`
	w := ts.do(t, http.MethodPost, "/auth/refresh", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var second dto.AuthResponse
	decode(t, w, &second)
	assert.NotEqual(t, first.Token.RefreshToken, second.Token.RefreshToken)

	w = ts.do(t, http.MethodPost, "/auth/refresh", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "refresh tokens are single use")
}

func TestAuthController_RequiresToken(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""

	w := ts.do(t, http.MethodGet, "/students", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

func TestStudentController_List(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		ids   []string
		total int
	}{
		{"default sort keeps insertion order", "", []string{"s1", "s2", "s3"}, 3},
		{"search", "?search=chen", []string{"s2"}, 1},
		{"status filter", "?status=Submitted", []string{"s3"}, 1},
		{"unknown status ignored", "?status=Bogus", []string{"s1", "s2", "s3"}, 3},
		{"recency week", "?lastActiveFilter=week", []string{"s1"}, 1},
		{"recency month", "?lastActiveFilter=month", []string{"s1", "s2"}, 2},
		{"sort by name desc", "?sortBy=name&sortOrder=desc", []string{"s3", "s1", "s2"}, 3},
		{"second page", "?pageSize=2&page=2", []string{"s3"}, 3},
		{"bad page falls back", "?page=abc&pageSize=-4", []string{"s1", "s2", "s3"}, 3},
		{"page far past the end is empty", "?page=184467440737095516&pageSize=100", []string{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/students"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			var page studentPage
			decode(t, w, &page)
			ids := make([]string, 0, len(page.Data))
			for _, s := range page.Data {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestStudentController_StatsAndCountries(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/students/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	decode(t, w, &stats)
	assert.EqualValues(t, 3, stats["total"])

	w = ts.do(t, http.MethodGet, "/students/countries", "")
	require.Equal(t, http.StatusOK, w.Code)
	var countries struct {
		Items []string `json:"items"`
		Count int      `json:"count"`
	}
	decode(t, w, &countries)
	assert.Equal(t, []string{"Canada", "India", "United States"}, countries.Items)
	assert.Equal(t, 3, countries.Count)
}

func TestStudentController_CRUD(t *testing.T) {
	ts := newTestServer(t)

	create := `{"name":"Maya Lopez","email":"maya.lopez@email.com","phone":"+1-555-987-6543","country":"Mexico",` +
		`"grade":"Junior","gpa":3.9,"fieldOfStudy":"Physics","tuitionBudget":30000,"preferredRegions":["West"]}`
	w := ts.do(t, http.MethodPost, "/students", create)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Student
	decode(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusExploring, created.ApplicationStatus)

	w = ts.do(t, http.MethodGet, "/students/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPut, "/students/"+created.ID, `{"applicationStatus":"Applying"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Student
	decode(t, w, &updated)
	assert.Equal(t, models.StatusApplying, updated.ApplicationStatus)
	assert.Equal(t, "Maya Lopez", updated.Name)

	w = ts.do(t, http.MethodDelete, "/students/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/students/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))
}

func TestStudentController_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   dto.ErrorCode
	}{
		{"missing student", http.MethodGet, "/students/nope", "", http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"update missing student", http.MethodPut, "/students/nope", `{"name":"X Y"}`, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"delete missing student", http.MethodDelete, "/students/nope", "", http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"gpa out of range", http.MethodPut, "/students/s1", `{"gpa":5.2}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"sat out of range", http.MethodPut, "/students/s1", `{"satMath":900}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"create without name", http.MethodPost, "/students", `{"email":"x@email.com"}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"malformed json", http.MethodPost, "/students", `{"name":`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}

	w := ts.do(t, http.MethodGet, "/students/s1", "")
	var s1 models.Student
	decode(t, w, &s1)
	assert.Equal(t, 3.7, s1.GPA, "rejected updates leave the record unchanged")
}

func TestStudentController_Timeline(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/students/s1/timeline", "")
	require.Equal(t, http.StatusOK, w.Code)
	var timeline services.Timeline
	decode(t, w, &timeline)
	assert.Equal(t, "John Smith", timeline.Student.Name)
	assert.Len(t, timeline.Communications, 1)
	assert.Len(t, timeline.Notes, 1)
	assert.Len(t, timeline.Activities, 1)
}

func TestCommunicationController(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/communications?search=ava", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Data  []map[string]interface{} `json:"data"`
		Total int                      `json:"total"`
	}
	decode(t, w, &page)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "m2", page.Data[0]["id"])
	assert.Equal(t, "Ava Chen", page.Data[0]["studentName"])

	w = ts.do(t, http.MethodPost, "/communications", `{"studentId":"s3","type":"sms","direction":"outbound","content":"Reminder"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	decode(t, w, &created)
	assert.Equal(t, "Sarah Johnson", created["staffMember"], "defaults to the signed in user")
	id := created["id"].(string)

	w = ts.do(t, http.MethodPut, "/communications/"+id, `{"content":"Reminder sent twice"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodGet, "/communications/staff", "")
	require.Equal(t, http.StatusOK, w.Code)
	var staff struct {
		Items []string `json:"items"`
	}
	decode(t, w, &staff)
	assert.Equal(t, []string{"Emily Rodriguez", "Mike Chen", "Sarah Johnson"}, staff.Items)

	w = ts.do(t, http.MethodGet, "/communications/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	decode(t, w, &stats)
	assert.EqualValues(t, 3, stats["total"])

	w = ts.do(t, http.MethodDelete, "/communications/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/communications/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/communications", `{"studentId":"s1","type":"fax","direction":"outbound","content":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteAndActivityControllers(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/students/s2/notes", `{"content":"Interested in scholarships"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var note models.Note
	decode(t, w, &note)
	assert.Equal(t, "Sarah Johnson", note.Author)

	w = ts.do(t, http.MethodPut, "/notes/"+note.ID, `{"isPrivate":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &note)
	assert.True(t, note.IsPrivate)

	w = ts.do(t, http.MethodGet, "/students/s2/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var notes struct {
		Items []models.Note `json:"items"`
	}
	decode(t, w, &notes)
	assert.Len(t, notes.Items, 1)

	w = ts.do(t, http.MethodDelete, "/notes/"+note.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/students/nope/notes", `{"content":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/students/s3/activities", `{"type":"college_add","description":"Added MIT"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, http.MethodGet, "/students/s3/activities", "")
	require.Equal(t, http.StatusOK, w.Code)
	var activities struct {
		Items []models.Activity `json:"items"`
	}
	decode(t, w, &activities)
	require.Len(t, activities.Items, 1)
	assert.Equal(t, models.ActivityCollegeAdd, activities.Items[0].Type)

	w = ts.do(t, http.MethodPost, "/students/s3/activities", `{"type":"teleport","description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
