package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/middleware"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

// testEnv bundles the collaborators endpoint tests swap in.
type testEnv struct {
	router        *gin.Engine
	users         *store.MemoryStore
	sessions      *store.RedisSessions
	consultations *chat.Service
}

// setupEndpointTest wires a router with in-memory collaborators and all
// routes registered.
func setupEndpointTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	util.SetJWTSecret("test-secret-123")

	env := &testEnv{
		users:         store.NewMemoryStore(),
		sessions:      store.NewRedisSessions(nil),
		consultations: chat.NewService(nil),
	}

	r := gin.New()
	r.Use(middleware.Inject(env.users, env.sessions, env.consultations))
	r.Use(middleware.SessionResolver())

	r.POST("/login", Login)
	r.POST("/logout", Logout)
	r.GET("/user", GetUser)
	r.PATCH("/user", UpdateUser)
	r.GET("/user/all", ListAllUsers)
	r.GET("/doctor", ListDoctors)
	r.GET("/doctor/:id", GetDoctor)
	r.GET("/doctor/:id/slots", DoctorSlots)
	r.POST("/doctor/:id/book", BookAppointment)
	r.GET("/report", ListReports)
	r.POST("/report", CreateReport)
	r.PATCH("/report/:id", UpdateReport)
	r.DELETE("/report/:id", DeleteReport)
	r.POST("/consultation", OpenConsultation)
	r.POST("/consultation/:id/message", SendConsultationMessage)
	r.POST("/consultation/:id/end", EndConsultation)
	r.POST("/summary", GenerateSummary)
	r.POST("/summary/save", SaveSummary)

	env.router = r
	return env
}

// do performs a request with an optional JSON body and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login logs the given email in and returns nothing; subsequent requests are
// resolved through the current-user pointer.
func (e *testEnv) login(t *testing.T, email string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": "ignored",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// decode parses the response envelope and returns its data as a generic map.
func decode(t *testing.T, w *httptest.ResponseRecorder) (util.APIResponse, map[string]interface{}) {
	t.Helper()
	var resp util.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

func assertSuccess(t *testing.T, w *httptest.ResponseRecorder) (util.APIResponse, map[string]interface{}) {
	t.Helper()
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp, data := decode(t, w)
	assert.True(t, resp.Success)
	return resp, data
}
