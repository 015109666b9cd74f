package tests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"

	. "github.com/learnplaygrow/backend/apps/api/echo"
	"github.com/learnplaygrow/backend/core"
	"github.com/learnplaygrow/backend/core/catalog"
	"github.com/learnplaygrow/backend/core/quiz"
	"github.com/learnplaygrow/backend/core/user"
	logsvc "github.com/learnplaygrow/backend/services/logger"
	inmemdb "github.com/learnplaygrow/backend/storage/database/inmem"
)

var (
	errMissingToken = httpErr{Message: "missing or malformed jwt"}
	errInvalidToken = httpErr{Message: "invalid or expired jwt"}
)

func newTestConfig() *core.Config {
	return &core.Config{
		TestMode:  true,
		AppName:   "Learn Play Grow",
		SecretKey: "test-secret-key",
		Server:    core.ServerConfig{JWTExpirationDelta: 7 * 24 * time.Hour},
	}
}

// setup stands up a Server against fresh in-memory repositories.
func setup(t *testing.T) (Server, user.Repository, *core.Config) {
	t.Helper()

	conf := newTestConfig()
	usrRepo := inmemdb.NewUserRepository()
	usrSvc := user.NewService(usrRepo)

	app := NewServer(
		"",  /* addr */
		nil, /* shutdown */
		&Deps{
			Conf:       conf,
			Logger:     logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0)),
			UserSvc:    usrSvc,
			CatalogSvc: catalog.NewService(inmemdb.NewCatalogRepository(), usrSvc),
			QuizSvc:    quiz.NewService(inmemdb.NewQuizRepository()),
		},
	)
	return app, usrRepo, conf
}

type httpErr struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	t.Helper()

	token, err := GenerateToken(conf, GetUserClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func parseToken(t *testing.T, conf *core.Config, token string) *Claims {
	t.Helper()

	claims := new(Claims)
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	require.NoError(t, err)
	return claims
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

// getData GETs path and decodes the `{"data": ...}` envelope into out.
func getData(t *testing.T, app Server, path string, out interface{}) {
	t.Helper()

	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
