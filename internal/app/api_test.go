package app

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/foodcatalog-backend/internal/auth/password"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
	"go.uber.org/zap"
)

const (
	adminUsername = "admin"
	adminPassword = "correct horse battery staple"
)

// APITestSuite runs the whole router against a real database. It needs
// TEST_CONFIG_PATH pointing at a config such as config/test.yml.
type APITestSuite struct {
	suite.Suite
	cfg     *config.Config
	app     *App
	server  *httptest.Server
	baseUrl string
	token   string
}

func TestAPISuite(t *testing.T) {
	configPath := os.Getenv("TEST_CONFIG_PATH")
	if testing.Short() || configPath == "" {
		t.Skip("TEST_CONFIG_PATH is not set")
	}

	suite.Run(t, &APITestSuite{cfg: config.MustLoadByPath(configPath)})
}

func (s *APITestSuite) SetupSuite() {
	hash, err := password.New(zap.NewNop()).GenerateHashFromPassword([]byte(adminPassword))
	s.Require().NoError(err)

	s.cfg.Admin.Username = adminUsername
	s.cfg.Admin.PasswordHash = string(hash)
	s.cfg.Storage.Driver = StorageDriverLocal
	s.cfg.Storage.PublicDir = s.T().TempDir()

	s.app = NewApp(context.Background(), zap.NewNop(), *s.cfg)
	s.server = httptest.NewServer(s.app.HTTPServer.Handler)
	s.baseUrl = s.server.URL + "/api"
}

func (s *APITestSuite) TearDownSuite() {
	s.server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Require().NoError(s.app.Shutdown(ctx))
}

func (s *APITestSuite) SetupTest() {
	s.applyMigrations(true)
	s.token = s.login()
}

func (s *APITestSuite) TearDownTest() {
	s.applyMigrations(false)
}

func (s *APITestSuite) applyMigrations(isUp bool) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		s.cfg.PostgreSQL.Username,
		s.cfg.PostgreSQL.Password,
		s.cfg.PostgreSQL.Host,
		s.cfg.PostgreSQL.Port,
		s.cfg.PostgreSQL.Database,
	)

	db, err := sql.Open("postgres", dsn)
	s.Require().NoError(err)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	s.Require().NoError(err)

	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "postgres", driver)
	s.Require().NoError(err)

	if isUp {
		s.Require().NoError(m.Up())
		return
	}

	s.Require().NoError(m.Down())
}

func (s *APITestSuite) do(method, path, body string) (int, []byte) {
	req, err := http.NewRequest(method, s.baseUrl+path, bytes.NewBufferString(body))
	s.Require().NoError(err)

	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, respBody
}

func decode[T any](s *APITestSuite, body []byte) T {
	var result T
	s.Require().NoError(json.Unmarshal(body, &result), string(body))
	return result
}

func (s *APITestSuite) login() string {
	s.token = ""

	status, body := s.do(http.MethodPost, "/auth/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, adminUsername, adminPassword))
	s.Require().Equal(http.StatusOK, status, string(body))

	return decode[struct {
		AccessToken string `json:"accessToken"`
	}](s, body).AccessToken
}

type idOf struct {
	ID int `json:"id"`
}

func (s *APITestSuite) create(path, key, body string) int {
	status, respBody := s.do(http.MethodPost, path, body)
	s.Require().Equal(http.StatusCreated, status, string(respBody))

	return decode[map[string]idOf](s, respBody)[key].ID
}

// pngHeader is enough of a png for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func (s *APITestSuite) upload(filename string, content []byte) string {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, s.baseUrl+"/upload", body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(respBody))

	return decode[struct {
		FilePath string `json:"filePath"`
	}](s, respBody).FilePath
}

func (s *APITestSuite) TestPing() {
	status, body := s.do(http.MethodGet, "/ping", "")

	s.Equal(http.StatusOK, status)
	s.Equal("pong", string(body))
}

func (s *APITestSuite) TestDashboardRequiresToken() {
	s.token = ""

	status, body := s.do(http.MethodGet, "/contacts", "")

	s.Equal(http.StatusUnauthorized, status)
	s.JSONEq(`{"message":"missing authorization header"}`, string(body))
}

func (s *APITestSuite) TestDeleteIsRefusedWhileChildrenExist() {
	brandID := s.create("/brands", "brand", `{"name_en":"Al Wadi","name_ar":"الوادي","color":"#c8a165"}`)
	image := s.upload("spreads.png", pngHeader)
	categoryID := s.create("/categories", "category",
		fmt.Sprintf(`{"brand_id":%d,"name_en":"Spreads","name_ar":"أطباق","image":%q}`, brandID, image))
	s.create("/products", "product",
		fmt.Sprintf(`{"category_id":"%d","name_en":"Tahini","name_ar":"طحينة"}`, categoryID))

	status, body := s.do(http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), "")
	s.Equal(http.StatusBadRequest, status)
	s.JSONEq(`{"message":"cannot delete category: 1 product still reference it"}`, string(body))

	status, body = s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", brandID), "")
	s.Equal(http.StatusBadRequest, status)
	s.JSONEq(`{"message":"cannot delete brand: 1 category still reference it"}`, string(body))

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/categories/%d", categoryID), "")
	s.Equal(http.StatusOK, status)
}

func (s *APITestSuite) TestCreateWithMissingParent() {
	status, body := s.do(http.MethodPost, "/dishes", `{"dish_category_id":999,"name_en":"Kabsa","name_ar":"كبسة"}`)

	s.Equal(http.StatusNotFound, status)
	s.JSONEq(`{"message":"dish category not found"}`, string(body))

	status, body = s.do(http.MethodGet, "/dishes", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"dishes":[]}`, string(body))
}

func (s *APITestSuite) TestGetByID() {
	status, _ := s.do(http.MethodGet, "/products/abc", "")
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.do(http.MethodGet, "/products/12345", "")
	s.Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestSearchRecipeByArabicDishName() {
	dishCategoryID := s.create("/dish-categories", "dish_category", `{"name_en":"Mains","name_ar":"أطباق رئيسية"}`)
	dishID := s.create("/dishes", "dish",
		fmt.Sprintf(`{"dish_category_id":%d,"name_en":"Kabsa","name_ar":"كبسة دجاج"}`, dishCategoryID))
	recipeID := s.create("/recipes", "recipe",
		fmt.Sprintf(`{"dish_id":%d,"level":"easy","prep_time":20,"cooking_time":60,"servings":4,`+
			`"ingredients":[{"en":"Rice","ar":"أرز"}]}`, dishID))

	status, body := s.do(http.MethodGet, "/search?"+url.Values{"query": {"كبسة"}, "category": {"recipe"}}.Encode(), "")
	s.Require().Equal(http.StatusOK, status, string(body))

	results := decode[struct {
		Results []struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			NameAr   string `json:"nameAr"`
			Category string `json:"category"`
		} `json:"results"`
	}](s, body).Results

	s.Require().Len(results, 1)
	s.Equal(recipeID, results[0].ID)
	s.Equal("Kabsa", results[0].Name)
	s.Equal("كبسة دجاج", results[0].NameAr)
	s.Equal("recipe", results[0].Category)

	status, body = s.do(http.MethodGet, "/search?query=", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"results":[],"message":"No query provided"}`, string(body))
}
