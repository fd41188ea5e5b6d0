package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/zdzdigital/booky-backend/internal/app"
	"github.com/zdzdigital/booky-backend/internal/auth"
	"github.com/zdzdigital/booky-backend/internal/db"
	"github.com/zdzdigital/booky-backend/internal/reservation"
	"github.com/zdzdigital/booky-backend/internal/user"
)

var (
	testRouter   *gin.Engine
	testPool     *pgxpool.Pool
	jwtManager   *auth.JWTManager
	testNotifier *recordingNotifier
)

// testNow is the frozen clock of the whole suite: Monday 2026-09-07 08:00 UTC.
var testNow = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

// recordingNotifier captures lifecycle events instead of sending mail.
type recordingNotifier struct {
	mu       sync.Mutex
	created  []string
	approved []string
}

func (n *recordingNotifier) ReservationCreated(r *reservation.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, r.ID)
}

func (n *recordingNotifier) ReservationApproved(r *reservation.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.approved = append(n.approved, r.ID)
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = nil
	n.approved = nil
}

func (n *recordingNotifier) approvedCount(id string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, a := range n.approved {
		if a == id {
			count++
		}
	}
	return count
}

func TestMain(m *testing.M) {
	// Attempt to load .env from parent directory
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		log.Println("TEST_DB_DSN not set, skipping integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := db.Migrate(ctx, testPool, "../migrations"); err != nil {
		log.Fatalf("Unable to apply migrations: %v\n", err)
	}

	testSecret := os.Getenv("TEST_JWT_SECRET")
	if testSecret == "" {
		testSecret = "integration-test-secret"
	}

	testNotifier = &recordingNotifier{}

	// Initialize App Container using shared logic
	appContainer := app.NewContainer(app.Config{
		DBPool:     testPool,
		JWTSecret:  testSecret,
		JWTTTL:     30 * time.Minute,
		BcryptCost: 4, // Lower cost for testing purposes
		Location:   time.UTC,
		Notifier:   testNotifier,
		Now:        func() time.Time { return testNow },
	})

	testRouter = appContainer.Router
	jwtManager = appContainer.JWTManager

	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	testPool.Close()
	os.Exit(exitCode)
}

func clearTables() {
	ctx := context.Background()
	queries := []string{
		"TRUNCATE TABLE public.reservations CASCADE",
		"TRUNCATE TABLE public.holidays CASCADE",
		"TRUNCATE TABLE public.business_hours CASCADE",
		"TRUNCATE TABLE public.service_resources CASCADE",
		"TRUNCATE TABLE public.service_types CASCADE",
		"TRUNCATE TABLE public.resources CASCADE",
		"TRUNCATE TABLE public.users CASCADE",
	}
	for _, q := range queries {
		_, err := testPool.Exec(ctx, q)
		if err != nil {
			log.Printf("Failed to clean table: %v", err)
		}
	}
	testNotifier.reset()
}

func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, email, password string, isStaff bool) *user.User {
	hasher := auth.NewBcryptHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err, "Failed to hash password")

	u := &user.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  &email,
		IsActive:     true,
		IsStaff:      isStaff,
	}

	repo := user.NewPgxRepository(testPool)
	err = repo.Create(context.Background(), u)
	require.NoError(t, err, "Failed to create test user in DB")

	savedUser, err := repo.GetByEmail(context.Background(), email)
	require.NoError(t, err, "Failed to fetch created user")

	return savedUser
}

func generateToken(u *user.User) string {
	token, _ := jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsStaff)
	return token
}
