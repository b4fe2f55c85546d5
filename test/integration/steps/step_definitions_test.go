// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kumpul/backend/config"
	"github.com/kumpul/backend/internal/infra/dependency"
	"github.com/kumpul/backend/internal/integration/email"
	"github.com/kumpul/backend/internal/integration/persistence/model"
	"github.com/kumpul/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	secondUserID  uuid.UUID
	hangoutID     uuid.UUID
	joinCode      string
	goalID        uuid.UUID
	expenseID     uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("kumpul", map[string]any{
			"users":                &model.UserModel{},
			"refresh_tokens":       &model.RefreshTokenModel{},
			"transactions":         &model.TransactionModel{},
			"savings_goals":        &model.SavingsGoalModel{},
			"hangouts":             &model.HangoutModel{},
			"hangout_participants": &model.HangoutParticipantModel{},
			"hangout_expenses":     &model.HangoutExpenseModel{},
			"email_queue":          &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^another user "([^"]*)" exists$`, test.anotherUserExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Hangout setup steps
	ctx.Given(`^I own a hangout titled "([^"]*)" with split method "([^"]*)"$`, test.iOwnAHangoutTitledWithSplitMethod)
	ctx.Given(`^the hangout is settled$`, test.theHangoutIsSettled)
	ctx.Given(`^the hangout allows at most (\d+) participants$`, test.theHangoutAllowsAtMostParticipants)
	ctx.Given(`^"([^"]*)" has joined the hangout$`, test.hasJoinedTheHangout)
	ctx.Given(`^an expense "([^"]*)" of "([^"]*)" paid by "([^"]*)" exists in the hangout$`, test.anExpensePaidByExistsInTheHangout)

	// Savings setup steps
	ctx.Given(`^I have a savings goal named "([^"]*)" with target "([^"]*)"$`, test.iHaveASavingsGoalNamedWithTarget)

	// Transaction setup steps
	ctx.Given(`^I have a "([^"]*)" transaction of "([^"]*)" in category "([^"]*)"$`, test.iHaveATransactionOfInCategory)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.secondUserID = uuid.Nil
	t.hangoutID = uuid.Nil
	t.joinCode = ""
	t.goalID = uuid.Nil
	t.expenseID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis(), email.NewMockEmailSender())
			if err != nil {
				panic(fmt.Sprintf("failed to wire test dependencies: %v", err))
			}

			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	_, err := t.createUser(email, "DefaultPass123!", "Test User")
	return err
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	_, err := t.createUser(email, password, "Test User")
	return err
}

func (t *testContext) anotherUserExists(email string) error {
	id, err := t.findOrCreateUser(email)
	if err != nil {
		return err
	}
	t.secondUserID = id
	return nil
}

func (t *testContext) createUser(email, password, name string) (uuid.UUID, error) {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		FullName:     name,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return userID, t.db.DbConn.Create(user).Error
}

func (t *testContext) findOrCreateUser(email string) (uuid.UUID, error) {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return userModel.ID, nil
	}

	userID := uuid.New()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		FullName:     "Test User " + email,
		PasswordHash: hashPassword("SecurePass123!"),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	return userID, t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	userID, err := t.findOrCreateUser(email)
	if err != nil {
		return err
	}
	t.currentUserID = userID

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "kumpul",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "kumpul",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iOwnAHangoutTitledWithSplitMethod(title, splitMethod string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no logged in user, call 'I am logged in as' first")
	}

	hangoutID := uuid.New()
	t.hangoutID = hangoutID
	t.joinCode = "ABC234"

	now := time.Now().UTC()
	hangout := &model.HangoutModel{
		ID:          hangoutID,
		OwnerID:     t.currentUserID,
		Title:       title,
		Date:        now.Truncate(24 * time.Hour),
		SplitMethod: splitMethod,
		IsActive:    true,
		JoinCode:    t.joinCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(hangout).Error; err != nil {
		return err
	}

	owner := &model.HangoutParticipantModel{
		ID:          uuid.New(),
		HangoutID:   hangoutID,
		UserID:      t.currentUserID,
		DisplayName: "Owner",
		JoinedAt:    now,
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(owner).Error
}

func (t *testContext) theHangoutIsSettled() error {
	return t.db.DbConn.Model(&model.HangoutModel{}).
		Where("id = ?", t.hangoutID).
		Updates(map[string]any{"is_settled": true, "is_active": false}).Error
}

func (t *testContext) theHangoutAllowsAtMostParticipants(max int) error {
	return t.db.DbConn.Model(&model.HangoutModel{}).
		Where("id = ?", t.hangoutID).
		Update("max_participants", max).Error
}

func (t *testContext) hasJoinedTheHangout(email string) error {
	userID, err := t.findOrCreateUser(email)
	if err != nil {
		return err
	}
	t.secondUserID = userID

	now := time.Now().UTC()
	participant := &model.HangoutParticipantModel{
		ID:          uuid.New(),
		HangoutID:   t.hangoutID,
		UserID:      userID,
		DisplayName: email,
		JoinedAt:    now,
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(participant).Error
}

func (t *testContext) anExpensePaidByExistsInTheHangout(description, amount, email string) error {
	payerID, err := t.findOrCreateUser(email)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid expense amount '%s': %w", amount, err)
	}

	expenseID := uuid.New()
	t.expenseID = expenseID

	now := time.Now().UTC()
	expense := &model.HangoutExpenseModel{
		ID:          expenseID,
		HangoutID:   t.hangoutID,
		PaidByID:    payerID,
		Description: description,
		Amount:      value,
		Date:        now.Truncate(24 * time.Hour),
		SplitAmong:  pq.StringArray{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(expense).Error
}

func (t *testContext) iHaveASavingsGoalNamedWithTarget(name, target string) error {
	value, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid goal amount '%s': %w", target, err)
	}

	goalID := uuid.New()
	t.goalID = goalID

	now := time.Now().UTC()
	goal := &model.SavingsGoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		GoalName:      name,
		GoalAmount:    value,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return t.db.DbConn.Create(goal).Error
}

func (t *testContext) iHaveATransactionOfInCategory(txType, amount, category string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid transaction amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastID = transactionID

	now := time.Now().UTC()
	transaction := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		Type:      txType,
		Amount:    value,
		Category:  category,
		Date:      now.Truncate(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(transaction).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{hangout_id}}", t.hangoutID.String())
	content = strings.ReplaceAll(content, "{{join_code}}", t.joinCode)
	content = strings.ReplaceAll(content, "{{goal_id}}", t.goalID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.expenseID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{second_user_id}}", t.secondUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIdentifiers(responseBody)
	}

	return nil
}

// captureIdentifiers pulls IDs out of a response so later steps can reference
// the created resource through placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
			if _, hasJoinCode := body["join_code"]; hasJoinCode {
				t.hangoutID = id
			}
			if _, hasGoalName := body["goal_name"]; hasGoalName {
				t.goalID = id
			}
		}
	}

	// Create/join hangout responses nest the hangout object
	if nested, ok := body["hangout"].(map[string]any); ok {
		if idStr, ok := nested["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.hangoutID = id
			}
		}
		if code, ok := nested["join_code"].(string); ok && code != "" {
			t.joinCode = code
		}
	}

	if code, ok := body["join_code"].(string); ok && code != "" {
		t.joinCode = code
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
