//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopledger/backend/config"
	"github.com/shopledger/backend/internal/infra/dependency"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var userCounter int

// testContext holds the per-scenario state: a fresh in-memory database,
// an embedded Redis and an HTTP server running the full application.
type testContext struct {
	server      *httptest.Server
	mini        *miniredis.Miniredis
	redisClient *redis.Client
	client      *http.Client

	accessToken       string
	refreshToken      string
	staleRefreshToken string
	itemIDs           map[string]string
	customerIDs       map[string]string
	lastPurchaseID    string

	status int
	raw    []byte
	body   map[string]any
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT: config.JWTConfig{
			Secret:             testJWTSecret,
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Dashboard: config.DashboardConfig{
			DailyTarget:         1000,
			MonthlyTarget:       25000,
			ItemTrendUp:         10,
			ItemTrendSteady:     5,
			CustomerTrendUp:     5,
			CustomerTrendSteady: 2,
			TopN:                5,
			CacheTTL:            time.Minute,
		},
	}
}

func (t *testContext) before() error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ItemModel{},
		&model.SaleModel{},
		&model.SaleLineModel{},
		&model.PurchaseModel{},
		&model.PurchaseLineModel{},
		&model.CustomerModel{},
		&model.BankAccountModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}

	t.mini, err = miniredis.Run()
	if err != nil {
		return fmt.Errorf("failed to start miniredis: %w", err)
	}
	t.redisClient = redis.NewClient(&redis.Options{Addr: t.mini.Addr()})

	injector := dependency.NewInjector(testConfig(), db, t.redisClient, func() bool { return true })
	engine := injector.Router.Setup("test")

	t.server = httptest.NewServer(engine)
	t.client = &http.Client{Timeout: 10 * time.Second}
	t.accessToken = ""
	t.refreshToken = ""
	t.staleRefreshToken = ""
	t.itemIDs = make(map[string]string)
	t.customerIDs = make(map[string]string)
	t.lastPurchaseID = ""
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
	}
	if t.redisClient != nil {
		_ = t.redisClient.Close()
	}
	if t.mini != nil {
		t.mini.Close()
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)

	// Data setup steps
	ctx.Given(`^the following items exist:$`, test.theFollowingItemsExist)
	ctx.Given(`^a customer "([^"]*)" exists$`, test.aCustomerExists)
	ctx.Given(`^a bank account "([^"]*)" of type "([^"]*)" with balance (\d+) exists$`, test.aBankAccountExists)
	ctx.Given(`^a sale of (\d+) "([^"]*)" at (\d+(?:\.\d+)?) each with status "([^"]*)" exists$`, test.aSaleExists)
	ctx.Given(`^a sale of (\d+) "([^"]*)" at (\d+(?:\.\d+)?) each for customer "([^"]*)" exists$`, test.aSaleForCustomerExists)
	ctx.Given(`^a purchase of (\d+) "([^"]*)" at (\d+(?:\.\d+)?) each exists$`, test.aPurchaseExists)
	ctx.Given(`^the purchase is received$`, test.thePurchaseIsReceived)

	// Session steps
	ctx.When(`^I refresh my session$`, test.iRefreshMySession)
	ctx.When(`^I refresh my session with the revoked token$`, test.iRefreshMySessionWithTheRevokedToken)
	ctx.When(`^I log out$`, test.iLogOut)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I receive the purchase again$`, test.thePurchaseIsReceivedRaw)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	userCounter++
	payload := map[string]any{
		"name":     "Test User",
		"email":    fmt.Sprintf("tester%d@example.com", userCounter),
		"password": "str0ng-password",
	}
	if err := t.doJSONRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("registration failed: status %d, body %s", t.status, t.raw)
	}
	token, _ := t.body["access_token"].(string)
	if token == "" {
		return fmt.Errorf("no access token in registration response: %s", t.raw)
	}
	t.accessToken = token
	t.refreshToken, _ = t.body["refresh_token"].(string)
	return nil
}

func (t *testContext) iRefreshMySession() error {
	if t.refreshToken == "" {
		return fmt.Errorf("no refresh token available")
	}
	old := t.refreshToken
	if err := t.doJSONRequest(http.MethodPost, "/api/v1/auth/refresh", map[string]any{
		"refresh_token": t.refreshToken,
	}); err != nil {
		return err
	}
	if t.status == http.StatusOK {
		t.staleRefreshToken = old
		t.accessToken, _ = t.body["access_token"].(string)
		t.refreshToken, _ = t.body["refresh_token"].(string)
	}
	return nil
}

func (t *testContext) iRefreshMySessionWithTheRevokedToken() error {
	if t.staleRefreshToken == "" {
		return fmt.Errorf("no revoked refresh token available")
	}
	return t.doJSONRequest(http.MethodPost, "/api/v1/auth/refresh", map[string]any{
		"refresh_token": t.staleRefreshToken,
	})
}

func (t *testContext) iLogOut() error {
	return t.doJSONRequest(http.MethodPost, "/api/v1/auth/logout", map[string]any{
		"refresh_token": t.refreshToken,
	})
}

func (t *testContext) theFollowingItemsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("items table needs a header row and at least one data row")
	}

	header := table.Rows[0].Cells
	for _, row := range table.Rows[1:] {
		fields := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			fields[header[i].Value] = cell.Value
		}

		payload := map[string]any{
			"name":     fields["name"],
			"sku":      fields["sku"],
			"category": fields["category"],
			"supplier": fields["supplier"],
		}
		for _, numeric := range []string{"cost", "price"} {
			if v := fields[numeric]; v != "" {
				parsed, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return fmt.Errorf("invalid %s %q: %w", numeric, v, err)
				}
				payload[numeric] = parsed
			}
		}
		for _, numeric := range []string{"stock", "min_stock"} {
			if v := fields[numeric]; v != "" {
				parsed, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("invalid %s %q: %w", numeric, v, err)
				}
				payload[numeric] = parsed
			}
		}

		if err := t.doJSONRequest(http.MethodPost, "/api/v1/items", payload); err != nil {
			return err
		}
		if t.status != http.StatusCreated {
			return fmt.Errorf("failed to create item %q: status %d, body %s", fields["name"], t.status, t.raw)
		}
		t.itemIDs[fields["name"]], _ = t.body["id"].(string)
	}
	return nil
}

func (t *testContext) aCustomerExists(name string) error {
	payload := map[string]any{
		"name":  name,
		"email": strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
	}
	if err := t.doJSONRequest(http.MethodPost, "/api/v1/customers", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("failed to create customer %q: status %d, body %s", name, t.status, t.raw)
	}
	t.customerIDs[name], _ = t.body["id"].(string)
	return nil
}

func (t *testContext) aBankAccountExists(name, accountType string, balance int) error {
	payload := map[string]any{
		"name":    name,
		"type":    accountType,
		"balance": balance,
	}
	if err := t.doJSONRequest(http.MethodPost, "/api/v1/accounts", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("failed to create account %q: status %d, body %s", name, t.status, t.raw)
	}
	return nil
}

func (t *testContext) aSaleExists(quantity int, itemName, unitPrice, status string) error {
	return t.createSale(quantity, itemName, unitPrice, status, "")
}

func (t *testContext) aSaleForCustomerExists(quantity int, itemName, unitPrice, customerName string) error {
	return t.createSale(quantity, itemName, unitPrice, "paid", customerName)
}

func (t *testContext) createSale(quantity int, itemName, unitPrice, status, customerName string) error {
	itemID, ok := t.itemIDs[itemName]
	if !ok {
		return fmt.Errorf("unknown item %q", itemName)
	}
	price, err := strconv.ParseFloat(unitPrice, 64)
	if err != nil {
		return fmt.Errorf("invalid unit price %q: %w", unitPrice, err)
	}

	payload := map[string]any{
		"payment_status": status,
		"lines": []map[string]any{
			{"item_id": itemID, "quantity": quantity, "unit_price": price},
		},
	}
	if customerName != "" {
		customerID, ok := t.customerIDs[customerName]
		if !ok {
			return fmt.Errorf("unknown customer %q", customerName)
		}
		payload["customer_id"] = customerID
	}

	if err := t.doJSONRequest(http.MethodPost, "/api/v1/sales", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("failed to create sale: status %d, body %s", t.status, t.raw)
	}
	return nil
}

func (t *testContext) aPurchaseExists(quantity int, itemName, unitCost string) error {
	itemID, ok := t.itemIDs[itemName]
	if !ok {
		return fmt.Errorf("unknown item %q", itemName)
	}
	cost, err := strconv.ParseFloat(unitCost, 64)
	if err != nil {
		return fmt.Errorf("invalid unit cost %q: %w", unitCost, err)
	}

	payload := map[string]any{
		"supplier_name": "Acme Supply Co",
		"lines": []map[string]any{
			{"item_id": itemID, "quantity": quantity, "unit_cost": cost},
		},
	}
	if err := t.doJSONRequest(http.MethodPost, "/api/v1/purchases", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("failed to create purchase: status %d, body %s", t.status, t.raw)
	}
	t.lastPurchaseID, _ = t.body["id"].(string)
	return nil
}

func (t *testContext) thePurchaseIsReceived() error {
	if err := t.thePurchaseIsReceivedRaw(); err != nil {
		return err
	}
	if t.status != http.StatusOK {
		return fmt.Errorf("failed to receive purchase: status %d, body %s", t.status, t.raw)
	}
	return nil
}

func (t *testContext) thePurchaseIsReceivedRaw() error {
	if t.lastPurchaseID == "" {
		return fmt.Errorf("no purchase has been created")
	}
	return t.doRequest(http.MethodPost, "/api/v1/purchases/"+t.lastPurchaseID+"/receive", nil)
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.doRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.doRequest(method, endpoint, []byte(body.Content))
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.status != expected {
		return fmt.Errorf("expected status %d, got %d, body: %s", expected, t.status, t.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.raw), expected) {
		return fmt.Errorf("response does not contain %q, body: %s", expected, t.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	actual := formatFieldValue(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q, body: %s", path, expected, actual, t.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	if _, err := t.lookupField(path); err != nil {
		return err
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(path string, count int) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array, body: %s", path, t.raw)
	}
	if len(list) != count {
		return fmt.Errorf("expected field %q to have %d items, got %d, body: %s", path, count, len(list), t.raw)
	}
	return nil
}

// lookupField navigates a dot-separated path through the decoded JSON
// response. Numeric segments index into arrays.
func (t *testContext) lookupField(path string) (any, error) {
	if t.body == nil {
		return nil, fmt.Errorf("response body is not a JSON object: %s", t.raw)
	}

	var current any = t.body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response, body: %s", path, t.raw)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q, body: %s", segment, path, t.raw)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot navigate into field %q of path %q, body: %s", segment, path, t.raw)
		}
	}
	return current, nil
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (t *testContext) doJSONRequest(method, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return t.doRequest(method, endpoint, body)
}

// expandPlaceholders substitutes {item:Name} and {customer:Name} tokens
// with the IDs of records created earlier in the scenario.
func (t *testContext) expandPlaceholders(s string) string {
	for name, id := range t.itemIDs {
		s = strings.ReplaceAll(s, "{item:"+name+"}", id)
	}
	for name, id := range t.customerIDs {
		s = strings.ReplaceAll(s, "{customer:"+name+"}", id)
	}
	return s
}

func (t *testContext) doRequest(method, endpoint string, body []byte) error {
	endpoint = t.expandPlaceholders(endpoint)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader([]byte(t.expandPlaceholders(string(body))))
	}

	req, err := http.NewRequest(method, t.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	t.status = resp.StatusCode
	t.raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.body = nil
	_ = json.Unmarshal(t.raw, &t.body)
	return nil
}
