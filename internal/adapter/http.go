package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/expense-tracker/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the REST implementation of [APIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// resty client with the resolved base URL and request timeout.
func NewHTTPAPIClient(cfg HTTPClientConfig) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request builder with the stored bearer token attached.
func (h *httpAPIClient) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

// listQuery converts params into the API's query-string representation.
func listQuery(params ListParams) url.Values {
	query := url.Values{}
	if params.Skip > 0 {
		query.Set("skip", strconv.FormatUint(params.Skip, 10))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.FormatUint(params.Limit, 10))
	}
	for _, categoryID := range params.CategoryIDs {
		query.Add("category_id", strconv.FormatInt(categoryID, 10))
	}
	return query
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (h *httpAPIClient) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	var me models.User

	resp, err := h.authorized(ctx).
		SetResult(&me).
		Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return me, nil
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (h *httpAPIClient) CreateExpense(ctx context.Context, payload models.ExpenseUpsert) (models.Expense, error) {
	var created models.Expense

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/api/expenses/")
	if err != nil {
		return models.Expense{}, fmt.Errorf("create expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return created, nil
}

func (h *httpAPIClient) ListExpenses(ctx context.Context, params ListParams) ([]models.Expense, error) {
	var expenses []models.Expense

	resp, err := h.authorized(ctx).
		SetQueryParamsFromValues(listQuery(params)).
		SetResult(&expenses).
		Get("/api/expenses/")
	if err != nil {
		return nil, fmt.Errorf("list expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (h *httpAPIClient) GetExpense(ctx context.Context, id int64) (models.Expense, error) {
	var expense models.Expense

	resp, err := h.authorized(ctx).
		SetResult(&expense).
		Get(fmt.Sprintf("/api/expenses/%d", id))
	if err != nil {
		return models.Expense{}, fmt.Errorf("get expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

func (h *httpAPIClient) UpdateExpense(ctx context.Context, id int64, payload models.ExpenseUpsert) (models.Expense, error) {
	var updated models.Expense

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/expenses/%d", id))
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteExpense(ctx context.Context, id int64) error {
	resp, err := h.authorized(ctx).
		Delete(fmt.Sprintf("/api/expenses/%d", id))
	if err != nil {
		return fmt.Errorf("delete expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── Salaries ─────────────────────────────────────────────────────────────────

func (h *httpAPIClient) CreateSalary(ctx context.Context, payload models.SalaryUpsert) (models.Salary, error) {
	var created models.Salary

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/api/salaries/")
	if err != nil {
		return models.Salary{}, fmt.Errorf("create salary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salary{}, err
	}

	return created, nil
}

func (h *httpAPIClient) ListSalaries(ctx context.Context, params ListParams) ([]models.Salary, error) {
	var salaries []models.Salary

	resp, err := h.authorized(ctx).
		SetQueryParamsFromValues(listQuery(params)).
		SetResult(&salaries).
		Get("/api/salaries/")
	if err != nil {
		return nil, fmt.Errorf("list salaries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return salaries, nil
}

func (h *httpAPIClient) GetSalary(ctx context.Context, id int64) (models.Salary, error) {
	var salary models.Salary

	resp, err := h.authorized(ctx).
		SetResult(&salary).
		Get(fmt.Sprintf("/api/salaries/%d", id))
	if err != nil {
		return models.Salary{}, fmt.Errorf("get salary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salary{}, err
	}

	return salary, nil
}

func (h *httpAPIClient) UpdateSalary(ctx context.Context, id int64, payload models.SalaryUpsert) (models.Salary, error) {
	var updated models.Salary

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/salaries/%d", id))
	if err != nil {
		return models.Salary{}, fmt.Errorf("update salary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salary{}, err
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteSalary(ctx context.Context, id int64) error {
	resp, err := h.authorized(ctx).
		Delete(fmt.Sprintf("/api/salaries/%d", id))
	if err != nil {
		return fmt.Errorf("delete salary request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── Categories ───────────────────────────────────────────────────────────────

func (h *httpAPIClient) CreateCategory(ctx context.Context, payload models.CategoryUpsert) (models.Category, error) {
	var created models.Category

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/api/expenses/categories/")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return created, nil
}

func (h *httpAPIClient) ListCategories(ctx context.Context, params ListParams) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(listQuery(params)).
		SetResult(&categories).
		Get("/api/expenses/categories/")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return categories, nil
}
