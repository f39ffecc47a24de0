package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users           map[string]*domain.User
	CreateOrGetFn   func(id, email string, displayName *string) (*domain.User, error)
	UpdateProfileFn func(user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGet creates or retrieves a user
func (m *MockUserRepository) CreateOrGet(ctx context.Context, id, email string, displayName *string) (*domain.User, error) {
	if m.CreateOrGetFn != nil {
		return m.CreateOrGetFn(id, email, displayName)
	}
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	now := time.Now()
	user := &domain.User{
		ID:            id,
		Email:         email,
		DisplayName:   displayName,
		Categories:    []domain.ProfileCategory{},
		FinancialTips: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.Users[id] = user
	return user, nil
}

// UpdateProfile replaces the stored profile
func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(user)
	}
	if _, ok := m.Users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	m.Users[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.ID] = user
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses map[uuid.UUID]*domain.Expense
	CreateFn func(expense *domain.Expense) (*domain.Expense, error)
	ListFn   func(userID string, filters *domain.ExpenseFilters) ([]*domain.Expense, error)
	UpdateFn func(expense *domain.Expense) (*domain.Expense, error)
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[uuid.UUID]*domain.Expense),
	}
}

// Create stores a new expense
func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(expense)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now()
	}
	m.Expenses[expense.ID] = expense
	return expense, nil
}

// GetByID retrieves an expense owned by the user
func (m *MockExpenseRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Expense, error) {
	if exp, ok := m.Expenses[id]; ok && exp.UserID == userID {
		return exp, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// List returns the user's expenses newest first, honoring the date filters
func (m *MockExpenseRepository) List(ctx context.Context, userID string, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	if m.ListFn != nil {
		return m.ListFn(userID, filters)
	}
	result := make([]*domain.Expense, 0)
	for _, exp := range m.Expenses {
		if exp.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.StartDate != nil && exp.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && exp.Date.After(*filters.EndDate) {
				continue
			}
		}
		result = append(result, exp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if filters != nil && filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

// Update changes amount, category and note of an existing expense
func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(expense)
	}
	existing, ok := m.Expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return nil, domain.ErrExpenseNotFound
	}
	updated := *existing
	updated.Amount = expense.Amount
	updated.Category = expense.Category
	updated.Note = expense.Note
	m.Expenses[expense.ID] = &updated
	return &updated, nil
}

// Delete removes an expense owned by the user
func (m *MockExpenseRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	exp, ok := m.Expenses[id]
	if !ok || exp.UserID != userID {
		return domain.ErrExpenseNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	m.Expenses[expense.ID] = expense
}

// MockRecurringRepository is a mock implementation of domain.RecurringRepository
type MockRecurringRepository struct {
	Items    map[uuid.UUID]*domain.RecurringExpense
	CreateFn func(rt *domain.RecurringExpense) (*domain.RecurringExpense, error)
	ListFn   func(userID string) ([]*domain.RecurringExpense, error)

	UpdateScheduleFn func(id uuid.UUID, nextDate, processedAt time.Time) error
}

// NewMockRecurringRepository creates a new MockRecurringRepository
func NewMockRecurringRepository() *MockRecurringRepository {
	return &MockRecurringRepository{
		Items: make(map[uuid.UUID]*domain.RecurringExpense),
	}
}

// Create stores a new recurring expense
func (m *MockRecurringRepository) Create(ctx context.Context, rt *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(rt)
	}
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now()
	}
	m.Items[rt.ID] = rt
	return rt, nil
}

// GetByID retrieves a recurring expense owned by the user
func (m *MockRecurringRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.RecurringExpense, error) {
	if rt, ok := m.Items[id]; ok && rt.UserID == userID {
		return rt, nil
	}
	return nil, domain.ErrRecurringNotFound
}

// List returns the user's recurring expenses ordered by next date
func (m *MockRecurringRepository) List(ctx context.Context, userID string) ([]*domain.RecurringExpense, error) {
	if m.ListFn != nil {
		return m.ListFn(userID)
	}
	result := make([]*domain.RecurringExpense, 0)
	for _, rt := range m.Items {
		if rt.UserID == userID {
			result = append(result, rt)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NextDate.Before(result[j].NextDate)
	})
	return result, nil
}

// Delete removes a recurring expense owned by the user
func (m *MockRecurringRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	rt, ok := m.Items[id]
	if !ok || rt.UserID != userID {
		return domain.ErrRecurringNotFound
	}
	delete(m.Items, id)
	return nil
}

// ListDue returns recurring expenses across users whose next date is before the cutoff
func (m *MockRecurringRepository) ListDue(ctx context.Context, before time.Time, limit int) ([]*domain.RecurringExpense, error) {
	result := make([]*domain.RecurringExpense, 0)
	for _, rt := range m.Items {
		if !rt.NextDate.Before(before) {
			continue
		}
		if rt.EndDate != nil && rt.NextDate.After(*rt.EndDate) {
			continue
		}
		result = append(result, rt)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NextDate.Before(result[j].NextDate)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// UpdateSchedule sets the next date and last processed time
func (m *MockRecurringRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, nextDate, processedAt time.Time) error {
	if m.UpdateScheduleFn != nil {
		return m.UpdateScheduleFn(id, nextDate, processedAt)
	}
	rt, ok := m.Items[id]
	if !ok {
		return domain.ErrRecurringNotFound
	}
	rt.NextDate = nextDate
	processed := processedAt
	rt.LastProcessed = &processed
	return nil
}

// AddRecurring adds a recurring expense to the mock repository (helper for tests)
func (m *MockRecurringRepository) AddRecurring(rt *domain.RecurringExpense) {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	m.Items[rt.ID] = rt
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Limits   map[string]domain.BudgetLimits
	UpsertFn func(userID string, limits domain.BudgetLimits) error
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Limits: make(map[string]domain.BudgetLimits),
	}
}

// Get returns a copy of the user's limits
func (m *MockBudgetRepository) Get(ctx context.Context, userID string) (domain.BudgetLimits, error) {
	result := make(domain.BudgetLimits)
	for cat, limit := range m.Limits[userID] {
		result[cat] = limit
	}
	return result, nil
}

// Upsert merges the given limits into the user's limits
func (m *MockBudgetRepository) Upsert(ctx context.Context, userID string, limits domain.BudgetLimits) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(userID, limits)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	current, ok := m.Limits[userID]
	if !ok {
		current = make(domain.BudgetLimits)
		m.Limits[userID] = current
	}
	for cat, limit := range limits {
		current[cat] = limit
	}
	return nil
}

// Delete removes one category limit
func (m *MockBudgetRepository) Delete(ctx context.Context, userID string, category string) error {
	current, ok := m.Limits[userID]
	if !ok {
		return domain.ErrBudgetNotFound
	}
	if _, ok := current[category]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(current, category)
	return nil
}

// MockIncomeRepository is a mock implementation of domain.IncomeRepository
type MockIncomeRepository struct {
	Incomes  map[string]*domain.Income
	UpsertFn func(income *domain.Income) (*domain.Income, error)
}

// NewMockIncomeRepository creates a new MockIncomeRepository
func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{
		Incomes: make(map[string]*domain.Income),
	}
}

func incomeKey(userID string, year, month int) string {
	return fmt.Sprintf("%s/%04d-%02d", userID, year, month)
}

// Upsert stores the income for its (year, month) key
func (m *MockIncomeRepository) Upsert(ctx context.Context, income *domain.Income) (*domain.Income, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(income)
	}
	stored := *income
	stored.UpdatedAt = time.Now()
	m.Incomes[incomeKey(income.UserID, income.Year, income.Month)] = &stored
	return &stored, nil
}

// Get retrieves the income for one month
func (m *MockIncomeRepository) Get(ctx context.Context, userID string, year, month int) (*domain.Income, error) {
	if inc, ok := m.Incomes[incomeKey(userID, year, month)]; ok {
		return inc, nil
	}
	return nil, domain.ErrIncomeNotFound
}

// List returns the user's incomes, newest month first
func (m *MockIncomeRepository) List(ctx context.Context, userID string) ([]*domain.Income, error) {
	result := make([]*domain.Income, 0)
	for _, inc := range m.Incomes {
		if inc.UserID == userID {
			result = append(result, inc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

// Delete removes the income for one month
func (m *MockIncomeRepository) Delete(ctx context.Context, userID string, year, month int) error {
	key := incomeKey(userID, year, month)
	if _, ok := m.Incomes[key]; !ok {
		return domain.ErrIncomeNotFound
	}
	delete(m.Incomes, key)
	return nil
}

// MockTextGenerator is a mock implementation of ai.TextGenerator
type MockTextGenerator struct {
	Response string
	Err      error
	// Calls records the prompts of every Generate call
	Calls      []GenerateCall
	GenerateFn func(systemPrompt, userPrompt string) (string, error)
}

// GenerateCall is one recorded Generate invocation
type GenerateCall struct {
	SystemPrompt string
	UserPrompt   string
}

// Generate records the call and returns the canned response
func (m *MockTextGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls = append(m.Calls, GenerateCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	if m.GenerateFn != nil {
		return m.GenerateFn(systemPrompt, userPrompt)
	}
	return m.Response, m.Err
}

// MockReportStore is a mock implementation of domain.ReportStore
type MockReportStore struct {
	Objects      map[string][]byte
	ContentTypes map[string]string
	PutFn        func(key string, data []byte) error
}

// NewMockReportStore creates a new MockReportStore
func NewMockReportStore() *MockReportStore {
	return &MockReportStore{
		Objects:      make(map[string][]byte),
		ContentTypes: make(map[string]string),
	}
}

// Put stores the object in memory
func (m *MockReportStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if m.PutFn != nil {
		return m.PutFn(key, data)
	}
	m.Objects[key] = data
	m.ContentTypes[key] = contentType
	return nil
}

// PresignGet returns a fake download URL for a stored object
func (m *MockReportStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if _, ok := m.Objects[key]; !ok {
		return "", fmt.Errorf("object %s not found", key)
	}
	return fmt.Sprintf("https://reports.example.com/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// PublishedEvent is one event captured by MockEventPublisher
type PublishedEvent struct {
	UserID string
	Event  websocket.Event
}

// MockEventPublisher captures published events for assertions
type MockEventPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(userID string, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{UserID: userID, Event: event})
}

// Events returns a copy of the captured events
func (m *MockEventPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

// EventTypes returns the combined type of every captured event, in order
func (m *MockEventPublisher) EventTypes() []string {
	events := m.Events()
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Event.Type
	}
	return types
}
