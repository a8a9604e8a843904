package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/handlers"
)

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalService = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, input portssvc.CreateJournalInput) (*domain.JournalEntry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, input portssvc.CreateJournalInput) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalService) Summarize(ctx context.Context, from, to *time.Time) (*domain.EntrySummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntrySummary), args.Error(1)
}

type JournalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockJournalService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockJournalService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{Journal: suite.mockService})
}

func (suite *JournalHandlerTestSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Created() {
	entry := &domain.JournalEntry{
		EntryID: "e-1",
		Date:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{LineID: "l-1", EntryID: "e-1", AccountID: "a-1", AccountName: "Cash", Debit: decimal.NewFromInt(3000000)},
			{LineID: "l-2", EntryID: "e-1", AccountID: "a-2", AccountName: "Capital", Credit: decimal.NewFromInt(3000000)},
		},
	}
	suite.mockService.On("CreateEntry", mock.Anything, mock.AnythingOfType("services.CreateJournalInput")).
		Return(entry, nil).Once()

	body := `{
		"date": "2025-01-02",
		"description": "Initial capital",
		"lines": [
			{"accountID": "a-1", "debit": 3000000},
			{"accountID": "a-2", "credit": 3000000}
		]
	}`
	w := suite.serve(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("e-1", resp["entryID"])
	suite.Equal("2025-01-02", resp["date"])
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MismatchEnvelope() {
	mismatch := &apperrors.MismatchError{
		DebitTotal:  decimal.NewFromInt(1000),
		CreditTotal: decimal.NewFromInt(900),
	}
	suite.mockService.On("CreateEntry", mock.Anything, mock.Anything).Return(nil, mismatch).Once()

	body := `{
		"date": "2025-01-02",
		"lines": [
			{"accountID": "a-1", "debit": 1000},
			{"accountID": "a-2", "credit": 900}
		]
	}`
	w := suite.serve(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DEBIT_CREDIT_MISMATCH", resp.Error.Code)
	suite.Contains(resp.Error.Details, "debit_total")
	suite.Contains(resp.Error.Details, "credit_total")
	suite.Contains(resp.Error.Details, "difference")
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MalformedDate() {
	body := `{"date": "02/01/2025", "lines": [{"accountID": "a-1", "debit": 10}, {"accountID": "a-2", "credit": 10}]}`
	w := suite.serve(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockService.On("GetEntryByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/journal-entries/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JOURNAL_ENTRY_NOT_FOUND", resp.Error.Code)
}

func (suite *JournalHandlerTestSuite) TestListEntries_ParsesWindow() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("ListEntries", mock.Anything, &from, &to, 10, 20).
		Return([]domain.JournalEntry{}, int64(0), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/journal-entries?from=2025-01-01&to=2025-01-31&limit=10&offset=20", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestDeleteEntry_NoContent() {
	suite.mockService.On("DeleteEntry", mock.Anything, "e-1").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/journal-entries/e-1", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
