package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/handler"
)

const (
	testDungeonID = "c1eebc99-9c0b-4ef8-bb6d-6bb9bd380001"
	testBattleID  = "9b2d7a41-58a4-4c2f-8f25-1f1c8f3b0a11"
)

func TestHandleEnterDungeon(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockBattleService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.EnterDungeonRequest{ProfileID: testProfileID, DungeonID: testDungeonID},
			setupMock: func(m *MockBattleService) {
				m.On("EnterDungeon", mock.Anything, testProfileID, testDungeonID).
					Return(&domain.Battle{ID: testBattleID, Status: domain.BattleStatusInProgress}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Non-uuid identifiers rejected",
			requestBody:    handler.EnterDungeonRequest{ProfileID: "aria", DungeonID: "emberdeep"},
			setupMock:      func(m *MockBattleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Battle already in progress",
			requestBody: handler.EnterDungeonRequest{ProfileID: testProfileID, DungeonID: testDungeonID},
			setupMock: func(m *MockBattleService) {
				m.On("EnterDungeon", mock.Anything, testProfileID, testDungeonID).
					Return(nil, domain.ErrBattleInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgBattleInProgressError,
		},
		{
			name:        "Below dungeon minimum level",
			requestBody: handler.EnterDungeonRequest{ProfileID: testProfileID, DungeonID: testDungeonID},
			setupMock: func(m *MockBattleService) {
				m.On("EnterDungeon", mock.Anything, testProfileID, testDungeonID).
					Return(nil, domain.ErrLevelRequirement)
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  handler.ErrMsgLevelRequirementError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBattleService)
			tt.setupMock(svc)

			body, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/battles", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.HandleEnterDungeon(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp handler.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleResolveTurn(t *testing.T) {
	t.Run("returns advanced battle", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("ResolveTurn", mock.Anything, testBattleID).Return(&domain.Battle{
			ID:     testBattleID,
			Status: domain.BattleStatusInProgress,
			Turns:  []domain.BattleTurn{{Turn: 1, PlayerDamage: 12}},
		}, nil)

		router := chi.NewRouter()
		router.Post("/battles/{battleID}/turn", handler.HandleResolveTurn(svc))

		req := httptest.NewRequest(http.MethodPost, "/battles/"+testBattleID+"/turn", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var b domain.Battle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		require.Len(t, b.Turns, 1)
		assert.Equal(t, 12, b.Turns[0].PlayerDamage)
	})

	t.Run("lost race maps to 409", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("ResolveTurn", mock.Anything, testBattleID).Return(nil, domain.ErrTickConflict)

		router := chi.NewRouter()
		router.Post("/battles/{battleID}/turn", handler.HandleResolveTurn(svc))

		req := httptest.NewRequest(http.MethodPost, "/battles/"+testBattleID+"/turn", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, handler.ErrMsgTickConflictError, resp.Error)
	})

	t.Run("finished battle maps to 409", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("ResolveTurn", mock.Anything, testBattleID).Return(nil, domain.ErrBattleFinished)

		router := chi.NewRouter()
		router.Post("/battles/{battleID}/turn", handler.HandleResolveTurn(svc))

		req := httptest.NewRequest(http.MethodPost, "/battles/"+testBattleID+"/turn", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleGetActiveBattle(t *testing.T) {
	t.Run("requires profile_id", func(t *testing.T) {
		svc := new(MockBattleService)

		req := httptest.NewRequest(http.MethodGet, "/battles/active", nil)
		rec := httptest.NewRecorder()
		handler.HandleGetActiveBattle(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetActiveBattle")
	})

	t.Run("maps no active battle to 404", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("GetActiveBattle", mock.Anything, testProfileID).Return(nil, domain.ErrBattleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/battles/active?profile_id="+testProfileID, nil)
		rec := httptest.NewRecorder()
		handler.HandleGetActiveBattle(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListDungeons(t *testing.T) {
	svc := new(MockBattleService)
	svc.On("ListDungeons", mock.Anything).Return([]domain.Dungeon{
		{ID: testDungeonID, Name: "Emberdeep Mines", MinLevel: 1, Levels: 10},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dungeons", nil)
	rec := httptest.NewRecorder()
	handler.HandleListDungeons(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []domain.Dungeon `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Emberdeep Mines", resp.Data[0].Name)
}

func TestHandleGetDungeonProgress(t *testing.T) {
	t.Run("returns progress", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("GetDungeonProgress", mock.Anything, testProfileID, testDungeonID).
			Return(&domain.DungeonProgress{ProfileID: testProfileID, DungeonID: testDungeonID, CurrentLevel: 4}, nil)

		router := chi.NewRouter()
		router.Get("/dungeons/{dungeonID}/progress", handler.HandleGetDungeonProgress(svc))

		req := httptest.NewRequest(http.MethodGet,
			"/dungeons/"+testDungeonID+"/progress?profile_id="+testProfileID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var progress domain.DungeonProgress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
		assert.Equal(t, 4, progress.CurrentLevel)
	})

	t.Run("never entered maps to 404", func(t *testing.T) {
		svc := new(MockBattleService)
		svc.On("GetDungeonProgress", mock.Anything, testProfileID, testDungeonID).
			Return(nil, domain.ErrDungeonNotFound)

		router := chi.NewRouter()
		router.Get("/dungeons/{dungeonID}/progress", handler.HandleGetDungeonProgress(svc))

		req := httptest.NewRequest(http.MethodGet,
			"/dungeons/"+testDungeonID+"/progress?profile_id="+testProfileID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
