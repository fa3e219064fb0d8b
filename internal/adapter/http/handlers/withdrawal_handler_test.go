package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_servicos/internal/adapter/http/handlers/mocks"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWithdrawalHandler_CreateWithdrawal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWithdrawalUseCase(ctrl)
		h := NewWithdrawalHandler(uc)

		r := gin.New()
		r.POST("/v1/withdrawals", h.CreateWithdrawal)

		req := httptest.NewRequest(http.MethodPost, "/v1/withdrawals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank selectors fall back to other", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWithdrawalUseCase(ctrl)
		h := NewWithdrawalHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, w entities.Withdrawal) (entities.Withdrawal, error) {
				if w.Category != entities.WithdrawalCategoryOther || w.Method != entities.WithdrawalMethodOther {
					t.Fatalf("expected other fallback, got %+v", w)
				}
				w.ID = "20240610120000"
				return w, nil
			},
		)

		r := gin.New()
		r.POST("/v1/withdrawals", h.CreateWithdrawal)

		body := `{"description":"retirada","amount":100,"withdrawal_date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/withdrawals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("amount validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWithdrawalUseCase(ctrl)
		h := NewWithdrawalHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Withdrawal{}, usecase.ErrWithdrawalAmountTooFine)

		r := gin.New()
		r.POST("/v1/withdrawals", h.CreateWithdrawal)

		body := `{"description":"retirada","amount":10.555,"withdrawal_date":"2024-06-10","category":"personal","method":"pix"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/withdrawals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWithdrawalHandler_ListWithdrawals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWithdrawalUseCase(ctrl)
	h := NewWithdrawalHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return(listing.WithdrawalPage{
		Items: []entities.Withdrawal{{
			ID:             "w1",
			Description:    "retirada",
			Amount:         100,
			WithdrawalDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Category:       entities.WithdrawalCategoryPersonal,
			Method:         entities.WithdrawalMethodPix,
		}},
		Shown: 1,
		Total: 1,
	}, 100.0, nil)

	r := gin.New()
	r.GET("/v1/withdrawals", h.ListWithdrawals)

	req := httptest.NewRequest(http.MethodGet, "/v1/withdrawals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["month_total"] != float64(100) {
		t.Fatalf("unexpected month total: %v", resp["month_total"])
	}
}

func TestWithdrawalHandler_DeleteWithdrawal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWithdrawalUseCase(ctrl)
	h := NewWithdrawalHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "w1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/withdrawals/:id", h.DeleteWithdrawal)

	req := httptest.NewRequest(http.MethodDelete, "/v1/withdrawals/w1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
