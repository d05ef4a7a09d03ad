package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"damage_report/internal/adapter/http/handlers/mocks"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBrief = `{"businessName":"Rosa's Bakery","industry":"food","topic":"autumn menu","platforms":["instagram","twitter"]}`

func TestContentHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewContentHandler(mocks.NewMockIContentUseCase(ctrl))

		r := gin.New()
		r.POST("/content/generate", h.Generate)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/content/generate", `{"businessName":"x","platforms":[]}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := map[error]int{
			fmt.Errorf("%w: unsupported platform", usecase.ErrInvalidContentBrief): http.StatusBadRequest,
			fmt.Errorf("%w: \"llama\"", usecase.ErrUnknownModelProvider):           http.StatusBadRequest,
			fmt.Errorf("%w: eof", usecase.ErrContentParse):                         http.StatusInternalServerError,
			fmt.Errorf("%w: timeout", usecase.ErrModelUpstream):                    http.StatusInternalServerError,
		}
		for cause, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIContentUseCase(ctrl)
			h := NewContentHandler(uc)

			r := gin.New()
			r.POST("/content/generate", h.Generate)

			uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.ContentPlan{}, cause)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/content/generate", validBrief))
			if w.Code != want {
				t.Fatalf("%v: expected %d, got %d", cause, want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContentUseCase(ctrl)
		h := NewContentHandler(uc)

		r := gin.New()
		r.POST("/content/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), entities.ContentBrief{
			BusinessName: "Rosa's Bakery",
			Industry:     "food",
			Topic:        "autumn menu",
			Platforms:    []entities.Platform{entities.PlatformInstagram, entities.PlatformTwitter},
		}).Return(entities.ContentPlan{
			Provider: "anthropic",
			Posts:    []entities.GeneratedPost{{Platform: entities.PlatformTwitter, Caption: "Pumpkin bread is back", Hashtags: []string{"#bakery"}}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/content/generate", validBrief))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
