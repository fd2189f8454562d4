package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
)

func setupRecipeTestRouter(t *testing.T) (*gin.Engine, *ingredient.Ingredient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ingredientRepo, flour, _ := seedCatalog(t)
	service := NewService(NewInMemoryRepository(), ingredientRepo)
	handler := NewHandler(service)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "owner-1")
	})
	r.POST("/recipes", handler.Create)
	r.GET("/recipes/:id", handler.Get)
	r.GET("/recipes/:id/cost", handler.Cost)

	return r, flour
}

func TestRecipeCostEndpoint(t *testing.T) {
	r, flour := setupRecipeTestRouter(t)

	payload := RecipeInput{
		Name:          "Shortbread",
		YieldQuantity: "10",
		YieldUnit:     "each",
		Items: []UsageInput{
			{IngredientID: flour.ID.String(), Quantity: "250", Unit: "g"},
		},
	}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/recipes/"+created.ID.String()+"/cost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var breakdown struct {
		TotalCost         string `json:"total_cost"`
		CostPerOutputUnit string `json:"cost_per_output_unit"`
		Currency          string `json:"currency"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &breakdown); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if breakdown.TotalCost != "0.5" {
		t.Errorf("expected total 0.5, got %s", breakdown.TotalCost)
	}
	if breakdown.Currency != "GBP" {
		t.Errorf("expected GBP, got %s", breakdown.Currency)
	}
}

func TestRecipeCostEndpoint_UnknownRecipe(t *testing.T) {
	r, _ := setupRecipeTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/recipes/8b9c2f0a-0f6e-4d1c-9a3b-000000000000/cost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRecipeCostEndpoint_ReportsLineErrors(t *testing.T) {
	r, flour := setupRecipeTestRouter(t)

	// Second line uses milliliters against a density-less mass ingredient.
	payload := RecipeInput{
		Name:          "Mixed",
		YieldQuantity: "1",
		YieldUnit:     "each",
		Items: []UsageInput{
			{IngredientID: flour.ID.String(), Quantity: "500", Unit: "g"},
			{IngredientID: flour.ID.String(), Quantity: "100", Unit: "ml"},
		},
	}

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/recipes/"+created.ID.String()+"/cost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var breakdown CostBreakdown
	if err := json.Unmarshal(w.Body.Bytes(), &breakdown); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if len(breakdown.LineErrors) != 1 {
		t.Fatalf("expected the failed line to be visible, got %+v", breakdown.LineErrors)
	}
	if breakdown.TotalCost.String() != "1" {
		t.Errorf("expected partial total 1, got %s", breakdown.TotalCost)
	}
}
