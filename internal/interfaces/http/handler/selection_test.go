package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionHandler_Get(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodGet, "/api/v1/selection", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns the active pair", func(t *testing.T) {
		companies := companyDirectory(1)
		ts := newTestServer(t, companies...)
		scenarioID := uuid.New()
		ts.selection.Set(companies[0].ID, scenarioID)

		w := ts.do(t, http.MethodGet, "/api/v1/selection", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, companies[0].ID.String(), data["company_id"])
		assert.Equal(t, scenarioID.String(), data["scenario_id"])
		assert.Equal(t, float64(1), data["generation"])
	})
}

func TestSelectionHandler_Set(t *testing.T) {
	t.Run("explicit scenario", func(t *testing.T) {
		companies := companyDirectory(1)
		ts := newTestServer(t, companies...)
		scenario := annualScenario(companies[0].ID, "Budget 2025", 2024, true)
		ts.scenarioAPI.addCompany(companies[0].ID, []int{2023}, scenario)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{
			CompanyID:  companies[0].ID.String(),
			ScenarioID: scenario.ID.String(),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, scenario.ID.String(), data["scenario_id"])
	})

	t.Run("omitted scenario resolves the preferred one", func(t *testing.T) {
		companies := companyDirectory(1)
		ts := newTestServer(t, companies...)
		inactive := annualScenario(companies[0].ID, "Vecchio", 2022, false)
		active := annualScenario(companies[0].ID, "Corrente", 2024, true)
		ts.scenarioAPI.addCompany(companies[0].ID, []int{2023}, inactive, active)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{
			CompanyID: companies[0].ID.String(),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, active.ID.String(), data["scenario_id"])
	})

	t.Run("company without scenarios is selectable", func(t *testing.T) {
		companies := companyDirectory(1)
		ts := newTestServer(t, companies...)
		ts.scenarioAPI.addCompany(companies[0].ID, []int{2023})

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{
			CompanyID: companies[0].ID.String(),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, companies[0].ID.String(), data["company_id"])
		_, hasScenario := data["scenario_id"]
		assert.False(t, hasScenario, "an unresolvable scenario stays absent from the payload")
	})

	t.Run("unknown company", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{
			CompanyID: uuid.NewString(),
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("scenario of another company", func(t *testing.T) {
		companies := companyDirectory(2)
		ts := newTestServer(t, companies...)
		mine := annualScenario(companies[0].ID, "Mio", 2024, true)
		other := annualScenario(companies[1].ID, "Altrui", 2024, true)
		ts.scenarioAPI.addCompany(companies[0].ID, []int{2023}, mine)
		ts.scenarioAPI.addCompany(companies[1].ID, []int{2023}, other)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{
			CompanyID:  companies[0].ID.String(),
			ScenarioID: other.ID.String(),
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", map[string]any{
			"company_id": "not-a-uuid",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation increments per change", func(t *testing.T) {
		companies := companyDirectory(2)
		ts := newTestServer(t, companies...)
		first := annualScenario(companies[0].ID, "Primo", 2024, true)
		second := annualScenario(companies[1].ID, "Secondo", 2024, true)
		ts.scenarioAPI.addCompany(companies[0].ID, []int{2023}, first)
		ts.scenarioAPI.addCompany(companies[1].ID, []int{2023}, second)

		w := ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{CompanyID: companies[0].ID.String()})
		require.Equal(t, http.StatusOK, w.Code)
		genOne := dataAsMap(t, decodeResponse(t, w))["generation"].(float64)

		w = ts.do(t, http.MethodPut, "/api/v1/selection", SetSelectionRequest{CompanyID: companies[1].ID.String()})
		require.Equal(t, http.StatusOK, w.Code)
		genTwo := dataAsMap(t, decodeResponse(t, w))["generation"].(float64)

		assert.Greater(t, genTwo, genOne)
	})
}

func TestSelectionHandler_Clear(t *testing.T) {
	companies := companyDirectory(1)
	ts := newTestServer(t, companies...)
	ts.selection.Set(companies[0].ID, uuid.New())

	w := ts.do(t, http.MethodDelete, "/api/v1/selection", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/selection", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
