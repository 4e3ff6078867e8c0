package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
)

func TestCompanyHandler_List(t *testing.T) {
	companies := companyDirectory(2)
	ts := newTestServer(t, companies...)

	w := ts.do(t, http.MethodGet, "/api/v1/companies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	entries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, companies[0].Name, first["name"])
}

func TestCompanyHandler_GetByID(t *testing.T) {
	companies := companyDirectory(2)
	ts := newTestServer(t, companies...)

	t.Run("found", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/companies/"+companies[1].ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, companies[1].Name, data["name"])
		assert.Equal(t, companies[1].ID.String(), data["id"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/companies/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/companies/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodPost, "/api/v1/companies", CompanyRequest{
			Name:   "Bianchi Meccanica S.p.A.",
			TaxID:  "01234567890",
			Sector: int(company.SectorIndustry),
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataAsMap(t, decodeResponse(t, w))
		assert.Equal(t, "Bianchi Meccanica S.p.A.", data["name"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("domain rejection carries the specific code", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodPost, "/api/v1/companies", CompanyRequest{
			Name:   "   ",
			Sector: int(company.SectorIndustry),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "INVALID_NAME", resp.Error.Code)
	})

	t.Run("invalid sector", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(t, http.MethodPost, "/api/v1/companies", CompanyRequest{
			Name:   "Valida S.r.l.",
			Sector: 99,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "INVALID_SECTOR", resp.Error.Code)
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		ts := newTestServer(t)
		ts.companyAPI.createErr = shared.ErrUpstreamUnavailable

		w := ts.do(t, http.MethodPost, "/api/v1/companies", CompanyRequest{
			Name:   "Valida S.r.l.",
			Sector: int(company.SectorServices),
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "UPSTREAM_UNAVAILABLE", resp.Error.Code)
	})
}

func TestCompanyHandler_Update(t *testing.T) {
	companies := companyDirectory(1)
	ts := newTestServer(t, companies...)

	w := ts.do(t, http.MethodPut, "/api/v1/companies/"+companies[0].ID.String(), CompanyRequest{
		Name:   "Azienda Rinominata",
		Sector: int(company.SectorCommerce),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, decodeResponse(t, w))
	assert.Equal(t, "Azienda Rinominata", data["name"])
	assert.Equal(t, float64(company.SectorCommerce), data["sector"])
}

func TestCompanyHandler_Delete(t *testing.T) {
	companies := companyDirectory(2)
	ts := newTestServer(t, companies...)

	w := ts.do(t, http.MethodDelete, "/api/v1/companies/"+companies[0].ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = ts.do(t, http.MethodGet, "/api/v1/companies/"+companies[0].ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
