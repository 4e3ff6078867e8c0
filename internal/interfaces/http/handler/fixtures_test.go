package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/analysis"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/commentary"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/report"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/dto"
)

// The handlers are thin adapters over the application services, so the
// tests drive real services backed by mock upstream APIs and assert on the
// wire: status codes, envelope shape, domain codes.

type mockCompanyAPI struct {
	mu        sync.Mutex
	companies []company.Company

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls int
}

func newMockCompanyAPI(companies ...company.Company) *mockCompanyAPI {
	// Copy the fixture slice: Delete shifts elements in place, which must
	// not alias the caller's backing array.
	return &mockCompanyAPI{companies: append([]company.Company(nil), companies...)}
}

func (m *mockCompanyAPI) List(ctx context.Context) ([]company.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]company.Company(nil), m.companies...), nil
}

func (m *mockCompanyAPI) Create(ctx context.Context, in company.Input) (*company.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := company.Company{
		ID:     uuid.New(),
		Name:   in.Name,
		TaxID:  in.TaxID,
		Sector: in.Sector,
		Notes:  in.Notes,
	}
	m.companies = append(m.companies, created)
	return &created, nil
}

func (m *mockCompanyAPI) Update(ctx context.Context, id uuid.UUID, in company.Input) (*company.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for i := range m.companies {
		if m.companies[i].ID == id {
			m.companies[i].Name = in.Name
			m.companies[i].TaxID = in.TaxID
			m.companies[i].Sector = in.Sector
			m.companies[i].Notes = in.Notes
			updated := m.companies[i]
			return &updated, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockCompanyAPI) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.companies {
		if m.companies[i].ID == id {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (m *mockCompanyAPI) listCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

var _ company.CompanyAPI = (*mockCompanyAPI)(nil)

type mockScenarioAPI struct {
	mu           sync.Mutex
	years        map[uuid.UUID][]int
	scenarios    map[uuid.UUID][]budget.BudgetScenario
	yearsErr     map[uuid.UUID]error
	scenariosErr map[uuid.UUID]error
	yearsCalls   map[uuid.UUID]int

	updateErr      error
	assumptionsErr error
	forecastErr    error
	updateCalls    int
	saveCalls      int
	forecastCalls  int
}

func newMockScenarioAPI() *mockScenarioAPI {
	return &mockScenarioAPI{
		years:        make(map[uuid.UUID][]int),
		scenarios:    make(map[uuid.UUID][]budget.BudgetScenario),
		yearsErr:     make(map[uuid.UUID]error),
		scenariosErr: make(map[uuid.UUID]error),
		yearsCalls:   make(map[uuid.UUID]int),
	}
}

func (m *mockScenarioAPI) addCompany(companyID uuid.UUID, years []int, scenarios ...budget.BudgetScenario) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.years[companyID] = years
	m.scenarios[companyID] = scenarios
}

func (m *mockScenarioAPI) yearsCallCount(companyID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.yearsCalls[companyID]
}

func (m *mockScenarioAPI) Years(ctx context.Context, companyID uuid.UUID) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.yearsCalls[companyID]++
	if err := m.yearsErr[companyID]; err != nil {
		return nil, err
	}
	return m.years[companyID], nil
}

func (m *mockScenarioAPI) Scenarios(ctx context.Context, companyID uuid.UUID) ([]budget.BudgetScenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.scenariosErr[companyID]; err != nil {
		return nil, err
	}
	return m.scenarios[companyID], nil
}

func (m *mockScenarioAPI) UpdateScenario(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updateCalls++
	return nil
}

func (m *mockScenarioAPI) SaveAssumptions(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.assumptionsErr != nil {
		return m.assumptionsErr
	}
	m.saveCalls++
	return nil
}

func (m *mockScenarioAPI) GenerateForecast(ctx context.Context, companyID, scenarioID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forecastErr != nil {
		return m.forecastErr
	}
	m.forecastCalls++
	return nil
}

var _ budget.ScenarioAPI = (*mockScenarioAPI)(nil)

type mockAnalysisAPI struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]*analysis.ScenarioAnalysis // keyed by scenario ID
	err       error
	calls     int
}

func newMockAnalysisAPI() *mockAnalysisAPI {
	return &mockAnalysisAPI{snapshots: make(map[uuid.UUID]*analysis.ScenarioAnalysis)}
}

func (m *mockAnalysisAPI) Analysis(ctx context.Context, companyID, scenarioID uuid.UUID) (*analysis.ScenarioAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	snap, ok := m.snapshots[scenarioID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return snap, nil
}

var _ analysis.AnalysisAPI = (*mockAnalysisAPI)(nil)

type mockCommentaryAPI struct {
	mu          sync.Mutex
	stored      map[uuid.UUID]commentary.Map // keyed by scenario ID
	generated   commentary.Map
	fetchErr    error
	generateErr error
}

func newMockCommentaryAPI() *mockCommentaryAPI {
	return &mockCommentaryAPI{stored: make(map[uuid.UUID]commentary.Map)}
}

func (m *mockCommentaryAPI) Fetch(ctx context.Context, companyID, scenarioID uuid.UUID) (commentary.Map, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if stored, ok := m.stored[scenarioID]; ok {
		return stored, nil
	}
	return commentary.Empty(), nil
}

func (m *mockCommentaryAPI) Generate(ctx context.Context, companyID, scenarioID uuid.UUID) (commentary.Map, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	if m.generated == nil {
		return commentary.Empty(), nil
	}
	m.stored[scenarioID] = m.generated
	return m.generated, nil
}

var _ commentary.CommentaryAPI = (*mockCommentaryAPI)(nil)

type mockExportAPI struct {
	content  []byte
	nameHint string
	err      error
}

func (m *mockExportAPI) Export(ctx context.Context, companyID, scenarioID uuid.UUID) (*report.ExportArtifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &report.ExportArtifact{
		Content:     io.NopCloser(bytes.NewReader(m.content)),
		ContentType: "application/pdf",
		NameHint:    m.nameHint,
		Size:        int64(len(m.content)),
	}, nil
}

var _ report.ExportAPI = (*mockExportAPI)(nil)

type mockArtifactSink struct {
	mu      sync.Mutex
	saved   map[string][]byte
	saveErr error
}

func newMockArtifactSink() *mockArtifactSink {
	return &mockArtifactSink{saved: make(map[string][]byte)}
}

func (m *mockArtifactSink) Save(ctx context.Context, fileName string, content io.Reader, contentType string, size int64) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved[fileName] = data
	return "/exports/" + fileName, nil
}

var _ dashboard.ArtifactSink = (*mockArtifactSink)(nil)

// testServer wires every handler onto a gin engine the way the server
// binary does, with all upstream APIs mocked.
type testServer struct {
	engine *gin.Engine

	companyAPI    *mockCompanyAPI
	scenarioAPI   *mockScenarioAPI
	analysisAPI   *mockAnalysisAPI
	commentaryAPI *mockCommentaryAPI
	exportAPI     *mockExportAPI
	sink          *mockArtifactSink

	store     *cache.Store
	selection *dashboard.Selection
	relay     *auth.Relay

	details     *dashboard.DetailService
	companies   *dashboard.CompanyService
	scenarios   *dashboard.ScenarioService
	analysisSvc *dashboard.AnalysisService
	commentary  *dashboard.CommentaryService
	reports     *dashboard.ReportService
	exports     *dashboard.ExportService
	revalidator *dashboard.Revalidator
}

func newTestServer(t *testing.T, companies ...company.Company) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		companyAPI:    newMockCompanyAPI(companies...),
		scenarioAPI:   newMockScenarioAPI(),
		analysisAPI:   newMockAnalysisAPI(),
		commentaryAPI: newMockCommentaryAPI(),
		exportAPI:     &mockExportAPI{content: []byte("%PDF-1.7 test")},
		sink:          newMockArtifactSink(),
		store:         cache.NewStore(),
		selection:     dashboard.NewSelection(),
		relay:         auth.NewRelay(),
	}

	logger := zap.NewNop()
	ts.details = dashboard.NewDetailService(ts.scenarioAPI, ts.store, 2, logger, nil)
	ts.companies = dashboard.NewCompanyService(ts.companyAPI, ts.store, ts.details, ts.selection, logger)
	ts.scenarios = dashboard.NewScenarioService(ts.scenarioAPI, ts.store, ts.details, logger, nil)
	ts.analysisSvc = dashboard.NewAnalysisService(ts.analysisAPI, ts.store)
	ts.commentary = dashboard.NewCommentaryService(ts.commentaryAPI, ts.store, ts.selection, logger, nil)
	ts.reports = dashboard.NewReportService(ts.companies, ts.analysisSvc, ts.commentary)
	ts.exports = dashboard.NewExportService(ts.exportAPI, ts.companies, ts.sink, "stub", logger, nil)
	ts.revalidator = dashboard.NewRevalidator(ts.store, logger)

	ts.engine = gin.New()
	api := ts.engine.Group("/api/v1")
	NewSystemHandler("xbrlbudget-dashboard", "test").RegisterRoutes(api)
	NewCompanyHandler(ts.companies).RegisterRoutes(api)
	NewOverviewHandler(ts.companies, ts.details, ts.revalidator).RegisterRoutes(api)
	NewScenarioHandler(ts.scenarios).RegisterRoutes(api)
	NewSelectionHandler(ts.selection, ts.companies, ts.scenarios).RegisterRoutes(api)
	NewAnalysisHandler(ts.analysisSvc).RegisterRoutes(api)
	NewCommentaryHandler(ts.commentary).RegisterRoutes(api)
	NewReportHandler(ts.reports).RegisterRoutes(api)
	NewExportHandler(ts.exports).RegisterRoutes(api)
	NewRevalidateHandler(ts.revalidator, ts.details).RegisterRoutes(api)
	NewCredentialHandler(ts.relay).RegisterRoutes(api)

	return ts
}

// do drives one request through the engine. A non-nil body is sent as JSON.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func dataAsMap(t *testing.T, resp dto.Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data is not an object")
	return data
}

func companyDirectory(n int) []company.Company {
	companies := make([]company.Company, n)
	for i := range companies {
		companies[i] = company.Company{
			ID:     uuid.New(),
			Name:   "Azienda " + string(rune('A'+i)),
			Sector: company.SectorIndustry,
		}
	}
	return companies
}

func annualScenario(companyID uuid.UUID, name string, baseYear int, active bool) budget.BudgetScenario {
	return budget.BudgetScenario{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      name,
		BaseYear:  baseYear,
		Type:      budget.ScenarioTypeAnnual,
		IsActive:  active,
	}
}

func interimScenario(companyID uuid.UUID, name string, baseYear int) budget.BudgetScenario {
	return budget.BudgetScenario{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      name,
		BaseYear:  baseYear,
		Type:      budget.ScenarioTypeInterim,
	}
}
