package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"projecteval/pkg/projecteval"
)

// UI bounds on the project timeline. The engine itself only requires each
// phase to be at least one year.
const (
	maxConstructionYears = 10
	maxOperationYears    = 50
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createProjectPayload struct {
	Name     string               `json:"name"`
	Snapshot projecteval.Snapshot `json:"snapshot"`
}

func (h *handler) createProject(w http.ResponseWriter, r *http.Request) {
	var payload createProjectPayload
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	p := projecteval.NewProject()
	if len(payload.Snapshot) > 0 {
		loaded, err := projecteval.LoadProject(payload.Snapshot)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		p = loaded
	}
	if payload.Name != "" {
		p.Name = payload.Name
	}
	id, err := h.core.CreateProject(p)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, map[string]string{"id": id, "name": p.Name})
}

func (h *handler) listProjects(w http.ResponseWriter, r *http.Request) {
	records, err := h.core.ListProjects()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if records == nil {
		records = []projecteval.ProjectRecord{}
	}
	writeSuccess(w, records)
}

func (h *handler) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadProject(w, r)
	if err != nil {
		return
	}
	writeSuccess(w, p)
}

func (h *handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.core.DeleteProject(chi.URLParam(r, "id")); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccessWithMessage(w, "project deleted", nil)
}

func (h *handler) updateInputs(w http.ResponseWriter, r *http.Request) {
	var snapshot projecteval.Snapshot
	if err := decodeJSON(r, &snapshot); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.core.LoadProject(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if err := p.ApplySnapshot(snapshot); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := h.core.SaveProject(id, p); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccessWithMessage(w, "inputs updated", nil)
}

type updatePeriodPayload struct {
	ConstructionYears int `json:"construction_years"`
	OperationYears    int `json:"operation_years"`
}

func (h *handler) updatePeriod(w http.ResponseWriter, r *http.Request) {
	var payload updatePeriodPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.ConstructionYears > maxConstructionYears {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("construction period cannot exceed %d years", maxConstructionYears))
		return
	}
	if payload.OperationYears > maxOperationYears {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("operation period cannot exceed %d years", maxOperationYears))
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.core.LoadProject(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if err := p.UpdatePeriod(payload.ConstructionYears, payload.OperationYears); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := h.core.SaveProject(id, p); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccessWithMessage(w, "period updated", p.Period)
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request) {
	p, err := h.loadProject(w, r)
	if err != nil {
		return
	}

	start := time.Now()
	if err := p.CalculateAll(); err != nil {
		h.metrics.observeCalculation(time.Since(start), false)
		writeErrorResponse(w, http.StatusUnprocessableEntity, err)
		return
	}
	h.metrics.observeCalculation(time.Since(start), true)
	writeSuccess(w, p.Results)
}

func (h *handler) getResults(w http.ResponseWriter, r *http.Request) {
	p, err := h.calculatedProject(w, r)
	if err != nil {
		return
	}
	writeSuccess(w, p.Results)
}

func (h *handler) getSummary(w http.ResponseWriter, r *http.Request) {
	p, err := h.calculatedProject(w, r)
	if err != nil {
		return
	}

	section := chi.URLParam(r, "section")
	switch section {
	case "investment":
		writeSuccess(w, p.InvestmentSummary())
	case "revenue":
		writeSuccess(w, p.RevenueSummary())
	case "cost":
		writeSuccess(w, p.CostSummary())
	case "profit":
		writeSuccess(w, p.ProfitSummary())
	case "cashflow":
		writeSuccess(w, p.CashFlowStatement())
	case "indicators":
		writeSuccess(w, p.FinancialIndicators())
	case "profitability":
		writeSuccess(w, p.ProfitabilityAnalysis())
	case "solvency":
		writeSuccess(w, p.SolvencyAnalysis())
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown summary section %q", section))
	}
}

type sensitivityPayload struct {
	Factor         projecteval.SensitivityFactor                        `json:"factor"`
	ChangePercents []projecteval.Amount                                 `json:"change_percents"`
	Factors        map[projecteval.SensitivityFactor]projecteval.Amount `json:"factors"`
}

func (h *handler) analyzeSensitivity(w http.ResponseWriter, r *http.Request) {
	var payload sensitivityPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.calculatedProject(w, r)
	if err != nil {
		return
	}

	if len(payload.Factors) > 0 {
		point, err := projecteval.AnalyzeScenario(p, payload.Factors)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		writeSuccess(w, point)
		return
	}

	result, err := projecteval.AnalyzeSensitivity(p, payload.Factor, payload.ChangePercents)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeSuccess(w, result)
}

// loadProject resolves the {id} route parameter; on failure it has already
// written the error response.
func (h *handler) loadProject(w http.ResponseWriter, r *http.Request) (*projecteval.Project, error) {
	p, err := h.core.LoadProject(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return nil, err
	}
	return p, nil
}

func (h *handler) calculatedProject(w http.ResponseWriter, r *http.Request) (*projecteval.Project, error) {
	p, err := h.loadProject(w, r)
	if err != nil {
		return nil, err
	}
	if err := p.CalculateAll(); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, err)
		return nil, err
	}
	return p, nil
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
