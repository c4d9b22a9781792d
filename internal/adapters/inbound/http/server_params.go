package http

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// InvalidParamFormatError reports a path or query parameter that could not be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.ParamName, e.Err)
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// paramWrapper binds the path and query parameters of a request before handing it
// to the matching RepoIndexerServer handler.
type paramWrapper struct {
	api RepoIndexerServer
}

func (pw paramWrapper) RequestIngestion(w http.ResponseWriter, r *http.Request) {
	var projectID string
	if err := bindPathParam(r, "projectID", &projectID); err != nil {
		pw.paramError(w, err)
		return
	}
	pw.api.RequestIngestion(w, r, projectID)
}

func (pw paramWrapper) ListIngestionJobs(w http.ResponseWriter, r *http.Request) {
	var projectID string
	if err := bindPathParam(r, "projectID", &projectID); err != nil {
		pw.paramError(w, err)
		return
	}

	var params ListIngestionJobsParams
	if err := bindQueryParam(r, "since", &params.Since); err != nil {
		pw.paramError(w, err)
		return
	}
	pw.api.ListIngestionJobs(w, r, projectID, params)
}

func (pw paramWrapper) GetIngestionJob(w http.ResponseWriter, r *http.Request) {
	var jobID openapi_types.UUID
	if err := bindPathParam(r, "jobID", &jobID); err != nil {
		pw.paramError(w, err)
		return
	}
	pw.api.GetIngestionJob(w, r, jobID)
}

func (pw paramWrapper) ListEmbeddingRecords(w http.ResponseWriter, r *http.Request) {
	var projectID string
	if err := bindPathParam(r, "projectID", &projectID); err != nil {
		pw.paramError(w, err)
		return
	}
	pw.api.ListEmbeddingRecords(w, r, projectID)
}

func (pw paramWrapper) SearchCode(w http.ResponseWriter, r *http.Request) {
	var projectID string
	if err := bindPathParam(r, "projectID", &projectID); err != nil {
		pw.paramError(w, err)
		return
	}

	var params SearchCodeParams
	if err := bindQueryParam(r, "q", &params.Q); err != nil {
		pw.paramError(w, err)
		return
	}
	if err := bindQueryParam(r, "limit", &params.Limit); err != nil {
		pw.paramError(w, err)
		return
	}
	if params.Limit != nil && *params.Limit < 0 {
		pw.paramError(w, &InvalidParamFormatError{ParamName: "limit", Err: fmt.Errorf("%d is negative", *params.Limit)})
		return
	}
	pw.api.SearchCode(w, r, projectID, params)
}

func (pw paramWrapper) paramError(w http.ResponseWriter, err *InvalidParamFormatError) {
	pw.api.Logger.Printf("RepoIndexerServer: %v", err)
	respondError(w, badRequest("invalid format for parameter "+err.ParamName))
}

func bindPathParam(r *http.Request, name string, dest any) *InvalidParamFormatError {
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}
	return nil
}

func bindQueryParam(r *http.Request, name string, dest any) *InvalidParamFormatError {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}
	return nil
}
