package models

// Messages returned to API clients
const (
	MessageSaved          = "데이터 저장 성공"
	MessageInvalidRequest = "유효하지 않은 요청 데이터"
)

// Request types

type SubmitSurveyRequest struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// Validate rejects empty fields. Whitespace is kept as submitted.
func (r SubmitSurveyRequest) Validate() error {
	if r.Question == "" {
		return &ValidationError{Field: "question"}
	}
	if r.Response == "" {
		return &ValidationError{Field: "response"}
	}
	return nil
}

// Response types

type SubmitSurveyResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Driver    string `json:"driver"`
	Responses int    `json:"responses"`
}

// Domain types

// SurveyResponse is one persisted row of survey_responses
type SurveyResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Response string `json:"response"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
