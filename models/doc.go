// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitSurveyRequest: question, response

Validate returns a *ValidationError naming the first empty field. Values
are not trimmed; a single space counts as an answer.

# Response Types

  - SubmitSurveyResponse: message
  - HealthResponse: status, driver, responses
  - ErrorResponse: error, message

# Domain Types

  - SurveyResponse: id, question, response (one survey_responses row)

# Messages

	MessageSaved          = "데이터 저장 성공"
	MessageInvalidRequest = "유효하지 않은 요청 데이터"
*/
package models
