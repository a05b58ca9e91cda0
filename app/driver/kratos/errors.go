package kratos

import (
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"account-service/app/domain"
)

// transformError maps Kratos API errors onto the domain error vocabulary.
// Callers never see Kratos response bodies; those may carry identifiers
// that must not leak past this layer.
func (a *IdentityAdapter) transformError(err error, httpResp *http.Response, operation string) error {
	if err == nil {
		return nil
	}

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if httpResp != nil {
			return a.transformStatusError(httpResp.StatusCode, string(kratosErr.Body()), operation)
		}
		return a.transformStatusError(0, string(kratosErr.Body()), operation)
	}

	if httpResp != nil {
		return a.transformStatusError(httpResp.StatusCode, "", operation)
	}

	// No response at all: connection refused, DNS failure, timeout.
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, operation, err)
}

func (a *IdentityAdapter) transformStatusError(statusCode int, body, operation string) error {
	switch statusCode {
	case http.StatusConflict:
		return domain.ErrDuplicateAccount
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if isCredentialPolicyError(body) {
			return domain.ErrWeakCredential
		}
		// Kratos also reports schema violations as 400; duplicate traits
		// on older versions come back this way instead of as 409.
		if strings.Contains(body, "exists already") {
			return domain.ErrDuplicateAccount
		}
		return fmt.Errorf("%w: %s rejected by identity provider", domain.ErrIdentityCreationFailed, operation)
	case http.StatusNotFound:
		return domain.ErrIdentityNotFound
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s returned status %d", domain.ErrStoreUnavailable, operation, statusCode)
	default:
		return fmt.Errorf("%w: %s returned status %d", domain.ErrStoreUnavailable, operation, statusCode)
	}
}

// isCredentialPolicyError detects password policy rejections in a Kratos
// error body.
func isCredentialPolicyError(body string) bool {
	lowered := strings.ToLower(body)
	for _, marker := range []string{
		"password",
		"credential",
		"data breaches",
		"too similar",
	} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
