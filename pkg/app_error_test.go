package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Error != "An internal error occurred" || body.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
