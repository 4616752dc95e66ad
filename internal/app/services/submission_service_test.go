package services

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/communiteer/welcomehub/internal/app/models"
	"github.com/communiteer/welcomehub/internal/pkg/apperrors"
	"github.com/communiteer/welcomehub/internal/pkg/webhook"
)

type recordingForwarder struct {
	calls   int
	url     string
	payload any
	err     error
}

func (f *recordingForwarder) Post(_ context.Context, url string, payload any) error {
	f.calls++
	f.url = url
	f.payload = payload
	return f.err
}

var fixedNow = time.Date(2025, 2, 17, 1, 2, 3, 456_000_000, time.UTC)

func newTestService(fwd webhook.Client, cfg SubmissionConfig) SubmissionService {
	return NewSubmissionService(cfg, fwd, zerolog.Nop(), WithClock(func() time.Time { return fixedNow }))
}

func configured() SubmissionConfig {
	return SubmissionConfig{
		CheckinURL: "https://sheets.example/checkin",
		EoiURL:     "https://sheets.example/eoi",
	}
}

const validCheckinBody = `{
	"firstName": "  Ana ",
	"lastName": "Lopez",
	"primaryEmail": " Jane@EXAMPLE.com ",
	"phoneCountryCode": "+57",
	"originCountry": "Colombia",
	"educationInstitution": "University of Sydney",
	"newToAustralia": "Yes",
	"assistanceNeeded": "Accommodation",
	"connectImportance": "4",
	"helpfulRating": "5",
	"lang": "es"
}`

func TestSubmitCheckinForwardsNormalizedPayload(t *testing.T) {
	fwd := &recordingForwarder{}
	svc := newTestService(fwd, configured())

	if err := svc.SubmitCheckin(context.Background(), strings.NewReader(validCheckinBody)); err != nil {
		t.Fatalf("SubmitCheckin: %v", err)
	}
	if fwd.calls != 1 || fwd.url != "https://sheets.example/checkin" {
		t.Fatalf("forward calls=%d url=%q", fwd.calls, fwd.url)
	}
	got, ok := fwd.payload.(models.CheckinSubmission)
	if !ok {
		t.Fatalf("payload type %T", fwd.payload)
	}
	if got.FirstName != "Ana" || got.FullName != "Ana Lopez" || got.PrimaryEmail != "jane@example.com" {
		t.Fatalf("payload not normalized: %+v", got)
	}
	if got.SubmittedAt != "2025-02-17T01:02:03.456Z" {
		t.Fatalf("submittedAt = %q", got.SubmittedAt)
	}
	if got.Lang != "es" {
		t.Fatalf("lang = %q", got.Lang)
	}
}

func TestSubmitCheckinMissingURL(t *testing.T) {
	fwd := &recordingForwarder{}
	svc := newTestService(fwd, SubmissionConfig{EoiURL: "https://sheets.example/eoi"})

	err := svc.SubmitCheckin(context.Background(), strings.NewReader(validCheckinBody))
	if !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if err.Error() != MsgCheckinNotConfigured {
		t.Fatalf("message = %q", err.Error())
	}
	if fwd.calls != 0 {
		t.Fatal("forwarder must not be called")
	}
}

func TestSubmitMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":  "not-json",
		"string":    `"text"`,
		"array":     `[{"firstName":"Ana"}]`,
		"null":      `null`,
		"truncated": `{"firstName":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			fwd := &recordingForwarder{}
			svc := newTestService(fwd, configured())
			for _, submit := range []func(context.Context, io.Reader) error{svc.SubmitCheckin, svc.SubmitEoi} {
				err := submit(context.Background(), strings.NewReader(body))
				if !errors.Is(err, apperrors.ErrMalformedRequest) {
					t.Fatalf("err = %v, want ErrMalformedRequest", err)
				}
				if err.Error() != MsgInvalidRequest {
					t.Fatalf("message = %q", err.Error())
				}
			}
			if fwd.calls != 0 {
				t.Fatal("forwarder must not be called")
			}
		})
	}
}

func TestSubmitOversizedBodyIsMalformed(t *testing.T) {
	fwd := &recordingForwarder{}
	cfg := configured()
	cfg.MaxBodyBytes = 32
	svc := newTestService(fwd, cfg)

	err := svc.SubmitCheckin(context.Background(), strings.NewReader(validCheckinBody))
	if !errors.Is(err, apperrors.ErrMalformedRequest) {
		t.Fatalf("err = %v, want ErrMalformedRequest", err)
	}
	if fwd.calls != 0 {
		t.Fatal("forwarder must not be called")
	}
}

func TestSubmitCheckinValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		missing []string
	}{
		{
			name:    "empty object",
			body:    `{}`,
			missing: []string{"firstName", "lastName", "phoneCountryCode", "primaryEmail", "originCountry", "educationInstitution", "newToAustralia", "assistanceNeeded", "connectImportance", "helpfulRating"},
		},
		{
			name:    "other country without companion",
			body:    strings.Replace(validCheckinBody, `"Colombia"`, `"Other"`, 1),
			missing: []string{"originCountryOther"},
		},
		{
			name:    "other institution without companion",
			body:    strings.Replace(validCheckinBody, `"University of Sydney"`, `"Other"`, 1),
			missing: []string{"educationInstitutionOther"},
		},
		{
			name:    "not new without duration",
			body:    strings.Replace(validCheckinBody, `"Yes"`, `"No"`, 1),
			missing: []string{"australiaDuration"},
		},
		{
			name:    "other assistance label without companion",
			body:    strings.Replace(validCheckinBody, `"Accommodation"`, `"Other"`, 1),
			missing: []string{"assistanceOther"},
		},
		{
			name:    "whitespace counts as missing",
			body:    strings.Replace(validCheckinBody, `"Lopez"`, `"   "`, 1),
			missing: []string{"lastName"},
		},
		{
			name:    "non-string value counts as missing",
			body:    strings.Replace(validCheckinBody, `"5"`, `5`, 1),
			missing: []string{"helpfulRating"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := &recordingForwarder{}
			svc := newTestService(fwd, configured())

			err := svc.SubmitCheckin(context.Background(), strings.NewReader(tc.body))
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want ErrValidationFailed", err)
			}
			if err.Error() != MsgCheckinMissing {
				t.Fatalf("message = %q", err.Error())
			}
			var custom *apperrors.CustomError
			if !errors.As(err, &custom) {
				t.Fatal("expected CustomError")
			}
			if got := custom.Details["fields"]; !reflect.DeepEqual(got, tc.missing) {
				t.Fatalf("missing = %v, want %v", got, tc.missing)
			}
			if fwd.calls != 0 {
				t.Fatal("forwarder must not be called on validation failure")
			}
		})
	}
}

func TestSubmitCheckinCompanionsSatisfied(t *testing.T) {
	body := `{
		"firstName":"Ana","lastName":"Lopez","primaryEmail":"a@b.co","phoneCountryCode":"+61",
		"originCountry":"Other","originCountryOther":"Chile",
		"educationInstitution":"Other","educationInstitutionOther":"TAFE NSW",
		"newToAustralia":"No","australiaDuration":"1-2 years",
		"assistanceNeeded":"Other","assistanceOther":"Tax file number",
		"connectImportance":"1","helpfulRating":"2"
	}`
	fwd := &recordingForwarder{}
	if err := newTestService(fwd, configured()).SubmitCheckin(context.Background(), strings.NewReader(body)); err != nil {
		t.Fatalf("SubmitCheckin: %v", err)
	}
	got := fwd.payload.(models.CheckinSubmission)
	if got.Lang != "en" {
		t.Fatalf("lang = %q, want default en", got.Lang)
	}
}

func TestSubmitCheckinUpstreamFailures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		target  error
		message string
	}{
		{"unreachable", errors.Join(apperrors.ErrUpstreamUnreachable, errors.New("dial tcp: refused")), apperrors.ErrUpstreamUnreachable, MsgCheckinUnreachable},
		{"rejected", &webhook.RejectedError{StatusCode: 500, Body: "boom"}, apperrors.ErrUpstreamRejected, MsgCheckinRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := &recordingForwarder{err: tc.err}
			err := newTestService(fwd, configured()).SubmitCheckin(context.Background(), strings.NewReader(validCheckinBody))
			if !errors.Is(err, tc.target) {
				t.Fatalf("err = %v, want %v", err, tc.target)
			}
			if err.Error() != tc.message {
				t.Fatalf("message = %q, want %q", err.Error(), tc.message)
			}
			if strings.Contains(err.Error(), "boom") {
				t.Fatal("upstream body must not reach the caller")
			}
		})
	}
}

func TestSubmitEoi(t *testing.T) {
	fwd := &recordingForwarder{}
	svc := newTestService(fwd, configured())

	body := `{"firstName":"Minh","lastName":"Tran","email":" MINH@Example.com","interest":"Mentoring","details":"  weekends "}`
	if err := svc.SubmitEoi(context.Background(), strings.NewReader(body)); err != nil {
		t.Fatalf("SubmitEoi: %v", err)
	}
	got := fwd.payload.(models.EoiSubmission)
	if fwd.url != "https://sheets.example/eoi" {
		t.Fatalf("url = %q", fwd.url)
	}
	if got.Email != "minh@example.com" || got.Details != "weekends" || got.Lang != "en" || got.SubmittedAt == "" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestSubmitEoiErrors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		err := newTestService(&recordingForwarder{}, SubmissionConfig{CheckinURL: "x"}).SubmitEoi(context.Background(), strings.NewReader(`{}`))
		if !errors.Is(err, apperrors.ErrNotConfigured) || err.Error() != MsgEoiNotConfigured {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("missing interest", func(t *testing.T) {
		fwd := &recordingForwarder{}
		err := newTestService(fwd, configured()).SubmitEoi(context.Background(), strings.NewReader(`{"firstName":"Minh","lastName":"Tran","email":"m@example.com"}`))
		if !errors.Is(err, apperrors.ErrValidationFailed) || err.Error() != MsgEoiMissing {
			t.Fatalf("err = %v", err)
		}
		if fwd.calls != 0 {
			t.Fatal("forwarder must not be called")
		}
	})
	t.Run("rejected", func(t *testing.T) {
		fwd := &recordingForwarder{err: &webhook.RejectedError{StatusCode: 403}}
		err := newTestService(fwd, configured()).SubmitEoi(context.Background(), strings.NewReader(`{"firstName":"Minh","lastName":"Tran","email":"m@example.com","interest":"Other"}`))
		if !errors.Is(err, apperrors.ErrUpstreamRejected) || err.Error() != MsgEoiRejected {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("unreachable", func(t *testing.T) {
		fwd := &recordingForwarder{err: apperrors.ErrUpstreamUnreachable}
		err := newTestService(fwd, configured()).SubmitEoi(context.Background(), strings.NewReader(`{"firstName":"Minh","lastName":"Tran","email":"m@example.com","interest":"Other"}`))
		if !errors.Is(err, apperrors.ErrUpstreamUnreachable) || err.Error() != MsgEoiUnreachable {
			t.Fatalf("err = %v", err)
		}
	})
}
