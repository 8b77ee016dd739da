package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/janisto/matrimony-api/internal/app"
	"github.com/janisto/matrimony-api/internal/platform/config"
	"github.com/janisto/matrimony-api/internal/service/dashboard"
	"github.com/janisto/matrimony-api/internal/service/media"
	"github.com/janisto/matrimony-api/internal/service/profile"
)

type harness struct {
	records   *profile.MockStore
	overviews *dashboard.MockStore
	opens     int
	closes    int
	closeErr  error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{records: profile.NewMockStore(), overviews: dashboard.NewMockStore()}

	name, gender, birth, location := "Asha Patil", "female", "1995-04-12", "Pune"
	a := app.Wire(config.Config{}, h.records, h.overviews, media.NewMockStore())
	err := a.Profiles.Save(context.Background(), "user-1", profile.SaveInput{
		Public: profile.PublicUpdate{Name: &name, Gender: &gender, BirthDate: &birth, Location: &location},
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return h
}

func (h *harness) open(context.Context) (*app.App, func() error, error) {
	h.opens++
	a := app.Wire(config.Config{}, h.records, h.overviews, media.NewMockStore())
	return a, h.close, nil
}

func (h *harness) close() error {
	h.closes++
	return h.closeErr
}

func execute(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestShow(t *testing.T) {
	h := newHarness(t)

	out, err := execute(t, h.open, "show", "--user", "user-1", "--lang", "mr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v overviewView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	if v.ProfileCompleteness != 28 {
		t.Fatalf("expected 28, got %d", v.ProfileCompleteness)
	}
	if v.Language != "mr" || v.Sections[0].Label != "मूलभूत माहिती" {
		t.Fatalf("expected Marathi labels, got %+v", v)
	}
	if len(v.Sections) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(v.Sections))
	}
}

func TestRecomputeRepairsMissingOverview(t *testing.T) {
	h := newHarness(t)
	if err := h.overviews.Delete(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := execute(t, h.open, "recompute", "--user", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o, err := h.overviews.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected recomputed overview to be stored, got %v", err)
	}
	if o.ProfileCompleteness != 28 {
		t.Fatalf("expected 28, got %d", o.ProfileCompleteness)
	}
}

func TestMissing(t *testing.T) {
	h := newHarness(t)

	out, err := execute(t, h.open, "missing", "--user", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var missing map[string][]string
	if err := json.Unmarshal([]byte(out), &missing); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	if _, ok := missing["basicInfo"]; ok {
		t.Fatal("expected basicInfo to be complete")
	}
	if got := missing["contactInfo"]; len(got) != 1 || got[0] != "phone" {
		t.Fatalf("expected contactInfo to miss phone, got %v", got)
	}
}

func TestRequiresUser(t *testing.T) {
	h := newHarness(t)

	if _, err := execute(t, h.open, "show"); !errors.Is(err, errNoUser) {
		t.Fatalf("expected errNoUser, got %v", err)
	}
	if h.opens != 0 {
		t.Fatal("expected no services to be opened without --user")
	}
}

func TestOpenFailure(t *testing.T) {
	boom := errors.New("firebase unavailable")
	open := func(context.Context) (*app.App, func() error, error) { return nil, nil, boom }

	if _, err := execute(t, open, "show", "--user", "user-1"); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestClosesAfterEachCommand(t *testing.T) {
	for _, name := range []string{"show", "recompute", "missing"} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			if _, err := execute(t, h.open, name, "--user", "user-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.closes != 1 {
				t.Fatalf("expected one close, got %d", h.closes)
			}
		})
	}
}

func TestClosesWhenCommandFails(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("unavailable")
	h.overviews.GetErr = boom

	if _, err := execute(t, h.open, "show", "--user", "user-1"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if h.closes != 1 {
		t.Fatalf("expected services closed after a failed command, got %d closes", h.closes)
	}
}

func TestCloseErrorIsReported(t *testing.T) {
	h := newHarness(t)
	h.closeErr = errors.New("close failed")

	if _, err := execute(t, h.open, "missing", "--user", "user-1"); !errors.Is(err, h.closeErr) {
		t.Fatalf("expected close error, got %v", err)
	}
}
