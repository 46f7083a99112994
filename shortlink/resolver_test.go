package shortlink

import (
	"context"
	"testing"

	"github.com/Maetry/website/i18n"
	"github.com/Maetry/website/model"
)

// fakeAPI scripts the backend's answers for resolver tests.
type fakeAPI struct {
	link        *model.MagicLink
	linkErr     error
	campaign    *model.MarketingCampaign
	campaignErr error

	clicks         int
	campaignCalls  int
	lastClickToken string
}

func (f *fakeAPI) RegisterClick(_ context.Context, nanoID string, _ model.ClickRequest) (*model.MagicLink, error) {
	f.clicks++
	f.lastClickToken = nanoID
	if f.linkErr != nil {
		return nil, f.linkErr
	}
	return f.link, nil
}

func (f *fakeAPI) MarketingCampaignByLink(_ context.Context, _ string) (*model.MarketingCampaign, error) {
	f.campaignCalls++
	if f.campaignErr != nil {
		return nil, f.campaignErr
	}
	return f.campaign, nil
}

func TestResolve_MarketingLink(t *testing.T) {
	api := &fakeAPI{
		link:     &model.MagicLink{NanoID: "tok1", Kind: model.LinkKindMarketing},
		campaign: &model.MarketingCampaign{ID: "c1", SalonID: "s1", LinkID: "tok1"},
	}
	resolver := NewResolver(api, nil)

	outcome := resolver.Resolve(context.Background(), "tok1", i18n.LocaleEN, model.ClickRequest{})

	if outcome.State != OutcomeBooking {
		t.Fatalf("state = %v, want booking", outcome.State)
	}
	if outcome.SalonID != "s1" {
		t.Errorf("salonId = %q, want s1", outcome.SalonID)
	}
	if outcome.TrackingID != "tok1" {
		t.Errorf("trackingId = %q, want tok1", outcome.TrackingID)
	}
	if api.clicks != 1 || api.campaignCalls != 1 {
		t.Errorf("calls = %d clicks, %d campaign; want 1 and 1", api.clicks, api.campaignCalls)
	}
}

func TestResolve_MarketingLink_CampaignFailure(t *testing.T) {
	api := &fakeAPI{
		link:        &model.MagicLink{NanoID: "tok1", Kind: model.LinkKindMarketing},
		campaignErr: &APIError{Status: 500, Message: "boom"},
	}
	resolver := NewResolver(api, nil)

	outcome := resolver.Resolve(context.Background(), "tok1", i18n.LocaleEN, model.ClickRequest{})

	if outcome.State != OutcomeError {
		t.Fatalf("state = %v, want error", outcome.State)
	}
	if outcome.Message != i18n.Catalog(i18n.LocaleEN).ErrorCampaign {
		t.Errorf("message = %q, want campaign-specific message", outcome.Message)
	}
}

func TestResolve_InviteLinks(t *testing.T) {
	for _, kind := range []model.LinkKind{model.LinkKindEmployeeInvite, model.LinkKindClientInvite} {
		t.Run(string(kind), func(t *testing.T) {
			api := &fakeAPI{link: &model.MagicLink{NanoID: "tok2", Kind: kind}}
			resolver := NewResolver(api, nil)

			outcome := resolver.Resolve(context.Background(), "tok2", i18n.LocaleEN, model.ClickRequest{})

			if outcome.State != OutcomeInvite {
				t.Fatalf("state = %v, want invite", outcome.State)
			}
			if outcome.InviteKind != kind {
				t.Errorf("inviteKind = %v, want %v", outcome.InviteKind, kind)
			}
			if api.campaignCalls != 0 {
				t.Errorf("campaign fetched for an invite link (%d calls)", api.campaignCalls)
			}
		})
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	api := &fakeAPI{link: &model.MagicLink{NanoID: "tok3", Kind: "giveaway"}}
	resolver := NewResolver(api, nil)

	outcome := resolver.Resolve(context.Background(), "tok3", i18n.LocaleEN, model.ClickRequest{})

	if outcome.State != OutcomeError {
		t.Fatalf("state = %v, want error", outcome.State)
	}
	if outcome.Message != i18n.Catalog(i18n.LocaleEN).ErrorUnknownType {
		t.Errorf("message = %q, want unknown-type message", outcome.Message)
	}
}

func TestResolve_NotFound(t *testing.T) {
	api := &fakeAPI{linkErr: &NotFoundError{}}
	resolver := NewResolver(api, nil)

	outcome := resolver.Resolve(context.Background(), "tok3", i18n.LocaleEN, model.ClickRequest{})

	if outcome.State != OutcomeNotFound {
		t.Fatalf("state = %v, want notFound", outcome.State)
	}
	if outcome.Message == i18n.Catalog(i18n.LocaleEN).ErrorProcessing {
		t.Error("not-found message must be distinct from the generic processing failure")
	}
	if api.campaignCalls != 0 {
		t.Error("campaign fetched after a failed click registration")
	}
}

func TestResolve_RegistrationFailureMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"API error with message", &APIError{Status: 502, Message: "upstream down"}, "upstream down"},
		{"API error without message", &APIError{Status: 502}, i18n.Catalog(i18n.LocaleEN).ErrorProcessing},
		{"Transport error", context.DeadlineExceeded, i18n.Catalog(i18n.LocaleEN).ErrorProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&fakeAPI{linkErr: tt.err}, nil)
			outcome := resolver.Resolve(context.Background(), "tok", i18n.LocaleEN, model.ClickRequest{})

			if outcome.State != OutcomeError {
				t.Fatalf("state = %v, want error", outcome.State)
			}
			if outcome.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", outcome.Message, tt.wantMessage)
			}
		})
	}
}

func TestResolve_LocalizedMessages(t *testing.T) {
	api := &fakeAPI{linkErr: &NotFoundError{}}
	resolver := NewResolver(api, nil)

	outcome := resolver.Resolve(context.Background(), "tok", i18n.LocaleRU, model.ClickRequest{})

	if outcome.Message != i18n.Catalog(i18n.LocaleRU).LinkNotFound {
		t.Errorf("message = %q, want russian not-found message", outcome.Message)
	}
}
